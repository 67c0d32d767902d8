package restapi

import (
	"net/http"

	"flights.flyazureva.com/internal/models"
	"flights.flyazureva.com/internal/utils"
)

func (api *RestAPI) flightsHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := utils.ParseFlightsQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()

	if query.IsRoundTrip() {
		result, err := api.Searcher.RoundTrip(ctx, query.RoundTripRequest())
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		api.sendResponse(w, r, models.NewRoundTripResponse(result))
		return
	}

	result, err := api.Searcher.Search(ctx, query.Filters)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewOneWayResponse(result))
}
