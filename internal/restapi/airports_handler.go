package restapi

import (
	"net/http"

	"flights.flyazureva.com/internal/models"
)

func (api *RestAPI) airportsHandler(w http.ResponseWriter, r *http.Request) {
	airports, err := api.FlightDB.Airports(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewAirportsResponse(airports))
}
