package restapi

import (
	"net/http"

	"flights.flyazureva.com/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewStatusResponse())
}
