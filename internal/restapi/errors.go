package restapi

import (
	"log/slog"
	"net/http"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/models"
)

// serverErrorResponse logs err and sends a 500 that does not reveal the cause.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))

	api.sendJSON(w, r, http.StatusInternalServerError,
		models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	api.sendJSON(w, r, http.StatusBadRequest, models.FieldErrorsResponse{FieldErrors: fieldErrors})
}

func (api *RestAPI) forbiddenOriginResponse(w http.ResponseWriter, r *http.Request) {
	api.sendJSON(w, r, http.StatusForbidden, models.NewErrorResponse(http.StatusForbidden, "origin not allowed"))
}
