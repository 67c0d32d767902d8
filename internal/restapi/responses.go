package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"flights.flyazureva.com/internal/logging"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response any) {
	api.sendJSON(w, r, http.StatusOK, response)
}

func (api *RestAPI) sendJSON(w http.ResponseWriter, r *http.Request, status int, response any) {
	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := writeJSON(w, response); err != nil {
		logging.LogError(api.Logger, "failed to encode response", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "http_server"))
	}
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
