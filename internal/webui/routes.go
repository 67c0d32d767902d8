package webui

import (
	"net/http"

	"flights.flyazureva.com/internal/app"
)

// WebUI serves development-only pages that dump the state of the flight store.
type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/{$}", webUI.debugIndexHandler)
}
