package restapi

import (
	"net/http"
	"net/http/pprof"

	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/webui"
)

func registerPprofHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /flights", api.flightsHandler)
	mux.HandleFunc("GET /airports", api.airportsHandler)
	mux.HandleFunc("GET /status", api.statusHandler)

	if api.Config.Env == appconf.Development {
		registerPprofHandlers(mux)
		webui.New(api.Application).SetWebUIRoutes(mux)
	}
}
