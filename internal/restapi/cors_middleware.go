package restapi

import (
	"net/http"

	"github.com/rs/cors"

	"flights.flyazureva.com/internal/appconf"
)

// corsOptions allows any origin in development and only the configured origins elsewhere.
func corsOptions(cfg appconf.Config) cors.Options {
	origins := cfg.Origins()
	if cfg.Env == appconf.Development {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}
}

// WithCORS answers preflight requests and rejects requests from origins that are not allowed.
// Requests without an Origin header are not cross-origin and pass through.
func (api *RestAPI) WithCORS(next http.Handler) http.Handler {
	c := cors.New(corsOptions(api.Config))
	handler := c.Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Origin") != "" && !c.OriginAllowed(r) {
			api.forbiddenOriginResponse(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
