package middleware

import (
	"net/http"

	"horplus-console/internal/config"

	"github.com/rs/cors"
)

// NewCORS builds the cross-origin policy for the console. The dashboard is
// served and consumed same-origin, so cross-origin access stays locked down
// unless origins are configured explicitly (a status page embedding /healthz,
// a separate grafana host scraping /metrics).
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}
	if len(opts.AllowedOrigins) == 0 {
		// rs/cors treats an empty list as allow-all; with a credentialed
		// cookie session the default has to be deny-all instead.
		opts.AllowOriginFunc = func(origin string) bool { return false }
	}
	if len(opts.AllowedMethods) == 0 {
		// The console is form-driven; nothing beyond GET/POST ever crosses
		// an origin.
		opts.AllowedMethods = []string{http.MethodGet, http.MethodPost}
	}

	c := cors.New(opts)
	return c.Handler
}
