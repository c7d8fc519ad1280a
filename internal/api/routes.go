package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/tanggalan-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/dates/today
//	GET /api/v1/dates/{date}
//	GET /api/v1/dates/{date}/next?weton=
//	GET /api/v1/range?start=&end=
//	GET /api/v1/parse?value=&layout=
//	GET /api/v1/months/{year}/{month}
//	GET /api/v1/almanac/stats
//	GET /api/v1/almanac/weton?weton=&limit=
//
// Everything under /api/v1 requires X-API-Key when a key is configured.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/dates/today", handlers.GetToday)
		r.Get("/dates/{date}", handlers.GetDate)
		r.Get("/dates/{date}/next", handlers.GetNextWeton)
		r.Get("/range", handlers.GetRange)
		r.Get("/parse", handlers.ParseJavanese)
		r.Get("/months/{year}/{month}", handlers.GetMonth)

		r.Route("/almanac", func(r chi.Router) {
			r.Get("/stats", handlers.GetAlmanacStats)
			r.Get("/weton", handlers.ListAlmanacWeton)
		})
	})

	return r
}
