package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                          oracle health check
//	GET /api/v1/weekday/today            today's weekday and path
//	GET /api/v1/weekday/{date}           YYYY-MM-DD
//	GET /api/v1/weekday?year=&month=&day= raw fields, not validated
func SetupRoutes(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1/weekday", func(r chi.Router) {
		r.Get("/", handlers.GetWeekdayByFields)
		r.Get("/today", handlers.GetTodayWeekday)
		r.Get("/{date}", handlers.GetDateWeekday)
	})

	return r
}
