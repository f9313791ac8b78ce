package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	hrest "unlock-service/internal/handler/http"
	"unlock-service/internal/middleware"
)

// SetupRoutes configures the HTTP routes for the unlock service.
func SetupRoutes(
	r chi.Router,
	h *hrest.UnlockHandler,
	health *hrest.HealthHandler,
) chi.Router {
	// ---- Global Middleware ----
	// CORS is wide open on purpose: the public unlock form is served from
	// arbitrary origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Metrics)

	// ============================================================
	// Unlock Request Routes
	// ============================================================
	r.Route("/api/unlock", func(r chi.Router) {
		r.Post("/", h.SubmitUnlockRequest)
		r.Get("/", h.ListUnlockRequests)
	})

	// Diagnostics
	r.Get("/", health.Root)
	r.Get("/api/hello", health.Hello)
	r.Get("/test", health.TestStore)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
