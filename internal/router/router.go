// Package router sets up the HTTP routes and the global middleware chain
// for the PromptPilot API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptpilot/internal/handlers"
	"promptpilot/internal/metrics"
	"promptpilot/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-prompt", api.GeneratePrompt)
		r.Get("/health", api.Health)
		r.Get("/stats", api.Stats)
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}

// notFoundHandler keeps 404s in the same JSON shape as every other error.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found"}`))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"Method not allowed"}`))
}
