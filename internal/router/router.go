// Package router sets up all HTTP routes and middleware chains for the
// portfolio API. Routes are grouped per collection under /api.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"archfolio/internal/handlers"
	"archfolio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	// Health check.
	r.Get("/health", healthHandler)

	// Contact submissions are the only unauthenticated write, so they get
	// a per-IP rate limit.
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", api.ProjectsList)
			// Registered before {id} so "categories" is never parsed as an id.
			r.Get("/categories", api.ProjectCategories)
			r.Post("/", api.ProjectCreate)
			r.Get("/{id}", api.ProjectGet)
			r.Put("/{id}", api.ProjectUpdate)
			r.Delete("/{id}", api.ProjectDelete)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", api.BlogList)
			r.Post("/", api.BlogCreate)
			r.Get("/{id}", api.BlogGet)
			r.Put("/{id}", api.BlogUpdate)
			r.Delete("/{id}", api.BlogDelete)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", api.TestimonialsList)
			r.Post("/", api.TestimonialCreate)
			r.Put("/{id}", api.TestimonialUpdate)
			r.Delete("/{id}", api.TestimonialDelete)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", api.SettingsGet)
			r.Put("/", api.SettingsUpdate)
		})

		r.With(contactLimiter.Middleware).Post("/contact", api.ContactSubmit)
		r.Get("/contacts", api.ContactsList)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
