package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes mounts the public read endpoints and the JWT-guarded admin
// write endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public read endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthCheck(NewResponder(log.Logger)))
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Get("/skills/top", handlers.projectHandler.getTopSkills())
		r.Get("/search", handlers.projectHandler.searchProjects())
	})

	// Admin write endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/profile", handlers.profileHandler.createProfile())
		r.Post("/work-experience", handlers.profileHandler.createWorkExperience())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
	})
}
