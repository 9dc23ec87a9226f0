package api

import (
	"net/http"

	"github.com/Shwetanshu13/me-api-playground/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		profileHandler: newProfileHandler(database.ProfileRepo(), database.ProjectRepo(), database.WorkExperienceRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo(), database.ProjectSkillRepo()),
	}
}

// healthCheck reports liveness; it never touches storage.
func healthCheck(responder Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}
