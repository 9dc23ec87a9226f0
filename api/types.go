package api

import (
	"github.com/Shwetanshu13/me-api-playground/database"
	"github.com/Shwetanshu13/me-api-playground/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	profileHandler profileHandler
	projectHandler projectHandler
}

// ProfileResponse is the GET /profile payload: the first profile on record,
// its projects with complete skill lists, and its work experience.
type ProfileResponse struct {
	Profile        models.Profile               `json:"profile"`
	Projects       []database.ProjectWithSkills `json:"projects"`
	WorkExperience []models.WorkExperience      `json:"workExperience"`
}

// SearchResponse wraps the GET /search result list.
type SearchResponse struct {
	Projects []database.ProjectWithSkills `json:"projects"`
}
