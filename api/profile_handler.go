package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/database"
	"github.com/Shwetanshu13/me-api-playground/errs"
	"github.com/Shwetanshu13/me-api-playground/models"
)

type profileHandler struct {
	responder          Responder
	logger             zerolog.Logger
	profileRepo        *database.ProfileRepo
	projectRepo        *database.ProjectRepo
	workExperienceRepo *database.WorkExperienceRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo, projectRepo *database.ProjectRepo, workExperienceRepo *database.WorkExperienceRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		profileRepo:        profileRepo,
		projectRepo:        projectRepo,
		workExperienceRepo: workExperienceRepo,
	}
}

// getProfile assembles the portfolio payload for the first profile on
// record: the profile itself, its projects each carrying the full skill
// list, and its work experience.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.FindFirst()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("profile"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find first", "profile", err))
			return
		}

		projectRows, err := h.projectRepo.FindByProfile(profile.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects for", "profile", err))
			return
		}

		ids := make([]int, 0, len(projectRows))
		for _, p := range projectRows {
			ids = append(ids, p.ID)
		}
		skillMap, err := h.projectRepo.SkillsForProjects(ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills for", "projects", err))
			return
		}

		projects := make([]database.ProjectWithSkills, 0, len(projectRows))
		for _, p := range projectRows {
			skills := skillMap[p.ID]
			if skills == nil {
				skills = []string{}
			}
			links := []string(p.Links)
			if links == nil {
				links = []string{}
			}
			projects = append(projects, database.ProjectWithSkills{
				ID:          p.ID,
				ProfileID:   p.ProfileID,
				Title:       p.Title,
				Description: p.Description,
				Links:       links,
				Skills:      skills,
			})
		}

		experience, err := h.workExperienceRepo.FindByProfile(profile.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find work experience for", "profile", err))
			return
		}

		h.responder.WriteJSON(w, ProfileResponse{
			Profile:        *profile,
			Projects:       projects,
			WorkExperience: experience,
		})
	}
}

// createProfile creates a new profile record (admin only).
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if profile.Name == "" || profile.Email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and email are required"))
			return
		}

		if err := h.profileRepo.Add(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "profile", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, profile)
	}
}

// createWorkExperience attaches a new work experience entry to a profile (admin only).
func (h profileHandler) createWorkExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.WorkExperience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode work experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if experience.Company == "" || experience.Role == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("company and role are required"))
			return
		}
		if experience.ProfileID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("profileId is required"))
			return
		}

		if err := h.workExperienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "work experience", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, experience)
	}
}
