package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/database"
	"github.com/Shwetanshu13/me-api-playground/errs"
	"github.com/Shwetanshu13/me-api-playground/models"
)

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	projectSkillRepo *database.ProjectSkillRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectSkillRepo *database.ProjectSkillRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		projectSkillRepo: projectSkillRepo,
	}
}

const (
	defaultTopSkillsLimit = 10
	minTopSkillsLimit     = 1
	maxTopSkillsLimit     = 100
)

// parseTopSkillsLimit falls back to the default on a missing or non-numeric
// value and clamps everything else to [1, 100].
func parseTopSkillsLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultTopSkillsLimit
	}
	if limit < minTopSkillsLimit {
		return minTopSkillsLimit
	}
	if limit > maxTopSkillsLimit {
		return maxTopSkillsLimit
	}
	return limit
}

// getProjects lists projects, optionally narrowed by a skill substring
// and/or a free-text query over title and description. Every entry carries
// its complete skill list.
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := r.URL.Query().Get("skill")
		q := r.URL.Query().Get("q")

		projects, err := h.projectRepo.List(skill, q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// searchProjects matches q against title, description, and skill labels.
// q is required; validation happens before any storage access.
func (h projectHandler) searchProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("q query param is required"))
			return
		}

		projects, err := h.projectRepo.Search(q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "projects", err))
			return
		}

		h.responder.WriteJSON(w, SearchResponse{Projects: projects})
	}
}

// getTopSkills returns skills ranked by how many projects carry them.
func (h projectHandler) getTopSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseTopSkillsLimit(r.URL.Query().Get("limit"))

		skills, err := h.projectSkillRepo.TopSkills(limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("rank", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// createProject creates a new project with its skills (admin only).
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if project.ProfileID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("profileId is required"))
			return
		}

		if admin, ok := ctxGetAdminSubject(r.Context()); ok {
			h.logger.Info().Str("admin", admin).Str("title", project.Title).Msg("creating project")
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload so the response carries skills exactly as stored
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject applies the body's fields onto a stored project and
// reconciles its skill rows; absent fields keep their stored values (admin only).
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		// Decode onto the stored row so fields absent from the body keep
		// their stored values instead of zeroing out
		project := *existing
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if project.ProfileID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("profileId is required"))
			return
		}

		// Ensure ID matches, and keep skills out of the Save call so they can
		// be reconciled explicitly below
		project.ID = projectID
		skills := project.Skills
		project.Skills = nil

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		if err := h.projectSkillRepo.DeleteByProject(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("clear skills for", "project", err))
			return
		}
		for i := range skills {
			skills[i].ProjectID = projectID
			if err := h.projectSkillRepo.Add(&skills[i]); err != nil {
				h.logger.Error().Err(err).Str("skill", skills[i].Skill).Msg("Failed to create project skill")
				// Continue creating other skills even if one fails
			}
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project and its skill rows (admin only).
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectSkillRepo.DeleteByProject(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("clear skills for", "project", err))
			return
		}
		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (int, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return 0, false
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return 0, false
	}
	return projectID, true
}
