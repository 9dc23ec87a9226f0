package database

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

// ProjectWithSkills is a project annotated with its deduplicated skill
// labels, the shape every read endpoint returns.
type ProjectWithSkills struct {
	ID          int      `json:"id"`
	ProfileID   int      `json:"profileId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
	Skills      []string `json:"skills"`
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// projectRow is one row of a listing or search query. Skill is nil when the
// query did not join project_skills, or when the outer join found no match.
type projectRow struct {
	ID          int
	ProfileID   int
	Title       string
	Description string
	Links       datatypes.JSONSlice[string]
	Skill       *string
}

const projectColumns = "projects.id, projects.profile_id, projects.title, projects.description, projects.links"

func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// List returns the projects matching the optional skill and q filters, each
// with its complete skill list. Empty filter strings mean "filter absent";
// both filters are case-insensitive substring matches and narrow the result
// when combined.
func (r *ProjectRepo) List(skill, q string) ([]ProjectWithSkills, error) {
	query := r.db.Table("projects").Select(projectColumns)

	if skill != "" {
		// The skill predicate is only evaluable through the join, which also
		// means each row carries at most the one skill that matched.
		query = query.Select(projectColumns+", project_skills.skill").
			Joins("INNER JOIN project_skills ON project_skills.project_id = projects.id").
			Where("LOWER(project_skills.skill) LIKE ?", likePattern(skill))
	}
	if q != "" {
		query = query.Where(
			"LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ?",
			likePattern(q), likePattern(q),
		)
	}

	var rows []projectRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	projects := foldProjectRows(rows)

	// Join rows carry at most the skills that matched the filter, so a
	// skill-filtered fold is never trusted to be complete; without the join
	// the folds are all empty. Either way the full lists come from a second
	// lookup.
	needsLookup := skill != ""
	for _, p := range projects {
		if needsLookup {
			break
		}
		if len(p.Skills) == 0 {
			needsLookup = true
		}
	}
	if needsLookup && len(projects) > 0 {
		ids := make([]int, 0, len(projects))
		for _, p := range projects {
			ids = append(ids, p.ID)
		}

		skillMap, err := r.SkillsForProjects(ids)
		if err != nil {
			return nil, err
		}
		for i := range projects {
			if skills, ok := skillMap[projects[i].ID]; ok {
				projects[i].Skills = skills
			}
		}
	}

	return projects, nil
}

// Search returns every project whose title, description, or any skill
// contains q (case-insensitive substring). The outer join decides which
// skill rows accompany each project; unlike List, the folded lists are not
// completed afterwards.
func (r *ProjectRepo) Search(q string) ([]ProjectWithSkills, error) {
	pattern := likePattern(q)

	var rows []projectRow
	err := r.db.Table("projects").
		Select(projectColumns+", project_skills.skill").
		Joins("LEFT JOIN project_skills ON project_skills.project_id = projects.id").
		Where(
			"LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ? OR LOWER(project_skills.skill) LIKE ?",
			pattern, pattern, pattern,
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return foldProjectRows(rows), nil
}

// SkillsForProjects maps each project id to its skill labels in the order
// storage returns them. An empty id set short-circuits without querying, so
// no empty IN predicate ever reaches the store.
func (r *ProjectRepo) SkillsForProjects(ids []int) (map[int][]string, error) {
	skillMap := make(map[int][]string)
	if len(ids) == 0 {
		return skillMap, nil
	}

	var rows []models.ProjectSkill
	if err := r.db.Where("project_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		skillMap[row.ProjectID] = append(skillMap[row.ProjectID], row.Skill)
	}
	return skillMap, nil
}

// FindByProfile returns the raw projects owned by a profile, without skills.
func (r *ProjectRepo) FindByProfile(profileID int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("profile_id = ?", profileID).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its id with skills preloaded.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Skills").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project, creating any attached skill rows with it.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// foldProjectRows collapses join rows into one entry per project id, keeping
// first-seen order and appending each non-empty skill at most once (exact
// string equality, not case-insensitive).
func foldProjectRows(rows []projectRow) []ProjectWithSkills {
	projects := []ProjectWithSkills{}
	index := make(map[int]int)

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			// A NULL links column must still serialize as an empty list
			links := []string(row.Links)
			if links == nil {
				links = []string{}
			}
			projects = append(projects, ProjectWithSkills{
				ID:          row.ID,
				ProfileID:   row.ProfileID,
				Title:       row.Title,
				Description: row.Description,
				Links:       links,
				Skills:      []string{},
			})
			i = len(projects) - 1
			index[row.ID] = i
		}

		if row.Skill == nil || *row.Skill == "" {
			continue
		}

		entry := &projects[i]
		duplicate := false
		for _, s := range entry.Skills {
			if s == *row.Skill {
				duplicate = true
				break
			}
		}
		if !duplicate {
			entry.Skills = append(entry.Skills, *row.Skill)
		}
	}

	return projects
}
