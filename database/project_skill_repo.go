package database

import (
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

// SkillCount is one entry of the skill popularity ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type ProjectSkillRepo struct {
	db *gorm.DB
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{db}
}

// TopSkills returns up to limit skills ranked by how many projects carry
// them, most frequent first. Ties have no defined order; the caller is
// expected to have clamped limit already.
func (r *ProjectSkillRepo) TopSkills(limit int) ([]SkillCount, error) {
	skills := []SkillCount{}
	err := r.db.Table("project_skills").
		Select("skill, COUNT(*) AS count").
		Group("skill").
		Order("count DESC").
		Limit(limit).
		Scan(&skills).Error
	return skills, err
}

// Add inserts a new project skill row into the database
func (r *ProjectSkillRepo) Add(projectSkill *models.ProjectSkill) error {
	return r.db.Create(projectSkill).Error
}

// DeleteByProject removes every skill row attached to a project.
func (r *ProjectSkillRepo) DeleteByProject(projectID int) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectSkill{}).Error
}
