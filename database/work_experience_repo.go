package database

import (
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

type WorkExperienceRepo struct {
	db *gorm.DB
}

func NewWorkExperienceRepo(db *gorm.DB) *WorkExperienceRepo {
	return &WorkExperienceRepo{db}
}

// FindByProfile returns the work experience entries attached to a profile.
func (r *WorkExperienceRepo) FindByProfile(profileID int) ([]models.WorkExperience, error) {
	experience := []models.WorkExperience{}
	err := r.db.Where("profile_id = ?", profileID).Find(&experience).Error
	return experience, err
}

// Add inserts a new work experience entry into the database
func (r *WorkExperienceRepo) Add(experience *models.WorkExperience) error {
	return r.db.Create(experience).Error
}
