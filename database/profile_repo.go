package database

import (
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindFirst returns the profile with the lowest id. The error is
// gorm.ErrRecordNotFound when no profile exists.
func (r *ProfileRepo) FindFirst() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("id ASC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}
