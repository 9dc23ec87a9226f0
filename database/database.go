package database

import (
	"gorm.io/gorm"
)

type Database struct {
	profileRepo        *ProfileRepo
	projectRepo        *ProjectRepo
	projectSkillRepo   *ProjectSkillRepo
	workExperienceRepo *WorkExperienceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:        NewProfileRepo(db),
		projectRepo:        NewProjectRepo(db),
		projectSkillRepo:   NewProjectSkillRepo(db),
		workExperienceRepo: NewWorkExperienceRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

func (d Database) WorkExperienceRepo() *WorkExperienceRepo {
	return d.workExperienceRepo
}
