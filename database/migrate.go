package database

import (
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

// Migrate creates any missing portfolio tables.
func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.Profile{},
		&models.Project{},
		&models.ProjectSkill{},
		&models.WorkExperience{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
