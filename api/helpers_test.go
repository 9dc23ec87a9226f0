package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shwetanshu13/me-api-playground/database"
	"github.com/Shwetanshu13/me-api-playground/models"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the real router over a named in-memory sqlite store.
func newTestRouter(t *testing.T) (*chi.Mux, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := newRouter(database.New(db), withConfig(map[string]string{
		"JWT_SECRET": testJWTSecret,
	}))
	return router, db
}

func seedPortfolio(t *testing.T, db *gorm.DB) models.Profile {
	t.Helper()

	profile := models.Profile{Name: "Ada Lovelace", Email: "ada@example.com"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	projects := []models.Project{
		{
			ProfileID:   profile.ID,
			Title:       "You-Listen",
			Description: "Music streaming web platform.",
			Skills: []models.ProjectSkill{
				{Skill: "Node.js"},
				{Skill: "Express"},
				{Skill: "PostgreSQL"},
			},
		},
		{
			ProfileID:   profile.ID,
			Title:       "Yes Chef",
			Description: "Recipe discovery platform.",
			Skills: []models.ProjectSkill{
				{Skill: "Next.js"},
				{Skill: "PostgreSQL"},
			},
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		t.Fatalf("create projects: %v", err)
	}

	experience := models.WorkExperience{
		ProfileID: profile.ID,
		Company:   "Analytical Engines Ltd",
		Role:      "Programmer",
	}
	if err := db.Create(&experience).Error; err != nil {
		t.Fatalf("create work experience: %v", err)
	}
	return profile
}

func mintTestToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
