package database

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shwetanshu13/me-api-playground/models"
)

// openTestDB opens a named in-memory sqlite database shared across the
// connection pool for the duration of one test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedFixture inserts one profile and three projects:
//   - "You-Listen" with skills Node.js, Express, PostgreSQL
//   - "Yes Chef" with skills Next.js, PostgreSQL
//   - "Express Yourself" with no skills at all
func seedFixture(t *testing.T, db *gorm.DB) []models.Project {
	t.Helper()

	profile := models.Profile{Name: "Ada Lovelace", Email: "ada@example.com"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	projects := []models.Project{
		{
			ProfileID:   profile.ID,
			Title:       "You-Listen",
			Description: "Music streaming web platform with playlists.",
			Links:       datatypes.NewJSONSlice([]string{"https://example.com/you-listen"}),
			Skills: []models.ProjectSkill{
				{Skill: "Node.js"},
				{Skill: "Express"},
				{Skill: "PostgreSQL"},
			},
		},
		{
			ProfileID:   profile.ID,
			Title:       "Yes Chef",
			Description: "Recipe discovery platform with advanced filtering.",
			Links:       datatypes.NewJSONSlice([]string{"https://example.com/yes-chef"}),
			Skills: []models.ProjectSkill{
				{Skill: "Next.js"},
				{Skill: "PostgreSQL"},
			},
		},
		{
			ProfileID:   profile.ID,
			Title:       "Express Yourself",
			Description: "Minimal journaling app.",
			Links:       datatypes.NewJSONSlice([]string{"https://example.com/journal"}),
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		t.Fatalf("create projects: %v", err)
	}
	return projects
}

func findProject(t *testing.T, projects []ProjectWithSkills, title string) ProjectWithSkills {
	t.Helper()
	for _, p := range projects {
		if p.Title == title {
			return p
		}
	}
	t.Fatalf("project %q not in result set %v", title, projects)
	return ProjectWithSkills{}
}

func sameSkillSet(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	set := make(map[string]bool, len(got))
	for _, s := range got {
		set[s] = true
	}
	for _, s := range want {
		if !set[s] {
			return false
		}
	}
	return true
}
