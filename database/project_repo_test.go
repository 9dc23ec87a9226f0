package database

import (
	"testing"

	"github.com/Shwetanshu13/me-api-playground/models"
)

func TestListNoFilters(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List("", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}

	// No join ran, so every skill list was backfilled complete
	if p := findProject(t, projects, "You-Listen"); !sameSkillSet(p.Skills, "Node.js", "Express", "PostgreSQL") {
		t.Errorf("You-Listen skills = %v", p.Skills)
	}
	if p := findProject(t, projects, "Yes Chef"); !sameSkillSet(p.Skills, "Next.js", "PostgreSQL") {
		t.Errorf("Yes Chef skills = %v", p.Skills)
	}
	p := findProject(t, projects, "Express Yourself")
	if p.Skills == nil || len(p.Skills) != 0 {
		t.Errorf("Express Yourself skills = %v, want empty list", p.Skills)
	}
}

func TestListResultOrderStable(t *testing.T) {
	db := openTestDB(t)
	seed := seedFixture(t, db)
	repo := NewProjectRepo(db)

	for run := 0; run < 3; run++ {
		projects, err := repo.List("", "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for i, p := range projects {
			if p.ID != seed[i].ID {
				t.Fatalf("run %d: position %d has id %d, want %d", run, i, p.ID, seed[i].ID)
			}
		}
	}
}

func TestListSkillFilterBackfillsFullSkillLists(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	// case-insensitive substring: matches "PostgreSQL"
	projects, err := repo.List("postgres", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d: %v", len(projects), projects)
	}

	// The join only supplied the matched skill, so the full lists must have
	// been fetched afterwards
	if p := findProject(t, projects, "You-Listen"); !sameSkillSet(p.Skills, "Node.js", "Express", "PostgreSQL") {
		t.Errorf("You-Listen skills = %v, want full list", p.Skills)
	}
	if p := findProject(t, projects, "Yes Chef"); !sameSkillSet(p.Skills, "Next.js", "PostgreSQL") {
		t.Errorf("Yes Chef skills = %v, want full list", p.Skills)
	}
}

func TestListSkillAndTextFiltersCombine(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List("postgres", "recipe")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Yes Chef" {
		t.Fatalf("expected only Yes Chef, got %v", projects)
	}
}

func TestListTextFilterOnly(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List("", "MUSIC")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "You-Listen" {
		t.Fatalf("expected only You-Listen, got %v", projects)
	}
	if !sameSkillSet(projects[0].Skills, "Node.js", "Express", "PostgreSQL") {
		t.Errorf("skills = %v, want full list", projects[0].Skills)
	}
}

func TestListUnknownSkillReturnsEmpty(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.List("cobol", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected no projects, got %v", projects)
	}
}

func TestListNormalizesMissingLinks(t *testing.T) {
	db := openTestDB(t)
	profile := models.Profile{Name: "Grace Hopper", Email: "grace@example.com"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	project := models.Project{ProfileID: profile.ID, Title: "Linkless"}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	repo := NewProjectRepo(db)
	projects, err := repo.List("", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %v", projects)
	}
	if projects[0].Links == nil || len(projects[0].Links) != 0 {
		t.Errorf("links = %v, want empty list", projects[0].Links)
	}
}

func TestSearchMatchesTitleDescriptionAndSkill(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.Search("express")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d: %v", len(projects), projects)
	}

	// You-Listen appears via its "Express" skill; the outer join only
	// attached the matching row, and search does not complete the list
	if p := findProject(t, projects, "You-Listen"); !sameSkillSet(p.Skills, "Express") {
		t.Errorf("You-Listen skills = %v, want just the matching skill", p.Skills)
	}

	// Express Yourself appears via its title; it has no skills at all
	p := findProject(t, projects, "Express Yourself")
	if p.Skills == nil || len(p.Skills) != 0 {
		t.Errorf("Express Yourself skills = %v, want empty list", p.Skills)
	}
}

func TestSearchNoMatches(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectRepo(db)

	projects, err := repo.Search("nonexistent")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected no projects, got %v", projects)
	}
}

func TestSkillsForProjectsEmptyInputSkipsStorage(t *testing.T) {
	// A nil handle proves the short-circuit: any query would panic
	repo := NewProjectRepo(nil)

	skillMap, err := repo.SkillsForProjects(nil)
	if err != nil {
		t.Fatalf("SkillsForProjects: %v", err)
	}
	if len(skillMap) != 0 {
		t.Fatalf("expected empty map, got %v", skillMap)
	}
}

func TestSkillsForProjectsGroupsByProject(t *testing.T) {
	db := openTestDB(t)
	seed := seedFixture(t, db)
	repo := NewProjectRepo(db)

	skillMap, err := repo.SkillsForProjects([]int{seed[0].ID, seed[1].ID})
	if err != nil {
		t.Fatalf("SkillsForProjects: %v", err)
	}
	if len(skillMap) != 2 {
		t.Fatalf("expected 2 entries, got %v", skillMap)
	}

	// Row order within a project is storage-dependent, so only the grouping
	// is asserted
	if !sameSkillSet(skillMap[seed[0].ID], "Node.js", "Express", "PostgreSQL") {
		t.Errorf("skills = %v, want You-Listen's three skills", skillMap[seed[0].ID])
	}
	if !sameSkillSet(skillMap[seed[1].ID], "Next.js", "PostgreSQL") {
		t.Errorf("skills = %v, want Yes Chef's two skills", skillMap[seed[1].ID])
	}
}

func TestFoldProjectRowsDeduplicatesExactly(t *testing.T) {
	skill := "Go"
	upper := "GO"
	rows := []projectRow{
		{ID: 1, Title: "one", Skill: &skill},
		{ID: 1, Title: "one", Skill: &skill},
		{ID: 1, Title: "one", Skill: &upper},
		{ID: 2, Title: "two", Skill: nil},
	}

	projects := foldProjectRows(rows)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %v", projects)
	}
	// Dedup is by exact string equality, so "Go" and "GO" both survive
	if !sameSkillSet(projects[0].Skills, "Go", "GO") {
		t.Errorf("skills = %v, want [Go GO]", projects[0].Skills)
	}
	if len(projects[1].Skills) != 0 {
		t.Errorf("skills = %v, want empty", projects[1].Skills)
	}
}

func TestSharedSkillListing(t *testing.T) {
	db := openTestDB(t)
	profile := models.Profile{Name: "Grace Hopper", Email: "grace@example.com"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	projects := []models.Project{
		{ProfileID: profile.ID, Title: "A", Skills: []models.ProjectSkill{{Skill: "x"}, {Skill: "y"}}},
		{ProfileID: profile.ID, Title: "B", Skills: []models.ProjectSkill{{Skill: "y"}}},
	}
	if err := db.Create(&projects).Error; err != nil {
		t.Fatalf("create projects: %v", err)
	}

	repo := NewProjectRepo(db)
	got, err := repo.List("y", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both projects, got %v", got)
	}
	if p := findProject(t, got, "A"); !sameSkillSet(p.Skills, "x", "y") {
		t.Errorf("A skills = %v, want [x y]", p.Skills)
	}
	if p := findProject(t, got, "B"); !sameSkillSet(p.Skills, "y") {
		t.Errorf("B skills = %v, want [y]", p.Skills)
	}
}
