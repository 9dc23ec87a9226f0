package database

import (
	"testing"
)

func TestTopSkillsRanking(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectSkillRepo(db)

	skills, err := repo.TopSkills(10)
	if err != nil {
		t.Fatalf("TopSkills: %v", err)
	}
	// Distinct labels: Node.js, Express, PostgreSQL, Next.js
	if len(skills) != 4 {
		t.Fatalf("expected 4 ranked skills, got %v", skills)
	}
	if skills[0].Skill != "PostgreSQL" || skills[0].Count != 2 {
		t.Errorf("top skill = %+v, want PostgreSQL with count 2", skills[0])
	}
	for i := 1; i < len(skills); i++ {
		if skills[i].Count > skills[i-1].Count {
			t.Errorf("ranking not descending: %v", skills)
		}
	}
}

func TestTopSkillsTruncatesToLimit(t *testing.T) {
	db := openTestDB(t)
	seedFixture(t, db)
	repo := NewProjectSkillRepo(db)

	skills, err := repo.TopSkills(1)
	if err != nil {
		t.Fatalf("TopSkills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 entry, got %v", skills)
	}
}

func TestTopSkillsEmptyStore(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectSkillRepo(db)

	skills, err := repo.TopSkills(10)
	if err != nil {
		t.Fatalf("TopSkills: %v", err)
	}
	if skills == nil || len(skills) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", skills)
	}
}

func TestDeleteByProject(t *testing.T) {
	db := openTestDB(t)
	seed := seedFixture(t, db)
	repo := NewProjectSkillRepo(db)

	if err := repo.DeleteByProject(seed[0].ID); err != nil {
		t.Fatalf("DeleteByProject: %v", err)
	}

	skillMap, err := NewProjectRepo(db).SkillsForProjects([]int{seed[0].ID, seed[1].ID})
	if err != nil {
		t.Fatalf("SkillsForProjects: %v", err)
	}
	if _, ok := skillMap[seed[0].ID]; ok {
		t.Errorf("skills for project %d should be gone, got %v", seed[0].ID, skillMap)
	}
	if len(skillMap[seed[1].ID]) != 2 {
		t.Errorf("other project's skills disturbed: %v", skillMap)
	}
}
