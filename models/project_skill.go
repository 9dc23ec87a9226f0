package models

// ProjectSkill tags a Project with a free-text skill label. The
// (project_id, skill) pair is the row identity, so a skill never repeats on
// the same project. Labels are not normalized; casing and synonyms are
// whatever the seeder wrote.
type ProjectSkill struct {
	ProjectID int    `json:"projectId" gorm:"primaryKey;autoIncrement:false"`
	Skill     string `json:"skill" gorm:"type:varchar(100);primaryKey"`
}
