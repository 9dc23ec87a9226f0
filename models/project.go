package models

import "gorm.io/datatypes"

// Project is a showcased work item belonging to exactly one Profile. Links
// is an ordered list of external URLs stored as a JSON array column.
type Project struct {
	ID          int                         `json:"id" gorm:"primaryKey"`
	ProfileID   int                         `json:"profileId" gorm:"not null;index:idx_project_profile_id"`
	Title       string                      `json:"title" gorm:"type:varchar(255);not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Links       datatypes.JSONSlice[string] `json:"links"`

	Skills []ProjectSkill `json:"skills,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
