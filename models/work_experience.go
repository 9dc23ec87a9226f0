package models

// WorkExperience is an employment record attached to a Profile. Duration is
// free text ("April 2024 - May 2024"), not a parsed range.
type WorkExperience struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	ProfileID   int     `json:"profileId" gorm:"not null;index:idx_work_experience_profile_id"`
	Company     string  `json:"company" gorm:"type:varchar(255);not null"`
	Role        string  `json:"role" gorm:"type:varchar(255);not null"`
	Duration    *string `json:"duration" gorm:"type:varchar(255)"`
	Description *string `json:"description" gorm:"type:text"`
}

func (WorkExperience) TableName() string {
	return "work_experience"
}
