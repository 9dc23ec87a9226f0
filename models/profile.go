package models

// Profile is the owner identity whose portfolio is served. The schema allows
// several rows but the deployment carries one; readers always take the
// lowest id.
type Profile struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(255);not null"`
	Email     string  `json:"email" gorm:"type:varchar(320);not null;unique"`
	Education *string `json:"education" gorm:"type:text"`
	Github    *string `json:"github" gorm:"type:varchar(255)"`
	Linkedin  *string `json:"linkedin" gorm:"type:varchar(255)"`
	Portfolio *string `json:"portfolio" gorm:"type:varchar(255)"`

	Projects       []Project        `json:"projects,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
}
