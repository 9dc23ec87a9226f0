package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Shwetanshu13/me-api-playground/models"
)

// Seed wipes the portfolio tables and inserts the demo data set. Deletes run
// children-first so foreign keys stay satisfied throughout.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, table := range []interface{}{
			&models.ProjectSkill{},
			&models.Project{},
			&models.WorkExperience{},
			&models.Profile{},
		} {
			if err := wipe.Delete(table).Error; err != nil {
				return err
			}
		}

		profile := models.Profile{
			Name:      "Shwetanshu Sinha",
			Email:     "shwetanshusinha13@gmail.com",
			Education: strPtr("B.Tech in Computer Science from NIT Delhi"),
			Github:    strPtr("https://github.com/Shwetanshu13"),
			Linkedin:  strPtr("https://www.linkedin.com/in/shwetanshu-sinha-368726280/"),
			Portfolio: strPtr("https://shwetanshusinha.vercel.app"),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		projects := []models.Project{
			{
				ProfileID:   profile.ID,
				Title:       "You-Listen",
				Description: "Music streaming web platform with secure playback, playlists, and authentication.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/you-listen", "https://you-listen.vercel.app"}),
				Skills:      skillRows("Docker", "Next.js", "Node.js", "Express", "PostgreSQL"),
			},
			{
				ProfileID:   profile.ID,
				Title:       "You-Listen-App",
				Description: "React Native Expo mobile app for You-Listen with playlist support.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/you-listen-app"}),
				Skills:      skillRows("React Native", "Expo"),
			},
			{
				ProfileID:   profile.ID,
				Title:       "AI-DSA",
				Description: "AI-guided DSA learning platform using Next.js, Express, OpenAI, PostgreSQL, and MongoDB.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/ai-dsa"}),
				Skills:      skillRows("BullMQ", "Next.js", "Node.js", "Express", "OpenAI", "PostgreSQL", "MongoDB"),
			},
			{
				ProfileID:   profile.ID,
				Title:       "Yes Chef",
				Description: "Recipe management and discovery platform with advanced filtering built using Next.js and PostgreSQL.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/yes-chef", "https://yes-chef-sh.vercel.app"}),
				Skills:      skillRows("Next.js", "PostgreSQL", "Tailwind CSS"),
			},
			{
				ProfileID:   profile.ID,
				Title:       "Vashu Bulks",
				Description: "AI-powered nutrition and inventory tracking mobile app built with React Native Expo.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/vashu-bulks", "https://vashu-bulks.vercel.app"}),
				Skills:      skillRows("React Native", "Expo", "AI/ML"),
			},
			{
				ProfileID:   profile.ID,
				Title:       "Justoo",
				Description: "Full-stack web application focused on ordering and management workflows.",
				Links:       datatypes.NewJSONSlice([]string{"https://github.com/Shwetanshu13/justoo"}),
				Skills:      skillRows("React", "Node.js", "Express", "MongoDB"),
			},
		}
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}

		experience := models.WorkExperience{
			ProfileID:   profile.ID,
			Company:     "ShuniyaVigyan",
			Role:        "Frontend Stack Developer",
			Duration:    strPtr("April 2024 - May 2024"),
			Description: strPtr("Worked on production-grade web and AI projects, implementing real-world frontend and full-stack features."),
		}
		return tx.Create(&experience).Error
	})
}

func skillRows(labels ...string) []models.ProjectSkill {
	rows := make([]models.ProjectSkill, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, models.ProjectSkill{Skill: label})
	}
	return rows
}

func strPtr(s string) *string {
	return &s
}
