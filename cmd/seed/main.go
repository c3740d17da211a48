package main

import (
	"log"
	"os"
	"time"

	"portfolio-be/internal/model"
	"portfolio-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month) *time.Time {
	d := date(year, month)
	return &d
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Portfolio Data...")

	// Profile (singleton, skip if one already exists)
	var profileCount int64
	db.Model(&model.Profile{}).Count(&profileCount)
	if profileCount == 0 {
		profile := model.Profile{
			Name:     "Jane Developer",
			Headline: "Backend Engineer",
			Bio:      "Backend engineer focused on Go services, APIs, and data plumbing.",
			Location: "Jakarta, Indonesia",
			Email:    "jane@example.com",
			SocialLinks: datatypes.NewJSONSlice([]string{
				"https://github.com/janedev",
				"https://linkedin.com/in/janedev",
			}),
			YearsOfExp: 5,
		}
		if err := db.Create(&profile).Error; err != nil {
			color.Red("Error creating profile: %v", err)
		} else {
			color.Green("Created profile: %s", profile.Name)
		}
	} else {
		color.Yellow("Profile already exists, skipping...")
	}

	skills := []model.Skill{
		{Category: "Backend", Name: "Go", Level: 95, Position: 0},
		{Category: "Backend", Name: "PostgreSQL", Level: 85, Position: 1},
		{Category: "Backend", Name: "Redis", Level: 80, Position: 2},
		{Category: "Frontend", Name: "TypeScript", Level: 70, Position: 0},
		{Category: "Infrastructure", Name: "Docker", Level: 80, Position: 0},
	}
	for _, s := range skills {
		var existing model.Skill
		if err := db.Where("category = ? AND name = ?", s.Category, s.Name).First(&existing).Error; err == nil {
			color.Yellow("Skill '%s' already exists, skipping...", s.Name)
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			color.Red("Error creating skill '%s': %v", s.Name, err)
		} else {
			color.Green("Created skill: %s (%s)", s.Name, s.Category)
		}
	}

	experiences := []model.Experience{
		{
			Title:     "Backend Engineer",
			Company:   "Acme Corp",
			Location:  "Remote",
			StartDate: date(2023, time.March),
			IsCurrent: true,
			Highlights: datatypes.NewJSONSlice([]string{
				"Built the payment reconciliation pipeline",
				"Cut API p99 latency by 40%",
			}),
			Skills:   datatypes.NewJSONSlice([]string{"Go", "PostgreSQL", "Redis"}),
			Position: 0,
		},
		{
			Title:     "Software Engineer",
			Company:   "Startup Labs",
			Location:  "Jakarta",
			StartDate: date(2021, time.January),
			EndDate:   datePtr(2023, time.February),
			Highlights: datatypes.NewJSONSlice([]string{
				"Shipped the customer-facing REST API",
			}),
			Skills:   datatypes.NewJSONSlice([]string{"Go", "Docker"}),
			Position: 1,
		},
	}
	for _, e := range experiences {
		var existing model.Experience
		if err := db.Where("title = ? AND company = ?", e.Title, e.Company).First(&existing).Error; err == nil {
			color.Yellow("Experience '%s at %s' already exists, skipping...", e.Title, e.Company)
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			color.Red("Error creating experience '%s': %v", e.Title, err)
		} else {
			color.Green("Created experience: %s at %s", e.Title, e.Company)
		}
	}

	projects := []model.Project{
		{
			Title:        "Portfolio Backend",
			Description:  "The service powering this site: contact relay and an AI assistant.",
			Category:     "Backend",
			Technologies: datatypes.NewJSONSlice([]string{"Go", "Fiber", "PostgreSQL"}),
			RepoUrl:      "https://github.com/janedev/portfolio-be",
			IsFeatured:   true,
			Position:     0,
		},
		{
			Title:        "Task Queue",
			Description:  "A small durable task queue with at-least-once delivery.",
			Category:     "Backend",
			Technologies: datatypes.NewJSONSlice([]string{"Go", "Redis"}),
			RepoUrl:      "https://github.com/janedev/taskq",
			Position:     1,
		},
	}
	for _, p := range projects {
		var existing model.Project
		if err := db.Where("title = ?", p.Title).First(&existing).Error; err == nil {
			color.Yellow("Project '%s' already exists, skipping...", p.Title)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating project '%s': %v", p.Title, err)
		} else {
			color.Green("Created project: %s", p.Title)
		}
	}

	certifications := []model.Certification{
		{
			Name:          "AWS Certified Solutions Architect",
			Issuer:        "Amazon Web Services",
			IssueDate:     date(2024, time.June),
			ExpiryDate:    datePtr(2027, time.June),
			CredentialId:  "AWS-SAA-123456",
			CredentialUrl: "https://aws.amazon.com/verification",
		},
	}
	for _, c := range certifications {
		var existing model.Certification
		if err := db.Where("name = ? AND issuer = ?", c.Name, c.Issuer).First(&existing).Error; err == nil {
			color.Yellow("Certification '%s' already exists, skipping...", c.Name)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating certification '%s': %v", c.Name, err)
		} else {
			color.Green("Created certification: %s", c.Name)
		}
	}

	docs := []model.Documentation{
		{
			Title:       "API Reference",
			Category:    "Guides",
			Description: "Endpoint reference for the portfolio backend.",
			Link:        "https://janedev.example.com/docs/api",
			Position:    0,
		},
	}
	for _, d := range docs {
		var existing model.Documentation
		if err := db.Where("title = ?", d.Title).First(&existing).Error; err == nil {
			color.Yellow("Documentation '%s' already exists, skipping...", d.Title)
			continue
		}
		if err := db.Create(&d).Error; err != nil {
			color.Red("Error creating documentation '%s': %v", d.Title, err)
		} else {
			color.Green("Created documentation: %s", d.Title)
		}
	}

	color.Cyan("Seeding completed!")
}
