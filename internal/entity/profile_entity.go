package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the singleton owner record shown in the About section.
type Profile struct {
	Id          uuid.UUID
	Name        string
	Headline    string
	Bio         string
	Location    string
	Email       string
	AvatarUrl   string
	SocialLinks []string // "label|url" pairs
	YearsOfExp  int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
