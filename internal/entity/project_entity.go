package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id           uuid.UUID
	Title        string
	Description  string
	Category     string
	Technologies []string
	RepoUrl      string
	LiveUrl      string
	ImageUrl     string
	IsFeatured   bool
	Position     int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
