package entity

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	Id        uuid.UUID
	Category  string
	Name      string
	Level     int // 0-100
	Position  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}
