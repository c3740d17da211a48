package entity

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	Id         uuid.UUID
	Title      string
	Company    string
	Location   string
	StartDate  time.Time
	EndDate    *time.Time // nil while IsCurrent
	IsCurrent  bool
	Highlights []string
	Skills     []string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
