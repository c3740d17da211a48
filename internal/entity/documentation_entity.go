package entity

import (
	"time"

	"github.com/google/uuid"
)

// Documentation is a published write-up or guide linked from the portfolio.
type Documentation struct {
	Id          uuid.UUID
	Title       string
	Category    string
	Description string
	Link        string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
