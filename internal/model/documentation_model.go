package model

import (
	"time"

	"github.com/google/uuid"
)

type Documentation struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Link        string    `gorm:"type:text"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Documentation) TableName() string {
	return "documentations"
}
