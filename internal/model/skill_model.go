package model

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category  string    `gorm:"type:varchar(100);not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Level     int       `gorm:"not null;default:0"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Skill) TableName() string {
	return "skills"
}
