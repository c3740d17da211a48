package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Experience struct {
	Id         uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string                      `gorm:"type:varchar(150);not null"`
	Company    string                      `gorm:"type:varchar(150);not null"`
	Location   string                      `gorm:"type:varchar(100)"`
	StartDate  time.Time                   `gorm:"not null;index"`
	EndDate    *time.Time                  ``
	IsCurrent  bool                        `gorm:"not null;default:false"`
	Highlights datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Skills     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Position   int                         `gorm:"not null;default:0"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt  time.Time                   `gorm:"autoUpdateTime"`
}

func (Experience) TableName() string {
	return "experiences"
}
