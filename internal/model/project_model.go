package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string                      `gorm:"type:varchar(150);not null"`
	Description  string                      `gorm:"type:text"`
	Category     string                      `gorm:"type:varchar(100);not null;index"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	RepoUrl      string                      `gorm:"type:text"`
	LiveUrl      string                      `gorm:"type:text"`
	ImageUrl     string                      `gorm:"type:text"`
	IsFeatured   bool                        `gorm:"not null;default:false;index"`
	Position     int                         `gorm:"not null;default:0"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
