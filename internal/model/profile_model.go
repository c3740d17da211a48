package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string                      `gorm:"type:varchar(100);not null"`
	Headline    string                      `gorm:"type:varchar(255)"`
	Bio         string                      `gorm:"type:text"`
	Location    string                      `gorm:"type:varchar(100)"`
	Email       string                      `gorm:"type:varchar(255)"`
	AvatarUrl   string                      `gorm:"type:text"`
	SocialLinks datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	YearsOfExp  int                         `gorm:"not null;default:0"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
