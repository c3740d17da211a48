package model

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `gorm:"type:varchar(200);not null"`
	Issuer        string     `gorm:"type:varchar(150);not null"`
	IssueDate     time.Time  `gorm:"not null;index"`
	ExpiryDate    *time.Time ``
	CredentialId  string     `gorm:"type:varchar(150)"`
	CredentialUrl string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Certification) TableName() string {
	return "certifications"
}
