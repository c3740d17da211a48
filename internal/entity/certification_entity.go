package entity

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	Id            uuid.UUID
	Name          string
	Issuer        string
	IssueDate     time.Time
	ExpiryDate    *time.Time
	CredentialId  string
	CredentialUrl string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
