package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Profile ---

type UpsertProfileRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Headline    string   `json:"headline" validate:"max=255"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location" validate:"max=100"`
	Email       string   `json:"email" validate:"omitempty,email"`
	AvatarUrl   string   `json:"avatar_url"`
	SocialLinks []string `json:"social_links"`
	YearsOfExp  int      `json:"years_of_exp" validate:"min=0"`
}

type ProfileResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Headline    string    `json:"headline"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	AvatarUrl   string    `json:"avatar_url"`
	SocialLinks []string  `json:"social_links"`
	YearsOfExp  int       `json:"years_of_exp"`
}

// --- Skill ---

type SkillRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
	Level    int    `json:"level" validate:"min=0,max=100"`
}

type SkillResponse struct {
	Id       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Position int       `json:"position"`
}

// --- Experience ---

type ExperienceRequest struct {
	Title      string     `json:"title" validate:"required,max=150"`
	Company    string     `json:"company" validate:"required,max=150"`
	Location   string     `json:"location" validate:"max=100"`
	StartDate  time.Time  `json:"start_date" validate:"required"`
	EndDate    *time.Time `json:"end_date"`
	IsCurrent  bool       `json:"is_current"`
	Highlights []string   `json:"highlights"`
	Skills     []string   `json:"skills"`
}

type ExperienceResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	IsCurrent  bool       `json:"is_current"`
	Highlights []string   `json:"highlights"`
	Skills     []string   `json:"skills"`
	Position   int        `json:"position"`
}

// --- Project ---

type ProjectRequest struct {
	Title        string   `json:"title" validate:"required,max=150"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required,max=100"`
	Technologies []string `json:"technologies"`
	RepoUrl      string   `json:"repo_url"`
	LiveUrl      string   `json:"live_url"`
	ImageUrl     string   `json:"image_url"`
	IsFeatured   bool     `json:"is_featured"`
}

type ProjectResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	RepoUrl      string    `json:"repo_url"`
	LiveUrl      string    `json:"live_url"`
	ImageUrl     string    `json:"image_url"`
	IsFeatured   bool      `json:"is_featured"`
	Position     int       `json:"position"`
}

// --- Certification ---

type CertificationRequest struct {
	Name          string     `json:"name" validate:"required,max=200"`
	Issuer        string     `json:"issuer" validate:"required,max=150"`
	IssueDate     time.Time  `json:"issue_date" validate:"required"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialId  string     `json:"credential_id" validate:"max=150"`
	CredentialUrl string     `json:"credential_url"`
}

type CertificationResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialId  string     `json:"credential_id"`
	CredentialUrl string     `json:"credential_url"`
}

// --- Documentation ---

type DocumentationRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type DocumentationResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Position    int       `json:"position"`
}

// --- Reorder ---

// ReorderRequest carries the full id list in the desired display order,
// as produced by the drag-and-reorder UI.
type ReorderRequest struct {
	OrderedIds []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}
