package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"
)

type CertificationMapper struct{}

func NewCertificationMapper() *CertificationMapper {
	return &CertificationMapper{}
}

func (m *CertificationMapper) ToEntity(c *model.Certification) *entity.Certification {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Certification{
		Id:            c.Id,
		Name:          c.Name,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *CertificationMapper) ToEntities(models []*model.Certification) []*entity.Certification {
	entities := make([]*entity.Certification, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

func (m *CertificationMapper) ToModel(c *entity.Certification) *model.Certification {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Certification{
		Id:            c.Id,
		Name:          c.Name,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}
