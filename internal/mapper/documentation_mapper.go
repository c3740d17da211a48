package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"
)

type DocumentationMapper struct{}

func NewDocumentationMapper() *DocumentationMapper {
	return &DocumentationMapper{}
}

func (m *DocumentationMapper) ToEntity(d *model.Documentation) *entity.Documentation {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Documentation{
		Id:          d.Id,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Link:        d.Link,
		Position:    d.Position,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DocumentationMapper) ToEntities(models []*model.Documentation) []*entity.Documentation {
	entities := make([]*entity.Documentation, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.ToEntity(d))
	}
	return entities
}

func (m *DocumentationMapper) ToModel(d *entity.Documentation) *model.Documentation {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Documentation{
		Id:          d.Id,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Link:        d.Link,
		Position:    d.Position,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
