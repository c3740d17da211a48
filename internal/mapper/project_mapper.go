package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"

	"gorm.io/datatypes"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Project{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Technologies: p.Technologies,
		RepoUrl:      p.RepoUrl,
		LiveUrl:      p.LiveUrl,
		ImageUrl:     p.ImageUrl,
		IsFeatured:   p.IsFeatured,
		Position:     p.Position,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProjectMapper) ToEntities(models []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.ToEntity(p))
	}
	return entities
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Project{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Technologies: datatypes.NewJSONSlice(p.Technologies),
		RepoUrl:      p.RepoUrl,
		LiveUrl:      p.LiveUrl,
		ImageUrl:     p.ImageUrl,
		IsFeatured:   p.IsFeatured,
		Position:     p.Position,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
