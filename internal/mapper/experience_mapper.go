package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"

	"gorm.io/datatypes"
)

type ExperienceMapper struct{}

func NewExperienceMapper() *ExperienceMapper {
	return &ExperienceMapper{}
}

func (m *ExperienceMapper) ToEntity(e *model.Experience) *entity.Experience {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Experience{
		Id:         e.Id,
		Title:      e.Title,
		Company:    e.Company,
		Location:   e.Location,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		IsCurrent:  e.IsCurrent,
		Highlights: e.Highlights,
		Skills:     e.Skills,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ExperienceMapper) ToEntities(models []*model.Experience) []*entity.Experience {
	entities := make([]*entity.Experience, 0, len(models))
	for _, e := range models {
		entities = append(entities, m.ToEntity(e))
	}
	return entities
}

func (m *ExperienceMapper) ToModel(e *entity.Experience) *model.Experience {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Experience{
		Id:         e.Id,
		Title:      e.Title,
		Company:    e.Company,
		Location:   e.Location,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		IsCurrent:  e.IsCurrent,
		Highlights: datatypes.NewJSONSlice(e.Highlights),
		Skills:     datatypes.NewJSONSlice(e.Skills),
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}
