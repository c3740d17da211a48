package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"
)

type SkillMapper struct{}

func NewSkillMapper() *SkillMapper {
	return &SkillMapper{}
}

func (m *SkillMapper) ToEntity(s *model.Skill) *entity.Skill {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Skill{
		Id:        s.Id,
		Category:  s.Category,
		Name:      s.Name,
		Level:     s.Level,
		Position:  s.Position,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SkillMapper) ToEntities(models []*model.Skill) []*entity.Skill {
	entities := make([]*entity.Skill, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}

func (m *SkillMapper) ToModel(s *entity.Skill) *model.Skill {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Skill{
		Id:        s.Id,
		Category:  s.Category,
		Name:      s.Name,
		Level:     s.Level,
		Position:  s.Position,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
