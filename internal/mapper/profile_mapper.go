package mapper

import (
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:          p.Id,
		Name:        p.Name,
		Headline:    p.Headline,
		Bio:         p.Bio,
		Location:    p.Location,
		Email:       p.Email,
		AvatarUrl:   p.AvatarUrl,
		SocialLinks: p.SocialLinks,
		YearsOfExp:  p.YearsOfExp,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:          p.Id,
		Name:        p.Name,
		Headline:    p.Headline,
		Bio:         p.Bio,
		Location:    p.Location,
		Email:       p.Email,
		AvatarUrl:   p.AvatarUrl,
		SocialLinks: datatypes.NewJSONSlice(p.SocialLinks),
		YearsOfExp:  p.YearsOfExp,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
