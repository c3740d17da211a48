package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *entity.Skill) error
	Update(ctx context.Context, skill *entity.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Skill, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Skill, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error
}
