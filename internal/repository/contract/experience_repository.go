package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experience, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experience, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error
}
