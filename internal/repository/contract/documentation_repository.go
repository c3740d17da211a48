package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentationRepository interface {
	Create(ctx context.Context, documentation *entity.Documentation) error
	Update(ctx context.Context, documentation *entity.Documentation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Documentation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Documentation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error
}
