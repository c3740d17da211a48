package contract

import (
	"context"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CertificationRepository interface {
	Create(ctx context.Context, certification *entity.Certification) error
	Update(ctx context.Context, certification *entity.Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certification, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
