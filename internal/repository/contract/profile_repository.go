package contract

import (
	"context"

	"portfolio-be/internal/entity"
)

// ProfileRepository manages the singleton owner profile row.
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}
