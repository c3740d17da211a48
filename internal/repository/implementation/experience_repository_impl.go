package implementation

import (
	"context"
	"errors"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/mapper"
	"portfolio-be/internal/model"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExperienceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExperienceMapper
}

func NewExperienceRepository(db *gorm.DB) contract.ExperienceRepository {
	return &ExperienceRepositoryImpl{
		db:     db,
		mapper: mapper.NewExperienceMapper(),
	}
}

func (r *ExperienceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExperienceRepositoryImpl) Create(ctx context.Context, experience *entity.Experience) error {
	m := r.mapper.ToModel(experience)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*experience = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExperienceRepositoryImpl) Update(ctx context.Context, experience *entity.Experience) error {
	m := r.mapper.ToModel(experience)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*experience = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExperienceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Experience{}, id).Error
}

func (r *ExperienceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experience, error) {
	var m model.Experience
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExperienceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experience, error) {
	var models []*model.Experience
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ExperienceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Experience{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ExperienceRepositoryImpl) UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIds {
			if err := tx.Model(&model.Experience{}).Where("id = ?", id).Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
