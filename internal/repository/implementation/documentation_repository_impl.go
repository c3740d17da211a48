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

type DocumentationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentationMapper
}

func NewDocumentationRepository(db *gorm.DB) contract.DocumentationRepository {
	return &DocumentationRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentationMapper(),
	}
}

func (r *DocumentationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentationRepositoryImpl) Create(ctx context.Context, documentation *entity.Documentation) error {
	m := r.mapper.ToModel(documentation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*documentation = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentationRepositoryImpl) Update(ctx context.Context, documentation *entity.Documentation) error {
	m := r.mapper.ToModel(documentation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*documentation = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Documentation{}, id).Error
}

func (r *DocumentationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Documentation, error) {
	var m model.Documentation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Documentation, error) {
	var models []*model.Documentation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Documentation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentationRepositoryImpl) UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIds {
			if err := tx.Model(&model.Documentation{}).Where("id = ?", id).Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
