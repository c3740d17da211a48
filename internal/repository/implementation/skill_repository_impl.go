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

type SkillRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SkillMapper
}

func NewSkillRepository(db *gorm.DB) contract.SkillRepository {
	return &SkillRepositoryImpl{
		db:     db,
		mapper: mapper.NewSkillMapper(),
	}
}

func (r *SkillRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SkillRepositoryImpl) Create(ctx context.Context, skill *entity.Skill) error {
	m := r.mapper.ToModel(skill)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*skill = *r.mapper.ToEntity(m)
	return nil
}

func (r *SkillRepositoryImpl) Update(ctx context.Context, skill *entity.Skill) error {
	m := r.mapper.ToModel(skill)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*skill = *r.mapper.ToEntity(m)
	return nil
}

func (r *SkillRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, id).Error
}

func (r *SkillRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Skill, error) {
	var m model.Skill
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SkillRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Skill, error) {
	var models []*model.Skill
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SkillRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Skill{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SkillRepositoryImpl) UpdatePositions(ctx context.Context, orderedIds []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIds {
			if err := tx.Model(&model.Skill{}).Where("id = ?", id).Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
