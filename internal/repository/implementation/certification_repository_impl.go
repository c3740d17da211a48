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

type CertificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CertificationMapper
}

func NewCertificationRepository(db *gorm.DB) contract.CertificationRepository {
	return &CertificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCertificationMapper(),
	}
}

func (r *CertificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CertificationRepositoryImpl) Create(ctx context.Context, certification *entity.Certification) error {
	m := r.mapper.ToModel(certification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*certification = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificationRepositoryImpl) Update(ctx context.Context, certification *entity.Certification) error {
	m := r.mapper.ToModel(certification)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*certification = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Certification{}, id).Error
}

func (r *CertificationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certification, error) {
	var m model.Certification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CertificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certification, error) {
	var models []*model.Certification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CertificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Certification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
