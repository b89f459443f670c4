package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormCatalogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCatalogRepository creates a new GORM-based CatalogRepository implementation
func NewGormCatalogRepository(db *gorm.DB, logger logger.Logger) (bookings.CatalogRepository, error) {
	return &gormCatalogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCatalogRepository) CreateService(ctx context.Context, svc *bookings.Service) error {
	if err := svc.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceModel{}
	model.FromDomain(svc)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	r.logger.Info("Created service with id ", svc.ID)
	return nil
}

func (r *gormCatalogRepository) GetServiceByID(ctx context.Context, serviceID string) (*bookings.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", serviceID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCatalogRepository) ListServicesByCompanion(ctx context.Context, companionID string) ([]*bookings.Service, error) {
	var modelList []*models.ServiceModel
	err := r.db.WithContext(ctx).
		Where("companion_id = ? AND active = ?", companionID, true).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	domainList := make([]*bookings.Service, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCatalogRepository) CreateVariant(ctx context.Context, variant *bookings.ServiceVariant) error {
	if err := variant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceVariantModel{}
	model.FromDomain(variant)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service variant: %w", err)
	}

	r.logger.Info("Created service variant with id ", variant.ID)
	return nil
}

func (r *gormCatalogRepository) GetVariantByID(ctx context.Context, variantID string) (*bookings.ServiceVariant, error) {
	var model models.ServiceVariantModel
	if err := r.db.WithContext(ctx).Where("id = ?", variantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrVariantNotFound
		}
		return nil, fmt.Errorf("failed to fetch service variant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCatalogRepository) ListVariantsByService(ctx context.Context, serviceID string) ([]*bookings.ServiceVariant, error) {
	var modelList []*models.ServiceVariantModel
	if err := r.db.WithContext(ctx).Where("service_id = ?", serviceID).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch service variants: %w", err)
	}

	domainList := make([]*bookings.ServiceVariant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
