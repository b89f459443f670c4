package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (profiles.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) CreateCustomer(ctx context.Context, profile *profiles.CustomerProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create customer profile: %w", err)
	}

	r.logger.Info("Created customer profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) GetCustomerByID(ctx context.Context, customerID string) (*profiles.CustomerProfile, error) {
	var model models.CustomerProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", customerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiles.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) UpdateCustomerByID(ctx context.Context, profile *profiles.CustomerProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update customer profile: %w", err)
	}

	r.logger.Info("Updated customer profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) CreateCompanion(ctx context.Context, profile *profiles.CompanionProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompanionProfileModel{}
	if err := model.FromDomain(profile); err != nil {
		return fmt.Errorf("failed to encode photo urls: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create companion profile: %w", err)
	}

	r.logger.Info("Created companion profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) GetCompanionByID(ctx context.Context, companionID string) (*profiles.CompanionProfile, error) {
	var model models.CompanionProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", companionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiles.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch companion profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) ListCompanions(ctx context.Context, query *profiles.CompanionQuery, excludeIDs []string) ([]*profiles.CompanionProfile, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CompanionProfileModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CompanionProfileModel{})

	if query.City != "" {
		dbQuery = dbQuery.Where("city = ?", query.City)
	}
	if query.Online != nil {
		dbQuery = dbQuery.Where("online = ?", *query.Online)
	}
	if len(excludeIDs) > 0 {
		dbQuery = dbQuery.Where("id NOT IN ?", excludeIDs)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companion profiles: %w", err)
	}

	domainList := make([]*profiles.CompanionProfile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProfileRepository) ListCompanionsByIDs(ctx context.Context, ids []string) ([]*profiles.CompanionProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.CompanionProfileModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companion profiles: %w", err)
	}

	domainList := make([]*profiles.CompanionProfile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
