package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based AccountRepository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (customers.AccountRepository, error) {
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) Create(ctx context.Context, account *customers.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return customers.ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	r.logger.Info("Created account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) GetByID(ctx context.Context, accountID string) (*customers.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customers.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAccountRepository) GetByEmail(ctx context.Context, email string) (*customers.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customers.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}
