package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormTopUpRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTopUpRepository creates a new GORM-based TopUpRepository implementation
func NewGormTopUpRepository(db *gorm.DB, logger logger.Logger) (wallet.TopUpRepository, error) {
	return &gormTopUpRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTopUpRepository) Create(ctx context.Context, topUp *wallet.TopUp) error {
	if err := topUp.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TopUpModel{}
	model.FromDomain(topUp)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create top-up: %w", err)
	}

	r.logger.Info("Created top-up with id ", topUp.ID)
	return nil
}

func (r *gormTopUpRepository) GetByID(ctx context.Context, topUpID string) (*wallet.TopUp, error) {
	var model models.TopUpModel
	if err := r.db.WithContext(ctx).Where("id = ?", topUpID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wallet.ErrTopUpNotFound
		}
		return nil, fmt.Errorf("failed to fetch top-up: %w", err)
	}
	return model.ToDomain(), nil
}

// Complete marks the top-up completed and credits the wallet in one
// transaction. A confirmation that races a previous one finds the row
// already completed and returns it unchanged, so the wallet is credited at
// most once.
func (r *gormTopUpRepository) Complete(ctx context.Context, topUpID, slipRef string, entry *wallet.LedgerEntry) (*wallet.TopUp, error) {
	// A pending top-up past its deadline expires on first touch, whether or
	// not the periodic ExpireStale pass has reached it yet.
	res := r.db.WithContext(ctx).
		Model(&models.TopUpModel{}).
		Where("id = ? AND status = ? AND expires_at < ?", topUpID, wallet.TopUpPending, time.Now().UTC()).
		Update("status", wallet.TopUpExpired)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to expire top-up: %w", res.Error)
	}

	var result *wallet.TopUp

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.TopUpModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", topUpID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return wallet.ErrTopUpNotFound
			}
			return fmt.Errorf("failed to fetch top-up: %w", err)
		}

		switch model.Status {
		case wallet.TopUpCompleted:
			result = model.ToDomain()
			return nil
		case wallet.TopUpExpired:
			return wallet.ErrTopUpExpired
		}

		model.Status = wallet.TopUpCompleted
		model.SlipRef = slipRef
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update top-up: %w", err)
		}

		if err := applyEntryTx(tx, model.WalletID, entry); err != nil {
			return err
		}

		result = model.ToDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Completed top-up with id ", topUpID)
	return result, nil
}

func (r *gormTopUpRepository) ExpireStale(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.TopUpModel{}).
		Where("status = ? AND expires_at < ?", wallet.TopUpPending, time.Now().UTC()).
		Update("status", wallet.TopUpExpired)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to expire top-ups: %w", res.Error)
	}
	return res.RowsAffected, nil
}
