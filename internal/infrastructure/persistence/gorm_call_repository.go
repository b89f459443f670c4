package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormCallRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCallRepository creates a new GORM-based CallRepository implementation
func NewGormCallRepository(db *gorm.DB, logger logger.Logger) (calls.CallRepository, error) {
	return &gormCallRepository{
		db:     db,
		logger: logger,
	}, nil
}

// CreateWithHold writes the session and places the wallet hold in one
// transaction, so an insufficient balance leaves no session behind.
func (r *gormCallRepository) CreateWithHold(ctx context.Context, session *calls.CallSession, hold *wallet.LedgerEntry) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.CallSessionModel{}
		model.FromDomain(session)

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create call session: %w", err)
		}

		return applyEntryTx(tx, hold.WalletID, hold)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created call session with id ", session.ID)
	return nil
}

func (r *gormCallRepository) GetByID(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	var model models.CallSessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, calls.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch call session: %w", err)
	}
	return model.ToDomain(), nil
}

// Activate persists an accepted session. The status guard keeps a stale
// accept from overwriting a decline or sweep that already refunded the
// hold.
func (r *gormCallRepository) Activate(ctx context.Context, session *calls.CallSession) error {
	model := &models.CallSessionModel{}
	model.FromDomain(session)

	res := r.db.WithContext(ctx).Model(&models.CallSessionModel{}).
		Where("id = ? AND status = ?", session.ID, calls.StatusRinging).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"answered_at": model.AnsweredAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to activate call session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return calls.ErrInvalidTransition
	}

	r.logger.Info("Call session ", session.ID, " answered")
	return nil
}

// Release persists a declined or missed session and refunds the full hold in
// one transaction. The status guard keeps a concurrent accept or sweep from
// releasing twice.
func (r *gormCallRepository) Release(ctx context.Context, session *calls.CallSession, refund *wallet.LedgerEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.CallSessionModel{}
		model.FromDomain(session)

		res := tx.Model(&models.CallSessionModel{}).
			Where("id = ? AND status = ?", session.ID, calls.StatusRinging).
			Updates(map[string]interface{}{
				"status":          model.Status,
				"ended_at":        model.EndedAt,
				"refunded_amount": model.RefundedAmount,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to release call session: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return calls.ErrInvalidTransition
		}

		return applyEntryTx(tx, refund.WalletID, refund)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Released hold for call session ", session.ID)
	return nil
}

// Settle persists the ended session and applies the debit and refund entries
// in one transaction.
func (r *gormCallRepository) Settle(ctx context.Context, session *calls.CallSession, debit, refund *wallet.LedgerEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.CallSessionModel{}
		model.FromDomain(session)

		res := tx.Model(&models.CallSessionModel{}).
			Where("id = ? AND status = ?", session.ID, calls.StatusActive).
			Updates(map[string]interface{}{
				"status":          model.Status,
				"ended_at":        model.EndedAt,
				"billed_minutes":  model.BilledMinutes,
				"billed_amount":   model.BilledAmount,
				"refunded_amount": model.RefundedAmount,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to settle call session: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return calls.ErrInvalidTransition
		}

		// The refund entry releases the hold back to the balance before the
		// billed debit is taken, so the debit can never overdraft.
		if refund != nil {
			if err := applyEntryTx(tx, refund.WalletID, refund); err != nil {
				return err
			}
		}
		if debit != nil {
			if err := applyEntryTx(tx, debit.WalletID, debit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Settled call session ", session.ID, " for ", session.BilledMinutes, " minutes")
	return nil
}

func (r *gormCallRepository) ListRingingExpired(ctx context.Context, now time.Time) ([]*calls.CallSession, error) {
	var modelList []*models.CallSessionModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND ring_deadline < ?", calls.StatusRinging, now).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expired call sessions: %w", err)
	}

	domainList := make([]*calls.CallSession, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
