package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRepository creates a new GORM-based BookingRepository implementation
func NewGormBookingRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRepository, error) {
	return &gormBookingRepository{
		db:     db,
		logger: logger,
	}, nil
}

// CreateFunded writes the booking and debits the customer's wallet in one
// transaction. A failed debit rolls back the booking row.
func (r *gormBookingRepository) CreateFunded(ctx context.Context, booking *bookings.Booking, debit *wallet.LedgerEntry) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.BookingModel{}
		model.FromDomain(booking)

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return applyEntryTx(tx, debit.WalletID, debit)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created booking with id ", booking.ID)
	return nil
}

// CancelRefunded flips the booking to cancelled and refunds the debit in one
// transaction.
func (r *gormBookingRepository) CancelRefunded(ctx context.Context, booking *bookings.Booking, refund *wallet.LedgerEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.BookingModel{}).
			Where("id = ? AND status IN ?", booking.ID, []string{bookings.StatusPending, bookings.StatusConfirmed}).
			Update("status", bookings.StatusCancelled)
		if res.Error != nil {
			return fmt.Errorf("failed to cancel booking: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return bookings.ErrInvalidTransition
		}

		return applyEntryTx(tx, refund.WalletID, refund)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Cancelled booking with id ", booking.ID)
	return nil
}

func (r *gormBookingRepository) GetByID(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRepository) List(ctx context.Context, customerID string, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookingModel
	dbQuery := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date_time_created desc")

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	domainList := make([]*bookings.Booking, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

// UpdateStatus is a guarded transition: the row only changes when its
// stored status still matches from, so a transition that raced a cancel
// cannot overwrite it.
func (r *gormBookingRepository) UpdateStatus(ctx context.Context, bookingID, from, to string) error {
	res := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("id = ? AND status = ?", bookingID, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return bookings.ErrInvalidTransition
	}

	r.logger.Info("Updated booking ", bookingID, " to status ", to)
	return nil
}
