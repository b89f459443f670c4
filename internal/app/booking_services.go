package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// bookingService implements the BookingService interface
type bookingService struct {
	bookingRepo bookings.BookingRepository
	catalogRepo bookings.CatalogRepository
	walletRepo  wallet.WalletRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewBookingService creates a new bookingService instance
func NewBookingService(
	bookingRepo bookings.BookingRepository,
	catalogRepo bookings.CatalogRepository,
	walletRepo wallet.WalletRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) (bookings.BookingService, error) {
	return &bookingService{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		walletRepo:  walletRepo,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

// Create quotes the service, then writes the booking and the wallet debit in
// one transaction. The quoted price is snapshotted onto the booking.
func (s *bookingService) Create(ctx context.Context, params *bookings.NewBookingParams) (*bookings.Booking, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, params.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var variant *bookings.ServiceVariant
	if params.VariantID != nil {
		variant, err = s.catalogRepo.GetVariantByID(ctx, *params.VariantID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	price, err := bookings.Quote(svc, variant, params.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := s.walletRepo.GetByCustomerID(ctx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	booking := &bookings.Booking{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		CustomerID:      params.CustomerID,
		CompanionID:     svc.CompanionID,
		ServiceID:       svc.ID,
		VariantID:       params.VariantID,
		BillingType:     svc.BillingType,
		Quantity:        params.Quantity,
		Price:           price,
		Status:          bookings.StatusPending,
		ScheduledStart:  params.ScheduledStart,
		ScheduledEnd:    params.ScheduledEnd,
		Note:            params.Note,
	}
	if err := booking.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	debit := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		WalletID:        w.ID,
		Kind:            wallet.EntryDebit,
		Amount:          price,
		RefKind:         wallet.RefBooking,
		RefID:           booking.ID,
		Note:            fmt.Sprintf("booking %s", svc.Name),
	}

	if err := s.bookingRepo.CreateFunded(ctx, booking, debit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.metrics.BookingsCreated.Inc()
	s.logger.Info(fmt.Sprintf("Created booking %s for customer %s, price %s", booking.ID, booking.CustomerID, price))
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, customerID string, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	if query == nil {
		query = bookings.NewBookingQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.bookingRepo.List(ctx, customerID, query)
}

func (s *bookingService) GetByID(ctx context.Context, customerID, bookingID string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if booking.CustomerID != customerID {
		return nil, bookings.ErrBookingNotFound
	}
	return booking, nil
}

// Cancel refunds the full booking price. The repository guards the status
// flip, so a concurrent completion cannot race the refund in.
func (s *bookingService) Cancel(ctx context.Context, customerID, bookingID string) (*bookings.Booking, error) {
	booking, err := s.GetByID(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanTransition(bookings.StatusCancelled) {
		return nil, fmt.Errorf("%w: cancel from %s", bookings.ErrInvalidTransition, booking.Status)
	}

	w, err := s.walletRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	refund := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            wallet.EntryRefund,
		Amount:          booking.Price,
		RefKind:         wallet.RefBooking,
		RefID:           booking.ID,
		Note:            "booking cancelled",
	}

	booking.Status = bookings.StatusCancelled
	if err := s.bookingRepo.CancelRefunded(ctx, booking, refund); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.metrics.BookingsCancelled.Inc()
	s.logger.Info(fmt.Sprintf("Cancelled booking %s, refunded %s", booking.ID, booking.Price))
	return booking, nil
}

func (s *bookingService) Confirm(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	return s.transition(ctx, bookingID, bookings.StatusConfirmed)
}

func (s *bookingService) Complete(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	return s.transition(ctx, bookingID, bookings.StatusCompleted)
}

func (s *bookingService) transition(ctx context.Context, bookingID, target string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !booking.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s from %s", bookings.ErrInvalidTransition, target, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, target); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	booking.Status = target

	s.logger.Info(fmt.Sprintf("Booking %s moved to %s", bookingID, target))
	return booking, nil
}
