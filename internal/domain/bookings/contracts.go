package bookings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// PriceQuote is the result of a quote request.
type PriceQuote struct {
	ServiceID   string
	VariantID   *string
	BillingType string
	Quantity    int
	Price       decimal.Decimal
}

// CatalogService defines read access to the service catalog and quoting.
type CatalogService interface {
	// ListServices lists the active services of a companion.
	ListServices(ctx context.Context, companionID string) ([]*Service, error)

	// ListVariants lists the variants of a service.
	ListVariants(ctx context.Context, serviceID string) ([]*ServiceVariant, error)

	// QuotePrice resolves the service (and variant, when set) and computes
	// the price for the requested quantity.
	QuotePrice(ctx context.Context, serviceID string, variantID *string, quantity int) (*PriceQuote, error)
}

// NewBookingParams carries the input for creating a booking.
type NewBookingParams struct {
	CustomerID     string
	ServiceID      string
	VariantID      *string
	Quantity       int
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	Note           string
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	// Create quotes the price, debits the customer's wallet and writes the
	// booking atomically. Fails with wallet.ErrInsufficientBalance when the
	// balance does not cover the quote.
	Create(ctx context.Context, params *NewBookingParams) (*Booking, error)

	// List lists the customer's bookings, optionally filtered by status.
	List(ctx context.Context, customerID string, query *BookingQuery) ([]*Booking, error)

	// GetByID retrieves a booking owned by the customer.
	GetByID(ctx context.Context, customerID, bookingID string) (*Booking, error)

	// Cancel cancels a pending or confirmed booking and refunds the debit.
	Cancel(ctx context.Context, customerID, bookingID string) (*Booking, error)

	// Confirm moves a pending booking to confirmed.
	Confirm(ctx context.Context, bookingID string) (*Booking, error)

	// Complete moves a confirmed booking to completed.
	Complete(ctx context.Context, bookingID string) (*Booking, error)
}

// CatalogRepository defines the persistence interface for the catalog.
type CatalogRepository interface {
	CreateService(ctx context.Context, svc *Service) error
	GetServiceByID(ctx context.Context, serviceID string) (*Service, error)
	ListServicesByCompanion(ctx context.Context, companionID string) ([]*Service, error)
	CreateVariant(ctx context.Context, variant *ServiceVariant) error
	GetVariantByID(ctx context.Context, variantID string) (*ServiceVariant, error)
	ListVariantsByService(ctx context.Context, serviceID string) ([]*ServiceVariant, error)
}

// BookingRepository defines the persistence interface for bookings. The
// funded operations pair the booking write with the wallet movement in one
// database transaction so a failed debit leaves no booking behind.
type BookingRepository interface {
	// CreateFunded writes the booking and applies the debit entry to the
	// customer's wallet atomically.
	CreateFunded(ctx context.Context, booking *Booking, debit *wallet.LedgerEntry) error

	// CancelRefunded flips the booking to cancelled and applies the refund
	// entry atomically.
	CancelRefunded(ctx context.Context, booking *Booking, refund *wallet.LedgerEntry) error

	GetByID(ctx context.Context, bookingID string) (*Booking, error)
	List(ctx context.Context, customerID string, query *BookingQuery) ([]*Booking, error)
	// UpdateStatus moves the booking from the expected status to the
	// target. The write is guarded on the stored status still matching
	// from; losing a concurrent transition returns ErrInvalidTransition.
	UpdateStatus(ctx context.Context, bookingID, from, to string) error
}
