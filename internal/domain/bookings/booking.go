package bookings

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var (
	// ErrBookingNotFound is returned for an unknown booking ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition is returned when a status change is not allowed
	// from the booking's current status.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Booking entity. Price is the quote at creation time and never changes
// afterwards, even if the catalog rate does.
type Booking struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	CustomerID      string    `validate:"required,uuid4"`
	CompanionID     string    `validate:"required,uuid4"`
	ServiceID       string    `validate:"required,uuid4"`
	VariantID       *string   `validate:"omitempty,uuid4"`
	BillingType     string    `validate:"required,oneof=per_day per_hour per_session per_minute"`
	Quantity        int       `validate:"min=0"`
	Price           decimal.Decimal
	Status          string `validate:"required,oneof=pending confirmed completed cancelled"`
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	Note            string `validate:"max=500"`
}

// Validate for validating Booking struct
func (b *Booking) Validate() error {
	if err := validateStruct(b); err != nil {
		return err
	}
	if b.Price.IsNegative() {
		return fmt.Errorf("booking price must not be negative, got %s", b.Price)
	}
	return nil
}

// CanTransition reports whether the booking may move to the target status.
// pending → confirmed|cancelled, confirmed → completed|cancelled; completed
// and cancelled are terminal.
func (b *Booking) CanTransition(target string) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// BookingQuery carries the filter and pagination options for booking listings.
type BookingQuery struct {
	Status string `validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Limit  int    `validate:"min=0,max=100"`
	Offset int    `validate:"min=0"`
}

// NewBookingQuery creates a BookingQuery with default pagination.
func NewBookingQuery() *BookingQuery {
	return &BookingQuery{Limit: 20}
}

// Validate for validating BookingQuery struct
func (q *BookingQuery) Validate() error {
	return validateStruct(q)
}
