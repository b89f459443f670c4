package calls

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Call session statuses
const (
	StatusRinging  = "ringing"
	StatusActive   = "active"
	StatusDeclined = "declined"
	StatusMissed   = "missed"
	StatusEnded    = "ended"
)

var (
	// ErrSessionNotFound is returned for an unknown session ID.
	ErrSessionNotFound = errors.New("call session not found")

	// ErrInvalidTransition is returned when a lifecycle operation does not
	// fit the session's current status.
	ErrInvalidTransition = errors.New("invalid call status transition")
)

// Settlement is the billing outcome of a settled session. Debit plus Refund
// always equals the hold that was placed at initiation.
type Settlement struct {
	BilledMinutes int
	Debit         decimal.Decimal
	Refund        decimal.Decimal
}

// CallSession entity.
type CallSession struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	CustomerID      string    `validate:"required,uuid4"`
	CompanionID     string    `validate:"required,uuid4"`
	ServiceID       string    `validate:"required,uuid4"`
	RatePerMinute   decimal.Decimal
	HoldAmount      decimal.Decimal
	Status          string `validate:"required,oneof=ringing active declined missed ended"`
	RingDeadline    time.Time
	AnsweredAt      *time.Time
	EndedAt         *time.Time
	BilledMinutes   int
	BilledAmount    decimal.Decimal
	RefundedAmount  decimal.Decimal
}

// Validate for validating CallSession struct
func (s *CallSession) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if !s.RatePerMinute.IsPositive() {
		return fmt.Errorf("rate per minute must be positive, got %s", s.RatePerMinute)
	}
	if s.HoldAmount.IsNegative() {
		return fmt.Errorf("hold amount must not be negative, got %s", s.HoldAmount)
	}

	return nil
}

// Terminal reports whether the session reached a final status.
func (s *CallSession) Terminal() bool {
	switch s.Status {
	case StatusDeclined, StatusMissed, StatusEnded:
		return true
	}
	return false
}

// Accept moves a ringing session to active.
func (s *CallSession) Accept(now time.Time) error {
	if s.Status != StatusRinging {
		return fmt.Errorf("%w: accept from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusActive
	s.AnsweredAt = &now
	return nil
}

// Decline moves a ringing session to declined. The full hold is refunded.
func (s *CallSession) Decline(now time.Time) error {
	if s.Status != StatusRinging {
		return fmt.Errorf("%w: decline from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusDeclined
	s.EndedAt = &now
	s.RefundedAmount = s.HoldAmount
	return nil
}

// Miss moves a ringing session to missed. The full hold is refunded.
func (s *CallSession) Miss(now time.Time) error {
	if s.Status != StatusRinging {
		return fmt.Errorf("%w: miss from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusMissed
	s.EndedAt = &now
	s.RefundedAmount = s.HoldAmount
	return nil
}

// RingExpired reports whether a ringing session has passed its ring deadline.
func (s *CallSession) RingExpired(now time.Time) bool {
	return s.Status == StatusRinging && now.After(s.RingDeadline)
}

// End settles an active session. A started minute is charged in full and the
// debit never exceeds the hold; the remainder of the hold is refunded.
func (s *CallSession) End(now time.Time) (*Settlement, error) {
	if s.Status != StatusActive {
		return nil, fmt.Errorf("%w: end from %s", ErrInvalidTransition, s.Status)
	}

	elapsed := now.Sub(*s.AnsweredAt)
	minutes := int(elapsed / time.Minute)
	if elapsed%time.Minute > 0 || minutes == 0 {
		minutes++
	}

	debit := s.RatePerMinute.Mul(decimal.NewFromInt(int64(minutes)))
	if debit.GreaterThan(s.HoldAmount) {
		debit = s.HoldAmount
	}
	refund := s.HoldAmount.Sub(debit)

	s.Status = StatusEnded
	s.EndedAt = &now
	s.BilledMinutes = minutes
	s.BilledAmount = debit
	s.RefundedAmount = refund

	return &Settlement{BilledMinutes: minutes, Debit: debit, Refund: refund}, nil
}
