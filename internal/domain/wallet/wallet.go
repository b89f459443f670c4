package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Ledger entry kinds
const (
	EntryCredit = "credit"
	EntryDebit  = "debit"
	EntryHold   = "hold"
	EntryRefund = "refund"
)

// Ledger entry reference kinds
const (
	RefTopUp   = "topup"
	RefBooking = "booking"
	RefCall    = "call"
	RefManual  = "manual"
)

// Top-up statuses
const (
	TopUpPending   = "pending"
	TopUpCompleted = "completed"
	TopUpExpired   = "expired"
)

var (
	// ErrInsufficientBalance is returned when a debit or hold exceeds the
	// available balance.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrWalletNotFound is returned when a customer has no wallet row.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTopUpNotFound is returned for an unknown top-up reference.
	ErrTopUpNotFound = errors.New("top-up not found")

	// ErrTopUpExpired is returned when confirming an expired top-up.
	ErrTopUpExpired = errors.New("top-up expired")
)

// Wallet entity, one per customer.
type Wallet struct {
	ID              string          `validate:"required,uuid4"`
	DateTimeCreated time.Time       `validate:"required"`
	CustomerID      string          `validate:"required,uuid4"`
	Currency        string          `validate:"required,len=3"`
	Balance         decimal.Decimal
}

// Validate for validating Wallet struct
func (w *Wallet) Validate() error {
	if err := validateStruct(w); err != nil {
		return err
	}
	if w.Balance.IsNegative() {
		return fmt.Errorf("balance must not be negative, got %s", w.Balance)
	}
	return nil
}

// LedgerEntry records one balance movement. Every debit, credit, hold and
// refund the system performs leaves exactly one entry.
type LedgerEntry struct {
	ID              string          `validate:"required,uuid4"`
	DateTimeCreated time.Time       `validate:"required"`
	WalletID        string          `validate:"required,uuid4"`
	Kind            string          `validate:"required,oneof=credit debit hold refund"`
	Amount          decimal.Decimal
	RefKind         string `validate:"required,oneof=topup booking call manual"`
	RefID           string `validate:"omitempty,uuid4"`
	Note            string `validate:"max=255"`
}

// Validate for validating LedgerEntry struct
func (e *LedgerEntry) Validate() error {
	if err := validateStruct(e); err != nil {
		return err
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("entry amount must be positive, got %s", e.Amount)
	}
	return nil
}

// TopUp entity. The QR payload is generated when the top-up is requested and
// the wallet is only credited when the gateway confirms the slip.
type TopUp struct {
	ID              string          `validate:"required,uuid4"`
	DateTimeCreated time.Time       `validate:"required"`
	WalletID        string          `validate:"required,uuid4"`
	Amount          decimal.Decimal
	Status          string `validate:"required,oneof=pending completed expired"`
	SlipRef         string `validate:"max=255"`
	ExpiresAt       time.Time
}

// Validate for validating TopUp struct
func (t *TopUp) Validate() error {
	if err := validateStruct(t); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("top-up amount must be positive, got %s", t.Amount)
	}
	return nil
}

// LedgerQuery carries pagination for ledger history listings.
type LedgerQuery struct {
	Limit  int `validate:"min=0,max=100"`
	Offset int `validate:"min=0"`
}

// NewLedgerQuery creates a LedgerQuery with default pagination.
func NewLedgerQuery() *LedgerQuery {
	return &LedgerQuery{Limit: 20}
}

// Validate for validating LedgerQuery struct
func (q *LedgerQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
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

	return nil
}
