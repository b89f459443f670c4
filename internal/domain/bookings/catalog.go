package bookings

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Billing type constants
const (
	BillingPerDay     = "per_day"
	BillingPerHour    = "per_hour"
	BillingPerSession = "per_session"
	BillingPerMinute  = "per_minute"
)

var (
	// ErrServiceNotFound is returned for an unknown service ID.
	ErrServiceNotFound = errors.New("service not found")

	// ErrVariantNotFound is returned for an unknown variant or a variant
	// that belongs to a different service.
	ErrVariantNotFound = errors.New("service variant not found")

	// ErrUnknownBillingType is returned for a billing type outside the four
	// supported modes.
	ErrUnknownBillingType = errors.New("unknown billing type")
)

// Service is a bookable offering of a companion. Rate is the base price per
// billing unit: per day, per hour, per minute, or per session when no
// variant is chosen.
type Service struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	CompanionID     string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=100"`
	BillingType     string    `validate:"required,oneof=per_day per_hour per_session per_minute"`
	Rate            decimal.Decimal
	Active          bool
}

// Validate for validating Service struct
func (s *Service) Validate() error {
	if err := validateStruct(s); err != nil {
		return err
	}
	if !s.Rate.IsPositive() {
		return fmt.Errorf("service rate must be positive, got %s", s.Rate)
	}
	return nil
}

// ServiceVariant is a sub-service with its own session price, e.g. the
// massage variants of a per-session massage service.
type ServiceVariant struct {
	ID           string `validate:"required,uuid4"`
	ServiceID    string `validate:"required,uuid4"`
	Name         string `validate:"required,min=1,max=100"`
	SessionPrice decimal.Decimal
}

// Validate for validating ServiceVariant struct
func (v *ServiceVariant) Validate() error {
	if err := validateStruct(v); err != nil {
		return err
	}
	if !v.SessionPrice.IsPositive() {
		return fmt.Errorf("variant price must be positive, got %s", v.SessionPrice)
	}
	return nil
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
