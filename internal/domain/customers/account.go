// Package customers contains the customer account entity and the
// authentication contracts (registration, login, opaque session tokens).
package customers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrAccountNotFound is returned for an unknown account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned for an unknown or expired session token.
	ErrSessionNotFound = errors.New("session not found")
)

// Account entity. PasswordHash is a bcrypt hash, never the raw password.
type Account struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Email           string    `validate:"required,email,max=255"`
	PasswordHash    string    `validate:"required"`
	Active          bool
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

// AccountService defines registration and session handling.
type AccountService interface {
	// Register creates the account, its empty customer profile and wallet.
	Register(ctx context.Context, email, password, displayName string) (*Account, error)

	// Login checks the credentials and mints a session token.
	Login(ctx context.Context, email, password string) (string, *Account, error)

	// Resolve maps a session token to the customer ID.
	Resolve(ctx context.Context, token string) (string, error)

	// Logout deletes the session token.
	Logout(ctx context.Context, token string) error
}

// AccountRepository defines the persistence interface for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, accountID string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
