// Package reviews contains the companion review entity and contracts.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrReviewNotFound is returned for an unknown review ID.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when a booking already has a review.
	ErrDuplicateReview = errors.New("booking already reviewed")
)

// Review entity. BookingID ties the review to a completed booking; at most
// one review per booking.
type Review struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	CustomerID      string    `validate:"required,uuid4"`
	CompanionID     string    `validate:"required,uuid4"`
	BookingID       *string   `validate:"omitempty,uuid4"`
	Rating          int       `validate:"required,min=1,max=5"`
	Comment         string    `validate:"max=2000"`
}

// Validate for validating Review struct
func (r *Review) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// ReviewService defines review creation and listing.
type ReviewService interface {
	// Create records a review; a booking may be reviewed once.
	Create(ctx context.Context, review *Review) (*Review, error)

	// ListByCompanion lists a companion's reviews newest first and returns
	// the average rating alongside.
	ListByCompanion(ctx context.Context, companionID string, limit, offset int) ([]*Review, float64, error)
}

// ReviewRepository defines the persistence interface for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByBookingID(ctx context.Context, bookingID string) (*Review, error)
	ListByCompanion(ctx context.Context, companionID string, limit, offset int) ([]*Review, error)
	AverageRating(ctx context.Context, companionID string) (float64, error)
}
