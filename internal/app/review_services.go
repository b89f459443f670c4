package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	reviewRepo  reviews.ReviewRepository
	bookingRepo bookings.BookingRepository
	logger      logger.Logger
}

// NewReviewService creates a new reviewService instance
func NewReviewService(
	reviewRepo reviews.ReviewRepository,
	bookingRepo bookings.BookingRepository,
	logger logger.Logger,
) (reviews.ReviewService, error) {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}, nil
}

// Create records a review. When the review references a booking, the booking
// must belong to the reviewer, be completed, and not be reviewed already.
func (s *reviewService) Create(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	review.ID = uuid.New().String()
	review.DateTimeCreated = time.Now().UTC()

	if err := review.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if review.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *review.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if booking.CustomerID != review.CustomerID {
			return nil, bookings.ErrBookingNotFound
		}
		if booking.Status != bookings.StatusCompleted {
			return nil, fmt.Errorf("%w: review requires a completed booking, got %s", bookings.ErrInvalidTransition, booking.Status)
		}
		review.CompanionID = booking.CompanionID

		if _, err := s.reviewRepo.GetByBookingID(ctx, *review.BookingID); err == nil {
			return nil, reviews.ErrDuplicateReview
		} else if err != reviews.ErrReviewNotFound {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Created review %s for companion %s, rating %d", review.ID, review.CompanionID, review.Rating))
	return review, nil
}

func (s *reviewService) ListByCompanion(ctx context.Context, companionID string, limit, offset int) ([]*reviews.Review, float64, error) {
	list, err := s.reviewRepo.ListByCompanion(ctx, companionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	avg, err := s.reviewRepo.AverageRating(ctx, companionID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return list, avg, nil
}
