package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormReviewRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReviewRepository creates a new GORM-based ReviewRepository implementation
func NewGormReviewRepository(db *gorm.DB, logger logger.Logger) (reviews.ReviewRepository, error) {
	return &gormReviewRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReviewRepository) Create(ctx context.Context, review *reviews.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReviewModel{}
	model.FromDomain(review)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return reviews.ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Info("Created review with id ", review.ID)
	return nil
}

func (r *gormReviewRepository) GetByBookingID(ctx context.Context, bookingID string) (*reviews.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviews.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReviewRepository) ListByCompanion(ctx context.Context, companionID string, limit, offset int) ([]*reviews.Review, error) {
	var modelList []*models.ReviewModel
	dbQuery := r.db.WithContext(ctx).
		Where("companion_id = ?", companionID).
		Order("date_time_created desc")

	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	domainList := make([]*reviews.Review, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormReviewRepository) AverageRating(ctx context.Context, companionID string) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("companion_id = ?", companionID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
