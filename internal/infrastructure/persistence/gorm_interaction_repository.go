package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormInteractionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInteractionRepository creates a new GORM-based InteractionRepository implementation
func NewGormInteractionRepository(db *gorm.DB, logger logger.Logger) (profiles.InteractionRepository, error) {
	return &gormInteractionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormInteractionRepository) Upsert(ctx context.Context, interaction *profiles.Interaction) error {
	if err := interaction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InteractionModel{}
	model.FromDomain(interaction)

	// A later reaction replaces the earlier one for the same pair.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "companion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "date_time_created"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert interaction: %w", err)
	}

	r.logger.Info("Recorded ", interaction.Kind, " interaction for customer ", interaction.CustomerID)
	return nil
}

func (r *gormInteractionRepository) ListByCustomer(ctx context.Context, customerID, kind string) ([]*profiles.Interaction, error) {
	var modelList []*models.InteractionModel
	dbQuery := r.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if kind != "" {
		dbQuery = dbQuery.Where("kind = ?", kind)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}

	domainList := make([]*profiles.Interaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormInteractionRepository) ListLikedBy(ctx context.Context, customerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.CompanionLikeModel{}).
		Where("customer_id = ?", customerID).
		Pluck("companion_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companion likes: %w", err)
	}
	return ids, nil
}

func (r *gormInteractionRepository) UpsertCompanionLike(ctx context.Context, companionID, customerID string) error {
	model := &models.CompanionLikeModel{
		CompanionID:     companionID,
		CustomerID:      customerID,
		DateTimeCreated: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert companion like: %w", err)
	}
	return nil
}
