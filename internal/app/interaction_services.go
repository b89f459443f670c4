package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// interactionService implements the InteractionService interface
type interactionService struct {
	interactionRepo profiles.InteractionRepository
	profileRepo     profiles.ProfileRepository
	logger          logger.Logger
}

// NewInteractionService creates a new interactionService instance
func NewInteractionService(
	interactionRepo profiles.InteractionRepository,
	profileRepo profiles.ProfileRepository,
	logger logger.Logger,
) (profiles.InteractionService, error) {
	return &interactionService{
		interactionRepo: interactionRepo,
		profileRepo:     profileRepo,
		logger:          logger,
	}, nil
}

// React records the reaction, replacing whatever the customer recorded for
// this companion before.
func (s *interactionService) React(ctx context.Context, customerID, companionID, kind string) (*profiles.Interaction, error) {
	if _, err := s.profileRepo.GetCompanionByID(ctx, companionID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	interaction := &profiles.Interaction{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      customerID,
		CompanionID:     companionID,
		Kind:            kind,
	}
	if err := interaction.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.interactionRepo.Upsert(ctx, interaction); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Recorded %s from customer %s for companion %s", kind, customerID, companionID))
	return interaction, nil
}
