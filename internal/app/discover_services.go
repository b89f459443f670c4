package app

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// discoverService implements the DiscoverService interface
type discoverService struct {
	profileRepo     profiles.ProfileRepository
	interactionRepo profiles.InteractionRepository
	logger          logger.Logger
}

// NewDiscoverService creates a new discoverService instance
func NewDiscoverService(
	profileRepo profiles.ProfileRepository,
	interactionRepo profiles.InteractionRepository,
	logger logger.Logger,
) (profiles.DiscoverService, error) {
	return &discoverService{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}, nil
}

// Discover lists companions the customer has not reacted to yet.
func (s *discoverService) Discover(ctx context.Context, customerID string, query *profiles.CompanionQuery) ([]*profiles.CompanionProfile, error) {
	interactions, err := s.interactionRepo.ListByCustomer(ctx, customerID, "")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	seen := lo.Map(interactions, func(i *profiles.Interaction, _ int) string {
		return i.CompanionID
	})

	return s.profileRepo.ListCompanions(ctx, query, seen)
}

// Matches lists companions with a mutual like. The match is derived from the
// two like sets, never stored.
func (s *discoverService) Matches(ctx context.Context, customerID string) ([]*profiles.CompanionProfile, error) {
	liked, err := s.interactionRepo.ListByCustomer(ctx, customerID, profiles.InteractionLike)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	likedBy, err := s.interactionRepo.ListLikedBy(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	likedIDs := lo.Map(liked, func(i *profiles.Interaction, _ int) string {
		return i.CompanionID
	})
	mutual := lo.Intersect(likedIDs, likedBy)
	if len(mutual) == 0 {
		return nil, nil
	}

	return s.profileRepo.ListCompanionsByIDs(ctx, mutual)
}

func (s *discoverService) Friends(ctx context.Context, customerID string) ([]*profiles.CompanionProfile, error) {
	friends, err := s.interactionRepo.ListByCustomer(ctx, customerID, profiles.InteractionFriend)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(friends) == 0 {
		return nil, nil
	}

	ids := lo.Map(friends, func(i *profiles.Interaction, _ int) string {
		return i.CompanionID
	})
	return s.profileRepo.ListCompanionsByIDs(ctx, ids)
}
