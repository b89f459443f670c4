package app

import (
	"context"
	"fmt"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/infrastructure/connector"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo  profiles.ProfileRepository
	cdnConnector connector.CDNConnector
	logger       logger.Logger
}

// NewProfileService creates a new profileService instance
func NewProfileService(
	profileRepo profiles.ProfileRepository,
	cdnConnector connector.CDNConnector,
	logger logger.Logger,
) (profiles.ProfileService, error) {
	return &profileService{
		profileRepo:  profileRepo,
		cdnConnector: cdnConnector,
		logger:       logger,
	}, nil
}

func (s *profileService) GetCustomer(ctx context.Context, customerID string) (*profiles.CustomerProfile, error) {
	return s.profileRepo.GetCustomerByID(ctx, customerID)
}

// UpdateCustomer applies the editable fields onto the stored profile so a
// partial update cannot clear identity fields.
func (s *profileService) UpdateCustomer(ctx context.Context, profile *profiles.CustomerProfile) (*profiles.CustomerProfile, error) {
	current, err := s.profileRepo.GetCustomerByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if profile.DisplayName != "" {
		current.DisplayName = profile.DisplayName
	}
	current.Bio = profile.Bio
	current.City = profile.City

	if err := s.profileRepo.UpdateCustomerByID(ctx, current); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return current, nil
}

func (s *profileService) GetCompanion(ctx context.Context, companionID string) (*profiles.CompanionProfile, error) {
	return s.profileRepo.GetCompanionByID(ctx, companionID)
}

func (s *profileService) UploadAvatar(ctx context.Context, customerID, fileName string, data []byte) (*profiles.CustomerProfile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("avatar file is empty")
	}

	url, err := s.cdnConnector.Upload(ctx, fileName, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	current, err := s.profileRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	current.AvatarURL = url

	if err := s.profileRepo.UpdateCustomerByID(ctx, current); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated avatar for customer ", customerID)
	return current, nil
}
