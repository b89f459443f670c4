package app

import (
	"context"
	"fmt"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	catalogRepo bookings.CatalogRepository
	logger      logger.Logger
}

// NewCatalogService creates a new catalogService instance
func NewCatalogService(catalogRepo bookings.CatalogRepository, logger logger.Logger) (bookings.CatalogService, error) {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}, nil
}

func (s *catalogService) ListServices(ctx context.Context, companionID string) ([]*bookings.Service, error) {
	return s.catalogRepo.ListServicesByCompanion(ctx, companionID)
}

func (s *catalogService) ListVariants(ctx context.Context, serviceID string) ([]*bookings.ServiceVariant, error) {
	if _, err := s.catalogRepo.GetServiceByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.catalogRepo.ListVariantsByService(ctx, serviceID)
}

// QuotePrice resolves the service and optional variant and prices the
// requested quantity without touching any booking state.
func (s *catalogService) QuotePrice(ctx context.Context, serviceID string, variantID *string, quantity int) (*bookings.PriceQuote, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var variant *bookings.ServiceVariant
	if variantID != nil {
		variant, err = s.catalogRepo.GetVariantByID(ctx, *variantID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	price, err := bookings.Quote(svc, variant, quantity)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &bookings.PriceQuote{
		ServiceID:   svc.ID,
		VariantID:   variantID,
		BillingType: svc.BillingType,
		Quantity:    quantity,
		Price:       price,
	}, nil
}
