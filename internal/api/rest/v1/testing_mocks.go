//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, email, password, displayName string) (*customers.Account, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Account), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (string, *customers.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*customers.Account), args.Error(2)
}

func (m *MockAccountService) Resolve(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetCustomer(ctx context.Context, customerID string) (*profiles.CustomerProfile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.CustomerProfile), args.Error(1)
}

func (m *MockProfileService) UpdateCustomer(ctx context.Context, profile *profiles.CustomerProfile) (*profiles.CustomerProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.CustomerProfile), args.Error(1)
}

func (m *MockProfileService) GetCompanion(ctx context.Context, companionID string) (*profiles.CompanionProfile, error) {
	args := m.Called(ctx, companionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.CompanionProfile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, customerID, fileName string, data []byte) (*profiles.CustomerProfile, error) {
	args := m.Called(ctx, customerID, fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.CustomerProfile), args.Error(1)
}

// MockDiscoverService is a mock implementation of DiscoverService
type MockDiscoverService struct {
	mock.Mock
}

func (m *MockDiscoverService) Discover(ctx context.Context, customerID string, query *profiles.CompanionQuery) ([]*profiles.CompanionProfile, error) {
	args := m.Called(ctx, customerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.CompanionProfile), args.Error(1)
}

func (m *MockDiscoverService) Matches(ctx context.Context, customerID string) ([]*profiles.CompanionProfile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.CompanionProfile), args.Error(1)
}

func (m *MockDiscoverService) Friends(ctx context.Context, customerID string) ([]*profiles.CompanionProfile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.CompanionProfile), args.Error(1)
}

// MockInteractionService is a mock implementation of InteractionService
type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) React(ctx context.Context, customerID, companionID, kind string) (*profiles.Interaction, error) {
	args := m.Called(ctx, customerID, companionID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Interaction), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListServices(ctx context.Context, companionID string) ([]*bookings.Service, error) {
	args := m.Called(ctx, companionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Service), args.Error(1)
}

func (m *MockCatalogService) ListVariants(ctx context.Context, serviceID string) ([]*bookings.ServiceVariant, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.ServiceVariant), args.Error(1)
}

func (m *MockCatalogService) QuotePrice(ctx context.Context, serviceID string, variantID *string, quantity int) (*bookings.PriceQuote, error) {
	args := m.Called(ctx, serviceID, variantID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.PriceQuote), args.Error(1)
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, params *bookings.NewBookingParams) (*bookings.Booking, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, customerID string, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	args := m.Called(ctx, customerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, customerID, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, customerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, customerID, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, customerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) Confirm(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) Complete(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

// MockWalletService is a mock implementation of WalletService
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Get(ctx context.Context, customerID string) (*wallet.Wallet, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletService) History(ctx context.Context, customerID string, query *wallet.LedgerQuery) ([]*wallet.LedgerEntry, error) {
	args := m.Called(ctx, customerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*wallet.LedgerEntry), args.Error(1)
}

func (m *MockWalletService) RequestTopUp(ctx context.Context, customerID string, amount decimal.Decimal) (*wallet.TopUp, []byte, error) {
	args := m.Called(ctx, customerID, amount)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*wallet.TopUp), args.Get(1).([]byte), args.Error(2)
}

func (m *MockWalletService) ConfirmTopUp(ctx context.Context, topUpID, slipRef string) (*wallet.TopUp, error) {
	args := m.Called(ctx, topUpID, slipRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.TopUp), args.Error(1)
}

// MockCallService is a mock implementation of CallService
type MockCallService struct {
	mock.Mock
}

func (m *MockCallService) Initiate(ctx context.Context, customerID, serviceID string) (*calls.CallSession, error) {
	args := m.Called(ctx, customerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) Status(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) Accept(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) Decline(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) Missed(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) End(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calls.CallSession), args.Error(1)
}

func (m *MockCallService) SweepMissed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewService) ListByCompanion(ctx context.Context, companionID string, limit, offset int) ([]*reviews.Review, float64, error) {
	args := m.Called(ctx, companionID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*reviews.Review), args.Get(1).(float64), args.Error(2)
}
