//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	pkgTesting "github.com/xaosao/xaosao-service/internal/pkg/testing"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	ProfileRepo     profiles.ProfileRepository
	InteractionRepo profiles.InteractionRepository
	CatalogRepo     bookings.CatalogRepository
	BookingRepo     bookings.BookingRepository
	WalletRepo      wallet.WalletRepository
	TopUpRepo       wallet.TopUpRepository
	CallRepo        calls.CallRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	log := pkgTesting.SetupTestLogger(t)

	profileRepo, err := NewGormProfileRepository(db, log)
	require.NoError(t, err)
	interactionRepo, err := NewGormInteractionRepository(db, log)
	require.NoError(t, err)
	catalogRepo, err := NewGormCatalogRepository(db, log)
	require.NoError(t, err)
	bookingRepo, err := NewGormBookingRepository(db, log)
	require.NoError(t, err)
	walletRepo, err := NewGormWalletRepository(db, log)
	require.NoError(t, err)
	topUpRepo, err := NewGormTopUpRepository(db, log)
	require.NoError(t, err)
	callRepo, err := NewGormCallRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:              db,
		ProfileRepo:     profileRepo,
		InteractionRepo: interactionRepo,
		CatalogRepo:     catalogRepo,
		BookingRepo:     bookingRepo,
		WalletRepo:      walletRepo,
		TopUpRepo:       topUpRepo,
		CallRepo:        callRepo,
	}
}

// CreateTestWallet creates a wallet with the given balance.
func CreateTestWallet(t *testing.T, tc *TestContext, balance string) *wallet.Wallet {
	t.Helper()

	w := &wallet.Wallet{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      uuid.NewString(),
		Currency:        "USD",
		Balance:         decimal.RequireFromString(balance),
	}
	require.NoError(t, tc.WalletRepo.Create(context.Background(), w))
	return w
}

// CreateTestCompanion creates a companion profile with defaults.
func CreateTestCompanion(t *testing.T, tc *TestContext, city string) *profiles.CompanionProfile {
	t.Helper()

	p := &profiles.CompanionProfile{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		DisplayName:     "companion-" + uuid.NewString()[:8],
		City:            city,
		Online:          true,
	}
	require.NoError(t, tc.ProfileRepo.CreateCompanion(context.Background(), p))
	return p
}

// CreateTestService creates a catalog service for the companion.
func CreateTestService(t *testing.T, tc *TestContext, companionID, billingType, rate string) *bookings.Service {
	t.Helper()

	svc := &bookings.Service{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CompanionID:     companionID,
		Name:            "service-" + billingType,
		BillingType:     billingType,
		Rate:            decimal.RequireFromString(rate),
		Active:          true,
	}
	require.NoError(t, tc.CatalogRepo.CreateService(context.Background(), svc))
	return svc
}
