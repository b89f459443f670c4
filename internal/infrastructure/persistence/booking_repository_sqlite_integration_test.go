//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
)

type bookingFixture struct {
	wallet  *wallet.Wallet
	booking *bookings.Booking
}

// createFundedBooking places a pending booking with its debit already taken.
func createFundedBooking(t *testing.T, tc *TestContext, balance, price string) *bookingFixture {
	t.Helper()

	w := CreateTestWallet(t, tc, balance)
	companion := CreateTestCompanion(t, tc, "Bangkok")
	svc := CreateTestService(t, tc, companion.ID, bookings.BillingPerDay, price)

	booking := &bookings.Booking{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      w.CustomerID,
		CompanionID:     companion.ID,
		ServiceID:       svc.ID,
		BillingType:     bookings.BillingPerDay,
		Quantity:        1,
		Price:           decimal.RequireFromString(price),
		Status:          bookings.StatusPending,
		ScheduledStart:  time.Now().UTC().Add(24 * time.Hour),
		ScheduledEnd:    time.Now().UTC().Add(48 * time.Hour),
	}
	debit := &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            wallet.EntryDebit,
		Amount:          booking.Price,
		RefKind:         wallet.RefBooking,
		RefID:           booking.ID,
	}
	require.NoError(t, tc.BookingRepo.CreateFunded(context.Background(), booking, debit))
	return &bookingFixture{wallet: w, booking: booking}
}

func bookingRefundEntry(fx *bookingFixture) *wallet.LedgerEntry {
	return &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        fx.wallet.ID,
		Kind:            wallet.EntryRefund,
		Amount:          fx.booking.Price,
		RefKind:         wallet.RefBooking,
		RefID:           fx.booking.ID,
	}
}

func TestBookingRepository_CreateFunded_DebitsWallet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createFundedBooking(t, tc, "100.00", "60.00")

	stored, err := tc.BookingRepo.GetByID(context.Background(), fx.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusPending, stored.Status)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("60.00")))

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("40.00")))
}

func TestBookingRepository_CreateFunded_InsufficientBalance_RollsBack(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")
	companion := CreateTestCompanion(t, tc, "Bangkok")
	svc := CreateTestService(t, tc, companion.ID, bookings.BillingPerDay, "60.00")

	booking := &bookings.Booking{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      w.CustomerID,
		CompanionID:     companion.ID,
		ServiceID:       svc.ID,
		BillingType:     bookings.BillingPerDay,
		Quantity:        1,
		Price:           decimal.RequireFromString("60.00"),
		Status:          bookings.StatusPending,
		ScheduledStart:  time.Now().UTC().Add(24 * time.Hour),
		ScheduledEnd:    time.Now().UTC().Add(48 * time.Hour),
	}
	debit := &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            wallet.EntryDebit,
		Amount:          booking.Price,
		RefKind:         wallet.RefBooking,
		RefID:           booking.ID,
	}

	err := tc.BookingRepo.CreateFunded(context.Background(), booking, debit)
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)

	_, err = tc.BookingRepo.GetByID(context.Background(), booking.ID)
	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestBookingRepository_CancelRefunded(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createFundedBooking(t, tc, "100.00", "60.00")

	require.NoError(t, tc.BookingRepo.CancelRefunded(context.Background(), fx.booking, bookingRefundEntry(fx)))

	stored, err := tc.BookingRepo.GetByID(context.Background(), fx.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, stored.Status)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestBookingRepository_CancelRefunded_Completed_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createFundedBooking(t, tc, "100.00", "60.00")

	require.NoError(t, tc.BookingRepo.UpdateStatus(context.Background(), fx.booking.ID, bookings.StatusPending, bookings.StatusConfirmed))
	require.NoError(t, tc.BookingRepo.UpdateStatus(context.Background(), fx.booking.ID, bookings.StatusConfirmed, bookings.StatusCompleted))

	// the status guard keeps a completed booking from being refunded
	err := tc.BookingRepo.CancelRefunded(context.Background(), fx.booking, bookingRefundEntry(fx))
	assert.ErrorIs(t, err, bookings.ErrInvalidTransition)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("40.00")))

	var count int64
	require.NoError(t, tc.DB.Model(&models.LedgerEntryModel{}).Where("wallet_id = ?", fx.wallet.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBookingRepository_UpdateStatus_AfterCancel_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createFundedBooking(t, tc, "100.00", "60.00")
	require.NoError(t, tc.BookingRepo.UpdateStatus(context.Background(), fx.booking.ID, bookings.StatusPending, bookings.StatusConfirmed))

	require.NoError(t, tc.BookingRepo.CancelRefunded(context.Background(), fx.booking, bookingRefundEntry(fx)))

	// a complete that read the booking as confirmed before the cancel
	// landed loses the guarded write instead of overwriting it
	err := tc.BookingRepo.UpdateStatus(context.Background(), fx.booking.ID, bookings.StatusConfirmed, bookings.StatusCompleted)
	assert.ErrorIs(t, err, bookings.ErrInvalidTransition)

	stored, err := tc.BookingRepo.GetByID(context.Background(), fx.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, stored.Status)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestBookingRepository_List_StatusFilter(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createFundedBooking(t, tc, "200.00", "60.00")
	require.NoError(t, tc.BookingRepo.UpdateStatus(context.Background(), fx.booking.ID, bookings.StatusPending, bookings.StatusConfirmed))

	other := &bookings.Booking{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      fx.booking.CustomerID,
		CompanionID:     fx.booking.CompanionID,
		ServiceID:       fx.booking.ServiceID,
		BillingType:     bookings.BillingPerDay,
		Quantity:        1,
		Price:           decimal.RequireFromString("60.00"),
		Status:          bookings.StatusPending,
		ScheduledStart:  time.Now().UTC().Add(24 * time.Hour),
		ScheduledEnd:    time.Now().UTC().Add(48 * time.Hour),
	}
	debit := &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        fx.wallet.ID,
		Kind:            wallet.EntryDebit,
		Amount:          other.Price,
		RefKind:         wallet.RefBooking,
		RefID:           other.ID,
	}
	require.NoError(t, tc.BookingRepo.CreateFunded(context.Background(), other, debit))

	query := bookings.NewBookingQuery()
	query.Status = bookings.StatusConfirmed
	list, err := tc.BookingRepo.List(context.Background(), fx.booking.CustomerID, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, fx.booking.ID, list[0].ID)

	all, err := tc.BookingRepo.List(context.Background(), fx.booking.CustomerID, bookings.NewBookingQuery())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
