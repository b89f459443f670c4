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
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
)

type callFixture struct {
	wallet  *wallet.Wallet
	session *calls.CallSession
}

// createRingingCall places a ringing session with its hold already applied.
func createRingingCall(t *testing.T, tc *TestContext, balance, rate, hold string) *callFixture {
	t.Helper()

	w := CreateTestWallet(t, tc, balance)
	companion := CreateTestCompanion(t, tc, "Bangkok")
	svc := CreateTestService(t, tc, companion.ID, bookings.BillingPerMinute, rate)

	session := &calls.CallSession{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      w.CustomerID,
		CompanionID:     companion.ID,
		ServiceID:       svc.ID,
		RatePerMinute:   decimal.RequireFromString(rate),
		HoldAmount:      decimal.RequireFromString(hold),
		Status:          calls.StatusRinging,
		RingDeadline:    time.Now().UTC().Add(time.Minute),
	}
	holdEntry := &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            wallet.EntryHold,
		Amount:          session.HoldAmount,
		RefKind:         wallet.RefCall,
		RefID:           session.ID,
	}
	require.NoError(t, tc.CallRepo.CreateWithHold(context.Background(), session, holdEntry))
	return &callFixture{wallet: w, session: session}
}

func callRefundEntry(fx *callFixture, amount decimal.Decimal) *wallet.LedgerEntry {
	return &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        fx.wallet.ID,
		Kind:            wallet.EntryRefund,
		Amount:          amount,
		RefKind:         wallet.RefCall,
		RefID:           fx.session.ID,
	}
}

func callDebitEntry(fx *callFixture, amount decimal.Decimal) *wallet.LedgerEntry {
	return &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        fx.wallet.ID,
		Kind:            wallet.EntryDebit,
		Amount:          amount,
		RefKind:         wallet.RefCall,
		RefID:           fx.session.ID,
	}
}

func TestCallRepository_CreateWithHold_SubtractsHold(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "100.00", "1.50", "90.00")

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("10.00")))

	stored, err := tc.CallRepo.GetByID(context.Background(), fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, calls.StatusRinging, stored.Status)
}

func TestCallRepository_CreateWithHold_InsufficientBalance_RollsBack(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")
	companion := CreateTestCompanion(t, tc, "Bangkok")
	svc := CreateTestService(t, tc, companion.ID, bookings.BillingPerMinute, "1.50")

	session := &calls.CallSession{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      w.CustomerID,
		CompanionID:     companion.ID,
		ServiceID:       svc.ID,
		RatePerMinute:   decimal.RequireFromString("1.50"),
		HoldAmount:      decimal.RequireFromString("90.00"),
		Status:          calls.StatusRinging,
		RingDeadline:    time.Now().UTC().Add(time.Minute),
	}
	holdEntry := &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            wallet.EntryHold,
		Amount:          session.HoldAmount,
		RefKind:         wallet.RefCall,
		RefID:           session.ID,
	}

	err := tc.CallRepo.CreateWithHold(context.Background(), session, holdEntry)
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)

	// the failed hold leaves neither a session nor a ledger entry
	_, err = tc.CallRepo.GetByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, calls.ErrSessionNotFound)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestCallRepository_Release_RefundsHold(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "100.00", "1.50", "90.00")

	require.NoError(t, fx.session.Decline(time.Now().UTC()))
	err := tc.CallRepo.Release(context.Background(), fx.session, callRefundEntry(fx, fx.session.HoldAmount))
	require.NoError(t, err)

	stored, err := tc.CallRepo.GetByID(context.Background(), fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, calls.StatusDeclined, stored.Status)
	assert.True(t, stored.RefundedAmount.Equal(decimal.RequireFromString("90.00")))

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestCallRepository_Release_NotRinging_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "100.00", "1.50", "90.00")

	require.NoError(t, fx.session.Decline(time.Now().UTC()))
	require.NoError(t, tc.CallRepo.Release(context.Background(), fx.session, callRefundEntry(fx, fx.session.HoldAmount)))

	// the status guard rejects a second release so the hold is refunded once
	err := tc.CallRepo.Release(context.Background(), fx.session, callRefundEntry(fx, fx.session.HoldAmount))
	assert.ErrorIs(t, err, calls.ErrInvalidTransition)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestCallRepository_Activate_AfterRelease_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "90.00", "1.50", "90.00")

	// an accept read the ringing session before the decline landed
	stale := *fx.session

	require.NoError(t, fx.session.Decline(time.Now().UTC()))
	require.NoError(t, tc.CallRepo.Release(context.Background(), fx.session, callRefundEntry(fx, fx.session.HoldAmount)))

	// the stale accept loses the race instead of resurrecting the session
	answered := time.Now().UTC()
	require.NoError(t, stale.Accept(answered))
	err := tc.CallRepo.Activate(context.Background(), &stale)
	assert.ErrorIs(t, err, calls.ErrInvalidTransition)

	// settling the resurrected copy fails too, so the hold pays out once
	ended := time.Now().UTC().Add(time.Minute)
	settlement, err := stale.End(ended)
	require.NoError(t, err)
	err = tc.CallRepo.Settle(context.Background(), &stale,
		callDebitEntry(fx, settlement.Debit), callRefundEntry(fx, settlement.Refund))
	assert.ErrorIs(t, err, calls.ErrInvalidTransition)

	stored, err := tc.CallRepo.GetByID(context.Background(), fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, calls.StatusDeclined, stored.Status)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("90.00")))
}

func TestCallRepository_Settle_AppliesDebitAndRefund(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "100.00", "1.50", "90.00")

	answered := time.Now().UTC().Add(-3 * time.Minute)
	fx.session.Status = calls.StatusActive
	fx.session.AnsweredAt = &answered
	require.NoError(t, tc.CallRepo.Activate(context.Background(), fx.session))

	settlement, err := fx.session.End(time.Now().UTC())
	require.NoError(t, err)

	err = tc.CallRepo.Settle(context.Background(), fx.session,
		callDebitEntry(fx, settlement.Debit), callRefundEntry(fx, settlement.Refund))
	require.NoError(t, err)

	stored, err := tc.CallRepo.GetByID(context.Background(), fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, calls.StatusEnded, stored.Status)
	assert.Equal(t, settlement.BilledMinutes, stored.BilledMinutes)

	// balance ends at the original amount minus the billed debit
	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), fx.wallet.CustomerID)
	require.NoError(t, err)
	expected := decimal.RequireFromString("100.00").Sub(settlement.Debit)
	assert.True(t, fetched.Balance.Equal(expected))

	var count int64
	require.NoError(t, tc.DB.Model(&models.LedgerEntryModel{}).Where("wallet_id = ?", fx.wallet.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCallRepository_Settle_NotActive_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	fx := createRingingCall(t, tc, "100.00", "1.50", "90.00")

	ended := time.Now().UTC()
	fx.session.Status = calls.StatusEnded
	fx.session.EndedAt = &ended

	err := tc.CallRepo.Settle(context.Background(), fx.session,
		callDebitEntry(fx, decimal.RequireFromString("1.50")), nil)
	assert.ErrorIs(t, err, calls.ErrInvalidTransition)
}

func TestCallRepository_ListRingingExpired(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	expired := createRingingCall(t, tc, "100.00", "1.50", "90.00")
	require.NoError(t, tc.DB.Model(&models.CallSessionModel{}).
		Where("id = ?", expired.session.ID).
		Update("ring_deadline", time.Now().UTC().Add(-time.Minute)).Error)

	createRingingCall(t, tc, "100.00", "1.50", "90.00")

	list, err := tc.CallRepo.ListRingingExpired(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, expired.session.ID, list[0].ID)
}
