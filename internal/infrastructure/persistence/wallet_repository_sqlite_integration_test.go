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

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
)

func newLedgerEntry(walletID, kind, amount string) *wallet.LedgerEntry {
	return &wallet.LedgerEntry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        walletID,
		Kind:            kind,
		Amount:          decimal.RequireFromString(amount),
		RefKind:         wallet.RefManual,
	}
}

func TestWalletRepository_GetByCustomerID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, fetched.ID)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestWalletRepository_GetByCustomerID_Unknown_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.WalletRepo.GetByCustomerID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestWalletRepository_ApplyEntry_CreditAndDebit(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")

	err := tc.WalletRepo.ApplyEntry(context.Background(), w.ID, newLedgerEntry(w.ID, wallet.EntryCredit, "15.00"))
	require.NoError(t, err)

	err = tc.WalletRepo.ApplyEntry(context.Background(), w.ID, newLedgerEntry(w.ID, wallet.EntryDebit, "5.00"))
	require.NoError(t, err)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("20.00")))
}

func TestWalletRepository_ApplyEntry_Overdraft_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")

	err := tc.WalletRepo.ApplyEntry(context.Background(), w.ID, newLedgerEntry(w.ID, wallet.EntryDebit, "10.01"))
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)

	// the failed debit leaves no ledger entry and does not touch the balance
	var count int64
	require.NoError(t, tc.DB.Model(&models.LedgerEntryModel{}).Where("wallet_id = ?", w.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestWalletRepository_ApplyEntry_ExactBalanceDebit(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "10.00")

	err := tc.WalletRepo.ApplyEntry(context.Background(), w.ID, newLedgerEntry(w.ID, wallet.EntryDebit, "10.00"))
	require.NoError(t, err)

	fetched, err := tc.WalletRepo.GetByCustomerID(context.Background(), w.CustomerID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.IsZero())
}

func TestWalletRepository_ListEntries_NewestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	w := CreateTestWallet(t, tc, "100.00")

	older := newLedgerEntry(w.ID, wallet.EntryDebit, "1.00")
	older.DateTimeCreated = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, tc.WalletRepo.ApplyEntry(context.Background(), w.ID, older))

	newer := newLedgerEntry(w.ID, wallet.EntryCredit, "2.00")
	require.NoError(t, tc.WalletRepo.ApplyEntry(context.Background(), w.ID, newer))

	entries, err := tc.WalletRepo.ListEntries(context.Background(), w.ID, wallet.NewLedgerQuery())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)
}
