package wallet

import (
	"context"

	"github.com/shopspring/decimal"
)

// WalletService defines the customer-facing wallet operations.
type WalletService interface {
	// Get retrieves the customer's wallet, creating it on first access.
	Get(ctx context.Context, customerID string) (*Wallet, error)

	// History lists ledger entries newest first.
	History(ctx context.Context, customerID string, query *LedgerQuery) ([]*LedgerEntry, error)

	// RequestTopUp creates a pending top-up and returns it together with the
	// PNG bytes of the payment-slip QR code.
	RequestTopUp(ctx context.Context, customerID string, amount decimal.Decimal) (*TopUp, []byte, error)

	// ConfirmTopUp marks the top-up completed and credits the wallet.
	// Confirming an already-completed top-up is a no-op success.
	ConfirmTopUp(ctx context.Context, topUpID, slipRef string) (*TopUp, error)
}

// FundsService defines the internal debit/credit operations used by the
// booking and call services. Debits fail with ErrInsufficientBalance rather
// than overdrafting.
type FundsService interface {
	Debit(ctx context.Context, customerID string, amount decimal.Decimal, refKind, refID, note string) (*LedgerEntry, error)
	Credit(ctx context.Context, customerID string, amount decimal.Decimal, refKind, refID, note string) (*LedgerEntry, error)
}

// WalletRepository defines the persistence interface for wallets. The
// mutation methods adjust the balance and write the ledger entry in one
// database transaction.
type WalletRepository interface {
	Create(ctx context.Context, wallet *Wallet) error
	GetByCustomerID(ctx context.Context, customerID string) (*Wallet, error)
	ListEntries(ctx context.Context, walletID string, query *LedgerQuery) ([]*LedgerEntry, error)

	// ApplyEntry atomically applies the entry to the wallet balance: credit
	// and refund entries add, debit and hold entries subtract. A subtracting
	// entry that would push the balance negative fails with
	// ErrInsufficientBalance and leaves no trace.
	ApplyEntry(ctx context.Context, walletID string, entry *LedgerEntry) error
}

// TopUpRepository defines the persistence interface for top-ups.
type TopUpRepository interface {
	Create(ctx context.Context, topUp *TopUp) error
	GetByID(ctx context.Context, topUpID string) (*TopUp, error)

	// Complete marks the top-up completed and credits its wallet in one
	// database transaction. Completing an already-completed top-up returns
	// the stored row unchanged.
	Complete(ctx context.Context, topUpID, slipRef string, entry *LedgerEntry) (*TopUp, error)

	// ExpireStale flips pending top-ups past their expiry to expired and
	// returns how many rows changed.
	ExpireStale(ctx context.Context) (int64, error)
}
