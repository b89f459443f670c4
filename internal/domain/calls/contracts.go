package calls

import (
	"context"
	"time"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// CallService defines the signaling surface the call screens poll against.
type CallService interface {
	// Initiate places a wallet hold for the maximum billable amount and
	// creates a ringing session against a per-minute service.
	Initiate(ctx context.Context, customerID, serviceID string) (*CallSession, error)

	// Status returns the session for status polling.
	Status(ctx context.Context, sessionID string) (*CallSession, error)

	// Accept moves a ringing session to active.
	Accept(ctx context.Context, sessionID string) (*CallSession, error)

	// Decline moves a ringing session to declined and releases the hold.
	Decline(ctx context.Context, sessionID string) (*CallSession, error)

	// Missed reports a ring timeout: the session moves to missed and the
	// hold is released. Already-terminal sessions are returned as stored.
	Missed(ctx context.Context, sessionID string) (*CallSession, error)

	// End settles an active session: debit for the billed minutes, refund
	// the rest of the hold. Ending an already-ended session is a no-op
	// returning the settled session.
	End(ctx context.Context, sessionID string) (*CallSession, error)

	// SweepMissed expires every ringing session past its ring deadline and
	// returns how many were swept. The background reaper calls this on a
	// timer; the CLI exposes it for operators.
	SweepMissed(ctx context.Context) (int, error)
}

// CallRepository defines the persistence interface for call sessions. The
// transition methods that move money pair the session update with the wallet
// movement in one database transaction.
type CallRepository interface {
	// CreateWithHold writes the session and applies the hold entry to the
	// customer's wallet atomically.
	CreateWithHold(ctx context.Context, session *CallSession, hold *wallet.LedgerEntry) error

	GetByID(ctx context.Context, sessionID string) (*CallSession, error)

	// Activate persists an accepted session. The write is guarded on the
	// stored status still being ringing, so a stale accept cannot
	// resurrect a session whose hold was already released; losing the race
	// returns ErrInvalidTransition.
	Activate(ctx context.Context, session *CallSession) error

	// Release persists a declined/missed session and applies the refund
	// entry atomically.
	Release(ctx context.Context, session *CallSession, refund *wallet.LedgerEntry) error

	// Settle persists an ended session and applies the debit and refund
	// entries atomically. Either entry may be nil when its amount is zero.
	Settle(ctx context.Context, session *CallSession, debit, refund *wallet.LedgerEntry) error

	// ListRingingExpired lists ringing sessions whose deadline passed.
	ListRingingExpired(ctx context.Context, now time.Time) ([]*CallSession, error)
}
