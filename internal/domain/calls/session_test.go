//go:build unit
// +build unit

package calls

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRingingSession(rate, hold string) *CallSession {
	now := time.Now().UTC()
	return &CallSession{
		ID:              uuid.NewString(),
		DateTimeCreated: now,
		CustomerID:      uuid.NewString(),
		CompanionID:     uuid.NewString(),
		ServiceID:       uuid.NewString(),
		RatePerMinute:   decimal.RequireFromString(rate),
		HoldAmount:      decimal.RequireFromString(hold),
		Status:          StatusRinging,
		RingDeadline:    now.Add(60 * time.Second),
	}
}

func TestCallSession_Accept(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	now := time.Now().UTC()

	require.NoError(t, session.Accept(now))
	assert.Equal(t, StatusActive, session.Status)
	require.NotNil(t, session.AnsweredAt)
	assert.Equal(t, now, *session.AnsweredAt)
}

func TestCallSession_Accept_NotRinging_Error(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	session.Status = StatusEnded

	err := session.Accept(time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCallSession_Decline_RefundsFullHold(t *testing.T) {
	session := newRingingSession("1.50", "90.00")

	require.NoError(t, session.Decline(time.Now().UTC()))
	assert.Equal(t, StatusDeclined, session.Status)
	assert.True(t, session.RefundedAmount.Equal(session.HoldAmount))
}

func TestCallSession_Miss_RefundsFullHold(t *testing.T) {
	session := newRingingSession("1.50", "90.00")

	require.NoError(t, session.Miss(time.Now().UTC()))
	assert.Equal(t, StatusMissed, session.Status)
	assert.True(t, session.RefundedAmount.Equal(session.HoldAmount))
}

func TestCallSession_RingExpired(t *testing.T) {
	session := newRingingSession("1.50", "90.00")

	assert.False(t, session.RingExpired(session.RingDeadline.Add(-time.Second)))
	assert.True(t, session.RingExpired(session.RingDeadline.Add(time.Second)))

	session.Status = StatusActive
	assert.False(t, session.RingExpired(session.RingDeadline.Add(time.Second)))
}

func TestCallSession_End_ChargesStartedMinute(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	answered := time.Now().UTC()
	require.NoError(t, session.Accept(answered))

	// 2 minutes 30 seconds on the line bills 3 minutes
	settlement, err := session.End(answered.Add(2*time.Minute + 30*time.Second))
	require.NoError(t, err)

	assert.Equal(t, 3, settlement.BilledMinutes)
	assert.True(t, settlement.Debit.Equal(decimal.RequireFromString("4.50")))
	assert.True(t, settlement.Refund.Equal(decimal.RequireFromString("85.50")))
	assert.Equal(t, StatusEnded, session.Status)
}

func TestCallSession_End_ExactMinutes(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	answered := time.Now().UTC()
	require.NoError(t, session.Accept(answered))

	settlement, err := session.End(answered.Add(2 * time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 2, settlement.BilledMinutes)
	assert.True(t, settlement.Debit.Equal(decimal.RequireFromString("3.00")))
}

func TestCallSession_End_InstantHangupBillsOneMinute(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	answered := time.Now().UTC()
	require.NoError(t, session.Accept(answered))

	settlement, err := session.End(answered)
	require.NoError(t, err)

	assert.Equal(t, 1, settlement.BilledMinutes)
	assert.True(t, settlement.Debit.Equal(decimal.RequireFromString("1.50")))
}

func TestCallSession_End_DebitCappedAtHold(t *testing.T) {
	session := newRingingSession("1.50", "3.00")
	answered := time.Now().UTC()
	require.NoError(t, session.Accept(answered))

	settlement, err := session.End(answered.Add(10 * time.Minute))
	require.NoError(t, err)

	assert.True(t, settlement.Debit.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, settlement.Refund.IsZero())
}

func TestCallSession_End_SettlementSumsToHold(t *testing.T) {
	session := newRingingSession("2.25", "135.00")
	answered := time.Now().UTC()
	require.NoError(t, session.Accept(answered))

	settlement, err := session.End(answered.Add(7*time.Minute + 12*time.Second))
	require.NoError(t, err)

	assert.True(t, settlement.Debit.Add(settlement.Refund).Equal(session.HoldAmount))
}

func TestCallSession_End_NotActive_Error(t *testing.T) {
	session := newRingingSession("1.50", "90.00")

	_, err := session.End(time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCallSession_Terminal(t *testing.T) {
	session := newRingingSession("1.50", "90.00")
	assert.False(t, session.Terminal())

	for _, status := range []string{StatusDeclined, StatusMissed, StatusEnded} {
		session.Status = status
		assert.True(t, session.Terminal(), status)
	}
}
