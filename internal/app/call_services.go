package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// callService implements the CallService interface
type callService struct {
	callRepo    calls.CallRepository
	catalogRepo bookings.CatalogRepository
	walletRepo  wallet.WalletRepository
	settings    *config.CallSettings
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewCallService creates a new callService instance
func NewCallService(
	callRepo calls.CallRepository,
	catalogRepo bookings.CatalogRepository,
	walletRepo wallet.WalletRepository,
	settings *config.CallSettings,
	metrics *metrics.Metrics,
	logger logger.Logger,
) (calls.CallService, error) {
	return &callService{
		callRepo:    callRepo,
		catalogRepo: catalogRepo,
		walletRepo:  walletRepo,
		settings:    settings,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

// Initiate holds the maximum billable amount up front, so an active call can
// never run the wallet below zero.
func (s *callService) Initiate(ctx context.Context, customerID, serviceID string) (*calls.CallSession, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if svc.BillingType != bookings.BillingPerMinute {
		return nil, fmt.Errorf("%w: calls require a per-minute service, got %s", bookings.ErrUnknownBillingType, svc.BillingType)
	}

	w, err := s.walletRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	hold := svc.Rate.Mul(decimal.NewFromInt(int64(s.settings.MaxBillableMinutes)))
	session := &calls.CallSession{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		CustomerID:      customerID,
		CompanionID:     svc.CompanionID,
		ServiceID:       svc.ID,
		RatePerMinute:   svc.Rate,
		HoldAmount:      hold,
		Status:          calls.StatusRinging,
		RingDeadline:    now.Add(s.settings.RingTimeout()),
	}
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	holdEntry := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		WalletID:        w.ID,
		Kind:            wallet.EntryHold,
		Amount:          hold,
		RefKind:         wallet.RefCall,
		RefID:           session.ID,
		Note:            fmt.Sprintf("call hold %s", svc.Name),
	}

	if err := s.callRepo.CreateWithHold(ctx, session, holdEntry); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.metrics.CallsInitiated.Inc()
	s.logger.Info(fmt.Sprintf("Initiated call %s from customer %s, hold %s", session.ID, customerID, hold))
	return session, nil
}

func (s *callService) Status(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	return s.callRepo.GetByID(ctx, sessionID)
}

func (s *callService) Accept(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	session, err := s.callRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	if session.RingExpired(now) {
		return nil, fmt.Errorf("%w: accept after ring deadline", calls.ErrInvalidTransition)
	}
	if err := session.Accept(now); err != nil {
		return nil, err
	}

	if err := s.callRepo.Activate(ctx, session); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Call %s accepted", sessionID))
	return session, nil
}

func (s *callService) Decline(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	session, err := s.callRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	if err := session.Decline(now); err != nil {
		return nil, err
	}

	if err := s.release(ctx, session, now, "call declined"); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Call %s declined, hold %s released", sessionID, session.HoldAmount))
	return session, nil
}

// Missed handles a client-reported ring timeout. A session the sweeper (or a
// concurrent poll) already closed is returned as stored.
func (s *callService) Missed(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	session, err := s.callRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if session.Terminal() {
		return session, nil
	}

	now := time.Now().UTC()
	if err := session.Miss(now); err != nil {
		return nil, err
	}

	if err := s.release(ctx, session, now, "call missed"); err != nil {
		return nil, err
	}

	s.metrics.CallsMissed.WithLabelValues("client").Inc()
	s.logger.Info(fmt.Sprintf("Call %s missed, hold %s released", sessionID, session.HoldAmount))
	return session, nil
}

// End settles an active session. Ending an already-ended session returns the
// stored settlement without moving money again.
func (s *callService) End(ctx context.Context, sessionID string) (*calls.CallSession, error) {
	session, err := s.callRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if session.Status == calls.StatusEnded {
		return session, nil
	}

	now := time.Now().UTC()
	settlement, err := session.End(now)
	if err != nil {
		return nil, err
	}

	w, err := s.walletRepo.GetByCustomerID(ctx, session.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var debit, refund *wallet.LedgerEntry
	if settlement.Debit.IsPositive() {
		debit = &wallet.LedgerEntry{
			ID:              uuid.New().String(),
			DateTimeCreated: now,
			WalletID:        w.ID,
			Kind:            wallet.EntryDebit,
			Amount:          settlement.Debit,
			RefKind:         wallet.RefCall,
			RefID:           session.ID,
			Note:            fmt.Sprintf("call billed %d min", settlement.BilledMinutes),
		}
	}
	if settlement.Refund.IsPositive() {
		refund = &wallet.LedgerEntry{
			ID:              uuid.New().String(),
			DateTimeCreated: now,
			WalletID:        w.ID,
			Kind:            wallet.EntryRefund,
			Amount:          settlement.Refund,
			RefKind:         wallet.RefCall,
			RefID:           session.ID,
			Note:            "call hold remainder",
		}
	}

	if err := s.callRepo.Settle(ctx, session, debit, refund); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.metrics.CallsSettled.Inc()
	s.metrics.BilledMinutes.Add(float64(settlement.BilledMinutes))
	s.logger.Info(fmt.Sprintf("Call %s ended: %d min billed, debit %s, refund %s",
		sessionID, settlement.BilledMinutes, settlement.Debit, settlement.Refund))
	return session, nil
}

// SweepMissed closes every ringing session past its deadline. Sessions a
// concurrent accept or decline already moved are skipped by the repository's
// status guard.
func (s *callService) SweepMissed(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	expired, err := s.callRepo.ListRingingExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	swept := 0
	for _, session := range expired {
		if err := session.Miss(now); err != nil {
			continue
		}
		if err := s.release(ctx, session, now, "ring timeout"); err != nil {
			s.logger.Warn(fmt.Sprintf("Failed to sweep call %s: %v", session.ID, err))
			continue
		}
		s.metrics.CallsMissed.WithLabelValues("sweeper").Inc()
		swept++
	}

	s.metrics.CallRingSweeps.Inc()
	if swept > 0 {
		s.logger.Info(fmt.Sprintf("Swept %d missed calls", swept))
	}
	return swept, nil
}

func (s *callService) release(ctx context.Context, session *calls.CallSession, now time.Time, note string) error {
	w, err := s.walletRepo.GetByCustomerID(ctx, session.CustomerID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	refund := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		WalletID:        w.ID,
		Kind:            wallet.EntryRefund,
		Amount:          session.HoldAmount,
		RefKind:         wallet.RefCall,
		RefID:           session.ID,
		Note:            note,
	}

	if err := s.callRepo.Release(ctx, session, refund); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
