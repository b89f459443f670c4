package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/connector"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// TopUpTTL is how long a pending top-up stays confirmable.
const TopUpTTL = 15 * time.Minute

// walletService implements the WalletService interface
type walletService struct {
	walletRepo    wallet.WalletRepository
	topUpRepo     wallet.TopUpRepository
	slipConnector connector.SlipConnector
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewWalletService creates a new walletService instance
func NewWalletService(
	walletRepo wallet.WalletRepository,
	topUpRepo wallet.TopUpRepository,
	slipConnector connector.SlipConnector,
	metrics *metrics.Metrics,
	logger logger.Logger,
) (wallet.WalletService, error) {
	return &walletService{
		walletRepo:    walletRepo,
		topUpRepo:     topUpRepo,
		slipConnector: slipConnector,
		metrics:       metrics,
		logger:        logger,
	}, nil
}

// Get retrieves the customer's wallet, creating an empty one on first access.
func (s *walletService) Get(ctx context.Context, customerID string) (*wallet.Wallet, error) {
	w, err := s.walletRepo.GetByCustomerID(ctx, customerID)
	if err == nil {
		return w, nil
	}
	if err != wallet.ErrWalletNotFound {
		return nil, fmt.Errorf("%w", err)
	}

	w = &wallet.Wallet{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      customerID,
		Currency:        DefaultCurrency,
		Balance:         decimal.Zero,
	}
	if err := s.walletRepo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Created wallet %s for customer %s", w.ID, customerID))
	return w, nil
}

func (s *walletService) History(ctx context.Context, customerID string, query *wallet.LedgerQuery) ([]*wallet.LedgerEntry, error) {
	if query == nil {
		query = wallet.NewLedgerQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.walletRepo.ListEntries(ctx, w.ID, query)
}

// RequestTopUp creates a pending top-up and renders the slip QR the customer
// pays against. Nothing is credited until the slip is confirmed.
func (s *walletService) RequestTopUp(ctx context.Context, customerID string, amount decimal.Decimal) (*wallet.TopUp, []byte, error) {
	w, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	topUp := &wallet.TopUp{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		WalletID:        w.ID,
		Amount:          amount,
		Status:          wallet.TopUpPending,
		ExpiresAt:       now.Add(TopUpTTL),
	}
	if err := topUp.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	if err := s.topUpRepo.Create(ctx, topUp); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	png, err := s.slipConnector.GenerateQR(topUp.ID, amount, w.Currency)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Created top-up %s for wallet %s, amount %s", topUp.ID, w.ID, amount))
	return topUp, png, nil
}

// ConfirmTopUp credits the wallet for the slip. Confirming the same top-up
// twice credits once and returns the stored row.
func (s *walletService) ConfirmTopUp(ctx context.Context, topUpID, slipRef string) (*wallet.TopUp, error) {
	topUp, err := s.topUpRepo.GetByID(ctx, topUpID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	credit := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        topUp.WalletID,
		Kind:            wallet.EntryCredit,
		Amount:          topUp.Amount,
		RefKind:         wallet.RefTopUp,
		RefID:           topUp.ID,
		Note:            "top-up confirmed",
	}

	completed, err := s.topUpRepo.Complete(ctx, topUpID, slipRef, credit)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.metrics.TopUpsConfirmed.Inc()
	s.logger.Info(fmt.Sprintf("Confirmed top-up %s, credited %s", topUpID, topUp.Amount))
	return completed, nil
}

// fundsService implements the FundsService interface
type fundsService struct {
	walletRepo wallet.WalletRepository
	logger     logger.Logger
}

// NewFundsService creates a new fundsService instance
func NewFundsService(walletRepo wallet.WalletRepository, logger logger.Logger) (wallet.FundsService, error) {
	return &fundsService{
		walletRepo: walletRepo,
		logger:     logger,
	}, nil
}

func (s *fundsService) Debit(ctx context.Context, customerID string, amount decimal.Decimal, refKind, refID, note string) (*wallet.LedgerEntry, error) {
	return s.apply(ctx, customerID, wallet.EntryDebit, amount, refKind, refID, note)
}

func (s *fundsService) Credit(ctx context.Context, customerID string, amount decimal.Decimal, refKind, refID, note string) (*wallet.LedgerEntry, error) {
	return s.apply(ctx, customerID, wallet.EntryCredit, amount, refKind, refID, note)
}

func (s *fundsService) apply(ctx context.Context, customerID, kind string, amount decimal.Decimal, refKind, refID, note string) (*wallet.LedgerEntry, error) {
	w, err := s.walletRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	entry := &wallet.LedgerEntry{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		WalletID:        w.ID,
		Kind:            kind,
		Amount:          amount,
		RefKind:         refKind,
		RefID:           refID,
		Note:            note,
	}
	if err := s.walletRepo.ApplyEntry(ctx, w.ID, entry); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Applied %s of %s to wallet %s", kind, amount, w.ID))
	return entry, nil
}
