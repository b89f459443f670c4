package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/cache"
	"github.com/xaosao/xaosao-service/internal/pkg/auth"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// DefaultCurrency is the wallet currency assigned at registration.
const DefaultCurrency = "USD"

// accountService implements the AccountService interface
type accountService struct {
	accountRepo  customers.AccountRepository
	profileRepo  profiles.ProfileRepository
	walletRepo   wallet.WalletRepository
	sessionStore cache.SessionStore
	sessionTTL   time.Duration
	logger       logger.Logger
}

// NewAccountService creates a new accountService instance
func NewAccountService(
	accountRepo customers.AccountRepository,
	profileRepo profiles.ProfileRepository,
	walletRepo wallet.WalletRepository,
	sessionStore cache.SessionStore,
	sessionTTL time.Duration,
	logger logger.Logger,
) (customers.AccountService, error) {
	return &accountService{
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		walletRepo:   walletRepo,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}, nil
}

// Register creates the account together with its empty profile and wallet.
func (s *accountService) Register(ctx context.Context, email, password, displayName string) (*customers.Account, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	account := &customers.Account{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		Email:           strings.ToLower(email),
		PasswordHash:    hash,
		Active:          true,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	profile := &profiles.CustomerProfile{
		ID:              account.ID,
		DateTimeCreated: now,
		DisplayName:     displayName,
	}
	if err := s.profileRepo.CreateCustomer(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w := &wallet.Wallet{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
		CustomerID:      account.ID,
		Currency:        DefaultCurrency,
		Balance:         decimal.Zero,
	}
	if err := s.walletRepo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Registered account ", account.ID)
	return account, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, *customers.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", nil, customers.ErrInvalidCredentials
	}
	if !account.Active || !auth.CheckPassword(account.PasswordHash, password) {
		return "", nil, customers.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return "", nil, fmt.Errorf("%w", err)
	}
	if err := s.sessionStore.Put(ctx, token, account.ID, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Customer ", account.ID, " logged in")
	return token, account, nil
}

func (s *accountService) Resolve(ctx context.Context, token string) (string, error) {
	return s.sessionStore.Get(ctx, token)
}

func (s *accountService) Logout(ctx context.Context, token string) error {
	return s.sessionStore.Delete(ctx, token)
}
