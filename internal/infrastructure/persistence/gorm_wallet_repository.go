package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

type gormWalletRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWalletRepository creates a new GORM-based WalletRepository implementation
func NewGormWalletRepository(db *gorm.DB, logger logger.Logger) (wallet.WalletRepository, error) {
	return &gormWalletRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WalletModel{}
	model.FromDomain(w)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	r.logger.Info("Created wallet with id ", w.ID)
	return nil
}

func (r *gormWalletRepository) GetByCustomerID(ctx context.Context, customerID string) (*wallet.Wallet, error) {
	var model models.WalletModel
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to fetch wallet: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormWalletRepository) ListEntries(ctx context.Context, walletID string, query *wallet.LedgerQuery) ([]*wallet.LedgerEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.LedgerEntryModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Where("wallet_id = ?", walletID).
		Order("date_time_created desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}

	domainList := make([]*wallet.LedgerEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormWalletRepository) ApplyEntry(ctx context.Context, walletID string, entry *wallet.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyEntryTx(tx, walletID, entry)
	})
}

// applyEntryTx applies one ledger entry to a wallet inside the given
// transaction: credit/refund entries add to the balance, debit/hold entries
// subtract. The wallet row is locked for the duration; a subtracting entry
// that would overdraft fails with wallet.ErrInsufficientBalance.
func applyEntryTx(tx *gorm.DB, walletID string, entry *wallet.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var model models.WalletModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", walletID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wallet.ErrWalletNotFound
		}
		return fmt.Errorf("failed to fetch wallet: %w", err)
	}

	balance := model.Balance
	switch entry.Kind {
	case wallet.EntryCredit, wallet.EntryRefund:
		balance = balance.Add(entry.Amount)
	case wallet.EntryDebit, wallet.EntryHold:
		balance = balance.Sub(entry.Amount)
		if balance.IsNegative() {
			return wallet.ErrInsufficientBalance
		}
	default:
		return fmt.Errorf("unsupported entry kind: %s", entry.Kind)
	}

	if err := tx.Model(&models.WalletModel{}).
		Where("id = ?", walletID).
		Update("balance", balance).Error; err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	entryModel := &models.LedgerEntryModel{}
	entryModel.FromDomain(entry)
	if err := tx.Create(entryModel).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}
