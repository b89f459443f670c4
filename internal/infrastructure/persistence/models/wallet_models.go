package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// WalletModel is the GORM database model for wallets
type WalletModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null"`
	CustomerID      string          `gorm:"not null;type:uuid;uniqueIndex"`
	Currency        string          `gorm:"not null;type:varchar(3)"`
	Balance         decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
}

// TableName specifies the table name for GORM
func (WalletModel) TableName() string {
	return "wallets"
}

// ToDomain converts GORM model to domain entity
func (m *WalletModel) ToDomain() *wallet.Wallet {
	return &wallet.Wallet{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CustomerID:      m.CustomerID,
		Currency:        m.Currency,
		Balance:         m.Balance,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WalletModel) FromDomain(w *wallet.Wallet) {
	m.ID = w.ID
	m.DateTimeCreated = w.DateTimeCreated
	m.CustomerID = w.CustomerID
	m.Currency = w.Currency
	m.Balance = w.Balance
}

// LedgerEntryModel is the GORM database model for ledger entries
type LedgerEntryModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null;index"`
	WalletID        string          `gorm:"not null;type:uuid;index"`
	Kind            string          `gorm:"not null;type:varchar(20)"`
	Amount          decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	RefKind         string          `gorm:"not null;type:varchar(20)"`
	RefID           string          `gorm:"type:uuid;index"`
	Note            string          `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts GORM model to domain entity
func (m *LedgerEntryModel) ToDomain() *wallet.LedgerEntry {
	return &wallet.LedgerEntry{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		WalletID:        m.WalletID,
		Kind:            m.Kind,
		Amount:          m.Amount,
		RefKind:         m.RefKind,
		RefID:           m.RefID,
		Note:            m.Note,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LedgerEntryModel) FromDomain(e *wallet.LedgerEntry) {
	m.ID = e.ID
	m.DateTimeCreated = e.DateTimeCreated
	m.WalletID = e.WalletID
	m.Kind = e.Kind
	m.Amount = e.Amount
	m.RefKind = e.RefKind
	m.RefID = e.RefID
	m.Note = e.Note
}

// TopUpModel is the GORM database model for wallet top-ups
type TopUpModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null"`
	WalletID        string          `gorm:"not null;type:uuid;index"`
	Amount          decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	Status          string          `gorm:"not null;type:varchar(20);index"`
	SlipRef         string          `gorm:"type:varchar(255)"`
	ExpiresAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TopUpModel) TableName() string {
	return "top_ups"
}

// ToDomain converts GORM model to domain entity
func (m *TopUpModel) ToDomain() *wallet.TopUp {
	return &wallet.TopUp{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		WalletID:        m.WalletID,
		Amount:          m.Amount,
		Status:          m.Status,
		SlipRef:         m.SlipRef,
		ExpiresAt:       m.ExpiresAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TopUpModel) FromDomain(t *wallet.TopUp) {
	m.ID = t.ID
	m.DateTimeCreated = t.DateTimeCreated
	m.WalletID = t.WalletID
	m.Amount = t.Amount
	m.Status = t.Status
	m.SlipRef = t.SlipRef
	m.ExpiresAt = t.ExpiresAt
}
