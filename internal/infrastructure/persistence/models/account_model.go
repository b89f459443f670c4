package models

import (
	"time"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
)

// AccountModel is the GORM database model for customer accounts
type AccountModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	Email           string    `gorm:"not null;type:varchar(255);uniqueIndex"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Active          bool      `gorm:"not null;default:true"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *customers.Account {
	return &customers.Account{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Active:          m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *customers.Account) {
	m.ID = a.ID
	m.DateTimeCreated = a.DateTimeCreated
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.Active = a.Active
}
