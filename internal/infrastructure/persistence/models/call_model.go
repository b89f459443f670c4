package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/calls"
)

// CallSessionModel is the GORM database model for call sessions
type CallSessionModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null"`
	CustomerID      string          `gorm:"not null;type:uuid;index"`
	CompanionID     string          `gorm:"not null;type:uuid;index"`
	ServiceID       string          `gorm:"not null;type:uuid"`
	RatePerMinute   decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	HoldAmount      decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	Status          string          `gorm:"not null;type:varchar(20);index"`
	RingDeadline    time.Time       `gorm:"not null;index"`
	AnsweredAt      *time.Time
	EndedAt         *time.Time
	BilledMinutes   int             `gorm:"not null;default:0"`
	BilledAmount    decimal.Decimal `gorm:"not null;type:numeric(14,2);default:0"`
	RefundedAmount  decimal.Decimal `gorm:"not null;type:numeric(14,2);default:0"`
}

// TableName specifies the table name for GORM
func (CallSessionModel) TableName() string {
	return "call_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *CallSessionModel) ToDomain() *calls.CallSession {
	return &calls.CallSession{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CustomerID:      m.CustomerID,
		CompanionID:     m.CompanionID,
		ServiceID:       m.ServiceID,
		RatePerMinute:   m.RatePerMinute,
		HoldAmount:      m.HoldAmount,
		Status:          m.Status,
		RingDeadline:    m.RingDeadline,
		AnsweredAt:      m.AnsweredAt,
		EndedAt:         m.EndedAt,
		BilledMinutes:   m.BilledMinutes,
		BilledAmount:    m.BilledAmount,
		RefundedAmount:  m.RefundedAmount,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CallSessionModel) FromDomain(s *calls.CallSession) {
	m.ID = s.ID
	m.DateTimeCreated = s.DateTimeCreated
	m.CustomerID = s.CustomerID
	m.CompanionID = s.CompanionID
	m.ServiceID = s.ServiceID
	m.RatePerMinute = s.RatePerMinute
	m.HoldAmount = s.HoldAmount
	m.Status = s.Status
	m.RingDeadline = s.RingDeadline
	m.AnsweredAt = s.AnsweredAt
	m.EndedAt = s.EndedAt
	m.BilledMinutes = s.BilledMinutes
	m.BilledAmount = s.BilledAmount
	m.RefundedAmount = s.RefundedAmount
}
