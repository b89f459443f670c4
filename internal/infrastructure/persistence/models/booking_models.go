package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
)

// ServiceModel is the GORM database model for catalog services
type ServiceModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null"`
	CompanionID     string          `gorm:"not null;type:uuid;index"`
	Name            string          `gorm:"not null;type:varchar(100)"`
	BillingType     string          `gorm:"not null;type:varchar(20)"`
	Rate            decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	Active          bool            `gorm:"not null;default:true"`
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceModel) ToDomain() *bookings.Service {
	return &bookings.Service{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CompanionID:     m.CompanionID,
		Name:            m.Name,
		BillingType:     m.BillingType,
		Rate:            m.Rate,
		Active:          m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceModel) FromDomain(s *bookings.Service) {
	m.ID = s.ID
	m.DateTimeCreated = s.DateTimeCreated
	m.CompanionID = s.CompanionID
	m.Name = s.Name
	m.BillingType = s.BillingType
	m.Rate = s.Rate
	m.Active = s.Active
}

// ServiceVariantModel is the GORM database model for service variants
type ServiceVariantModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	ServiceID    string          `gorm:"not null;type:uuid;index"`
	Name         string          `gorm:"not null;type:varchar(100)"`
	SessionPrice decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
}

// TableName specifies the table name for GORM
func (ServiceVariantModel) TableName() string {
	return "service_variants"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceVariantModel) ToDomain() *bookings.ServiceVariant {
	return &bookings.ServiceVariant{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		Name:         m.Name,
		SessionPrice: m.SessionPrice,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceVariantModel) FromDomain(v *bookings.ServiceVariant) {
	m.ID = v.ID
	m.ServiceID = v.ServiceID
	m.Name = v.Name
	m.SessionPrice = v.SessionPrice
}

// BookingModel is the GORM database model for bookings
type BookingModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time       `gorm:"not null;index"`
	CustomerID      string          `gorm:"not null;type:uuid;index"`
	CompanionID     string          `gorm:"not null;type:uuid;index"`
	ServiceID       string          `gorm:"not null;type:uuid"`
	VariantID       *string         `gorm:"type:uuid"`
	BillingType     string          `gorm:"not null;type:varchar(20)"`
	Quantity        int             `gorm:"not null;default:0"`
	Price           decimal.Decimal `gorm:"not null;type:numeric(14,2)"`
	Status          string          `gorm:"not null;type:varchar(20);index"`
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	Note            string `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts GORM model to domain entity
func (m *BookingModel) ToDomain() *bookings.Booking {
	return &bookings.Booking{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CustomerID:      m.CustomerID,
		CompanionID:     m.CompanionID,
		ServiceID:       m.ServiceID,
		VariantID:       m.VariantID,
		BillingType:     m.BillingType,
		Quantity:        m.Quantity,
		Price:           m.Price,
		Status:          m.Status,
		ScheduledStart:  m.ScheduledStart,
		ScheduledEnd:    m.ScheduledEnd,
		Note:            m.Note,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingModel) FromDomain(b *bookings.Booking) {
	m.ID = b.ID
	m.DateTimeCreated = b.DateTimeCreated
	m.CustomerID = b.CustomerID
	m.CompanionID = b.CompanionID
	m.ServiceID = b.ServiceID
	m.VariantID = b.VariantID
	m.BillingType = b.BillingType
	m.Quantity = b.Quantity
	m.Price = b.Price
	m.Status = b.Status
	m.ScheduledStart = b.ScheduledStart
	m.ScheduledEnd = b.ScheduledEnd
	m.Note = b.Note
}
