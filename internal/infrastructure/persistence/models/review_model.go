package models

import (
	"time"

	"github.com/xaosao/xaosao-service/internal/domain/reviews"
)

// ReviewModel is the GORM database model for reviews. The unique index on
// BookingID enforces one review per booking.
type ReviewModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	CustomerID      string    `gorm:"not null;type:uuid;index"`
	CompanionID     string    `gorm:"not null;type:uuid;index"`
	BookingID       *string   `gorm:"type:uuid;uniqueIndex"`
	Rating          int       `gorm:"not null"`
	Comment         string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts GORM model to domain entity
func (m *ReviewModel) ToDomain() *reviews.Review {
	return &reviews.Review{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CustomerID:      m.CustomerID,
		CompanionID:     m.CompanionID,
		BookingID:       m.BookingID,
		Rating:          m.Rating,
		Comment:         m.Comment,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReviewModel) FromDomain(r *reviews.Review) {
	m.ID = r.ID
	m.DateTimeCreated = r.DateTimeCreated
	m.CustomerID = r.CustomerID
	m.CompanionID = r.CompanionID
	m.BookingID = r.BookingID
	m.Rating = r.Rating
	m.Comment = r.Comment
}
