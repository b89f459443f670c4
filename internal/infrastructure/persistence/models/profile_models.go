package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
)

// CustomerProfileModel is the GORM database model for customer profiles
type CustomerProfileModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	DisplayName     string    `gorm:"not null;type:varchar(100)"`
	Bio             string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100);index"`
	AvatarURL       string    `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// ToDomain converts GORM model to domain entity
func (m *CustomerProfileModel) ToDomain() *profiles.CustomerProfile {
	return &profiles.CustomerProfile{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		DisplayName:     m.DisplayName,
		Bio:             m.Bio,
		City:            m.City,
		AvatarURL:       m.AvatarURL,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CustomerProfileModel) FromDomain(p *profiles.CustomerProfile) {
	m.ID = p.ID
	m.DateTimeCreated = p.DateTimeCreated
	m.DisplayName = p.DisplayName
	m.Bio = p.Bio
	m.City = p.City
	m.AvatarURL = p.AvatarURL
}

// CompanionProfileModel is the GORM database model for companion profiles.
// PhotoURLs is stored as a JSON column.
type CompanionProfileModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	DisplayName     string    `gorm:"not null;type:varchar(100)"`
	Bio             string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100);index"`
	AvatarURL       string    `gorm:"type:varchar(500)"`
	PhotoURLs       datatypes.JSON
	Online          bool    `gorm:"not null;default:false;index"`
	Age             int     `gorm:"default:0"`
	HeightCM        int     `gorm:"default:0"`
	RatingAvg       float64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (CompanionProfileModel) TableName() string {
	return "companion_profiles"
}

// ToDomain converts GORM model to domain entity
func (m *CompanionProfileModel) ToDomain() *profiles.CompanionProfile {
	var photos []string
	if len(m.PhotoURLs) > 0 {
		// A malformed column yields an empty slice rather than an error.
		_ = json.Unmarshal(m.PhotoURLs, &photos)
	}
	return &profiles.CompanionProfile{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		DisplayName:     m.DisplayName,
		Bio:             m.Bio,
		City:            m.City,
		AvatarURL:       m.AvatarURL,
		PhotoURLs:       photos,
		Online:          m.Online,
		Age:             m.Age,
		HeightCM:        m.HeightCM,
		RatingAvg:       m.RatingAvg,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CompanionProfileModel) FromDomain(p *profiles.CompanionProfile) error {
	photos, err := json.Marshal(p.PhotoURLs)
	if err != nil {
		return err
	}
	m.ID = p.ID
	m.DateTimeCreated = p.DateTimeCreated
	m.DisplayName = p.DisplayName
	m.Bio = p.Bio
	m.City = p.City
	m.AvatarURL = p.AvatarURL
	m.PhotoURLs = photos
	m.Online = p.Online
	m.Age = p.Age
	m.HeightCM = p.HeightCM
	m.RatingAvg = p.RatingAvg
	return nil
}

// InteractionModel is the GORM database model for customer reactions. The
// unique index enforces one row per (customer, companion) pair.
type InteractionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	CustomerID      string    `gorm:"not null;type:uuid;uniqueIndex:idx_interactions_pair"`
	CompanionID     string    `gorm:"not null;type:uuid;uniqueIndex:idx_interactions_pair"`
	Kind            string    `gorm:"not null;type:varchar(20);index"`
}

// TableName specifies the table name for GORM
func (InteractionModel) TableName() string {
	return "interactions"
}

// ToDomain converts GORM model to domain entity
func (m *InteractionModel) ToDomain() *profiles.Interaction {
	return &profiles.Interaction{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		CustomerID:      m.CustomerID,
		CompanionID:     m.CompanionID,
		Kind:            m.Kind,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InteractionModel) FromDomain(i *profiles.Interaction) {
	m.ID = i.ID
	m.DateTimeCreated = i.DateTimeCreated
	m.CustomerID = i.CustomerID
	m.CompanionID = i.CompanionID
	m.Kind = i.Kind
}

// CompanionLikeModel records companion → customer likes used for match
// derivation.
type CompanionLikeModel struct {
	CompanionID     string    `gorm:"primaryKey;type:uuid"`
	CustomerID      string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CompanionLikeModel) TableName() string {
	return "companion_likes"
}
