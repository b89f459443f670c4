package profiles

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrProfileNotFound is returned when a profile lookup misses.
var ErrProfileNotFound = errors.New("profile not found")

// CustomerProfile entity
type CustomerProfile struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	DisplayName     string    `validate:"required,min=1,max=100"`
	Bio             string    `validate:"max=2000"`
	City            string    `validate:"max=100"`
	AvatarURL       string    `validate:"omitempty,url"`
}

// Validate for validating CustomerProfile struct
func (p *CustomerProfile) Validate() error {
	return validateStruct(p)
}

// CompanionProfile entity. Companions are the bookable side of the
// marketplace; Online mirrors the presence flag the discover page filters on.
type CompanionProfile struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	DisplayName     string    `validate:"required,min=1,max=100"`
	Bio             string    `validate:"max=2000"`
	City            string    `validate:"max=100"`
	AvatarURL       string    `validate:"omitempty,url"`
	PhotoURLs       []string  `validate:"dive,url"`
	Online          bool
	Age             int     `validate:"omitempty,min=18,max=99"`
	HeightCM        int     `validate:"omitempty,min=100,max=250"`
	RatingAvg       float64 `validate:"min=0,max=5"`
}

// Validate for validating CompanionProfile struct
func (p *CompanionProfile) Validate() error {
	return validateStruct(p)
}

// CompanionQuery carries the filter, sorting and pagination options for
// companion listings.
type CompanionQuery struct {
	City      string `validate:"max=100"`
	Online    *bool
	Limit     int    `validate:"min=0,max=100"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created display_name rating_avg"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCompanionQuery creates a CompanionQuery with default pagination.
func NewCompanionQuery() *CompanionQuery {
	return &CompanionQuery{
		Limit:     20,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating CompanionQuery struct
func (q *CompanionQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
