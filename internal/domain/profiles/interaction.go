package profiles

import (
	"errors"
	"fmt"
	"time"
)

// Interaction kind constants
const (
	InteractionLike   = "like"
	InteractionPass   = "pass"
	InteractionFriend = "friend"
)

// ErrUnknownInteraction is returned for a kind outside like/pass/friend.
var ErrUnknownInteraction = errors.New("unknown interaction kind")

// Interaction records a customer's reaction to a companion. There is at most
// one row per (customer, companion) pair; a later reaction replaces the
// earlier one.
type Interaction struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	CustomerID      string    `validate:"required,uuid4"`
	CompanionID     string    `validate:"required,uuid4"`
	Kind            string    `validate:"required,oneof=like pass friend"`
}

// Validate for validating Interaction struct
func (i *Interaction) Validate() error {
	if err := validateStruct(i); err != nil {
		return err
	}
	switch i.Kind {
	case InteractionLike, InteractionPass, InteractionFriend:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownInteraction, i.Kind)
	}
}
