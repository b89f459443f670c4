package profiles

import (
	"context"
)

// ProfileService defines methods for reading and updating profiles.
type ProfileService interface {
	// GetCustomer retrieves the customer's own profile.
	GetCustomer(ctx context.Context, customerID string) (*CustomerProfile, error)

	// UpdateCustomer applies profile edits and returns the updated profile.
	UpdateCustomer(ctx context.Context, profile *CustomerProfile) (*CustomerProfile, error)

	// GetCompanion retrieves a companion profile by ID.
	GetCompanion(ctx context.Context, companionID string) (*CompanionProfile, error)

	// UploadAvatar pushes the image bytes to the CDN and stores the returned
	// URL on the customer profile.
	UploadAvatar(ctx context.Context, customerID, fileName string, data []byte) (*CustomerProfile, error)
}

// DiscoverService defines methods for profile browsing.
type DiscoverService interface {
	// Discover lists companions the customer has not interacted with yet,
	// honoring the query filters.
	Discover(ctx context.Context, customerID string, query *CompanionQuery) ([]*CompanionProfile, error)

	// Matches lists companions with a mutual like.
	Matches(ctx context.Context, customerID string) ([]*CompanionProfile, error)

	// Friends lists companions the customer marked as friends.
	Friends(ctx context.Context, customerID string) ([]*CompanionProfile, error)
}

// InteractionService defines methods for like/pass/friend reactions.
type InteractionService interface {
	// React records a reaction, replacing any previous one for the pair.
	React(ctx context.Context, customerID, companionID, kind string) (*Interaction, error)
}

// ProfileRepository defines the persistence interface for profiles.
type ProfileRepository interface {
	CreateCustomer(ctx context.Context, profile *CustomerProfile) error
	GetCustomerByID(ctx context.Context, customerID string) (*CustomerProfile, error)
	UpdateCustomerByID(ctx context.Context, profile *CustomerProfile) error
	CreateCompanion(ctx context.Context, profile *CompanionProfile) error
	GetCompanionByID(ctx context.Context, companionID string) (*CompanionProfile, error)
	// ListCompanions lists companions matching the query, excluding the IDs in
	// excludeIDs (the customer's already-interacted companions).
	ListCompanions(ctx context.Context, query *CompanionQuery, excludeIDs []string) ([]*CompanionProfile, error)
	// ListCompanionsByIDs fetches companions by ID, preserving no particular order.
	ListCompanionsByIDs(ctx context.Context, ids []string) ([]*CompanionProfile, error)
}

// InteractionRepository defines the persistence interface for interactions.
type InteractionRepository interface {
	// Upsert inserts the interaction or replaces the existing row for the
	// same (customer, companion) pair.
	Upsert(ctx context.Context, interaction *Interaction) error
	// ListByCustomer lists all interactions of a customer, optionally
	// filtered by kind (empty kind means all).
	ListByCustomer(ctx context.Context, customerID, kind string) ([]*Interaction, error)
	// ListLikedBy lists companion IDs that liked the customer back.
	ListLikedBy(ctx context.Context, customerID string) ([]string, error)
	// UpsertCompanionLike records a companion's like of a customer. The
	// companion side of the product writes these; here it backs seeding and
	// match derivation.
	UpsertCompanionLike(ctx context.Context, companionID, customerID string) error
}
