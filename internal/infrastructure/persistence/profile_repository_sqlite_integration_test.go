//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence/models"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
)

func newInteraction(customerID, companionID, kind string) *profiles.Interaction {
	return &profiles.Interaction{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      customerID,
		CompanionID:     companionID,
		Kind:            kind,
	}
}

func TestProfileRepository_ListCompanions_CityFilter(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	bkk := CreateTestCompanion(t, tc, "Bangkok")
	CreateTestCompanion(t, tc, "Chiang Mai")

	query := profiles.NewCompanionQuery()
	query.City = "Bangkok"
	list, err := tc.ProfileRepo.ListCompanions(context.Background(), query, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, bkk.ID, list[0].ID)
}

func TestProfileRepository_ListCompanions_OnlineFilter(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	online := CreateTestCompanion(t, tc, "Bangkok")
	offline := CreateTestCompanion(t, tc, "Bangkok")
	require.NoError(t, tc.DB.Model(&models.CompanionProfileModel{}).
		Where("id = ?", offline.ID).Update("online", false).Error)

	isOnline := true
	query := profiles.NewCompanionQuery()
	query.Online = &isOnline
	list, err := tc.ProfileRepo.ListCompanions(context.Background(), query, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, online.ID, list[0].ID)
}

func TestProfileRepository_ListCompanions_ExcludesIDs(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	seen := CreateTestCompanion(t, tc, "Bangkok")
	fresh := CreateTestCompanion(t, tc, "Bangkok")

	list, err := tc.ProfileRepo.ListCompanions(context.Background(), profiles.NewCompanionQuery(), []string{seen.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, fresh.ID, list[0].ID)
}

func TestProfileRepository_GetCompanionByID_Unknown_Error(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.ProfileRepo.GetCompanionByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestProfileRepository_UpdateCustomer(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	p := &profiles.CustomerProfile{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		DisplayName:     "Alice",
		City:            "Bangkok",
	}
	require.NoError(t, tc.ProfileRepo.CreateCustomer(context.Background(), p))

	p.DisplayName = "Alice B"
	p.City = "Phuket"
	require.NoError(t, tc.ProfileRepo.UpdateCustomerByID(context.Background(), p))

	fetched, err := tc.ProfileRepo.GetCustomerByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", fetched.DisplayName)
	assert.Equal(t, "Phuket", fetched.City)
}

func TestInteractionRepository_Upsert_ReplacesKind(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	companion := CreateTestCompanion(t, tc, "Bangkok")
	customerID := uuid.NewString()

	require.NoError(t, tc.InteractionRepo.Upsert(context.Background(), newInteraction(customerID, companion.ID, profiles.InteractionPass)))
	require.NoError(t, tc.InteractionRepo.Upsert(context.Background(), newInteraction(customerID, companion.ID, profiles.InteractionLike)))

	// the second reaction replaces the first rather than stacking
	list, err := tc.InteractionRepo.ListByCustomer(context.Background(), customerID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, profiles.InteractionLike, list[0].Kind)
}

func TestInteractionRepository_ListByCustomer_KindFilter(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	liked := CreateTestCompanion(t, tc, "Bangkok")
	passed := CreateTestCompanion(t, tc, "Bangkok")
	customerID := uuid.NewString()

	require.NoError(t, tc.InteractionRepo.Upsert(context.Background(), newInteraction(customerID, liked.ID, profiles.InteractionLike)))
	require.NoError(t, tc.InteractionRepo.Upsert(context.Background(), newInteraction(customerID, passed.ID, profiles.InteractionPass)))

	list, err := tc.InteractionRepo.ListByCustomer(context.Background(), customerID, profiles.InteractionLike)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, liked.ID, list[0].CompanionID)
}

func TestInteractionRepository_CompanionLikes(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	companion := CreateTestCompanion(t, tc, "Bangkok")
	customerID := uuid.NewString()

	require.NoError(t, tc.InteractionRepo.UpsertCompanionLike(context.Background(), companion.ID, customerID))
	// liking twice keeps a single row
	require.NoError(t, tc.InteractionRepo.UpsertCompanionLike(context.Background(), companion.ID, customerID))

	ids, err := tc.InteractionRepo.ListLikedBy(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, []string{companion.ID}, ids)
}
