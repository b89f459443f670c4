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

	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	pkgTesting "github.com/xaosao/xaosao-service/internal/pkg/testing"
)

func createReviewRepo(t *testing.T, tc *TestContext) reviews.ReviewRepository {
	t.Helper()

	repo, err := NewGormReviewRepository(tc.DB, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)
	return repo
}

func newReview(companionID string, rating int) *reviews.Review {
	return &reviews.Review{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      uuid.NewString(),
		CompanionID:     companionID,
		Rating:          rating,
	}
}

func TestReviewRepository_AverageRating(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	repo := createReviewRepo(t, tc)

	companion := CreateTestCompanion(t, tc, "Bangkok")

	require.NoError(t, repo.Create(context.Background(), newReview(companion.ID, 5)))
	require.NoError(t, repo.Create(context.Background(), newReview(companion.ID, 4)))

	avg, err := repo.AverageRating(context.Background(), companion.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 0.001)
}

func TestReviewRepository_AverageRating_NoReviews_Zero(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	repo := createReviewRepo(t, tc)

	avg, err := repo.AverageRating(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestReviewRepository_GetByBookingID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	repo := createReviewRepo(t, tc)

	companion := CreateTestCompanion(t, tc, "Bangkok")
	bookingID := uuid.NewString()
	review := newReview(companion.ID, 5)
	review.BookingID = &bookingID
	require.NoError(t, repo.Create(context.Background(), review))

	found, err := repo.GetByBookingID(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	_, err = repo.GetByBookingID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, reviews.ErrReviewNotFound)
}

func TestReviewRepository_ListByCompanion_NewestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	repo := createReviewRepo(t, tc)

	companion := CreateTestCompanion(t, tc, "Bangkok")

	older := newReview(companion.ID, 3)
	older.DateTimeCreated = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(context.Background(), older))

	newer := newReview(companion.ID, 5)
	require.NoError(t, repo.Create(context.Background(), newer))

	list, err := repo.ListByCompanion(context.Background(), companion.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}
