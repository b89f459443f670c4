//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
)

func TestMemorySessionStore_PutAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1", "customer-1", time.Minute))

	customerID, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "customer-1", customerID)
}

func TestMemorySessionStore_Get_Unknown_Error(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, customers.ErrSessionNotFound)
}

func TestMemorySessionStore_Get_Expired_Error(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1", "customer-1", -time.Second))

	_, err := store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, customers.ErrSessionNotFound)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1", "customer-1", time.Minute))
	require.NoError(t, store.Delete(ctx, "token-1"))

	_, err := store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, customers.ErrSessionNotFound)

	// deleting an unknown token is not an error
	assert.NoError(t, store.Delete(ctx, "token-1"))
}
