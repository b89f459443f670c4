// Package cache provides the session token stores backing authentication:
// a redis-backed store for deployments and an in-memory store for
// development and tests.
package cache

import (
	"context"
	"time"
)

// SessionStore maps opaque session tokens to customer IDs with a TTL.
type SessionStore interface {
	// Put stores the token for the customer with the given lifetime.
	Put(ctx context.Context, token, customerID string, ttl time.Duration) error

	// Get resolves the token to a customer ID. A missing or expired token
	// returns customers.ErrSessionNotFound.
	Get(ctx context.Context, token string) (string, error)

	// Delete removes the token; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
