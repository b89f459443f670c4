package cache

import (
	"context"
	"sync"
	"time"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
)

type memoryEntry struct {
	customerID string
	expiresAt  time.Time
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemorySessionStore creates an in-memory SessionStore. Expired entries
// are dropped lazily on read.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]memoryEntry),
	}
}

func (s *memorySessionStore) Put(_ context.Context, token, customerID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{
		customerID: customerID,
		expiresAt:  time.Now().Add(ttl),
	}
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", customers.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", customers.ErrSessionNotFound
	}
	return entry.customerID, nil
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
