package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// tokenEntry is a stored reset token with expiration
type tokenEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// InMemoryResetTokenStore implements shared.ResetTokenStore using an
// in-memory map. Suitable for single-instance deployments and testing.
// Consume deletes under the write lock, so a token can only be consumed
// once even under concurrent confirm calls.
type InMemoryResetTokenStore struct {
	mu        sync.RWMutex
	entries   map[string]tokenEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryResetTokenStore creates a new in-memory reset token store.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryResetTokenStore() *InMemoryResetTokenStore {
	store := &InMemoryResetTokenStore{
		entries:  make(map[string]tokenEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Put stores token -> userID with the given TTL
func (s *InMemoryResetTokenStore) Put(_ context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = tokenEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Consume returns the user id for the token and deletes it in the same step
func (s *InMemoryResetTokenStore) Consume(_ context.Context, token string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[token]
	if !exists {
		return uuid.Nil, false, nil
	}

	delete(s.entries, token)

	if time.Now().After(e.expiresAt) {
		return uuid.Nil, false, nil
	}

	return e.userID, true, nil
}

// Close stops the cleanup goroutine and releases resources.
// Safe to call multiple times.
func (s *InMemoryResetTokenStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (s *InMemoryResetTokenStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired entries from the store
func (s *InMemoryResetTokenStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryResetTokenStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryResetTokenStore implements ResetTokenStore
var _ shared.ResetTokenStore = (*InMemoryResetTokenStore)(nil)
