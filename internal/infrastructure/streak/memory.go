// Package streak keeps the consecutive-miss counter of the chat matcher
// between requests.
package streak

import (
	"context"
	"sync"

	"careerbot/backend/internal/domain/chat"
)

// MemoryStore holds streaks in process memory. Counters vanish on restart.
type MemoryStore struct {
	mu      sync.Mutex
	streaks map[string]int
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streaks: make(map[string]int)}
}

var _ chat.StreakStore = (*MemoryStore)(nil)

// Load returns the streak for scope, zero when unseen.
func (s *MemoryStore) Load(_ context.Context, scope string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaks[scope], nil
}

// Store records streak for scope. Zero forgets the scope.
func (s *MemoryStore) Store(_ context.Context, scope string, streak int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if streak <= 0 {
		delete(s.streaks, scope)
		return nil
	}
	s.streaks[scope] = streak
	return nil
}
