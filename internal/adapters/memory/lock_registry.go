package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// LockRegistry is a set of used (quote, device, day) keys.
//
// Keys from past days stay in the set until EvictBefore removes them.
type LockRegistry struct {
	mu   sync.RWMutex
	keys map[domain.LockKey]struct{}
}

// NewLockRegistry returns an empty registry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{keys: make(map[domain.LockKey]struct{})}
}

// IsLocked reports whether key has been used.
func (r *LockRegistry) IsLocked(_ context.Context, key domain.LockKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.keys[key]

	return ok
}

// Lock marks key as used. Idempotent.
func (r *LockRegistry) Lock(_ context.Context, key domain.LockKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys[key] = struct{}{}
}

// EvictBefore removes keys whose day is earlier than day.
func (r *LockRegistry) EvictBefore(_ context.Context, day string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0

	for k := range r.keys {
		if k.Before(day) {
			delete(r.keys, k)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored keys.
func (r *LockRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys)
}
