package auth

import (
	"context"
	"sync"
	"time"
)

type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given JWT ID (jti) is blacklisted.
	IsBlacklisted(jti string) (bool, error)
	// AddToBlacklist adds the given JWT ID (jti) to the blacklist with an expiration time.
	AddToBlacklist(jti string, exp time.Time) error
}

type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex
}

// NewInMemoryBlacklistStore creates a store that drops expired entries every
// interval until ctx is done.
func NewInMemoryBlacklistStore(ctx context.Context, interval time.Duration) *InMemoryBlacklistStore {
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go periodiclyCleanUp(ctx, store, interval)
	return store
}

func periodiclyCleanUp(ctx context.Context, store *InMemoryBlacklistStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.CleanUpExpired()
		}
	}
}

func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for jti, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, jti)
		}
	}
}

// IsBlacklisted reports whether jti was revoked and has not expired yet.
func (s *InMemoryBlacklistStore) IsBlacklisted(jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, exists := s.blacklist[jti]
	return exists && exp.After(time.Now()), nil
}

func (s *InMemoryBlacklistStore) AddToBlacklist(jti string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[jti] = exp
	return nil
}
