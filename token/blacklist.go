package token

import (
	"sync"
	"time"
)

// Blacklist records revoked token IDs. It is a sibling collaborator of the
// guard: logout routes revocation events into it, but the guard itself does
// not consult it when renewing a session.
type Blacklist interface {
	Add(jti string, exp time.Time) error
	IsRevoked(jti string) bool
	Cleanup() // Remove expired entries
}

// InMemoryBlacklist is a simple in-memory implementation
type InMemoryBlacklist struct {
	revoked map[string]time.Time
	mu      sync.RWMutex
}

func NewInMemoryBlacklist() Blacklist {
	return &InMemoryBlacklist{
		revoked: make(map[string]time.Time),
	}
}

func (b *InMemoryBlacklist) Add(jti string, exp time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = exp
	return nil
}

func (b *InMemoryBlacklist) IsRevoked(jti string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.revoked[jti]
	return exists
}

func (b *InMemoryBlacklist) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	for jti, exp := range b.revoked {
		if now.After(exp) {
			delete(b.revoked, jti)
		}
	}
}
