package cart

import (
	"context"
	"sync"
	"time"
)

// Claimer hands out one-shot keys so a resubmitted checkout is refused.
// Release gives a key back when the checkout it guarded had no effect.
type Claimer interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// MemoryClaimer is an in-process Claimer. Keys are forgotten after ttl.
type MemoryClaimer struct {
	mu   sync.Mutex
	ttl  time.Duration
	keys map[string]time.Time
}

func NewMemoryClaimer(ttl time.Duration) *MemoryClaimer {
	return &MemoryClaimer{ttl: ttl, keys: map[string]time.Time{}}
}

func (m *MemoryClaimer) Claim(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for k, exp := range m.keys {
		if now.After(exp) {
			delete(m.keys, k)
		}
	}
	if _, taken := m.keys[key]; taken {
		return false, nil
	}
	m.keys[key] = now.Add(m.ttl)
	return true, nil
}

func (m *MemoryClaimer) Release(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}
