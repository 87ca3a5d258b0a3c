package cart

import (
	"context"
	"sync"
)

// Store keeps one cart per owner.
type Store interface {
	// Get returns the owner's cart, or a new empty one.
	Get(ctx context.Context, owner string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, owner string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string]Cart{}}
}

func (m *MemoryStore) Get(ctx context.Context, owner string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[owner]
	if !ok {
		return New(owner), nil
	}
	c.Items = append([]Item(nil), c.Items...)
	return &c, nil
}

func (m *MemoryStore) Save(ctx context.Context, c *Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	cp.Items = append([]Item(nil), c.Items...)
	m.carts[c.Owner] = cp
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, owner)
	return nil
}

// Clear drops every cart.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts = map[string]Cart{}
}
