package cart

import (
	"context"
	"sync"

	"github.com/drinkshop/backend/internal/repositories/slot"
)

// Manager hands out one Store per cart owner (session). Stores are
// created lazily, loading their slot on first use, and cached for the
// life of the process.
type Manager struct {
	mu      sync.Mutex
	storage slot.Storage
	stores  map[string]*Store
}

func NewManager(storage slot.Storage) *Manager {
	return &Manager{
		storage: storage,
		stores:  make(map[string]*Store),
	}
}

// Store returns the cart store for the given owner key
func (m *Manager) Store(ctx context.Context, owner string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[owner]; ok {
		return store
	}
	store := NewStore(ctx, m.storage, owner)
	m.stores[owner] = store
	return store
}
