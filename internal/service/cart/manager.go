package cart

import (
	"sync"

	"shopfront/internal/domain"
)

// Manager keys ephemeral in-memory carts by session id. Carts exist only for
// the lifetime of the process; a successful checkout clears the session's
// cart.
type Manager struct {
	mu    sync.Mutex
	carts map[string][]domain.CartEntry
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string][]domain.CartEntry)}
}

// Get returns a copy of the session's cart.
func (m *Manager) Get(sessionID string) []domain.CartEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartEntry(nil), m.carts[sessionID]...)
}

// Add merges one unit of productID into the session's cart and returns the
// updated entries.
func (m *Manager) Add(sessionID, productID string) []domain.CartEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := Add(m.carts[sessionID], productID)
	m.carts[sessionID] = next
	return append([]domain.CartEntry(nil), next...)
}

// Update applies a quantity delta to an entry in the session's cart.
func (m *Manager) Update(sessionID, productID string, delta int) []domain.CartEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := UpdateQty(m.carts[sessionID], productID, delta)
	m.carts[sessionID] = next
	return append([]domain.CartEntry(nil), next...)
}

// Clear drops the session's cart.
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
