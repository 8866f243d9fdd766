package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

// MemoryStore holds sites in memory with stable insertion order. Safe for
// concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	sites map[string]*domain.Site
	order []string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sites: make(map[string]*domain.Site),
	}
}

// Create adds a new site. An empty ID gets a generated one, written back to
// the caller's record so it can address the site afterwards.
func (m *MemoryStore) Create(site *domain.Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if site.ID == "" {
		site.ID = uuid.NewString()
	}
	if _, exists := m.sites[site.ID]; exists {
		return ErrDuplicateSite
	}

	m.sites[site.ID] = site.Clone()
	m.order = append(m.order, site.ID)
	return nil
}

// Update replaces the stored record matching site.ID. Position in the
// sequence is preserved.
func (m *MemoryStore) Update(site *domain.Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sites[site.ID]; !exists {
		return ErrSiteNotFound
	}
	m.sites[site.ID] = site.Clone()
	return nil
}

// Delete removes a site. Deleting an unknown ID is an error so callers can
// surface stale references.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sites[id]; !exists {
		return ErrSiteNotFound
	}
	delete(m.sites, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetCoordinates updates only the site's normalized position. Values are
// stored as given; clamping is the committing collaborator's concern.
func (m *MemoryStore) SetCoordinates(id string, coords domain.Coordinates) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	site, exists := m.sites[id]
	if !exists {
		return ErrSiteNotFound
	}
	site.Coordinates = coords
	return nil
}

// Get returns a copy of the site with the given ID.
func (m *MemoryStore) Get(id string) (*domain.Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	site, exists := m.sites[id]
	if !exists {
		return nil, ErrSiteNotFound
	}
	return site.Clone(), nil
}

// List returns copies of all sites in insertion order.
func (m *MemoryStore) List() []*domain.Site {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Site, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sites[id].Clone())
	}
	return out
}

// Len returns the number of stored sites.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sites)
}
