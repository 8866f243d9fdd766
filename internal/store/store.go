package store

import (
	"errors"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

var (
	// ErrSiteNotFound is returned when no site exists for the given ID.
	ErrSiteNotFound = errors.New("site not found")
	// ErrDuplicateSite is returned when creating a site whose ID is taken.
	ErrDuplicateSite = errors.New("site already exists")
)

// Store defines the interface for canonical site state access
type Store interface {
	// Write operations
	Create(site *domain.Site) error
	Update(site *domain.Site) error
	Delete(id string) error

	// Coordinate commits from drag gestures
	SetCoordinates(id string, coords domain.Coordinates) error

	// Read operations
	Get(id string) (*domain.Site, error)
	List() []*domain.Site
	Len() int
}
