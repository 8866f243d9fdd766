package domain

import "fmt"

// Category classifies a site for filtering and node fill color
type Category string

const (
	CategoryBranch       Category = "branch"
	CategoryHeadquarters Category = "headquarters"
	CategoryDataCenter   Category = "datacenter"
	CategoryCloud        Category = "cloud"
)

// AllCategories returns every valid site category in display order, for
// filter menus and form dialogs.
func AllCategories() []Category {
	return []Category{CategoryBranch, CategoryHeadquarters, CategoryDataCenter, CategoryCloud}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryBranch, CategoryHeadquarters, CategoryDataCenter, CategoryCloud:
		return true
	}
	return false
}

// Label returns the human-readable form used in legends and dialogs.
func (c Category) Label() string {
	switch c {
	case CategoryBranch:
		return "Branch"
	case CategoryHeadquarters:
		return "Headquarters"
	case CategoryDataCenter:
		return "Data Center"
	case CategoryCloud:
		return "Cloud"
	}
	return string(c)
}

// MaxConnections bounds how many WAN circuits a single site carries.
const MaxConnections = 3

// Site represents a physical or cloud location on the WAN diagram
type Site struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Location    string       `json:"location,omitempty" yaml:"location,omitempty"`
	Category    Category     `json:"category" yaml:"category"`
	Connections []Connection `json:"connections" yaml:"connections"`
	Coordinates Coordinates  `json:"coordinates" yaml:"coordinates"`
}

// NewSite creates a site placed at the canvas center. The store assigns an ID
// on create; callers add connections before validating.
func NewSite(name string, category Category) *Site {
	return &Site{
		Name:        name,
		Category:    category,
		Coordinates: Coordinates{X: 0.5, Y: 0.5},
	}
}

// Validate checks the invariants enforced when a site is created or edited.
// Coordinates are not checked: out-of-range values are tolerated on read and
// drawn at the canvas edge.
func (s *Site) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("site name required")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown site category %q", s.Category)
	}
	if len(s.Connections) == 0 {
		return fmt.Errorf("site requires at least one connection")
	}
	if len(s.Connections) > MaxConnections {
		return fmt.Errorf("site supports at most %d connections, got %d", MaxConnections, len(s.Connections))
	}
	for i := range s.Connections {
		if err := s.Connections[i].Validate(); err != nil {
			return fmt.Errorf("connection %d: %w", i+1, err)
		}
	}
	return nil
}

// Clone returns a deep copy so canonical store state never aliases caller
// slices.
func (s *Site) Clone() *Site {
	out := *s
	out.Connections = append([]Connection(nil), s.Connections...)
	return &out
}
