// Package loader reads and writes topology definition files: the YAML
// documents that describe sites and their circuits, independent of any
// saved editor state.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

// TopologyYAML represents the YAML file structure
type TopologyYAML struct {
	Version int        `yaml:"version"`
	Name    string     `yaml:"name,omitempty"`
	Sites   []SiteYAML `yaml:"sites"`
}

// SiteYAML represents a site entry. Coordinates are optional; a site without
// them starts at the canvas center, matching how newly created sites behave.
type SiteYAML struct {
	ID          string              `yaml:"id,omitempty"`
	Name        string              `yaml:"name"`
	Location    string              `yaml:"location,omitempty"`
	Category    domain.Category     `yaml:"category"`
	Coordinates *domain.Coordinates `yaml:"coordinates,omitempty"`
	Connections []domain.Connection `yaml:"connections"`
}

// LoadYAML loads a topology from a YAML file
func LoadYAML(path string) ([]*domain.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML parses a topology from YAML bytes. Every site is validated; the
// first invalid one fails the whole load so a typo cannot silently drop a
// site from the diagram.
func ParseYAML(data []byte) ([]*domain.Site, error) {
	var doc TopologyYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	sites := make([]*domain.Site, 0, len(doc.Sites))
	for _, s := range doc.Sites {
		site := &domain.Site{
			ID:          s.ID,
			Name:        s.Name,
			Location:    s.Location,
			Category:    s.Category,
			Connections: s.Connections,
			Coordinates: domain.Coordinates{X: 0.5, Y: 0.5},
		}
		if s.Coordinates != nil {
			site.Coordinates = *s.Coordinates
		}
		if err := site.Validate(); err != nil {
			return nil, fmt.Errorf("site %q: %w", s.Name, err)
		}
		sites = append(sites, site)
	}

	return sites, nil
}

// ExportYAML renders sites back into the file format, coordinates included,
// so a running topology can be dumped as a starting point for hand editing.
func ExportYAML(name string, sites []*domain.Site) ([]byte, error) {
	doc := TopologyYAML{
		Version: 1,
		Name:    name,
		Sites:   make([]SiteYAML, 0, len(sites)),
	}

	for _, site := range sites {
		coords := site.Coordinates
		doc.Sites = append(doc.Sites, SiteYAML{
			ID:          site.ID,
			Name:        site.Name,
			Location:    site.Location,
			Category:    site.Category,
			Coordinates: &coords,
			Connections: site.Connections,
		})
	}

	return yaml.Marshal(doc)
}
