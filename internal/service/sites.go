package service

import (
	"fmt"
	"sync"

	"github.com/mcherring7/topology-weaver/internal/domain"
	"github.com/mcherring7/topology-weaver/internal/store"
)

// SiteService provides authoring operations over the site store
type SiteService struct {
	store    store.Store
	eventBus *EventBus

	mu     sync.RWMutex
	filter *domain.Category
}

// NewSiteService creates a new site service
func NewSiteService(st store.Store, eventBus *EventBus) *SiteService {
	return &SiteService{
		store:    st,
		eventBus: eventBus,
	}
}

// CreateSite validates and stores a new site. Zero-value coordinates mean
// the caller did not place the site; those default to the canvas center.
func (s *SiteService) CreateSite(site *domain.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}
	if site.Coordinates == (domain.Coordinates{}) {
		site.Coordinates = domain.Coordinates{X: 0.5, Y: 0.5}
	}

	if err := s.store.Create(site); err != nil {
		return err
	}

	s.eventBus.Publish(Event{
		Type:    EventSiteCreated,
		Payload: map[string]string{"site_id": site.ID, "name": site.Name},
	})

	return nil
}

// SiteUpdate carries optional field replacements for UpdateSite. Nil fields
// are left unchanged; a non-nil Connections slice replaces the whole list.
type SiteUpdate struct {
	Name        *string
	Location    *string
	Category    *domain.Category
	Connections []domain.Connection
}

// UpdateSite applies the update to an existing site and re-validates the
// result before storing it.
func (s *SiteService) UpdateSite(id string, update SiteUpdate) (*domain.Site, error) {
	site, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		site.Name = *update.Name
	}
	if update.Location != nil {
		site.Location = *update.Location
	}
	if update.Category != nil {
		site.Category = *update.Category
	}
	if update.Connections != nil {
		site.Connections = update.Connections
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Update(site); err != nil {
		return nil, err
	}

	s.eventBus.Publish(Event{
		Type:    EventSiteUpdated,
		Payload: map[string]string{"site_id": site.ID, "name": site.Name},
	})

	return site, nil
}

// DeleteSite removes a site
func (s *SiteService) DeleteSite(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}

	s.eventBus.Publish(Event{
		Type:    EventSiteDeleted,
		Payload: map[string]string{"site_id": id},
	})

	return nil
}

// UpdateSiteCoordinates stores a committed diagram position. The canvas
// engine calls this at the end of a drag gesture with already-clamped values;
// other callers may pass whatever they like and it is stored as given.
func (s *SiteService) UpdateSiteCoordinates(id string, coords domain.Coordinates) error {
	if err := s.store.SetCoordinates(id, coords); err != nil {
		return err
	}

	s.eventBus.Publish(Event{
		Type: EventSiteMoved,
		Payload: map[string]interface{}{
			"site_id": id,
			"x":       coords.X,
			"y":       coords.Y,
		},
	})

	return nil
}

// Site retrieves a single site by ID
func (s *SiteService) Site(id string) (*domain.Site, error) {
	return s.store.Get(id)
}

// Sites returns all sites in insertion order, ignoring the category filter.
func (s *SiteService) Sites() []*domain.Site {
	return s.store.List()
}

// VisibleSites returns the sites that pass the active category filter, in
// insertion order. This is the list that flows to the canvas engine.
func (s *SiteService) VisibleSites() []*domain.Site {
	all := s.store.List()

	s.mu.RLock()
	filter := s.filter
	s.mu.RUnlock()

	if filter == nil {
		return all
	}
	out := make([]*domain.Site, 0, len(all))
	for _, site := range all {
		if site.Category == *filter {
			out = append(out, site)
		}
	}
	return out
}

// SetCategoryFilter restricts the visible sites to one category, or clears
// the restriction when passed nil.
func (s *SiteService) SetCategoryFilter(category *domain.Category) error {
	if category != nil && !category.Valid() {
		return fmt.Errorf("unknown site category %q", *category)
	}

	s.mu.Lock()
	s.filter = category
	s.mu.Unlock()

	payload := map[string]string{"category": ""}
	if category != nil {
		payload["category"] = string(*category)
	}
	s.eventBus.Publish(Event{Type: EventFilterChanged, Payload: payload})

	return nil
}

// CategoryFilter returns the active filter, or nil when all categories are
// visible.
func (s *SiteService) CategoryFilter() *domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == nil {
		return nil
	}
	c := *s.filter
	return &c
}
