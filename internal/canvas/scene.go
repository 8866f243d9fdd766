package canvas

import "github.com/mcherring7/topology-weaver/internal/domain"

// Stroke emphasis for connection curves. Presentation rules only: emphasized
// when the owning site is selected or hovered, dimmed when a different site
// is selected.
const (
	strokeWidthBase     = 2.0
	strokeWidthEmphasis = 3.5
	opacityBase         = 0.65
	opacityEmphasis     = 0.95
	opacityDimmed       = 0.25
)

// Scene is one derived render frame: everything an exporter needs to draw,
// in stable order (links under nodes, sites in store order).
type Scene struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Ready is false until the canvas has a non-zero measurement. A scene
	// that is not ready carries zero-extent hubs and no nodes or links.
	Ready bool    `json:"ready"`
	Scale float64 `json:"scale"` // density scale applied to node and hub sizing

	Hubs  []HubSprite  `json:"hubs"`
	Nodes []NodeSprite `json:"nodes"`
	Links []LinkSprite `json:"links"`

	// SelectedID is the effective selection: empty when nothing is selected
	// or the selected site is no longer visible.
	SelectedID string `json:"selected_id,omitempty"`
}

// HubSprite is a shared anchor icon.
type HubSprite struct {
	Kind   domain.HubKind `json:"kind"`
	Label  string         `json:"label"`
	Center Point          `json:"center"`
	Size   float64        `json:"size"`
	Color  string         `json:"color"`
}

// NodeSprite is one site node.
type NodeSprite struct {
	SiteID   string          `json:"site_id"`
	Name     string          `json:"name"`
	Location string          `json:"location,omitempty"`
	Category domain.Category `json:"category"`
	Center   Point           `json:"center"`
	Radius   float64         `json:"radius"`
	Fill     string          `json:"fill"`
	Selected bool            `json:"selected"`
	Hovered  bool            `json:"hovered"`
	Dragging bool            `json:"dragging"`
	Dots     []DotSprite     `json:"dots,omitempty"`
}

// DotSprite is a small circuit-type marker drawn on its node.
type DotSprite struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// LinkSprite is one connection curve from a site to a hub.
type LinkSprite struct {
	SiteID    string         `json:"site_id"`
	Hub       domain.HubKind `json:"hub"`
	Curve     QuadCurve      `json:"curve"`
	Color     string         `json:"color"`
	Width     float64        `json:"width"`
	Opacity   float64        `json:"opacity"`
	Dashed    bool           `json:"dashed"`
	Bandwidth string         `json:"bandwidth"`
}

// Scene assembles the current render frame from engine state and the visible
// site list. Zero sites yield hubs only; an unmeasured canvas yields
// zero-extent hubs and nothing else; a site without connections renders as a
// bare node with no curves and no dots.
func (e *Engine) Scene() *Scene {
	sites := e.sites.VisibleSites()

	e.mu.RLock()
	defer e.mu.RUnlock()

	scale := e.layout.densityScale(len(sites))
	scene := &Scene{
		Width:  e.width,
		Height: e.height,
		Ready:  e.width > 0 && e.height > 0,
		Scale:  scale,
	}

	anchors := hubAnchors(e.width, e.height, scale, e.layout)
	for _, a := range anchors {
		scene.Hubs = append(scene.Hubs, HubSprite{
			Kind:   a.Kind,
			Label:  a.Kind.Label(),
			Center: a.Center,
			Size:   a.Size,
			Color:  e.color(string(a.Kind)),
		})
	}
	if !scene.Ready {
		return scene
	}

	// A selection pointing at a site that was deleted or filtered out must
	// not dim everything else.
	for _, site := range sites {
		if site.ID == e.selected {
			scene.SelectedID = e.selected
			break
		}
	}

	for _, site := range sites {
		pos, ok := e.pixelPositionLocked(site)
		if !ok {
			continue
		}

		emphasized := site.ID == scene.SelectedID || site.ID == e.hovered
		dimmed := scene.SelectedID != "" && !emphasized

		for i, conn := range site.Connections {
			anchor := anchorFor(conn.HubKind(), anchors)
			link := LinkSprite{
				SiteID:    site.ID,
				Hub:       conn.HubKind(),
				Curve:     connectionCurve(pos, anchor.Center, i, len(site.Connections), e.layout),
				Color:     e.color(conn.ColorKey()),
				Width:     strokeWidthBase,
				Opacity:   opacityBase,
				Dashed:    conn.Type == domain.ConnMPLS,
				Bandwidth: conn.Bandwidth,
			}
			if emphasized {
				link.Width = strokeWidthEmphasis
				link.Opacity = opacityEmphasis
			} else if dimmed {
				link.Opacity = opacityDimmed
			}
			scene.Links = append(scene.Links, link)
		}

		radius := e.layout.NodeRadius * scale
		node := NodeSprite{
			SiteID:   site.ID,
			Name:     site.Name,
			Location: site.Location,
			Category: site.Category,
			Center:   pos,
			Radius:   radius,
			Fill:     e.color(string(site.Category)),
			Selected: site.ID == scene.SelectedID,
			Hovered:  site.ID == e.hovered,
			Dragging: site.ID == e.dragging,
			Dots:     connectionDots(site, pos, radius, e.color),
		}
		scene.Nodes = append(scene.Nodes, node)
	}

	return scene
}

// connectionDots lays a small colored marker per connection along the lower
// arc of the node, centered as a group.
func connectionDots(site *domain.Site, center Point, radius float64, color ColorFunc) []DotSprite {
	n := len(site.Connections)
	if n == 0 {
		return nil
	}

	dotRadius := radius * 0.18
	spacing := radius * 0.45
	y := center.Y + radius*0.55

	dots := make([]DotSprite, 0, n)
	for i, conn := range site.Connections {
		dx := (float64(i) - float64(n-1)/2) * spacing
		dots = append(dots, DotSprite{
			Center: Point{X: center.X + dx, Y: y},
			Radius: dotRadius,
			Color:  color(conn.ColorKey()),
		})
	}
	return dots
}
