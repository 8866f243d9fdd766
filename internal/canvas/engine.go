package canvas

import (
	"errors"
	"sync"
	"time"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

var (
	// ErrNotMeasured is returned for operations that need pixel positions
	// before the canvas has a non-zero measurement.
	ErrNotMeasured = errors.New("canvas not measured")
	// ErrUnknownSite is returned when an operation names a site that is not
	// currently visible.
	ErrUnknownSite = errors.New("unknown site")
	// ErrDragActive is returned when a second drag starts before the first
	// ends. Only one site may be dragged at a time.
	ErrDragActive = errors.New("drag already in progress")
	// ErrNoDrag is returned by drag operations outside a gesture.
	ErrNoDrag = errors.New("no drag in progress")
)

// SiteSource supplies the site records to render, in order and already
// filtered.
type SiteSource interface {
	VisibleSites() []*domain.Site
}

// CoordinateSink receives the committed coordinate update at the end of a
// drag gesture. The canonical store stays the sole writer of site state; the
// engine only proposes.
type CoordinateSink interface {
	UpdateSiteCoordinates(id string, coords domain.Coordinates) error
}

// ColorFunc resolves a palette key (category, circuit type, carrier, hub
// kind) to a color token.
type ColorFunc func(key string) string

// MeasureFunc reads the drawing surface's current pixel size. A host that is
// not laid out yet may report zero on either axis.
type MeasureFunc func() (width, height float64)

// Config wires an Engine to its collaborators. Sites and Sink are the data
// plane; Measure, Color and the callbacks are optional and default to inert
// implementations.
type Config struct {
	Sites   SiteSource
	Sink    CoordinateSink
	Color   ColorFunc
	Measure MeasureFunc
	Layout  Layout

	// OnSelect fires after a click toggles selection. selected is false
	// when the click cleared the selection.
	OnSelect func(siteID string, selected bool)
	// OnResize fires when a measurement changes the stored dimensions.
	OnResize func(width, height float64)
}

// Engine is the topology canvas state container: measured dimensions, the
// live drag map, selection and hover. Derived values (pixel positions, hub
// anchors, link curves) are computed from that state on demand; Scene
// assembles them into one render frame.
//
// All methods are safe for concurrent use. The settle timer fires on its own
// goroutine, so even single-threaded hosts end up with two callers.
type Engine struct {
	sites   SiteSource
	sink    CoordinateSink
	color   ColorFunc
	measure MeasureFunc
	layout  Layout

	onSelect func(string, bool)
	onResize func(float64, float64)

	mu       sync.RWMutex
	width    float64
	height   float64
	live     map[string]Point // site ID → in-progress drag position
	dragging string           // site ID, empty when idle
	selected string
	hovered  string
	settle   *time.Timer
}

// NewEngine creates an engine wired to the given collaborators. Zero-value
// Layout falls back to DefaultLayout.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		sites:    cfg.Sites,
		sink:     cfg.Sink,
		color:    cfg.Color,
		measure:  cfg.Measure,
		layout:   cfg.Layout,
		onSelect: cfg.OnSelect,
		onResize: cfg.OnResize,
		live:     make(map[string]Point),
	}
	if e.layout == (Layout{}) {
		e.layout = DefaultLayout()
	}
	if e.sites == nil {
		e.sites = emptySource{}
	}
	if e.sink == nil {
		e.sink = discardSink{}
	}
	if e.color == nil {
		e.color = func(string) string { return neutralColor }
	}
	if e.measure == nil {
		e.measure = func() (float64, float64) { return 0, 0 }
	}
	return e
}

// neutralColor mirrors the palette fallback for engines wired without a
// color lookup.
const neutralColor = "#9ca3af"

type emptySource struct{}

func (emptySource) VisibleSites() []*domain.Site { return nil }

type discardSink struct{}

func (discardSink) UpdateSiteCoordinates(string, domain.Coordinates) error { return nil }

// Measure re-reads the drawing surface size. Zero or negative dimensions are
// stored as zero and leave the engine in the not-ready state; no positions
// are derived until a real measurement arrives. Calling it again with an
// unchanged size has no effect.
func (e *Engine) Measure() (width, height float64) {
	width, height = e.measure()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	e.mu.Lock()
	changed := width != e.width || height != e.height
	e.width, e.height = width, height
	e.mu.Unlock()

	if changed && e.onResize != nil {
		e.onResize(width, height)
	}
	return width, height
}

// RemeasureAfterSettle schedules a Measure after the configured settle
// delay. Any collaborator that changes layout (a sidebar toggling, a panel
// resizing) calls this instead of measuring immediately, because host layout
// transitions finish asynchronously. Repeated calls collapse into the
// latest timer.
func (e *Engine) RemeasureAfterSettle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.settle != nil {
		e.settle.Stop()
	}
	e.settle = time.AfterFunc(e.layout.SettleDelay, func() { e.Measure() })
}

// Close stops any pending settle timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.settle != nil {
		e.settle.Stop()
		e.settle = nil
	}
}

// Ready reports whether the canvas has a usable measurement.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width > 0 && e.height > 0
}

// Dimensions returns the last measured size.
func (e *Engine) Dimensions() (width, height float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width, e.height
}

// SitePixelPosition derives the canvas position for a site. A live drag
// entry wins over the stored coordinates so drag feedback tracks the pointer
// exactly; otherwise the normalized coordinates are projected onto the
// measured size. ok is false while the canvas is unmeasured and no live
// entry exists.
func (e *Engine) SitePixelPosition(site *domain.Site) (p Point, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pixelPositionLocked(site)
}

func (e *Engine) pixelPositionLocked(site *domain.Site) (Point, bool) {
	if p, ok := e.live[site.ID]; ok {
		return p, true
	}
	if e.width <= 0 || e.height <= 0 {
		return Point{}, false
	}
	return Point{X: site.Coordinates.X * e.width, Y: site.Coordinates.Y * e.height}, true
}

// BeginDrag moves the engine from Idle to Dragging(id), seeding the live map
// with the site's current position. It fails on an unmeasured canvas, an
// unknown site, or when another drag is already active.
func (e *Engine) BeginDrag(id string) error {
	site := e.findSite(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dragging != "" {
		return ErrDragActive
	}
	if e.width <= 0 || e.height <= 0 {
		return ErrNotMeasured
	}
	if site == nil {
		return ErrUnknownSite
	}

	e.dragging = id
	e.live[id] = Point{X: site.Coordinates.X * e.width, Y: site.Coordinates.Y * e.height}
	return nil
}

// DragTo records a pointer move during a drag. The point is relative to the
// canvas top-left corner and is clamped so the node stays at least the drag
// margin inside every edge, even when the pointer leaves the canvas. The
// clamped value is what renders on the very next frame; the store is not
// consulted.
func (e *Engine) DragTo(p Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dragging == "" {
		return ErrNoDrag
	}
	e.live[e.dragging] = e.clampToCanvasLocked(p)
	return nil
}

// EndDrag completes the gesture: the last live position is normalized
// against the canvas size, clamped to the commit safety margin, emitted
// exactly once to the coordinate sink, and the live entry is cleared. The
// returned coordinates are what was emitted.
func (e *Engine) EndDrag() (domain.Coordinates, error) {
	e.mu.Lock()
	if e.dragging == "" {
		e.mu.Unlock()
		return domain.Coordinates{}, ErrNoDrag
	}
	id := e.dragging
	p := e.live[id]
	delete(e.live, id)
	e.dragging = ""
	width, height := e.width, e.height
	margin := e.layout.CommitMargin
	e.mu.Unlock()

	if width <= 0 || height <= 0 {
		// Canvas vanished mid-gesture; drop the commit rather than divide
		// by zero.
		return domain.Coordinates{}, ErrNotMeasured
	}

	coords := domain.Coordinates{X: p.X / width, Y: p.Y / height}.Clamp(margin, 1-margin)
	if err := e.sink.UpdateSiteCoordinates(id, coords); err != nil {
		return coords, err
	}
	return coords, nil
}

// DraggingSite returns the ID of the site being dragged, or empty when idle.
func (e *Engine) DraggingSite() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dragging
}

// LivePosition returns the in-progress drag position for a site, if any.
func (e *Engine) LivePosition(id string) (Point, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.live[id]
	return p, ok
}

// ClickSite toggles selection: clicking the selected site again clears it.
func (e *Engine) ClickSite(id string) {
	e.mu.Lock()
	if e.selected == id {
		e.selected = ""
	} else {
		e.selected = id
	}
	selected := e.selected == id
	cb := e.onSelect
	e.mu.Unlock()

	if cb != nil {
		cb(id, selected)
	}
}

// SelectedSite returns the selected site ID, or empty.
func (e *Engine) SelectedSite() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selected
}

// SetHover records which site the pointer is over, or clears it with an
// empty ID. Hover only affects presentation emphasis.
func (e *Engine) SetHover(id string) {
	e.mu.Lock()
	e.hovered = id
	e.mu.Unlock()
}

// HoveredSite returns the hovered site ID, or empty.
func (e *Engine) HoveredSite() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hovered
}

// clampToCanvasLocked keeps a dragged node at least the drag margin away
// from every edge. A degenerate canvas narrower than twice the margin
// collapses to its midline.
func (e *Engine) clampToCanvasLocked(p Point) Point {
	m := e.layout.DragMarginPx
	return Point{
		X: clampAxis(p.X, m, e.width-m, e.width),
		Y: clampAxis(p.Y, m, e.height-m, e.height),
	}
}

func clampAxis(v, lo, hi, dim float64) float64 {
	if hi < lo {
		return dim / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Engine) findSite(id string) *domain.Site {
	for _, site := range e.sites.VisibleSites() {
		if site.ID == id {
			return site
		}
	}
	return nil
}
