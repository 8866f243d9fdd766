package canvas

import "time"

// densityStep is how much the density scale shrinks per site beyond the
// density limit.
const densityStep = 0.05

// Layout holds the geometry tunables for the canvas engine.
type Layout struct {
	DragMarginPx float64 // pointer clamp distance from each canvas edge while dragging
	CommitMargin float64 // normalized safety margin applied when a drag commits
	FanStep      float64 // radians between adjacent connection curves from one site
	CurveBase    float64 // control-point offset for a site's first connection, px
	CurveStep    float64 // additional control-point offset per connection index, px
	NodeRadius   float64 // nominal site node radius, px
	HubFraction  float64 // hub icon edge as a fraction of min(width, height)
	HubMinPx     float64 // hub icon edge floor so hubs stay legible, px
	DensityLimit int     // visible site count where nodes begin shrinking
	DensityFloor float64 // lower bound for the density scale

	// SettleDelay is how long RemeasureAfterSettle waits before re-reading
	// dimensions, giving host layout transitions time to finish.
	SettleDelay time.Duration
}

// DefaultLayout returns the nominal geometry.
func DefaultLayout() Layout {
	return Layout{
		DragMarginPx: 30,
		CommitMargin: 0.05,
		FanStep:      0.15,
		CurveBase:    30,
		CurveStep:    10,
		NodeRadius:   24,
		HubFraction:  0.25,
		HubMinPx:     64,
		DensityLimit: 6,
		DensityFloor: 0.6,
		SettleDelay:  300 * time.Millisecond,
	}
}

// densityScale returns the shrink factor applied to node and hub sizing as
// the visible site count grows. It is 1.0 at or below the density limit,
// decreases monotonically above it, and never goes below the floor.
func (l Layout) densityScale(siteCount int) float64 {
	if siteCount <= l.DensityLimit {
		return 1
	}
	s := 1 - densityStep*float64(siteCount-l.DensityLimit)
	if s < l.DensityFloor {
		return l.DensityFloor
	}
	return s
}
