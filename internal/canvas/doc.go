// Package canvas implements the topology canvas engine: the state container
// and layout math that turn site records into a drawable WAN diagram and
// direct-manipulation gestures into committed coordinate updates.
//
// # State Model
//
// Engine owns the transient view state: the measured canvas dimensions, the
// live drag position map, the current selection, and the hover target. It
// never owns canonical site records; those flow in through a SiteSource on
// every derivation, and coordinate changes flow out through a CoordinateSink
// exactly once per completed drag. Derived values are computed by pure
// functions of that state; Scene gathers a full frame for the render
// exporters.
//
// # Measurement
//
// Positions are normalized fractions of the canvas size, so nothing can be
// placed until the surface is measured. Measure tolerates a zero-sized
// surface by parking the engine in a not-ready state that renders hubs with
// zero extent and skips nodes and links. RemeasureAfterSettle schedules a
// delayed measurement for collaborators that change layout asynchronously
// (panel toggles, window resizes that animate), collapsing repeated calls
// into the latest timer.
//
// # Drag Lifecycle
//
// The gesture is a three-state machine, Idle → Dragging(id) → Idle. While
// dragging, pointer positions are clamped to a margin inside the canvas
// edges and written to the live map, which takes precedence over stored
// coordinates so feedback tracks the pointer exactly. On release the final
// position is normalized, clamped to the commit safety margin, and emitted
// to the sink. One site drags at a time.
//
// # Geometry
//
// Every connection curve is a quadratic Bézier from the site node to one of
// two fixed hub anchors (Internet at a third of the canvas height, MPLS at
// two thirds). The control point sits at the segment midpoint, pushed along
// the segment normal with a per-index angular and magnitude offset so a
// site's curves fan out visibly. Node and hub sizing shrink monotonically
// with the visible site count, bounded below, to keep dense diagrams
// readable.
//
// # Pointer Adapter
//
// PointerAdapter is the thin translation layer from host pointer events to
// engine operations: it hit-tests presses against node sprites and separates
// clicks (selection toggles) from drags with a small movement threshold.
package canvas
