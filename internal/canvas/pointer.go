package canvas

// dragSlopPx is how far the pointer must travel from the press point before
// a press becomes a drag instead of a click.
const dragSlopPx = 4.0

// PointerAdapter translates raw pointer events (already relative to the
// canvas top-left corner) into engine operations: hit-testing presses
// against node sprites, distinguishing clicks from drags by a movement
// threshold, and updating hover on plain moves.
//
// One adapter tracks one pointer, mirroring the single-pointer interaction
// model; feed it events in the order the host delivers them.
type PointerAdapter struct {
	engine *Engine

	pressed  bool
	pressID  string
	origin   Point
	dragging bool
}

// NewPointerAdapter creates an adapter driving the given engine.
func NewPointerAdapter(e *Engine) *PointerAdapter {
	return &PointerAdapter{engine: e}
}

// PointerDown starts tracking a press. It reports whether the point landed
// on a site node; presses on empty canvas are ignored.
func (a *PointerAdapter) PointerDown(p Point) bool {
	id, ok := a.hitNode(p)
	if !ok {
		return false
	}
	a.pressed = true
	a.pressID = id
	a.origin = p
	a.dragging = false
	return true
}

// PointerMove advances the gesture. Without a press it only refreshes hover.
// With a press it begins the drag once the pointer leaves the slop radius and
// then streams positions into the live map.
func (a *PointerAdapter) PointerMove(p Point) {
	if !a.pressed {
		id, _ := a.hitNode(p)
		a.engine.SetHover(id)
		return
	}

	if !a.dragging {
		if distance(p, a.origin) <= dragSlopPx {
			return
		}
		if err := a.engine.BeginDrag(a.pressID); err != nil {
			// Site vanished or another drag is active; abandon the press.
			a.reset()
			return
		}
		a.dragging = true
	}
	_ = a.engine.DragTo(p)
}

// PointerUp finishes the gesture: a drag commits its final position (the
// release point wins over any earlier move), a press that never crossed the
// slop radius toggles selection.
func (a *PointerAdapter) PointerUp(p Point) error {
	if !a.pressed {
		return nil
	}
	defer a.reset()

	if a.dragging {
		_ = a.engine.DragTo(p)
		_, err := a.engine.EndDrag()
		return err
	}

	a.engine.ClickSite(a.pressID)
	return nil
}

// Dragging reports whether the tracked press has become a drag.
func (a *PointerAdapter) Dragging() bool {
	return a.dragging
}

func (a *PointerAdapter) reset() {
	a.pressed = false
	a.pressID = ""
	a.dragging = false
}

// hitNode finds the topmost node under the point. Nodes later in the scene
// draw on top, so the scan runs back to front.
func (a *PointerAdapter) hitNode(p Point) (string, bool) {
	scene := a.engine.Scene()
	for i := len(scene.Nodes) - 1; i >= 0; i-- {
		node := scene.Nodes[i]
		if distance(p, node.Center) <= node.Radius {
			return node.SiteID, true
		}
	}
	return "", false
}
