package canvas

import (
	"testing"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

func TestPointerClick(t *testing.T) {
	t.Run("press and release on a node toggles selection", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e, sink := newTestEngine(t, 800, 600, s)
		a := NewPointerAdapter(e)

		center := Point{X: 400, Y: 300}
		if !a.PointerDown(center) {
			t.Fatal("expected the press to hit the node")
		}
		if err := a.PointerUp(center); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}

		if e.SelectedSite() != "a" {
			t.Errorf("expected 'a' selected, got %q", e.SelectedSite())
		}
		if len(sink.ids) != 0 {
			t.Error("a click must not commit coordinates")
		}

		if !a.PointerDown(center) {
			t.Fatal("expected the second press to hit")
		}
		if err := a.PointerUp(center); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}
		if e.SelectedSite() != "" {
			t.Error("second click should clear the selection")
		}
	})

	t.Run("jitter within the slop radius still counts as a click", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e, sink := newTestEngine(t, 800, 600, s)
		a := NewPointerAdapter(e)

		a.PointerDown(Point{X: 400, Y: 300})
		a.PointerMove(Point{X: 402, Y: 301})
		if a.Dragging() {
			t.Error("movement within the slop radius must not start a drag")
		}
		if err := a.PointerUp(Point{X: 402, Y: 301}); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}

		if e.SelectedSite() != "a" {
			t.Error("expected a selection from the jittery click")
		}
		if len(sink.ids) != 0 {
			t.Error("jittery click must not commit coordinates")
		}
	})

	t.Run("press on empty canvas is ignored", func(t *testing.T) {
		s := site("a", 0.1, 0.1, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e, _ := newTestEngine(t, 800, 600, s)
		a := NewPointerAdapter(e)

		if a.PointerDown(Point{X: 700, Y: 500}) {
			t.Error("expected a miss on empty canvas")
		}
		if err := a.PointerUp(Point{X: 700, Y: 500}); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}
		if e.SelectedSite() != "" {
			t.Error("missed press must not select")
		}
	})
}

func TestPointerDrag(t *testing.T) {
	t.Run("crossing the slop radius starts a drag and commits on release", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e, sink := newTestEngine(t, 800, 600, s)
		a := NewPointerAdapter(e)

		a.PointerDown(Point{X: 400, Y: 300})
		a.PointerMove(Point{X: 420, Y: 300})
		if !a.Dragging() {
			t.Fatal("expected a drag after crossing the slop radius")
		}
		a.PointerMove(Point{X: 600, Y: 450})
		if err := a.PointerUp(Point{X: 640, Y: 480}); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}

		if len(sink.ids) != 1 || sink.ids[0] != "a" {
			t.Fatalf("expected one commit for 'a', got %v", sink.ids)
		}
		got := sink.coords[0]
		if !almostEqual(got.X, 0.8) || !almostEqual(got.Y, 0.8) {
			t.Errorf("expected commit (0.8, 0.8) from the release point, got (%f, %f)", got.X, got.Y)
		}
		if e.SelectedSite() != "" {
			t.Error("a drag must not change selection")
		}
		if e.DraggingSite() != "" {
			t.Error("engine should be idle after release")
		}
	})

	t.Run("site removed mid-press abandons the gesture", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		src := &stubSource{sites: []*domain.Site{s}}
		sink := &recordSink{}
		e := NewEngine(Config{
			Sites:   src,
			Sink:    sink,
			Measure: func() (float64, float64) { return 800, 600 },
		})
		defer e.Close()
		e.Measure()
		a := NewPointerAdapter(e)

		if !a.PointerDown(Point{X: 400, Y: 300}) {
			t.Fatal("expected the press to hit")
		}
		src.sites = nil // deleted or filtered out under the pointer

		a.PointerMove(Point{X: 450, Y: 350})
		if a.Dragging() {
			t.Error("drag must not start for a vanished site")
		}
		if err := a.PointerUp(Point{X: 450, Y: 350}); err != nil {
			t.Fatalf("pointer up failed: %v", err)
		}
		if len(sink.ids) != 0 {
			t.Error("no commit may be emitted for a vanished site")
		}
		if e.SelectedSite() != "" {
			t.Error("abandoned gesture must not select")
		}
	})
}

func TestPointerHover(t *testing.T) {
	t.Run("plain moves track the hovered node", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e, _ := newTestEngine(t, 800, 600, s)
		a := NewPointerAdapter(e)

		a.PointerMove(Point{X: 400, Y: 300})
		if e.HoveredSite() != "a" {
			t.Errorf("expected hover on 'a', got %q", e.HoveredSite())
		}

		a.PointerMove(Point{X: 50, Y: 50})
		if e.HoveredSite() != "" {
			t.Errorf("expected hover cleared, got %q", e.HoveredSite())
		}
	})

	t.Run("topmost node wins an overlapping hit", func(t *testing.T) {
		// Same spot: the later site draws on top.
		a1 := site("under", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		a2 := site("over", 0.5, 0.5, domain.Connection{Type: domain.ConnLTE, Bandwidth: "50 Mbps"})
		e, _ := newTestEngine(t, 800, 600, a1, a2)
		ad := NewPointerAdapter(e)

		ad.PointerMove(Point{X: 400, Y: 300})
		if e.HoveredSite() != "over" {
			t.Errorf("expected the topmost node, got %q", e.HoveredSite())
		}
	})
}
