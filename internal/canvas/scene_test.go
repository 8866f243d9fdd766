package canvas

import (
	"testing"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

// keyColor tags every lookup with its key so tests can assert which palette
// entry a sprite used.
func keyColor(key string) string { return "color(" + key + ")" }

func newSceneEngine(t *testing.T, width, height float64, sites ...*domain.Site) *Engine {
	t.Helper()
	e := NewEngine(Config{
		Sites:   &stubSource{sites: sites},
		Sink:    &recordSink{},
		Color:   keyColor,
		Measure: func() (float64, float64) { return width, height },
	})
	e.Measure()
	t.Cleanup(e.Close)
	return e
}

func TestSceneHubs(t *testing.T) {
	t.Run("anchors sit at thirds of the canvas height", func(t *testing.T) {
		e := newSceneEngine(t, 800, 600)
		scene := e.Scene()

		if len(scene.Hubs) != 2 {
			t.Fatalf("expected 2 hubs, got %d", len(scene.Hubs))
		}
		internet, mpls := scene.Hubs[0], scene.Hubs[1]
		if internet.Kind != domain.HubInternet || mpls.Kind != domain.HubMPLS {
			t.Fatal("hub order must be internet, mpls")
		}
		if internet.Center.X != 400 || internet.Center.Y != 200 {
			t.Errorf("expected internet hub at (400, 200), got (%f, %f)", internet.Center.X, internet.Center.Y)
		}
		if mpls.Center.X != 400 || mpls.Center.Y != 400 {
			t.Errorf("expected mpls hub at (400, 400), got (%f, %f)", mpls.Center.X, mpls.Center.Y)
		}
		if internet.Label != "Internet" || mpls.Label != "MPLS" {
			t.Errorf("unexpected hub labels %q, %q", internet.Label, mpls.Label)
		}
	})

	t.Run("hub icons respect the minimum size", func(t *testing.T) {
		e := newSceneEngine(t, 200, 120)
		scene := e.Scene()

		// 0.25 of min(200, 120) is 30px, below the 64px floor.
		for _, hub := range scene.Hubs {
			if hub.Size != 64 {
				t.Errorf("expected clamped hub size 64, got %f", hub.Size)
			}
		}
	})

	t.Run("zero sites renders hubs only", func(t *testing.T) {
		e := newSceneEngine(t, 800, 600)
		scene := e.Scene()

		if !scene.Ready {
			t.Error("expected a ready scene")
		}
		if len(scene.Nodes) != 0 || len(scene.Links) != 0 {
			t.Error("expected no nodes or links without sites")
		}
		if len(scene.Hubs) != 2 {
			t.Error("expected hubs regardless of sites")
		}
	})

	t.Run("unmeasured canvas renders zero-extent hubs and nothing else", func(t *testing.T) {
		e := newSceneEngine(t, 0, 0, site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"}))
		scene := e.Scene()

		if scene.Ready {
			t.Error("expected not-ready scene")
		}
		if len(scene.Hubs) != 2 {
			t.Fatalf("expected 2 hubs, got %d", len(scene.Hubs))
		}
		for _, hub := range scene.Hubs {
			if hub.Size != 0 {
				t.Errorf("expected zero-extent hub, got size %f", hub.Size)
			}
		}
		if len(scene.Nodes) != 0 || len(scene.Links) != 0 {
			t.Error("expected no nodes or links before measurement")
		}
	})

	t.Run("hub spread shrinks with density", func(t *testing.T) {
		var sites []*domain.Site
		for i := 0; i < 10; i++ { // scale 1 - 0.05*(10-6) = 0.8
			sites = append(sites, site(string(rune('a'+i)), 0.5, 0.5))
		}
		e := newSceneEngine(t, 800, 600, sites...)
		scene := e.Scene()

		if !almostEqual(scene.Scale, 0.8) {
			t.Fatalf("expected scale 0.8, got %f", scene.Scale)
		}
		internet := scene.Hubs[0]
		if !almostEqual(internet.Center.Y, 300-100*0.8) {
			t.Errorf("expected internet hub pulled to y=220, got %f", internet.Center.Y)
		}
	})
}

func TestSceneLinks(t *testing.T) {
	t.Run("mpls routes to the mpls anchor, everything else to internet", func(t *testing.T) {
		s := site("a", 0.5, 0.5,
			domain.Connection{Type: domain.ConnMPLS, Bandwidth: "100 Mbps"},
			domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"},
		)
		e := newSceneEngine(t, 800, 600, s)
		scene := e.Scene()

		if len(scene.Links) != 2 {
			t.Fatalf("expected 2 links, got %d", len(scene.Links))
		}
		mplsLink, diaLink := scene.Links[0], scene.Links[1]

		if mplsLink.Curve.End != (Point{X: 400, Y: 400}) {
			t.Errorf("expected MPLS endpoint (400, 400), got %+v", mplsLink.Curve.End)
		}
		if diaLink.Curve.End != (Point{X: 400, Y: 200}) {
			t.Errorf("expected DIA endpoint (400, 200), got %+v", diaLink.Curve.End)
		}
		if mplsLink.Curve.Start != (Point{X: 400, Y: 300}) {
			t.Errorf("expected curves to start at the node (400, 300), got %+v", mplsLink.Curve.Start)
		}

		if !mplsLink.Dashed {
			t.Error("MPLS links must be dashed")
		}
		if diaLink.Dashed {
			t.Error("non-MPLS links must be solid")
		}
	})

	t.Run("stroke color keys on provider else type", func(t *testing.T) {
		s := site("a", 0.5, 0.5,
			domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps", Provider: domain.ProviderZayo},
			domain.Connection{Type: domain.ConnBroadband, Bandwidth: "300 Mbps"},
		)
		e := newSceneEngine(t, 800, 600, s)
		scene := e.Scene()

		if scene.Links[0].Color != "color(Zayo)" {
			t.Errorf("expected provider color key, got %s", scene.Links[0].Color)
		}
		if scene.Links[1].Color != "color(Broadband)" {
			t.Errorf("expected type color key, got %s", scene.Links[1].Color)
		}
	})

	t.Run("selection emphasizes its own links and dims the rest", func(t *testing.T) {
		a := site("a", 0.2, 0.2, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		b := site("b", 0.8, 0.8, domain.Connection{Type: domain.ConnLTE, Bandwidth: "50 Mbps"})
		e := newSceneEngine(t, 800, 600, a, b)

		e.ClickSite("a")
		scene := e.Scene()

		if scene.SelectedID != "a" {
			t.Fatalf("expected selection 'a', got %q", scene.SelectedID)
		}
		if scene.Links[0].Width != strokeWidthEmphasis || scene.Links[0].Opacity != opacityEmphasis {
			t.Error("selected site's link should be emphasized")
		}
		if scene.Links[1].Opacity != opacityDimmed {
			t.Error("other site's link should be dimmed")
		}
		if scene.Links[1].Width != strokeWidthBase {
			t.Error("dimmed links keep the base width")
		}
	})

	t.Run("hover emphasizes without dimming others", func(t *testing.T) {
		a := site("a", 0.2, 0.2, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		b := site("b", 0.8, 0.8, domain.Connection{Type: domain.ConnLTE, Bandwidth: "50 Mbps"})
		e := newSceneEngine(t, 800, 600, a, b)

		e.SetHover("b")
		scene := e.Scene()

		if scene.Links[1].Width != strokeWidthEmphasis {
			t.Error("hovered site's link should be emphasized")
		}
		if scene.Links[0].Opacity != opacityBase {
			t.Error("hover alone must not dim other sites")
		}
	})

	t.Run("stale selection does not dim anything", func(t *testing.T) {
		a := site("a", 0.2, 0.2, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e := newSceneEngine(t, 800, 600, a)

		e.ClickSite("ghost")
		scene := e.Scene()

		if scene.SelectedID != "" {
			t.Errorf("expected no effective selection, got %q", scene.SelectedID)
		}
		if scene.Links[0].Opacity != opacityBase {
			t.Error("stale selection must not dim visible sites")
		}
	})
}

func TestSceneNodes(t *testing.T) {
	t.Run("node carries category fill and a dot per connection", func(t *testing.T) {
		s := site("a", 0.5, 0.5,
			domain.Connection{Type: domain.ConnMPLS, Bandwidth: "100 Mbps"},
			domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps", Provider: domain.ProviderLumen},
		)
		e := newSceneEngine(t, 800, 600, s)
		scene := e.Scene()

		if len(scene.Nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(scene.Nodes))
		}
		node := scene.Nodes[0]
		if node.Fill != "color(branch)" {
			t.Errorf("expected category fill key, got %s", node.Fill)
		}
		if len(node.Dots) != 2 {
			t.Fatalf("expected 2 dots, got %d", len(node.Dots))
		}
		if node.Dots[0].Color != "color(MPLS)" || node.Dots[1].Color != "color(Lumen)" {
			t.Errorf("unexpected dot colors %s, %s", node.Dots[0].Color, node.Dots[1].Color)
		}
		// Two dots straddle the node's vertical axis.
		if !almostEqual(node.Dots[0].Center.X+node.Dots[1].Center.X, 2*node.Center.X) {
			t.Error("dots should center as a group under the node")
		}
	})

	t.Run("site without connections renders bare", func(t *testing.T) {
		s := site("a", 0.5, 0.5)
		e := newSceneEngine(t, 800, 600, s)
		scene := e.Scene()

		if len(scene.Nodes) != 1 {
			t.Fatalf("expected the node to render, got %d nodes", len(scene.Nodes))
		}
		if len(scene.Nodes[0].Dots) != 0 {
			t.Error("expected no dots without connections")
		}
		if len(scene.Links) != 0 {
			t.Error("expected no links without connections")
		}
	})

	t.Run("node radius shrinks with density", func(t *testing.T) {
		var sites []*domain.Site
		for i := 0; i < 10; i++ {
			sites = append(sites, site(string(rune('a'+i)), 0.5, 0.5))
		}
		e := newSceneEngine(t, 800, 600, sites...)
		scene := e.Scene()

		want := DefaultLayout().NodeRadius * 0.8
		if !almostEqual(scene.Nodes[0].Radius, want) {
			t.Errorf("expected radius %f, got %f", want, scene.Nodes[0].Radius)
		}
	})

	t.Run("dragging flag follows the gesture", func(t *testing.T) {
		s := site("a", 0.5, 0.5, domain.Connection{Type: domain.ConnDIA, Bandwidth: "1 Gbps"})
		e := newSceneEngine(t, 800, 600, s)

		if err := e.BeginDrag("a"); err != nil {
			t.Fatalf("begin drag failed: %v", err)
		}
		if err := e.DragTo(Point{X: 100, Y: 100}); err != nil {
			t.Fatalf("drag move failed: %v", err)
		}

		scene := e.Scene()
		if !scene.Nodes[0].Dragging {
			t.Error("expected dragging flag during the gesture")
		}
		if scene.Nodes[0].Center != (Point{X: 100, Y: 100}) {
			t.Errorf("expected node at the live position, got %+v", scene.Nodes[0].Center)
		}
		if scene.Links[0].Curve.Start != (Point{X: 100, Y: 100}) {
			t.Error("links must follow the live position")
		}
	})
}
