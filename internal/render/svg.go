package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mcherring7/topology-weaver/internal/canvas"
)

// Document styling the scene does not carry: chrome colors and label sizes.
const (
	svgBackground     = "#0f172a"
	svgLabelColor     = "#e2e8f0"
	svgHubFillOpacity = 0.18
	svgHubLabelSize   = 14.0
	svgNodeLabelSize  = 13.0
	svgBandwidthSize  = 10.0
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// SVGExporter writes a scene as a standalone SVG document
type SVGExporter struct {
	Background string
}

// NewSVGExporter creates a new SVG exporter with the default dark background
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{Background: svgBackground}
}

// Format returns the exporter format identifier
func (e *SVGExporter) Format() string {
	return "svg"
}

// Export renders the scene as SVG. Paint order is background, links, hubs,
// nodes, then bandwidth labels, so curves tuck under the shapes they connect
// and text stays readable.
func (e *SVGExporter) Export(scene *canvas.Scene, w io.Writer) error {
	if !scene.Ready {
		return ErrSceneNotReady
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		scene.Width, scene.Height, scene.Width, scene.Height)
	fmt.Fprintf(&buf, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		scene.Width, scene.Height, e.Background)

	for _, link := range scene.Links {
		dash := ""
		if link.Dashed {
			dash = ` stroke-dasharray="6 4"`
		}
		fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"%s/>`+"\n",
			link.Curve.PathData(), link.Color, link.Width, link.Opacity, dash)
	}

	for _, hub := range scene.Hubs {
		half := hub.Size / 2
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="1.5"/>`+"\n",
			hub.Center.X-half, hub.Center.Y-half, hub.Size, hub.Size, hub.Size*0.15,
			hub.Color, svgHubFillOpacity, hub.Color)
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			hub.Center.X, hub.Center.Y, svgHubLabelSize, svgLabelColor, xmlEscaper.Replace(hub.Label))
	}

	for _, node := range scene.Nodes {
		if node.Selected {
			fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="2" stroke-opacity="0.9"/>`+"\n",
				node.Center.X, node.Center.Y, node.Radius+5, svgLabelColor)
		}
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			node.Center.X, node.Center.Y, node.Radius, node.Fill)
		for _, dot := range node.Dots {
			fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="0.75"/>`+"\n",
				dot.Center.X, dot.Center.Y, dot.Radius, dot.Color, e.Background)
		}
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			node.Center.X, node.Center.Y+node.Radius+16, svgNodeLabelSize, svgLabelColor, xmlEscaper.Replace(node.Name))
	}

	for _, link := range scene.Links {
		if link.Bandwidth == "" {
			continue
		}
		at := link.Curve.PointAt(0.5)
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="%.0f" fill="%s" fill-opacity="%.2f">%s</text>`+"\n",
			at.X, at.Y-4, svgBandwidthSize, svgLabelColor, link.Opacity, xmlEscaper.Replace(link.Bandwidth))
	}

	buf.WriteString("</svg>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
