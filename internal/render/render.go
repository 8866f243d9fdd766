// Package render writes derived canvas scenes as portable documents.
//
// Exporters draw whatever the scene carries and nothing else: emphasis,
// dimming, dash style and colors were already decided during scene
// derivation, so two exporters given the same scene agree on what the
// diagram looks like.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/mcherring7/topology-weaver/internal/canvas"
)

// ErrSceneNotReady is returned when a scene was derived before the canvas
// had a measurement; there is no geometry to draw.
var ErrSceneNotReady = errors.New("scene has no canvas measurement")

// Exporter interface for writing a scene to an output format
type Exporter interface {
	Export(scene *canvas.Scene, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format identifier.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "svg":
		return NewSVGExporter(), nil
	case "png":
		return NewPNGExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}
