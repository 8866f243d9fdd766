package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcherring7/topology-weaver/internal/canvas"
)

// JSONExporter writes the scene itself as an indented JSON document. Handy
// for inspecting exactly what the drawing exporters were handed; unlike
// those it accepts an unmeasured scene, since dumping one is a legitimate
// way to debug it.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the exporter format identifier
func (e *JSONExporter) Format() string {
	return "json"
}

// Export writes the scene as JSON
func (e *JSONExporter) Export(scene *canvas.Scene, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(scene); err != nil {
		return fmt.Errorf("failed to encode scene JSON: %w", err)
	}

	return nil
}
