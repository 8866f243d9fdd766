package domain

// Coordinates is a normalized diagram position: fractions of the canvas
// dimensions in [0, 1], independent of any concrete pixel size.
type Coordinates struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Clamp returns a copy with both axes limited to [lo, hi]. Drag commits pass
// the canvas safety margin here; read paths never clamp.
func (c Coordinates) Clamp(lo, hi float64) Coordinates {
	return Coordinates{X: clampFloat(c.X, lo, hi), Y: clampFloat(c.Y, lo, hi)}
}

// InBounds reports whether both axes fall within [0, 1].
func (c Coordinates) InBounds() bool {
	return c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
