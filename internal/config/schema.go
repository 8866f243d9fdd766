package config

import (
	"time"

	"github.com/mcherring7/topology-weaver/internal/canvas"
)

// Config is the root configuration structure
type Config struct {
	Version int          `yaml:"version"`
	Canvas  CanvasConfig `yaml:"canvas"`
	Theme   ThemeConfig  `yaml:"theme,omitempty"`
}

// CanvasConfig tunes the canvas engine geometry. Unset values fall back to
// the engine's nominal layout.
type CanvasConfig struct {
	DragMarginPx float64 `yaml:"drag_margin_px,omitempty"`
	CommitMargin float64 `yaml:"commit_margin,omitempty"`
	FanStep      float64 `yaml:"fan_step,omitempty"`
	CurveBase    float64 `yaml:"curve_base,omitempty"`
	CurveStep    float64 `yaml:"curve_step,omitempty"`
	NodeRadius   float64 `yaml:"node_radius,omitempty"`
	HubFraction  float64 `yaml:"hub_fraction,omitempty"`
	HubMinPx     float64 `yaml:"hub_min_px,omitempty"`
	DensityLimit int     `yaml:"density_limit,omitempty"`
	DensityFloor float64 `yaml:"density_floor,omitempty"`

	// SettleDelay is how long the engine waits after a layout-changing
	// event before re-measuring the canvas.
	SettleDelay *Duration `yaml:"settle_delay,omitempty"`
}

// ThemeConfig overrides palette entries by key (category, circuit type,
// carrier, or hub kind).
type ThemeConfig struct {
	Colors map[string]string `yaml:"colors,omitempty"`
}

// Layout converts the canvas section into engine layout parameters.
func (c *Config) Layout() canvas.Layout {
	l := canvas.DefaultLayout()

	cv := c.Canvas
	if cv.DragMarginPx > 0 {
		l.DragMarginPx = cv.DragMarginPx
	}
	if cv.CommitMargin > 0 {
		l.CommitMargin = cv.CommitMargin
	}
	if cv.FanStep > 0 {
		l.FanStep = cv.FanStep
	}
	if cv.CurveBase > 0 {
		l.CurveBase = cv.CurveBase
	}
	if cv.CurveStep > 0 {
		l.CurveStep = cv.CurveStep
	}
	if cv.NodeRadius > 0 {
		l.NodeRadius = cv.NodeRadius
	}
	if cv.HubFraction > 0 {
		l.HubFraction = cv.HubFraction
	}
	if cv.HubMinPx > 0 {
		l.HubMinPx = cv.HubMinPx
	}
	if cv.DensityLimit > 0 {
		l.DensityLimit = cv.DensityLimit
	}
	if cv.DensityFloor > 0 {
		l.DensityFloor = cv.DensityFloor
	}
	if cv.SettleDelay != nil {
		l.SettleDelay = cv.SettleDelay.Duration()
	}
	return l
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
