// Package palette maps visual keys (site categories, circuit types,
// carriers, hub kinds) to color tokens. Unknown keys resolve to a fixed
// neutral so rendering never fails on an unmapped value.
package palette

import "github.com/mcherring7/topology-weaver/internal/domain"

// Neutral is the fallback color token for keys without a mapping.
const Neutral = "#9ca3af"

// Palette is a flat key-to-color table. Category keys use the enum value
// ("branch"), circuit and carrier keys use their display strings ("MPLS",
// "AT&T"), hub keys use the hub kind ("internet", "mpls").
type Palette struct {
	colors map[string]string
}

// Default returns the built-in theme.
func Default() *Palette {
	return &Palette{colors: map[string]string{
		// site categories
		string(domain.CategoryBranch):       "#3b82f6",
		string(domain.CategoryHeadquarters): "#8b5cf6",
		string(domain.CategoryDataCenter):   "#f59e0b",
		string(domain.CategoryCloud):        "#06b6d4",

		// circuit types
		string(domain.ConnMPLS):          "#f97316",
		string(domain.ConnDirectConnect): "#a855f7",
		string(domain.ConnBroadband):     "#22c55e",
		string(domain.ConnLTE):           "#eab308",
		string(domain.ConnDIA):           "#3b82f6",

		// carriers
		string(domain.ProviderATT):     "#0ea5e9",
		string(domain.ProviderVerizon): "#ef4444",
		string(domain.ProviderLumen):   "#10b981",
		string(domain.ProviderComcast): "#64748b",
		string(domain.ProviderZayo):    "#d946ef",

		// hub anchors
		string(domain.HubInternet): "#38bdf8",
		string(domain.HubMPLS):     "#fb923c",
	}}
}

// Lookup returns the color token for key, or Neutral when the key is
// unmapped. The method value satisfies the canvas engine's ColorFunc.
func (p *Palette) Lookup(key string) string {
	if c, ok := p.colors[key]; ok && c != "" {
		return c
	}
	return Neutral
}

// Set overrides a single key. Empty colors are ignored so partial theme
// config cannot blank out a mapping.
func (p *Palette) Set(key, color string) {
	if key == "" || color == "" {
		return
	}
	p.colors[key] = color
}

// Merge applies theme overrides on top of the current table.
func (p *Palette) Merge(overrides map[string]string) {
	for k, v := range overrides {
		p.Set(k, v)
	}
}
