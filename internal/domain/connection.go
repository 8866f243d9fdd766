package domain

import "fmt"

// ConnectionType identifies the WAN circuit flavor of a site link
type ConnectionType string

const (
	ConnMPLS          ConnectionType = "MPLS"
	ConnDirectConnect ConnectionType = "Direct Connect"
	ConnBroadband     ConnectionType = "Broadband"
	ConnLTE           ConnectionType = "LTE"
	ConnDIA           ConnectionType = "DIA"
)

// AllConnectionTypes returns every valid circuit type in display order.
func AllConnectionTypes() []ConnectionType {
	return []ConnectionType{ConnMPLS, ConnDirectConnect, ConnBroadband, ConnLTE, ConnDIA}
}

// Valid reports whether the connection type is one of the known values.
func (t ConnectionType) Valid() bool {
	switch t {
	case ConnMPLS, ConnDirectConnect, ConnBroadband, ConnLTE, ConnDIA:
		return true
	}
	return false
}

// Provider identifies the carrier of a circuit. Optional on a connection.
type Provider string

const (
	ProviderATT     Provider = "AT&T"
	ProviderVerizon Provider = "Verizon"
	ProviderLumen   Provider = "Lumen"
	ProviderComcast Provider = "Comcast"
	ProviderZayo    Provider = "Zayo"
)

// AllProviders returns every known carrier in display order.
func AllProviders() []Provider {
	return []Provider{ProviderATT, ProviderVerizon, ProviderLumen, ProviderComcast, ProviderZayo}
}

// Valid reports whether the provider is one of the known carriers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderATT, ProviderVerizon, ProviderLumen, ProviderComcast, ProviderZayo:
		return true
	}
	return false
}

// HubKind identifies which shared anchor a connection terminates at
type HubKind string

const (
	HubInternet HubKind = "internet"
	HubMPLS     HubKind = "mpls"
)

// Label returns the hub caption drawn inside the anchor icon.
func (k HubKind) Label() string {
	if k == HubMPLS {
		return "MPLS"
	}
	return "Internet"
}

// Connection represents one WAN circuit from a site to a shared hub
type Connection struct {
	Type      ConnectionType `json:"type" yaml:"type"`
	Bandwidth string         `json:"bandwidth" yaml:"bandwidth"`
	Provider  Provider       `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// HubKind returns the anchor this connection routes to. MPLS circuits
// terminate at the MPLS hub; every other type terminates at the Internet hub.
func (c Connection) HubKind() HubKind {
	if c.Type == ConnMPLS {
		return HubMPLS
	}
	return HubInternet
}

// ColorKey returns the palette key for the connection's stroke: the carrier
// when one is set, otherwise the circuit type.
func (c Connection) ColorKey() string {
	if c.Provider != "" {
		return string(c.Provider)
	}
	return string(c.Type)
}

// Validate checks the invariants enforced when a connection is authored.
func (c Connection) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown connection type %q", c.Type)
	}
	if c.Bandwidth == "" {
		return fmt.Errorf("connection bandwidth required")
	}
	if c.Provider != "" && !c.Provider.Valid() {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
