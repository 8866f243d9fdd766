// Package domain defines the core domain types for the topology-weaver WAN
// diagram system.
//
// This package contains the fundamental entities and value objects that
// represent wide-area-network topology concepts: sites, their WAN
// connections, and the normalized coordinates that place them on a canvas.
//
// # Core Types
//
// Site represents a physical or cloud location (branch, headquarters, data
// center, cloud region) with an ordered list of WAN connections and a
// normalized diagram position.
//
// Connection represents one WAN circuit from a site to a shared hub, typed by
// circuit flavor (MPLS, Direct Connect, Broadband, LTE, DIA) with a free-form
// bandwidth label and an optional carrier.
//
// Coordinates is a resolution-independent position expressed as fractions of
// the canvas dimensions in [0, 1]. Pixel placement is derived by multiplying
// against the measured canvas size, so the same record renders correctly on
// any canvas.
//
// # Hub Routing
//
// Connections do not reference a peer site. Every connection terminates at
// one of two shared anchors: MPLS circuits at the MPLS hub, everything else
// at the Internet hub. Connection.HubKind encodes that rule.
//
// # Validation
//
// Validate methods enforce the invariants for authoring paths (name required,
// known category, one to three connections, each with a known type and a
// bandwidth label). Read paths stay tolerant: coordinates outside [0, 1] and
// empty connection lists are rendered as-is, never rejected.
//
// # Design Principles
//
// - Immutable value objects where possible
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
// - Rich type system with meaningful constants and enumerations
package domain
