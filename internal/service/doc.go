// Package service implements the authoring logic around the site store.
//
// This package provides the collaborators that sit between a host UI (form
// dialogs, filter menus, toast feeds) and canonical state, implementing
// business rules, validation, and event publishing.
//
// # Services
//
// SiteService manages the site lifecycle (create, update, delete, coordinate
// commits) and owns the category filter that decides which sites flow to the
// canvas engine.
//
// # Event System
//
// SiteService publishes events via EventBus so hosts can drive toast
// notifications and dependent views. Event types cover the site lifecycle,
// coordinate commits, selection changes, filter changes, and canvas resizes.
// Publishing never blocks: slow subscribers miss events rather than stalling
// an interactive gesture.
//
// # Design Principles
//
// - Services own business logic and validation
// - Store interface for state access
// - Event-driven for host-side updates
// - Synchronous: all state is in memory, nothing blocks
package service
