// Package store defines the canonical site state for topology-weaver.
//
// The Store interface is the sole owner of Site records: every collaborator
// (the canvas engine, form dialogs, the category filter) reads from it, and
// coordinate commits from drag gestures write back through it. Records are
// held in memory only; diagram state does not survive a process restart.
//
// # Ordering
//
// Sites form an ordered sequence. The memory implementation preserves
// insertion order, which downstream consumers rely on for stable fan-out
// indices and deterministic rendering.
//
// # Aliasing
//
// The store clones records on the way in and out. Callers can mutate what
// they get back without corrupting canonical state, and canonical state can
// only change through Store methods.
package store
