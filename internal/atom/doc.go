// Package atom defines the immutable hypergraph term model and the
// interning Space that owns it.
//
// An Atom is either a Node (a named leaf, such as a concept or a number)
// or a Link (an ordered sequence of child atoms). Atoms are
// content-addressed: two structurally identical atoms interned in the
// same Space are the same instance, so identity comparison is pointer
// comparison. An atom's outgoing sequence never changes after
// construction.
//
// CRITICAL PATTERNS:
//
// Content-Addressed Identity:
// Every atom has an ID derived from a canonical serialization of its
// structure (SHA-256 with domain separation). The ID is stable across
// processes and snapshots, which is what makes SQLite snapshots and
// golden files reproducible.
//
// Interning:
// All construction goes through a Space. Space.Node and Space.Link are
// idempotent - constructing the same structure twice returns the same
// instance. Matching code relies on this: bindings compare by identity,
// never by deep traversal.
//
// Types:
// Atom types form an inheritance hierarchy managed by a Registry.
// Abstract types (NumericFunction, Virtual) exist only as supertypes and
// cannot be instantiated; attempting to do so is a construction error,
// not a match failure.
package atom
