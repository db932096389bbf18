// Package engine implements pattern grounding: the recursive term
// aligner, the glob matcher, and the satisfaction combinator.
//
// The engine is the heart of the atomspace matcher - it aligns a
// pattern term against a candidate term, extracts a variable-binding
// map, and combines groundings produced by independently-evaluated
// virtual clauses while rejecting combinations defeated by absent
// clauses.
//
// ARCHITECTURE:
//
// Single-Threaded Match Attempts:
// One alignment or satisfaction call is a synchronous recursive
// computation over an immutable graph. Multiple attempts parallelize
// safely because each owns its Grounding and Quotation state; no shared
// mutable state exists between attempts.
//
// Failure Channels:
// A structural mismatch, an arity shortfall without a glob, or a
// binding conflict all surface as a plain boolean false. Only evaluator
// I/O problems and misuse (virtual clauses with no evaluator) surface
// as errors. A grounding held by a branch that returned false is not
// authoritative and must be discarded by the caller.
//
// CRITICAL PATTERNS:
//
// Accumulating Bindings:
// Bindings are recorded immediately as alignment descends, and siblings
// see bindings made by earlier siblings. This is what lets one variable
// bound in an earlier child constrain a later child. There is no
// deferred substitution pass.
//
// Conflict Pruning:
// The satisfaction combinator never materializes the full cartesian
// product. It folds clause-by-clause and abandons a partial combination
// the moment a merge rebinds a variable to a different value. A
// conflicting partial combination cannot be completed into a valid one,
// so pruning is sound.
package engine
