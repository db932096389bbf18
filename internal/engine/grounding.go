package engine

import (
	"sort"
	"strings"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// Grounding maps pattern variables to the values they are bound to.
// Keys are interned variable atoms, so lookup is identity-based.
//
// Invariant: within one grounding a variable is never rebound to a
// different value. Rebinding to an identical value is a no-op;
// rebinding to a different value is a hard conflict that aborts the
// merge producing it.
type Grounding struct {
	m map[atom.Atom]atom.Value
}

// NewGrounding creates an empty grounding.
func NewGrounding() *Grounding {
	return &Grounding{m: make(map[atom.Atom]atom.Value)}
}

// Bind records v -> val. Returns false if v is already bound to a
// different value; binding the identical value again succeeds.
func (g *Grounding) Bind(v atom.Atom, val atom.Value) bool {
	if existing, ok := g.m[v]; ok {
		return atom.SameValue(existing, val)
	}
	g.m[v] = val
	return true
}

// Get returns the value bound to v, if any.
func (g *Grounding) Get(v atom.Atom) (atom.Value, bool) {
	val, ok := g.m[v]
	return val, ok
}

// Len returns the number of bound variables.
func (g *Grounding) Len() int { return len(g.m) }

// Clone returns an independent copy. Backtracking search clones before
// a speculative branch and discards the clone on failure.
func (g *Grounding) Clone() *Grounding {
	out := &Grounding{m: make(map[atom.Atom]atom.Value, len(g.m))}
	for k, v := range g.m {
		out.m[k] = v
	}
	return out
}

// Adopt copies every binding from src into g. src must have been
// produced by extending a clone of g, so no conflicts are possible.
func (g *Grounding) Adopt(src *Grounding) {
	for k, v := range src.m {
		g.m[k] = v
	}
}

// Merge combines g with ext into a fresh grounding. Returns false if
// any variable would be rebound to a different value; the partial
// result is discarded in that case.
func (g *Grounding) Merge(ext *Grounding) (*Grounding, bool) {
	out := g.Clone()
	for k, v := range ext.m {
		if !out.Bind(k, v) {
			return nil, false
		}
	}
	return out, true
}

// Each calls fn for every binding in unspecified order. Iteration stops
// if fn returns false.
func (g *Grounding) Each(fn func(v atom.Atom, val atom.Value) bool) {
	for k, v := range g.m {
		if !fn(k, v) {
			return
		}
	}
}

// String renders the grounding deterministically (sorted by the
// variable's canonical form), for logs and golden files.
func (g *Grounding) String() string {
	pairs := make([]string, 0, len(g.m))
	for k, v := range g.m {
		pairs = append(pairs, atom.CanonicalString(k)+" => "+atom.CanonicalString(v))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
