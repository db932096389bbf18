package engine

import (
	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/pattern"
)

// Aligner compares a pattern term to a candidate term and extracts
// variable bindings. One Aligner is safe for concurrent use; all
// per-attempt state lives in the Grounding and Quotation arguments.
type Aligner struct {
	pat   *pattern.Pattern
	space *atom.Space
	reg   *atom.Registry
}

// NewAligner creates an Aligner for the given pattern. The Space is
// consulted only to intern the list values that glob variables bind to.
func NewAligner(p *pattern.Pattern, space *atom.Space) *Aligner {
	return &Aligner{pat: p, space: space, reg: p.Registry()}
}

// Pattern returns the pattern this Aligner matches.
func (a *Aligner) Pattern() *pattern.Pattern { return a.pat }

// Align aligns pt against ct, accumulating bindings into g. Returns
// false on structural mismatch, arity shortfall without a glob, or a
// binding conflict. On a false return, g may hold partial bindings from
// the failed branch and must not be treated as authoritative.
//
// Callers start with pattern.Quotation{} (the unquoted state); the
// engine threads updated copies down the recursion.
func (a *Aligner) Align(pt, ct atom.Atom, g *Grounding, q pattern.Quotation) bool {
	t := pt.Type()

	// A consumable quotation marker is stripped: its single child is
	// aligned against the same candidate under the updated state.
	if q.Consumable(t) {
		marker, ok := pt.(*atom.Link)
		if !ok || marker.Arity() != 1 {
			return false
		}
		return a.Align(marker.At(0), ct, g, q.Update(t))
	}

	// Binding site: a declared, unquoted variable. Globs are handled
	// inside outgoing sets by alignSeq; a bare glob used as a whole
	// term binds the single candidate as a one-element run.
	if !q.IsQuoted() && a.pat.IsDeclared(pt) {
		if a.pat.IsGlob(pt) {
			run, err := a.space.Link(atom.TypeList, ct)
			if err != nil {
				return false
			}
			return g.Bind(pt, run)
		}
		return g.Bind(pt, ct)
	}

	pl, isLink := pt.(*atom.Link)
	if !isLink {
		// Ordinary node (or a quoted variable): literal identity.
		return pt == ct
	}

	cl, ok := ct.(*atom.Link)
	if !ok {
		return false
	}
	// Candidate must be type-compatible: its type equal to or derived
	// from the pattern link's type.
	if !a.reg.IsA(cl.Type(), pl.Type()) {
		return false
	}

	// Glob dispatch follows the children's quoted state, not the
	// link's own: a LocalQuote covers only this link, so a glob one
	// level beneath it is still an active binding site.
	if a.pat.HasGlobChild(pt) && !q.Descend().IsQuoted() {
		return a.alignSeq(pl.Outgoing(), cl.Outgoing(), g, q.Descend())
	}

	if pl.Arity() != cl.Arity() {
		return false
	}
	qc := q.Descend()
	for i, pc := range pl.Outgoing() {
		if !a.Align(pc, cl.At(i), g, qc) {
			return false
		}
	}
	return true
}
