package engine

import (
	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/pattern"
)

// alignSeq aligns a pattern outgoing set that contains at least one
// glob against a candidate outgoing set.
//
// Globs are resolved greedy-shortest-first: a glob first consumes the
// minimum its interval allows, extending one sibling at a time only
// when the remainder of the pattern fails to align. The first
// consumption whose remainder aligns wins; longer consumptions are not
// enumerated after a success.
func (a *Aligner) alignSeq(ps, cs []atom.Atom, g *Grounding, q pattern.Quotation) bool {
	if len(ps) == 0 {
		return len(cs) == 0
	}

	head := ps[0]
	if !a.pat.IsGlob(head) || q.IsQuoted() {
		if len(cs) == 0 {
			return false
		}
		if !a.Align(head, cs[0], g, q) {
			return false
		}
		return a.alignSeq(ps[1:], cs[1:], g, q)
	}

	iv := a.pat.Interval(head)

	// Leave enough candidates for the rest of the pattern.
	maxTake := len(cs) - a.minRequired(ps[1:])
	if !iv.Unbounded() && iv.Max < maxTake {
		maxTake = iv.Max
	}

	for take := iv.Min; take <= maxTake; take++ {
		run, err := a.space.Link(atom.TypeList, cs[:take]...)
		if err != nil {
			return false
		}

		// Each consumption length is a speculative branch: extend a
		// clone, adopt it only on success.
		attempt := g.Clone()
		if !attempt.Bind(head, run) {
			// Glob already bound to a different run (same glob used
			// twice in the pattern); only the matching length can work.
			continue
		}
		if a.alignSeq(ps[1:], cs[take:], attempt, q) {
			g.Adopt(attempt)
			return true
		}
	}
	return false
}

// minRequired returns the minimum number of candidate children the
// remaining pattern children can consume: one per ordinary child, the
// interval minimum per glob.
func (a *Aligner) minRequired(ps []atom.Atom) int {
	n := 0
	for _, p := range ps {
		if a.pat.IsGlob(p) {
			n += a.pat.Interval(p).Min
		} else {
			n++
		}
	}
	return n
}
