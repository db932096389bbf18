package pattern

import "github.com/cogroid/o-atomspace/internal/atom"

// Quotation tracks quote nesting during pattern traversal. The zero
// value is the default, unquoted state.
//
// Two pieces of state: a depth counter for nested Quote scopes, and a
// flag for a LocalQuote scope, which quotes exactly one level instead of
// everything beneath it. While quoted, variable and glob nodes in the
// pattern are matched as literal atoms.
type Quotation struct {
	level int
	local bool
}

// IsQuoted reports whether variable binding is currently suppressed.
func (q Quotation) IsQuoted() bool {
	return q.local || q.level > 0
}

// Level returns the current Quote nesting depth.
func (q Quotation) Level() int { return q.level }

// Consumable reports whether a marker of type t changes quoting state at
// this position instead of being matched as a literal link.
//
// Quote and LocalQuote are consumed only when the position is not
// already quoted; a quote inside a quote is data. Unquote is consumed
// when it cancels the innermost quoting scope.
func (q Quotation) Consumable(t atom.Type) bool {
	switch t {
	case atom.TypeQuote, atom.TypeLocalQuote:
		return !q.IsQuoted()
	case atom.TypeUnquote:
		return q.local || q.level == 1
	}
	return false
}

// Update returns the quotation state for the child of a consumed marker
// of type t. Callers must check Consumable first; updating with a
// non-marker type returns q unchanged.
func (q Quotation) Update(t atom.Type) Quotation {
	switch t {
	case atom.TypeQuote:
		q.level++
	case atom.TypeLocalQuote:
		q.local = true
	case atom.TypeUnquote:
		if q.local {
			q.local = false
		} else if q.level > 0 {
			q.level--
		}
	}
	return q
}

// Descend returns the quotation state for the children of an ordinary
// link. A LocalQuote scope covers only the link it was applied to, so
// the local flag drops off when descending past it.
func (q Quotation) Descend() Quotation {
	q.local = false
	return q
}

// IsMarker reports whether t is one of the quotation marker types.
func IsMarker(t atom.Type) bool {
	return t == atom.TypeQuote || t == atom.TypeUnquote || t == atom.TypeLocalQuote
}
