package pattern

import (
	"github.com/cogroid/o-atomspace/internal/atom"
)

// VarDecl declares one pattern variable. Interval applies to Glob
// variables only; nil means the default zero-or-more interval.
type VarDecl struct {
	Atom     atom.Atom
	Interval *Interval
}

// Pattern is a compiled match template: the declared variable set, the
// body term, and everything precomputed at construction so the matcher
// never re-scans the tree - the globby-term set and the partition of
// body clauses into structural, virtual, and absent.
//
// Patterns are immutable after construction and safe to share across
// concurrent match attempts.
type Pattern struct {
	reg  *atom.Registry
	body atom.Atom

	vars      map[atom.Atom]bool
	intervals map[atom.Atom]Interval

	// Smallest sub-terms of the body containing a declared glob: the
	// links whose direct outgoing set includes one. Alignment dispatches
	// to glob-aware comparison exactly at these terms.
	globby map[atom.Atom]bool

	structural []atom.Atom
	virtual    []atom.Atom
	absent     []atom.Atom
}

// New builds a Pattern over the given registry from variable
// declarations and a body term. All validation happens here: a failed
// precondition is a ConstructError, never a later match failure.
//
// Variables appearing in the body but not declared are matched as
// literal atoms. A top-level List or Set body is treated as a
// conjunction of clauses; anything else is a single clause.
func New(reg *atom.Registry, decls []VarDecl, body atom.Atom) (*Pattern, error) {
	if body == nil {
		return nil, newConstructError(ErrCodeEmptyBody, "pattern has no body term")
	}
	if reg == nil {
		reg = atom.NewRegistry()
	}

	p := &Pattern{
		reg:       reg,
		body:      body,
		vars:      make(map[atom.Atom]bool, len(decls)),
		intervals: make(map[atom.Atom]Interval),
		globby:    make(map[atom.Atom]bool),
	}

	for _, d := range decls {
		if d.Atom == nil || !reg.IsA(d.Atom.Type(), atom.TypeVariable) {
			return nil, newConstructError(ErrCodeNotAVariable,
				"declaration %s is not a Variable or Glob", describe(d.Atom))
		}
		if p.vars[d.Atom] {
			return nil, newConstructError(ErrCodeDuplicateDecl,
				"variable %s declared twice", atom.CanonicalString(d.Atom))
		}
		p.vars[d.Atom] = true

		isGlob := reg.IsA(d.Atom.Type(), atom.TypeGlob)
		if d.Interval != nil {
			if !isGlob {
				return nil, newConstructError(ErrCodeBadInterval,
					"interval on non-glob variable %s", atom.CanonicalString(d.Atom))
			}
			if err := d.Interval.validate(); err != nil {
				return nil, newConstructError(ErrCodeBadInterval,
					"glob %s: %v", atom.CanonicalString(d.Atom), err)
			}
			p.intervals[d.Atom] = *d.Interval
		} else if isGlob {
			p.intervals[d.Atom] = DefaultInterval()
		}
	}

	p.scanGlobby(body)

	if err := p.partition(); err != nil {
		return nil, err
	}
	return p, nil
}

// describe renders an atom for error messages, tolerating nil.
func describe(a atom.Atom) string {
	if a == nil {
		return "<nil>"
	}
	return atom.CanonicalString(a)
}

// scanGlobby walks the body and records every link whose direct
// outgoing set contains a declared glob.
func (p *Pattern) scanGlobby(term atom.Atom) {
	l, ok := term.(*atom.Link)
	if !ok {
		return
	}
	for _, child := range l.Outgoing() {
		if p.IsGlob(child) {
			p.globby[term] = true
		}
		p.scanGlobby(child)
	}
}

// partition splits the body into structural, virtual, and absent
// clauses. Absent clauses are unwrapped to the sub-term that must stay
// unsatisfiable.
func (p *Pattern) partition() error {
	clauses := []atom.Atom{p.body}
	if l, ok := p.body.(*atom.Link); ok {
		t := l.Type()
		if t == atom.TypeList || t == atom.TypeSet {
			clauses = l.Outgoing()
		}
	}

	for _, c := range clauses {
		t := c.Type()
		switch {
		case p.reg.IsA(t, atom.TypeAbsent):
			l, ok := c.(*atom.Link)
			if !ok || l.Arity() != 1 {
				return newConstructError(ErrCodeBadAbsent,
					"Absent clause must wrap exactly one term: %s", atom.CanonicalString(c))
			}
			p.absent = append(p.absent, l.At(0))
		case p.reg.IsA(t, atom.TypeVirtual):
			p.virtual = append(p.virtual, c)
		default:
			p.structural = append(p.structural, c)
		}
	}
	return nil
}

// Registry returns the registry the pattern was compiled against.
func (p *Pattern) Registry() *atom.Registry { return p.reg }

// Body returns the full body term.
func (p *Pattern) Body() atom.Atom { return p.body }

// IsDeclared reports whether a is a declared pattern variable.
func (p *Pattern) IsDeclared(a atom.Atom) bool { return p.vars[a] }

// IsGlob reports whether a is a declared glob variable.
func (p *Pattern) IsGlob(a atom.Atom) bool {
	return p.vars[a] && p.reg.IsA(a.Type(), atom.TypeGlob)
}

// Variables returns the declared variable set. The returned map is
// shared; callers must not mutate it.
func (p *Pattern) Variables() map[atom.Atom]bool { return p.vars }

// Interval returns the consumption interval for a declared glob.
func (p *Pattern) Interval(glob atom.Atom) Interval {
	if iv, ok := p.intervals[glob]; ok {
		return iv
	}
	return DefaultInterval()
}

// HasGlobChild reports whether term is one of the precomputed globby
// terms: a link with a declared glob among its direct children.
func (p *Pattern) HasGlobChild(term atom.Atom) bool { return p.globby[term] }

// StructuralClauses returns the clauses groundable by alignment.
func (p *Pattern) StructuralClauses() []atom.Atom { return p.structural }

// VirtualClauses returns the clauses requiring evaluation.
func (p *Pattern) VirtualClauses() []atom.Atom { return p.virtual }

// AbsentClauses returns the sub-terms that must be unsatisfiable for a
// grounding to be accepted.
func (p *Pattern) AbsentClauses() []atom.Atom { return p.absent }
