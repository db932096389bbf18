// Package driver is the reference query-execution driver: it feeds
// candidate atoms to the alignment engine, evaluates virtual and absent
// clauses, and reports accepted groundings. The engine itself stays
// policy-free; enumeration order, candidate filtering, and stop
// behavior live here.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/engine"
	"github.com/cogroid/o-atomspace/internal/pattern"
	"github.com/cogroid/o-atomspace/internal/reduct"
)

// errUnbound marks substitution into a term whose variables are not all
// bound yet. It never escapes the driver; an unevaluable clause is
// simply unsatisfiable.
var errUnbound = errors.New("unbound variable")

// Driver runs one pattern against one Space.
type Driver struct {
	space   *atom.Space
	pat     *pattern.Pattern
	aligner *engine.Aligner
	exec    *reduct.Executor
	reg     *atom.Registry

	// SessionID stamps log lines from this driver so interleaved runs
	// can be told apart.
	SessionID string
}

// New creates a Driver for the given pattern and space.
func New(space *atom.Space, pat *pattern.Pattern) *Driver {
	return &Driver{
		space:     space,
		pat:       pat,
		aligner:   engine.NewAligner(pat, space),
		exec:      reduct.NewExecutor(space),
		reg:       pat.Registry(),
		SessionID: uuid.NewString(),
	}
}

// Aligner exposes the underlying aligner for direct extraction calls.
func (d *Driver) Aligner() *engine.Aligner { return d.aligner }

// Extract aligns the full pattern body against a single candidate term
// and returns the extracted grounding. This is the map-style entry
// point: no clause enumeration, no virtual evaluation.
func (d *Driver) Extract(candidate atom.Atom) (*engine.Grounding, bool) {
	g := engine.NewGrounding()
	if !d.aligner.Align(d.pat.Body(), candidate, g, pattern.Quotation{}) {
		return nil, false
	}
	return g, true
}

// MatchAll grounds every structural clause against the space,
// accumulating bindings across clauses, then runs the satisfaction
// combinator over the pattern's virtual and absent clauses. Every
// surviving grounding is reported to accept; accept returning true
// stops the search.
//
// Returns whether at least one grounding was accepted.
func (d *Driver) MatchAll(ctx context.Context, accept engine.AcceptFunc) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	stopRequested := false
	wrapped := func(g *engine.Grounding) bool {
		if accept(g) {
			stopRequested = true
		}
		return stopRequested
	}
	sat, err := engine.NewSatisfier(d, wrapped)
	if err != nil {
		return false, err
	}

	structural := d.pat.StructuralClauses()
	virtuals := d.pat.VirtualClauses()
	absents := d.pat.AbsentClauses()
	candidates := d.candidates()

	slog.Debug("match starting",
		"session", d.SessionID,
		"structural", len(structural),
		"virtual", len(virtuals),
		"absent", len(absents),
		"candidates", len(candidates))

	matched := false
	var ground func(i int, g *engine.Grounding) error
	ground = func(i int, g *engine.Grounding) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == len(structural) {
			ok, err := sat.Satisfy(ctx, g, virtuals, absents)
			if err != nil {
				return err
			}
			if ok {
				matched = true
			}
			return nil
		}
		for _, c := range candidates {
			if stopRequested {
				return nil
			}
			attempt := g.Clone()
			if !d.aligner.Align(structural[i], c, attempt, pattern.Quotation{}) {
				continue
			}
			if err := ground(i+1, attempt); err != nil {
				return err
			}
		}
		return nil
	}

	if err := ground(0, engine.NewGrounding()); err != nil {
		return false, err
	}

	slog.Debug("match finished", "session", d.SessionID, "matched", matched)
	return matched, nil
}

// candidates returns the atoms a structural clause may ground to:
// everything in the space except terms that contain a declared pattern
// variable (a clause grounding itself is not an answer).
func (d *Driver) candidates() []atom.Atom {
	all := d.space.Atoms()
	out := make([]atom.Atom, 0, len(all))
	for _, a := range all {
		if d.containsDeclaredVar(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (d *Driver) containsDeclaredVar(a atom.Atom) bool {
	if d.pat.IsDeclared(a) {
		return true
	}
	l, ok := a.(*atom.Link)
	if !ok {
		return false
	}
	for _, child := range l.Outgoing() {
		if d.containsDeclaredVar(child) {
			return true
		}
	}
	return false
}

// Evaluate implements engine.ClauseEvaluator.
//
// Virtual clauses (GreaterThan, LessThan) are substituted under the
// seed grounding, numerically reduced, and compared; they extend the
// seed with nothing, they only gate it. Any other clause - absent
// clauses arrive here - is treated as a sub-pattern and structurally
// aligned against the space under the seed.
func (d *Driver) Evaluate(ctx context.Context, clause atom.Atom, seed *engine.Grounding) ([]*engine.Grounding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.reg.IsA(clause.Type(), atom.TypeVirtual) {
		return d.evaluateVirtual(clause, seed)
	}
	return d.evaluateStructural(clause, seed), nil
}

func (d *Driver) evaluateVirtual(clause atom.Atom, seed *engine.Grounding) ([]*engine.Grounding, error) {
	l, ok := clause.(*atom.Link)
	if !ok || l.Arity() != 2 {
		return nil, fmt.Errorf("virtual clause %s: want arity 2", atom.CanonicalString(clause))
	}

	lhs, err := d.resolveNumeric(l.At(0), seed)
	if err != nil {
		return d.unsatisfiableOr(err)
	}
	rhs, err := d.resolveNumeric(l.At(1), seed)
	if err != nil {
		return d.unsatisfiableOr(err)
	}

	var holds bool
	switch l.Type() {
	case atom.TypeGreaterThan:
		holds = lhs > rhs
	case atom.TypeLessThan:
		holds = lhs < rhs
	default:
		return nil, fmt.Errorf("virtual clause type %s has no evaluator", l.Type())
	}
	if !holds {
		return nil, nil
	}
	// The clause gates the seed without extending it.
	return []*engine.Grounding{engine.NewGrounding()}, nil
}

// unsatisfiableOr maps "cannot evaluate" conditions to an empty result
// and propagates everything else.
func (d *Driver) unsatisfiableOr(err error) ([]*engine.Grounding, error) {
	if errors.Is(err, errUnbound) || errors.Is(err, reduct.ErrNotNumeric) {
		return nil, nil
	}
	return nil, err
}

// resolveNumeric substitutes the seed into term, reduces it, and
// returns the leading vector component.
func (d *Driver) resolveNumeric(term atom.Atom, seed *engine.Grounding) (float64, error) {
	grounded, err := d.substitute(term, seed)
	if err != nil {
		return 0, err
	}
	reduced, err := d.exec.Execute(grounded)
	if err != nil {
		return 0, err
	}
	vec, ok := reduct.Vector(reduced)
	if !ok || len(vec) == 0 {
		return 0, reduct.ErrNotNumeric
	}
	return vec[0], nil
}

// evaluateStructural aligns the clause against every candidate under
// the seed and returns each successful extension.
func (d *Driver) evaluateStructural(clause atom.Atom, seed *engine.Grounding) []*engine.Grounding {
	var out []*engine.Grounding
	for _, c := range d.candidates() {
		attempt := seed.Clone()
		if d.aligner.Align(clause, c, attempt, pattern.Quotation{}) {
			out = append(out, attempt)
		}
	}
	return out
}

// substitute rebuilds term with every declared variable replaced by its
// binding. Glob bindings splice their run into the enclosing outgoing
// set. Returns errUnbound if a declared variable has no binding yet.
func (d *Driver) substitute(term atom.Atom, g *engine.Grounding) (atom.Atom, error) {
	if d.pat.IsDeclared(term) {
		val, ok := g.Get(term)
		if !ok {
			return nil, fmt.Errorf("%s: %w", atom.CanonicalString(term), errUnbound)
		}
		return d.valueAsAtom(val)
	}

	l, ok := term.(*atom.Link)
	if !ok {
		return term, nil
	}

	children := make([]atom.Atom, 0, l.Arity())
	for _, child := range l.Outgoing() {
		if d.pat.IsGlob(child) {
			val, ok := g.Get(child)
			if !ok {
				return nil, fmt.Errorf("%s: %w", atom.CanonicalString(child), errUnbound)
			}
			run, err := d.valueAsAtom(val)
			if err != nil {
				return nil, err
			}
			rl, ok := run.(*atom.Link)
			if !ok {
				return nil, fmt.Errorf("glob %s bound to non-link value", atom.CanonicalString(child))
			}
			children = append(children, rl.Outgoing()...)
			continue
		}
		sub, err := d.substitute(child, g)
		if err != nil {
			return nil, err
		}
		children = append(children, sub)
	}
	return d.space.Link(l.Type(), children...)
}

// valueAsAtom converts a bound value into an atom, interning computed
// float vectors as Number nodes.
func (d *Driver) valueAsAtom(val atom.Value) (atom.Atom, error) {
	switch v := val.(type) {
	case atom.Atom:
		return v, nil
	case *atom.FloatValue:
		return d.space.Number(v.Floats()...)
	}
	return nil, fmt.Errorf("unsupported binding value %T", val)
}
