package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// evalFunc adapts a function to the ClauseEvaluator interface.
type evalFunc func(ctx context.Context, clause atom.Atom, seed *Grounding) ([]*Grounding, error)

func (f evalFunc) Evaluate(ctx context.Context, clause atom.Atom, seed *Grounding) ([]*Grounding, error) {
	return f(ctx, clause, seed)
}

func bound(t *testing.T, pairs ...any) *Grounding {
	t.Helper()
	g := NewGrounding()
	for i := 0; i < len(pairs); i += 2 {
		require.True(t, g.Bind(pairs[i].(atom.Atom), pairs[i+1].(atom.Value)))
	}
	return g
}

func TestNewSatisfierRequiresAccept(t *testing.T) {
	_, err := NewSatisfier(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accept callback is required")
}

func TestSatisfyNoClausesOffersBase(t *testing.T) {
	ts := newTestSpace(t)
	x := ts.variable("$x")
	dog := ts.node(atom.TypeConcept, "dog")
	base := bound(t, x, dog)

	var got *Grounding
	s, err := NewSatisfier(nil, func(g *Grounding) bool {
		got = g
		return false
	})
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), base, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, got)
	val, _ := got.Get(x)
	assert.Same(t, dog, val.(*atom.Node))
}

func TestSatisfyNilEvaluatorWithClauses(t *testing.T) {
	ts := newTestSpace(t)
	clause := ts.node(atom.TypeConcept, "clause")

	s, err := NewSatisfier(nil, func(*Grounding) bool { return false })
	require.NoError(t, err)

	_, err = s.Satisfy(context.Background(), nil, []atom.Atom{clause}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no evaluator configured")
}

func TestSatisfyEmptyExtensionFailsFast(t *testing.T) {
	ts := newTestSpace(t)
	clause := ts.node(atom.TypeConcept, "unsatisfiable")

	accepts := 0
	eval := evalFunc(func(context.Context, atom.Atom, *Grounding) ([]*Grounding, error) {
		return nil, nil
	})
	s, err := NewSatisfier(eval, func(*Grounding) bool { accepts++; return false })
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), nil, []atom.Atom{clause}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, accepts)
}

func TestSatisfyConflictPruning(t *testing.T) {
	ts := newTestSpace(t)
	x := ts.variable("$x")
	one := ts.node(atom.TypeConcept, "one")
	two := ts.node(atom.TypeConcept, "two")
	c1 := ts.node(atom.TypePredicate, "c1")
	c2 := ts.node(atom.TypePredicate, "c2")

	// Clause extensions rebind $x to different values: every
	// combination conflicts and nothing survives.
	eval := evalFunc(func(_ context.Context, clause atom.Atom, _ *Grounding) ([]*Grounding, error) {
		if clause == c1 {
			return []*Grounding{bound(t, x, one)}, nil
		}
		return []*Grounding{bound(t, x, two)}, nil
	})

	accepts := 0
	s, err := NewSatisfier(eval, func(*Grounding) bool { accepts++; return false })
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), nil, []atom.Atom{c1, c2}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, accepts)
}

func TestSatisfyCompatibleCombination(t *testing.T) {
	ts := newTestSpace(t)
	x := ts.variable("$x")
	y := ts.variable("$y")
	dog := ts.node(atom.TypeConcept, "dog")
	cat := ts.node(atom.TypeConcept, "cat")
	c1 := ts.node(atom.TypePredicate, "c1")
	c2 := ts.node(atom.TypePredicate, "c2")

	eval := evalFunc(func(_ context.Context, clause atom.Atom, _ *Grounding) ([]*Grounding, error) {
		if clause == c1 {
			return []*Grounding{bound(t, x, dog)}, nil
		}
		// One alternative conflicts on $x, one extends with $y.
		return []*Grounding{bound(t, x, cat), bound(t, x, dog, y, cat)}, nil
	})

	var accepted []*Grounding
	s, err := NewSatisfier(eval, func(g *Grounding) bool {
		accepted = append(accepted, g)
		return false
	})
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), nil, []atom.Atom{c1, c2}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, accepted, 1)

	val, _ := accepted[0].Get(y)
	assert.Same(t, cat, val.(*atom.Node))
	assert.Equal(t, 2, accepted[0].Len())
}

func TestSatisfyAbsentRejects(t *testing.T) {
	ts := newTestSpace(t)
	x := ts.variable("$x")
	dog := ts.node(atom.TypeConcept, "dog")
	absent := ts.node(atom.TypePredicate, "forbidden")

	eval := evalFunc(func(_ context.Context, clause atom.Atom, seed *Grounding) ([]*Grounding, error) {
		if clause == absent {
			// The absent sub-pattern is satisfiable: grounding rejected.
			return []*Grounding{NewGrounding()}, nil
		}
		return nil, nil
	})

	accepts := 0
	s, err := NewSatisfier(eval, func(*Grounding) bool { accepts++; return false })
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), bound(t, x, dog), nil, []atom.Atom{absent})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, accepts)
}

func TestSatisfyAbsentUnsatisfiablePasses(t *testing.T) {
	ts := newTestSpace(t)
	absent := ts.node(atom.TypePredicate, "forbidden")

	eval := evalFunc(func(context.Context, atom.Atom, *Grounding) ([]*Grounding, error) {
		return nil, nil
	})

	accepts := 0
	s, err := NewSatisfier(eval, func(*Grounding) bool { accepts++; return false })
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), nil, nil, []atom.Atom{absent})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, accepts)
}

func TestSatisfyAcceptStopsEnumeration(t *testing.T) {
	ts := newTestSpace(t)
	x := ts.variable("$x")
	dog := ts.node(atom.TypeConcept, "dog")
	cat := ts.node(atom.TypeConcept, "cat")
	c1 := ts.node(atom.TypePredicate, "c1")

	eval := evalFunc(func(context.Context, atom.Atom, *Grounding) ([]*Grounding, error) {
		return []*Grounding{bound(t, x, dog), bound(t, x, cat)}, nil
	})

	accepts := 0
	s, err := NewSatisfier(eval, func(*Grounding) bool {
		accepts++
		return true // single-answer mode
	})
	require.NoError(t, err)

	ok, err := s.Satisfy(context.Background(), nil, []atom.Atom{c1}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, accepts)
}

func TestSatisfyContextCancellation(t *testing.T) {
	ts := newTestSpace(t)
	c1 := ts.node(atom.TypePredicate, "c1")

	eval := evalFunc(func(context.Context, atom.Atom, *Grounding) ([]*Grounding, error) {
		return []*Grounding{NewGrounding()}, nil
	})

	s, err := NewSatisfier(eval, func(*Grounding) bool { return false })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Satisfy(ctx, nil, []atom.Atom{c1}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
