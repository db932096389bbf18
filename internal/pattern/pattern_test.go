package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// fixture builds a space plus commonly used atoms for pattern tests.
type fixture struct {
	space *atom.Space
	x     *atom.Node
	g     *atom.Node
	dog   *atom.Node
	legs  *atom.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := atom.NewSpace(nil)

	x, err := s.Variable("$x")
	require.NoError(t, err)
	g, err := s.GlobVariable("$g")
	require.NoError(t, err)
	dog, err := s.Node(atom.TypeConcept, "dog")
	require.NoError(t, err)
	legs, err := s.Node(atom.TypePredicate, "legs")
	require.NoError(t, err)

	return &fixture{space: s, x: x, g: g, dog: dog, legs: legs}
}

func (f *fixture) link(t *testing.T, typ atom.Type, out ...atom.Atom) *atom.Link {
	t.Helper()
	l, err := f.space.Link(typ, out...)
	require.NoError(t, err)
	return l
}

func TestNewPatternSingleClause(t *testing.T) {
	f := newFixture(t)
	body := f.link(t, atom.TypeEvaluation, f.legs, f.link(t, atom.TypeList, f.x))

	p, err := New(f.space.Registry(), []VarDecl{{Atom: f.x}}, body)
	require.NoError(t, err)

	assert.Same(t, body, p.Body())
	assert.True(t, p.IsDeclared(f.x))
	assert.False(t, p.IsDeclared(f.dog))
	assert.False(t, p.IsGlob(f.x))
	require.Len(t, p.StructuralClauses(), 1)
	assert.Same(t, body, p.StructuralClauses()[0].(*atom.Link))
	assert.Empty(t, p.VirtualClauses())
	assert.Empty(t, p.AbsentClauses())
}

func TestNewPatternPartition(t *testing.T) {
	f := newFixture(t)

	structural := f.link(t, atom.TypeEvaluation, f.legs, f.link(t, atom.TypeList, f.x))
	virtual := f.link(t, atom.TypeGreaterThan, f.x, f.dog)
	inner := f.link(t, atom.TypeEvaluation, f.legs, f.dog)
	absent := f.link(t, atom.TypeAbsent, inner)
	body := f.link(t, atom.TypeList, structural, virtual, absent)

	p, err := New(f.space.Registry(), []VarDecl{{Atom: f.x}}, body)
	require.NoError(t, err)

	require.Len(t, p.StructuralClauses(), 1)
	assert.Same(t, structural, p.StructuralClauses()[0].(*atom.Link))
	require.Len(t, p.VirtualClauses(), 1)
	assert.Same(t, virtual, p.VirtualClauses()[0].(*atom.Link))
	require.Len(t, p.AbsentClauses(), 1)
	assert.Same(t, inner, p.AbsentClauses()[0].(*atom.Link), "Absent unwraps to its sub-term")
}

func TestNewPatternGlobbyScan(t *testing.T) {
	f := newFixture(t)

	withGlob := f.link(t, atom.TypeList, f.dog, f.g)
	body := f.link(t, atom.TypeEvaluation, f.legs, withGlob)

	p, err := New(f.space.Registry(), []VarDecl{{Atom: f.g}}, body)
	require.NoError(t, err)

	assert.True(t, p.IsGlob(f.g))
	assert.True(t, p.HasGlobChild(withGlob), "direct glob child marks the link")
	assert.False(t, p.HasGlobChild(body), "glob below a grandchild does not")
	assert.Equal(t, DefaultInterval(), p.Interval(f.g))
}

func TestNewPatternIntervals(t *testing.T) {
	f := newFixture(t)
	body := f.link(t, atom.TypeList, f.dog, f.g)

	p, err := New(f.space.Registry(),
		[]VarDecl{{Atom: f.g, Interval: &Interval{Min: 1, Max: 3}}}, body)
	require.NoError(t, err)
	assert.Equal(t, Interval{Min: 1, Max: 3}, p.Interval(f.g))
}

func TestNewPatternErrors(t *testing.T) {
	f := newFixture(t)
	body := f.link(t, atom.TypeList, f.x)

	tests := []struct {
		name  string
		decls []VarDecl
		body  atom.Atom
		code  ConstructErrorCode
	}{
		{
			name: "nil body",
			code: ErrCodeEmptyBody,
		},
		{
			name:  "non-variable declaration",
			decls: []VarDecl{{Atom: f.dog}},
			body:  body,
			code:  ErrCodeNotAVariable,
		},
		{
			name:  "nil declaration",
			decls: []VarDecl{{}},
			body:  body,
			code:  ErrCodeNotAVariable,
		},
		{
			name:  "duplicate declaration",
			decls: []VarDecl{{Atom: f.x}, {Atom: f.x}},
			body:  body,
			code:  ErrCodeDuplicateDecl,
		},
		{
			name:  "interval on plain variable",
			decls: []VarDecl{{Atom: f.x, Interval: &Interval{Min: 0, Max: 1}}},
			body:  body,
			code:  ErrCodeBadInterval,
		},
		{
			name:  "negative interval minimum",
			decls: []VarDecl{{Atom: f.g, Interval: &Interval{Min: -1, Max: 1}}},
			body:  body,
			code:  ErrCodeBadInterval,
		},
		{
			name:  "maximum below minimum",
			decls: []VarDecl{{Atom: f.g, Interval: &Interval{Min: 2, Max: 1}}},
			body:  body,
			code:  ErrCodeBadInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(f.space.Registry(), tt.decls, tt.body)
			require.Error(t, err)
			require.True(t, IsConstructError(err))
			var ce *ConstructError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.code, ce.Code)
		})
	}
}

func TestNewPatternBadAbsent(t *testing.T) {
	f := newFixture(t)

	tooMany := f.link(t, atom.TypeAbsent, f.dog, f.legs)
	body := f.link(t, atom.TypeList, tooMany)

	_, err := New(f.space.Registry(), nil, body)
	require.Error(t, err)
	var ce *ConstructError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeBadAbsent, ce.Code)
}

func TestNewPatternUndeclaredVariableIsLiteral(t *testing.T) {
	f := newFixture(t)
	body := f.link(t, atom.TypeList, f.x)

	p, err := New(f.space.Registry(), nil, body)
	require.NoError(t, err)
	assert.False(t, p.IsDeclared(f.x))
	assert.Empty(t, p.Variables())
}
