package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/engine"
)

func TestViewGrounding(t *testing.T) {
	s := atom.NewSpace(nil)
	x, err := s.Variable("$x")
	require.NoError(t, err)
	dog, err := s.Node(atom.TypeConcept, "dog")
	require.NoError(t, err)

	g := engine.NewGrounding()
	require.True(t, g.Bind(x, dog))

	view := ViewGrounding(g)
	assert.Equal(t, GroundingView{`(Variable "$x")`: `(Concept "dog")`}, view)
}

func TestSortViewsDeterministic(t *testing.T) {
	views := []GroundingView{
		{`(Variable "$x")`: `(Concept "zebra")`},
		{`(Variable "$x")`: `(Concept "ant")`},
		{`(Variable "$x")`: `(Concept "mole")`},
	}
	SortViews(views)

	assert.Equal(t, `(Concept "ant")`, views[0][`(Variable "$x")`])
	assert.Equal(t, `(Concept "mole")`, views[1][`(Variable "$x")`])
	assert.Equal(t, `(Concept "zebra")`, views[2][`(Variable "$x")`])
}

func TestWriteGroundingsText(t *testing.T) {
	buf := &bytes.Buffer{}
	views := []GroundingView{{`(Variable "$x")`: `(Concept "dog")`}}

	require.NoError(t, WriteGroundings(buf, "text", views))
	out := buf.String()
	assert.Contains(t, out, "grounding 1:")
	assert.Contains(t, out, `(Variable "$x") => (Concept "dog")`)
}

func TestWriteGroundingsTextEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteGroundings(buf, "text", nil))
	assert.Equal(t, "no groundings\n", buf.String())
}

func TestWriteGroundingsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	views := []GroundingView{{`(Variable "$x")`: `(Concept "dog")`}}

	require.NoError(t, WriteGroundings(buf, "json", views))

	var back []GroundingView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, views, back)
}
