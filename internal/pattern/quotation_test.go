package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogroid/o-atomspace/internal/atom"
)

func TestQuotationZeroValue(t *testing.T) {
	var q Quotation
	assert.False(t, q.IsQuoted())
	assert.Equal(t, 0, q.Level())
}

func TestQuotationConsumable(t *testing.T) {
	var q Quotation

	// Unquoted position: quote markers are consumable, Unquote is not.
	assert.True(t, q.Consumable(atom.TypeQuote))
	assert.True(t, q.Consumable(atom.TypeLocalQuote))
	assert.False(t, q.Consumable(atom.TypeUnquote))
	assert.False(t, q.Consumable(atom.TypeList))

	// Inside one Quote: only Unquote is consumable. A quote inside a
	// quote is data.
	quoted := q.Update(atom.TypeQuote)
	assert.True(t, quoted.IsQuoted())
	assert.False(t, quoted.Consumable(atom.TypeQuote))
	assert.False(t, quoted.Consumable(atom.TypeLocalQuote))
	assert.True(t, quoted.Consumable(atom.TypeUnquote))

	// Two levels deep: Unquote only cancels the innermost scope, so it
	// is not consumable yet.
	deep := quoted.Update(atom.TypeQuote)
	assert.False(t, deep.Consumable(atom.TypeUnquote))

	// LocalQuote scope: Unquote is consumable.
	local := q.Update(atom.TypeLocalQuote)
	assert.True(t, local.IsQuoted())
	assert.True(t, local.Consumable(atom.TypeUnquote))
}

func TestQuotationUpdateRoundTrip(t *testing.T) {
	var q Quotation

	q = q.Update(atom.TypeQuote)
	assert.Equal(t, 1, q.Level())

	q = q.Update(atom.TypeUnquote)
	assert.Equal(t, 0, q.Level())
	assert.False(t, q.IsQuoted())

	q = q.Update(atom.TypeLocalQuote)
	assert.True(t, q.IsQuoted())
	q = q.Update(atom.TypeUnquote)
	assert.False(t, q.IsQuoted())
}

func TestQuotationDescendDropsLocal(t *testing.T) {
	var q Quotation

	local := q.Update(atom.TypeLocalQuote)
	assert.True(t, local.IsQuoted())
	assert.False(t, local.Descend().IsQuoted(), "LocalQuote covers one level only")

	// A Quote scope survives descent.
	quoted := q.Update(atom.TypeQuote)
	assert.True(t, quoted.Descend().IsQuoted())
}

func TestIsMarker(t *testing.T) {
	assert.True(t, IsMarker(atom.TypeQuote))
	assert.True(t, IsMarker(atom.TypeUnquote))
	assert.True(t, IsMarker(atom.TypeLocalQuote))
	assert.False(t, IsMarker(atom.TypeList))
	assert.False(t, IsMarker(atom.TypeVariable))
}
