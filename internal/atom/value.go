package atom

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a sealed interface over everything a pattern variable can
// bind to: an Atom, or a computed FloatValue.
// Only Node, Link, and FloatValue implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Atom is a Value owned by a Space: a Node or a Link. Atoms interned in
// the same Space compare equal by pointer identity.
type Atom interface {
	Value
	// Type returns the atom's type tag.
	Type() Type
	// ID returns the content-addressed identity of the atom.
	ID() string
	atom() // Sealed
}

// Node is a named leaf atom.
type Node struct {
	typ  Type
	name string
	id   string
}

func (*Node) value() {}
func (*Node) atom()  {}

// Type returns the node's type tag.
func (n *Node) Type() Type { return n.typ }

// Name returns the node's name. Names are NFC-normalized at
// construction.
func (n *Node) Name() string { return n.name }

// ID returns the content-addressed identity of the node.
func (n *Node) ID() string { return n.id }

// Link is an atom with an ordered outgoing sequence of child atoms.
// The sequence never changes after construction.
type Link struct {
	typ Type
	out []Atom
	id  string
}

func (*Link) value() {}
func (*Link) atom()  {}

// Type returns the link's type tag.
func (l *Link) Type() Type { return l.typ }

// ID returns the content-addressed identity of the link.
func (l *Link) ID() string { return l.id }

// Arity returns the number of children.
func (l *Link) Arity() int { return len(l.out) }

// At returns the i-th child.
func (l *Link) At(i int) Atom { return l.out[i] }

// Outgoing returns the outgoing sequence. The returned slice is shared;
// callers must not mutate it.
func (l *Link) Outgoing() []Atom { return l.out }

// FloatValue is a computed vector of float64s. Unlike atoms it is not
// interned; it exists only inside a grounding or a reduction result.
type FloatValue struct {
	vec []float64
}

func (*FloatValue) value() {}

// NewFloatValue creates a FloatValue from the given components.
func NewFloatValue(vals ...float64) *FloatValue {
	vec := make([]float64, len(vals))
	copy(vec, vals)
	return &FloatValue{vec: vec}
}

// Floats returns the components. The returned slice is shared; callers
// must not mutate it.
func (f *FloatValue) Floats() []float64 { return f.vec }

// Len returns the number of components.
func (f *FloatValue) Len() int { return len(f.vec) }

// SameValue reports whether two values are the same binding target.
// Interned atoms compare by identity; FloatValues compare elementwise.
// An Atom never equals a FloatValue.
func SameValue(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case Atom:
		bv, ok := b.(Atom)
		return ok && av == bv
	case *FloatValue:
		bv, ok := b.(*FloatValue)
		if !ok || len(av.vec) != len(bv.vec) {
			return false
		}
		for i := range av.vec {
			if av.vec[i] != bv.vec[i] {
				return false
			}
		}
		return true
	}
	return false
}

// FormatFloats renders a float vector the way Number node names are
// written: shortest round-trip formatting, space separated.
func FormatFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// ParseFloats parses a Number node name back into its vector.
func ParseFloats(name string) ([]float64, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty number")
	}
	vec := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		vec[i] = v
	}
	return vec, nil
}
