// Package reduct reduces numeric function links over number vectors.
//
// A numeric function link (Plus, Times, Min, ...) applies elementwise
// to the vectors carried by Number nodes or FloatValues. Binary
// application broadcasts a one-element vector against the other side
// and otherwise zips to the shorter length, matching the usual
// vector-calculator behavior.
package reduct

import (
	"errors"
	"fmt"
	"math"

	"github.com/cogroid/o-atomspace/internal/atom"
)

// ErrNotNumeric is returned when a term cannot be reduced to a number
// vector. Callers that evaluate clauses treat it as "clause does not
// apply", not as a fatal error.
var ErrNotNumeric = errors.New("term is not numeric")

// Executor reduces terms against a Space. Results over Number-node
// inputs are interned as Number nodes; anything involving a FloatValue
// stays a FloatValue.
type Executor struct {
	space *atom.Space
	reg   *atom.Registry
}

// NewExecutor creates an Executor over the given Space.
func NewExecutor(space *atom.Space) *Executor {
	return &Executor{space: space, reg: space.Registry()}
}

// Execute reduces a value. Numeric function links reduce to their
// result; a one-element Set is unwrapped (query results arrive as
// sets); everything else passes through unchanged.
func (e *Executor) Execute(v atom.Value) (atom.Value, error) {
	l, ok := v.(*atom.Link)
	if !ok {
		return v, nil
	}
	if l.Type() == atom.TypeSet && l.Arity() == 1 {
		return e.Execute(l.At(0))
	}
	if !e.reg.IsA(l.Type(), atom.TypeNumericFunction) {
		return v, nil
	}
	return e.reduce(l)
}

// Vector extracts the float vector from a reduced value, if it has one.
func Vector(v atom.Value) ([]float64, bool) {
	switch val := v.(type) {
	case *atom.FloatValue:
		return val.Floats(), true
	case *atom.Node:
		if val.Type() != atom.TypeNumber {
			return nil, false
		}
		vec, err := atom.ParseFloats(val.Name())
		if err != nil {
			return nil, false
		}
		return vec, true
	}
	return nil, false
}

func (e *Executor) reduce(l *atom.Link) (atom.Value, error) {
	if l.Arity() == 0 {
		return nil, fmt.Errorf("%s: no arguments", l.Type())
	}

	vecs := make([][]float64, l.Arity())
	allNodes := true
	for i, arg := range l.Outgoing() {
		reduced, err := e.Execute(arg)
		if err != nil {
			return nil, err
		}
		vec, ok := Vector(reduced)
		if !ok || len(vec) == 0 {
			return nil, fmt.Errorf("%s argument %d: %w", l.Type(), i, ErrNotNumeric)
		}
		vecs[i] = vec
		if _, isNode := reduced.(*atom.Node); !isNode {
			allNodes = false
		}
	}

	var out []float64
	switch l.Type() {
	case atom.TypeAbs:
		out = unary(vecs, math.Abs)
	case atom.TypeLog:
		out = unary(vecs, math.Log)
	case atom.TypeExp:
		out = unary(vecs, math.Exp)
	case atom.TypeMinus:
		out = exactlyTwo(vecs, func(x, y float64) float64 { return x - y })
	case atom.TypeDivide:
		out = exactlyTwo(vecs, func(x, y float64) float64 { return x / y })
	case atom.TypePow:
		out = exactlyTwo(vecs, math.Pow)
	case atom.TypePlus:
		out = fold(vecs, func(x, y float64) float64 { return x + y })
	case atom.TypeTimes:
		out = fold(vecs, func(x, y float64) float64 { return x * y })
	case atom.TypeMin:
		out = fold(vecs, math.Min)
	case atom.TypeMax:
		out = fold(vecs, math.Max)
	default:
		return nil, fmt.Errorf("unhandled numeric function %s", l.Type())
	}
	if out == nil {
		return nil, fmt.Errorf("%s: wrong arity %d", l.Type(), l.Arity())
	}

	if allNodes {
		return e.space.Number(out...)
	}
	return atom.NewFloatValue(out...), nil
}

func unary(vecs [][]float64, fn func(float64) float64) []float64 {
	if len(vecs) != 1 {
		return nil
	}
	out := make([]float64, len(vecs[0]))
	for i, x := range vecs[0] {
		out[i] = fn(x)
	}
	return out
}

func exactlyTwo(vecs [][]float64, fn func(float64, float64) float64) []float64 {
	if len(vecs) != 2 {
		return nil
	}
	return applyBinary(vecs[0], vecs[1], fn)
}

// fold applies a binary function left-to-right across all argument
// vectors.
func fold(vecs [][]float64, fn func(float64, float64) float64) []float64 {
	acc := vecs[0]
	for _, v := range vecs[1:] {
		acc = applyBinary(acc, v, fn)
	}
	return acc
}

// applyBinary applies fn elementwise. A one-element vector broadcasts
// against the other side; otherwise the result is zipped to the shorter
// length.
func applyBinary(x, y []float64, fn func(float64, float64) float64) []float64 {
	switch {
	case len(x) == 1:
		out := make([]float64, len(y))
		for i, yv := range y {
			out[i] = fn(x[0], yv)
		}
		return out
	case len(y) == 1:
		out := make([]float64, len(x))
		for i, xv := range x {
			out[i] = fn(xv, y[0])
		}
		return out
	default:
		n := len(x)
		if len(y) < n {
			n = len(y)
		}
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = fn(x[i], y[i])
		}
		return out
	}
}
