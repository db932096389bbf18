package atom

import (
	"fmt"
	"sync"
)

// Type names an atom type. Types are compared by name and related by the
// inheritance hierarchy in a Registry.
type Type string

// Built-in types. TypeAtom is the root; TypeNode and TypeLink partition
// it. Everything else descends from one of those two.
const (
	TypeAtom Type = "Atom"
	TypeNode Type = "Node"
	TypeLink Type = "Link"

	// Node types.
	TypeConcept   Type = "Concept"
	TypePredicate Type = "Predicate"
	TypeNumber    Type = "Number"
	TypeVariable  Type = "Variable"
	TypeGlob      Type = "Glob"

	// Link types.
	TypeList       Type = "List"
	TypeSet        Type = "Set"
	TypeEvaluation Type = "Evaluation"
	TypePresent    Type = "Present"
	TypeAbsent     Type = "Absent"

	// Quotation markers. These change traversal state in the matcher
	// instead of being matched structurally (unless already quoted).
	TypeQuote      Type = "Quote"
	TypeUnquote    Type = "Unquote"
	TypeLocalQuote Type = "LocalQuote"

	// Virtual clauses require evaluation rather than structural matching.
	// TypeVirtual is abstract.
	TypeVirtual     Type = "Virtual"
	TypeGreaterThan Type = "GreaterThan"
	TypeLessThan    Type = "LessThan"

	// Numeric function links reduce number vectors. TypeNumericFunction
	// is abstract.
	TypeNumericFunction Type = "NumericFunction"
	TypePlus            Type = "Plus"
	TypeMinus           Type = "Minus"
	TypeTimes           Type = "Times"
	TypeDivide          Type = "Divide"
	TypeMin             Type = "Min"
	TypeMax             Type = "Max"
	TypePow             Type = "Pow"
	TypeAbs             Type = "Abs"
	TypeLog             Type = "Log"
	TypeExp             Type = "Exp"
)

// Registry holds the atom type hierarchy. A fresh Registry already
// contains the built-in types; callers may register further derived
// types before constructing atoms with them.
type Registry struct {
	mu       sync.RWMutex
	parents  map[Type]Type
	abstract map[Type]bool
}

// NewRegistry returns a Registry populated with the built-in hierarchy.
func NewRegistry() *Registry {
	r := &Registry{
		parents:  make(map[Type]Type),
		abstract: make(map[Type]bool),
	}

	// Roots. TypeAtom has no parent.
	r.parents[TypeNode] = TypeAtom
	r.parents[TypeLink] = TypeAtom
	r.abstract[TypeAtom] = true

	for _, t := range []Type{TypeConcept, TypePredicate, TypeNumber, TypeVariable} {
		r.parents[t] = TypeNode
	}
	r.parents[TypeGlob] = TypeVariable

	for _, t := range []Type{
		TypeList, TypeSet, TypeEvaluation, TypePresent, TypeAbsent,
		TypeQuote, TypeUnquote, TypeLocalQuote,
		TypeVirtual, TypeNumericFunction,
	} {
		r.parents[t] = TypeLink
	}
	r.abstract[TypeVirtual] = true
	r.abstract[TypeNumericFunction] = true

	for _, t := range []Type{TypeGreaterThan, TypeLessThan} {
		r.parents[t] = TypeVirtual
	}
	for _, t := range []Type{
		TypePlus, TypeMinus, TypeTimes, TypeDivide,
		TypeMin, TypeMax, TypePow, TypeAbs, TypeLog, TypeExp,
	} {
		r.parents[t] = TypeNumericFunction
	}

	return r
}

// Register adds a derived type under the given parent. The parent must
// already be known. Registering an existing type with a different parent
// is an error; re-registering identically is a no-op.
func (r *Registry) Register(child, parent Type, abstract bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parents[parent]; !ok && parent != TypeAtom {
		return fmt.Errorf("register %s: unknown parent type %s", child, parent)
	}
	if existing, ok := r.parents[child]; ok {
		if existing != parent {
			return fmt.Errorf("register %s: already registered under %s", child, existing)
		}
		return nil
	}
	r.parents[child] = parent
	if abstract {
		r.abstract[child] = true
	}
	return nil
}

// Known reports whether t is a registered type.
func (r *Registry) Known(t Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t == TypeAtom {
		return true
	}
	_, ok := r.parents[t]
	return ok
}

// IsA reports whether ancestor is t itself or one of t's supertypes. It
// walks the parent chain, so derived types satisfy checks against any
// supertype.
func (r *Registry) IsA(t, ancestor Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for cur := t; ; {
		if cur == ancestor {
			return true
		}
		parent, ok := r.parents[cur]
		if !ok {
			return false
		}
		cur = parent
	}
}

// Abstract reports whether t is abstract (a pure supertype that cannot
// be instantiated).
func (r *Registry) Abstract(t Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.abstract[t]
}

// IsNodeType reports whether t descends from Node.
func (r *Registry) IsNodeType(t Type) bool { return r.IsA(t, TypeNode) }

// IsLinkType reports whether t descends from Link.
func (r *Registry) IsLinkType(t Type) bool { return r.IsA(t, TypeLink) }
