package atom

import (
	"fmt"
	"sync"
)

// Space owns and interns atoms. Construction is idempotent: building the
// same structure twice returns the same instance, so atoms from one
// Space compare by pointer identity.
//
// A Space is safe for concurrent use. Match attempts only read; the
// write lock is held only while interning new atoms.
type Space struct {
	mu    sync.RWMutex
	reg   *Registry
	atoms map[string]Atom
	order []Atom // insertion order, children always before parents
}

// NewSpace creates an empty Space over the given registry. A nil
// registry gets a fresh built-in one.
func NewSpace(reg *Registry) *Space {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Space{
		reg:   reg,
		atoms: make(map[string]Atom),
	}
}

// Registry returns the type registry this Space validates against.
func (s *Space) Registry() *Registry { return s.reg }

// Node interns a node of the given type and name. The name is
// NFC-normalized before hashing. Returns a ConstructError for unknown,
// abstract, or non-node types, and for malformed Number names.
func (s *Space) Node(t Type, name string) (*Node, error) {
	if !s.reg.Known(t) {
		return nil, newConstructError(ErrCodeUnknownType, t, "unknown atom type")
	}
	if s.reg.Abstract(t) {
		return nil, newConstructError(ErrCodeAbstractType, t, "abstract type cannot be instantiated")
	}
	if !s.reg.IsNodeType(t) {
		return nil, newConstructError(ErrCodeWrongKind, t, "not a node type")
	}
	if s.reg.IsA(t, TypeNumber) {
		if _, err := ParseFloats(name); err != nil {
			return nil, newConstructError(ErrCodeBadNumber, t, fmt.Sprintf("invalid number name %q: %v", name, err))
		}
	}

	name = normalizeName(name)
	id := nodeID(t, name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.atoms[id]; ok {
		return existing.(*Node), nil
	}
	n := &Node{typ: t, name: name, id: id}
	s.atoms[id] = n
	s.order = append(s.order, n)
	return n, nil
}

// Link interns a link of the given type over the given children. Every
// child must already belong to this Space; a child interned elsewhere
// would break identity equality. Returns a ConstructError for unknown,
// abstract, or non-link types, and for foreign children.
func (s *Space) Link(t Type, out ...Atom) (*Link, error) {
	if !s.reg.Known(t) {
		return nil, newConstructError(ErrCodeUnknownType, t, "unknown atom type")
	}
	if s.reg.Abstract(t) {
		return nil, newConstructError(ErrCodeAbstractType, t, "abstract type cannot be instantiated")
	}
	if !s.reg.IsLinkType(t) {
		return nil, newConstructError(ErrCodeWrongKind, t, "not a link type")
	}

	children := make([]Atom, len(out))
	copy(children, out)
	id := linkID(t, children)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range children {
		if owned, ok := s.atoms[c.ID()]; !ok || owned != c {
			return nil, newConstructError(ErrCodeForeignChild, t, fmt.Sprintf("child %s is not interned in this space", c.ID()))
		}
	}
	if existing, ok := s.atoms[id]; ok {
		return existing.(*Link), nil
	}
	l := &Link{typ: t, out: children, id: id}
	s.atoms[id] = l
	s.order = append(s.order, l)
	return l, nil
}

// Number interns a Number node holding the given vector.
func (s *Space) Number(vals ...float64) (*Node, error) {
	return s.Node(TypeNumber, FormatFloats(vals))
}

// Variable interns a Variable node.
func (s *Space) Variable(name string) (*Node, error) {
	return s.Node(TypeVariable, name)
}

// GlobVariable interns a Glob node.
func (s *Space) GlobVariable(name string) (*Node, error) {
	return s.Node(TypeGlob, name)
}

// Lookup returns the atom with the given content ID, if interned.
func (s *Space) Lookup(id string) (Atom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[id]
	return a, ok
}

// Atoms returns all interned atoms in insertion order. Because links can
// only be built from already-interned children, children always precede
// their parents in the returned slice.
func (s *Space) Atoms() []Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Atom, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of interned atoms.
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
