// Package compiler turns CUE knowledge-base documents into interned
// atoms and compiled patterns.
//
// Document shape:
//
//	kb: atoms: [...#Term]
//	kb: patterns: [Name=string]: {
//	    vars: [...{name: string, glob?: bool, min?: int, max?: int}]
//	    body: #Term
//	}
//	#Term: {type: string, name?: string, out?: [...#Term]}
//
// A term with a "name" field compiles to a node; anything else compiles
// to a link over its (possibly empty) "out" list. Pattern variables are
// interned into the same space as the body, so declaration and use meet
// by identity.
package compiler

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/cogroid/o-atomspace/internal/atom"
	"github.com/cogroid/o-atomspace/internal/pattern"
)

// CompileError reports a problem in a KB document, with the CUE
// position when available.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsCompileError unwraps err to a CompileError, if it is one.
func AsCompileError(err error) (*CompileError, bool) {
	var ce *CompileError
	ok := errors.As(err, &ce)
	return ce, ok
}

func newError(val cue.Value, field, format string, args ...any) *CompileError {
	return &CompileError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Pos:     val.Pos(),
	}
}

// KB is the compiled form of one document: the atoms interned from the
// atoms list, and the named patterns.
type KB struct {
	Atoms    []atom.Atom
	Patterns map[string]*pattern.Pattern
}

// CompileKB compiles the "kb" struct of a CUE value into the given
// space.
func CompileKB(val cue.Value, space *atom.Space) (*KB, error) {
	kbVal := val.LookupPath(cue.ParsePath("kb"))
	if !kbVal.Exists() {
		return nil, newError(val, "kb", "document has no kb struct")
	}

	out := &KB{Patterns: make(map[string]*pattern.Pattern)}

	atomsVal := kbVal.LookupPath(cue.ParsePath("atoms"))
	if atomsVal.Exists() {
		iter, err := atomsVal.List()
		if err != nil {
			return nil, newError(atomsVal, "kb.atoms", "not a list: %v", err)
		}
		for i := 0; iter.Next(); i++ {
			a, err := CompileTerm(iter.Value(), space)
			if err != nil {
				return nil, fmt.Errorf("kb.atoms[%d]: %w", i, err)
			}
			out.Atoms = append(out.Atoms, a)
		}
	}

	patsVal := kbVal.LookupPath(cue.ParsePath("patterns"))
	if patsVal.Exists() {
		iter, err := patsVal.Fields()
		if err != nil {
			return nil, newError(patsVal, "kb.patterns", "not a struct: %v", err)
		}
		for iter.Next() {
			name := iter.Label()
			p, err := CompilePattern(iter.Value(), space)
			if err != nil {
				return nil, fmt.Errorf("kb.patterns.%s: %w", name, err)
			}
			out.Patterns[name] = p
		}
	}

	return out, nil
}

// CompileTerm compiles one #Term value into an interned atom.
func CompileTerm(val cue.Value, space *atom.Space) (atom.Atom, error) {
	typeVal := val.LookupPath(cue.ParsePath("type"))
	if !typeVal.Exists() {
		return nil, newError(val, "type", "term has no type field")
	}
	typeName, err := typeVal.String()
	if err != nil {
		return nil, newError(typeVal, "type", "not a string: %v", err)
	}
	t := atom.Type(typeName)

	nameVal := val.LookupPath(cue.ParsePath("name"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, newError(nameVal, "name", "not a string: %v", err)
		}
		n, err := space.Node(t, name)
		if err != nil {
			return nil, newError(val, "type", "%v", err)
		}
		return n, nil
	}

	var children []atom.Atom
	outVal := val.LookupPath(cue.ParsePath("out"))
	if outVal.Exists() {
		iter, err := outVal.List()
		if err != nil {
			return nil, newError(outVal, "out", "not a list: %v", err)
		}
		for i := 0; iter.Next(); i++ {
			child, err := CompileTerm(iter.Value(), space)
			if err != nil {
				return nil, fmt.Errorf("out[%d]: %w", i, err)
			}
			children = append(children, child)
		}
	}
	l, err := space.Link(t, children...)
	if err != nil {
		return nil, newError(val, "type", "%v", err)
	}
	return l, nil
}

// CompilePattern compiles a pattern declaration (vars + body) into a
// pattern.Pattern over the space's registry.
func CompilePattern(val cue.Value, space *atom.Space) (*pattern.Pattern, error) {
	var decls []pattern.VarDecl

	varsVal := val.LookupPath(cue.ParsePath("vars"))
	if varsVal.Exists() {
		iter, err := varsVal.List()
		if err != nil {
			return nil, newError(varsVal, "vars", "not a list: %v", err)
		}
		for i := 0; iter.Next(); i++ {
			decl, err := compileVarDecl(iter.Value(), space)
			if err != nil {
				return nil, fmt.Errorf("vars[%d]: %w", i, err)
			}
			decls = append(decls, decl)
		}
	}

	bodyVal := val.LookupPath(cue.ParsePath("body"))
	if !bodyVal.Exists() {
		return nil, newError(val, "body", "pattern has no body")
	}
	body, err := CompileTerm(bodyVal, space)
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}

	p, err := pattern.New(space.Registry(), decls, body)
	if err != nil {
		return nil, newError(val, "pattern", "%v", err)
	}
	return p, nil
}

func compileVarDecl(val cue.Value, space *atom.Space) (pattern.VarDecl, error) {
	var decl pattern.VarDecl

	nameVal := val.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return decl, newError(val, "name", "variable declaration has no name")
	}
	name, err := nameVal.String()
	if err != nil {
		return decl, newError(nameVal, "name", "not a string: %v", err)
	}

	isGlob := false
	globVal := val.LookupPath(cue.ParsePath("glob"))
	if globVal.Exists() {
		isGlob, err = globVal.Bool()
		if err != nil {
			return decl, newError(globVal, "glob", "not a bool: %v", err)
		}
	}

	if isGlob {
		decl.Atom, err = space.GlobVariable(name)
	} else {
		decl.Atom, err = space.Variable(name)
	}
	if err != nil {
		return decl, newError(val, "name", "%v", err)
	}

	iv := pattern.DefaultInterval()
	hasInterval := false
	if minVal := val.LookupPath(cue.ParsePath("min")); minVal.Exists() {
		n, err := minVal.Int64()
		if err != nil {
			return decl, newError(minVal, "min", "not an int: %v", err)
		}
		iv.Min = int(n)
		hasInterval = true
	}
	if maxVal := val.LookupPath(cue.ParsePath("max")); maxVal.Exists() {
		n, err := maxVal.Int64()
		if err != nil {
			return decl, newError(maxVal, "max", "not an int: %v", err)
		}
		iv.Max = int(n)
		hasInterval = true
	}
	if hasInterval {
		decl.Interval = &iv
	}
	return decl, nil
}
