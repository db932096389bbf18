package atom

import (
	"errors"
	"fmt"
)

// ConstructError reports an invalid atom construction attempt. This is
// the fatal error class: it indicates a programmer or input error, never
// a legitimate non-match.
type ConstructError struct {
	// Code identifies the error category.
	Code ConstructErrorCode

	// Type is the atom type involved.
	Type Type

	// Message is a human-readable description.
	Message string
}

// ConstructErrorCode categorizes construction errors.
type ConstructErrorCode string

const (
	// ErrCodeUnknownType indicates an unregistered atom type.
	ErrCodeUnknownType ConstructErrorCode = "UNKNOWN_TYPE"

	// ErrCodeAbstractType indicates an attempt to instantiate an
	// abstract (private) type.
	ErrCodeAbstractType ConstructErrorCode = "ABSTRACT_TYPE"

	// ErrCodeWrongKind indicates a node built with a link type or vice
	// versa.
	ErrCodeWrongKind ConstructErrorCode = "WRONG_KIND"

	// ErrCodeBadNumber indicates an unparseable Number node name.
	ErrCodeBadNumber ConstructErrorCode = "BAD_NUMBER"

	// ErrCodeForeignChild indicates a link child that is not interned
	// in the constructing Space.
	ErrCodeForeignChild ConstructErrorCode = "FOREIGN_CHILD"
)

// Error implements the error interface.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("%s: %s (type=%s)", e.Code, e.Message, e.Type)
}

// IsConstructError reports whether err is a ConstructError, optionally
// unwrapping.
func IsConstructError(err error) bool {
	var ce *ConstructError
	return errors.As(err, &ce)
}

func newConstructError(code ConstructErrorCode, t Type, msg string) *ConstructError {
	return &ConstructError{Code: code, Type: t, Message: msg}
}
