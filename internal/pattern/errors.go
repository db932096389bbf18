package pattern

import (
	"errors"
	"fmt"
)

// ConstructError reports a malformed pattern scope. It is raised at
// construction time only; match-time failures are plain booleans.
type ConstructError struct {
	// Code identifies the error category.
	Code ConstructErrorCode

	// Message is a human-readable description.
	Message string
}

// ConstructErrorCode categorizes pattern construction errors.
type ConstructErrorCode string

const (
	// ErrCodeEmptyBody indicates a pattern without a body term.
	ErrCodeEmptyBody ConstructErrorCode = "EMPTY_BODY"

	// ErrCodeNotAVariable indicates a declaration that is not a
	// Variable or Glob node.
	ErrCodeNotAVariable ConstructErrorCode = "NOT_A_VARIABLE"

	// ErrCodeDuplicateDecl indicates the same variable declared twice.
	ErrCodeDuplicateDecl ConstructErrorCode = "DUPLICATE_DECL"

	// ErrCodeBadInterval indicates a glob interval with a negative
	// minimum, a maximum below the minimum, or an interval on a
	// non-glob variable.
	ErrCodeBadInterval ConstructErrorCode = "BAD_INTERVAL"

	// ErrCodeBadAbsent indicates an Absent clause that does not wrap
	// exactly one sub-term.
	ErrCodeBadAbsent ConstructErrorCode = "BAD_ABSENT"
)

// Error implements the error interface.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConstructError reports whether err is a pattern ConstructError.
func IsConstructError(err error) bool {
	var ce *ConstructError
	return errors.As(err, &ce)
}

func newConstructError(code ConstructErrorCode, format string, args ...any) *ConstructError {
	return &ConstructError{Code: code, Message: fmt.Sprintf(format, args...)}
}
