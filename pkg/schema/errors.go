package schema

import (
	"errors"
	"fmt"
)

// Failure kinds. A *ParseError unwraps to exactly one of them.
var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrNoVariant    = errors.New("no variant matched")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrArity        = errors.New("too few elements")
	ErrTrailing     = errors.New("unexpected trailing input")
)

// ErrUnrepresentable is returned by the writer for values the grammar cannot express.
var ErrUnrepresentable = errors.New("value cannot be written")

// ParseError represents a single binding failure.
type ParseError struct {
	Line   int    // 1-based source line
	Reason string // Human-readable reason for failure
	Kind   error  // One of the Err* failure kinds

	pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
