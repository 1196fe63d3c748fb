package validate

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind int

const (
	InvalidType Kind = iota + 1
	Empty
	TooLong
	InvalidCharacters
)

func (k Kind) String() string {
	switch k {
	case InvalidType:
		return "invalid type"
	case Empty:
		return "empty input"
	case TooLong:
		return "input too long"
	case InvalidCharacters:
		return "invalid characters"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrInvalidType       = &Error{Kind: InvalidType}
	ErrEmpty             = &Error{Kind: Empty}
	ErrTooLong           = &Error{Kind: TooLong}
	ErrInvalidCharacters = &Error{Kind: InvalidCharacters}
	ErrDangerous         = errors.New("dangerous input pattern")
)

// Error is a rejected input.
type Error struct {
	Kind      Kind
	Field     string
	MaxLength int
	Length    int
}

func (e *Error) Error() string {
	field := e.Field
	if field == "" {
		field = "input"
	}
	if e.Kind == TooLong {
		return fmt.Sprintf("%s: %s (%d > %d)", field, e.Kind, e.Length, e.MaxLength)
	}
	return fmt.Sprintf("%s: %s", field, e.Kind)
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// SecurityError reports a dangerous pattern found by CheckDangerous.
type SecurityError struct {
	Field   string
	Pattern string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("%s: dangerous pattern detected (%s)", e.Field, e.Pattern)
}

func (e *SecurityError) Unwrap() error {
	return ErrDangerous
}
