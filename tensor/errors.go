package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDimension is returned when an operation names a dimension
	// the type does not have.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrDimensionMismatch is returned when two types share a dimension
	// name with different sizes.
	ErrDimensionMismatch = errors.New("dimension size mismatch")
)

// ShapeError reports a cell buffer that does not fit its type.
type ShapeError struct {
	Type     string
	Expected int
	Actual   int
	cause    error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("wrong cell count for %s: expected %d, got %d", e.Type, e.Expected, e.Actual)
}

func (e *ShapeError) Unwrap() error { return e.cause }

// TypeError reports an invalid type description.
type TypeError struct {
	Spec   string
	Reason string
	cause  error
}

func (e *TypeError) Error() string {
	if e.Spec == "" {
		return "invalid tensor type: " + e.Reason
	}
	return fmt.Sprintf("invalid tensor type %q: %s", e.Spec, e.Reason)
}

func (e *TypeError) Unwrap() error { return e.cause }

// ConsistencyError is the panic value for violated internal contracts.
// It is not returned as an error; recovering from it is not supported.
type ConsistencyError struct {
	Op       string
	Expected string
	Actual   string
}

func (e *ConsistencyError) Error() string {
	if e.Expected == "" && e.Actual == "" {
		return fmt.Sprintf("tensor %s: consistency violation", e.Op)
	}
	return fmt.Sprintf("tensor %s: consistency violation, expected=%s, actual=%s", e.Op, e.Expected, e.Actual)
}

func fatal(op, expected, actual string) {
	panic(&ConsistencyError{Op: op, Expected: expected, Actual: actual})
}
