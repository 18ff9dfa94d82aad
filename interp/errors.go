package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrParamCount is returned when Eval gets the wrong number of parameters.
	ErrParamCount = errors.New("interp: wrong number of parameters")

	// ErrConflictingParam is returned when a graph declares one parameter
	// index with two different types.
	ErrConflictingParam = errors.New("interp: parameter declared with conflicting types")
)

// ParamTypeError reports a parameter whose type differs from the declared one.
type ParamTypeError struct {
	Index    int
	Expected string
	Actual   string
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("interp: parameter %d has type %s, expected %s", e.Index, e.Actual, e.Expected)
}
