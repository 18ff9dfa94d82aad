package tensoreval

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tensoreval/interp"
	"github.com/hupe1980/tensoreval/ir"
	"github.com/hupe1980/tensoreval/tensor"
)

var (
	// ErrInvalidParamCount is returned when a program gets the wrong number
	// of parameters.
	ErrInvalidParamCount = interp.ErrParamCount

	// ErrNilProgram is returned when evaluating a nil program.
	ErrNilProgram = errors.New("nil program")
)

// ErrParamType reports a parameter whose type differs from the declared one.
type ErrParamType = interp.ParamTypeError

// ErrInvalidExpression indicates that an expression could not be compiled.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidExpression struct {
	Root  ir.NodeRef
	cause error
}

func (e *ErrInvalidExpression) Error() string {
	return fmt.Sprintf("invalid expression at node %d: %v", e.Root, e.cause)
}

func (e *ErrInvalidExpression) Unwrap() error { return e.cause }

// ErrDocument wraps the failure of one document in a batch.
type ErrDocument struct {
	Index int
	cause error
}

func (e *ErrDocument) Error() string {
	return fmt.Sprintf("document %d: %v", e.Index, e.cause)
}

func (e *ErrDocument) Unwrap() error { return e.cause }

func translateError(root ir.NodeRef, err error) error {
	if err == nil {
		return nil
	}

	var te *tensor.TypeError
	if errors.Is(err, ir.ErrInvalidRef) ||
		errors.Is(err, ir.ErrIncompatibleTypes) ||
		errors.Is(err, interp.ErrConflictingParam) ||
		errors.As(err, &te) {
		return &ErrInvalidExpression{Root: root, cause: err}
	}

	return err
}
