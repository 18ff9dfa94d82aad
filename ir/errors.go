package ir

import (
	"errors"

	"github.com/hupe1980/tensoreval/operation"
	"github.com/hupe1980/tensoreval/tensor"
)

var (
	// ErrInvalidRef is returned for the nil ref or a ref from another arena.
	ErrInvalidRef = errors.New("ir: invalid node ref")

	// ErrIncompatibleTypes is returned when operand types cannot be joined.
	ErrIncompatibleTypes = errors.New("ir: incompatible operand types")

	// ErrUnknownDimension is returned when a reduce names a dimension the
	// operand does not have.
	ErrUnknownDimension = tensor.ErrUnknownDimension

	// ErrUnknownAggr is returned when a reduce names an aggregator outside
	// the known set.
	ErrUnknownAggr = operation.ErrUnknownAggr
)
