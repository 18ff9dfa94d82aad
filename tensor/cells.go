package tensor

import (
	"fmt"

	"github.com/hupe1980/tensoreval/internal/mem"
)

// Float is the set of cell element types.
type Float interface {
	~float32 | ~float64
}

// TypedCells is a non-owning reference to a cell buffer tagged with its
// cell type. Exactly one of the slices is set.
type TypedCells struct {
	kind CellType
	f32  []float32
	f64  []float64
}

// Float64Cells wraps a float64 buffer without copying.
func Float64Cells(cells []float64) TypedCells {
	return TypedCells{kind: Float64, f64: cells}
}

// Float32Cells wraps a float32 buffer without copying.
func Float32Cells(cells []float32) TypedCells {
	return TypedCells{kind: Float32, f32: cells}
}

// Type returns the cell type of the buffer.
func (c TypedCells) Type() CellType {
	return c.kind
}

// Len returns the number of cells.
func (c TypedCells) Len() int {
	if c.kind == Float32 {
		return len(c.f32)
	}
	return len(c.f64)
}

// Get returns cell i widened to float64.
func (c TypedCells) Get(i int) float64 {
	if c.kind == Float32 {
		return float64(c.f32[i])
	}
	return c.f64[i]
}

// Float64 returns the float64 buffer. Panics if the cells are float32.
func (c TypedCells) Float64() []float64 {
	if c.kind != Float64 {
		panic(fmt.Sprintf("cells are %s, not double", c.kind))
	}
	return c.f64
}

// Float32 returns the float32 buffer. Panics if the cells are float64.
func (c TypedCells) Float32() []float32 {
	if c.kind != Float32 {
		panic(fmt.Sprintf("cells are %s, not float", c.kind))
	}
	return c.f32
}

// newCells allocates a zeroed, aligned buffer of n cells.
func newCells[T Float](n int) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(mem.Float32(n)).([]T)
	case float64:
		return any(mem.Float64(n)).([]T)
	default:
		panic("unsupported cell element type")
	}
}

// wrapCells tags a typed buffer with its cell type.
func wrapCells[T Float](cells []T) TypedCells {
	switch c := any(cells).(type) {
	case []float32:
		return Float32Cells(c)
	case []float64:
		return Float64Cells(c)
	default:
		panic("unsupported cell element type")
	}
}

func cloneCells(c TypedCells) TypedCells {
	if c.kind == Float32 {
		return Float32Cells(mem.CloneFloat32(c.f32))
	}
	return Float64Cells(mem.CloneFloat64(c.f64))
}
