package tensor

import "fmt"

// Routine1 is a one-operand numeric routine instantiated per cell type.
type Routine1[R any] interface {
	F(cells []float32) R
	D(cells []float64) R
}

// Routine2 is a two-operand numeric routine instantiated per cell type pair.
// Method names spell the pair: F = float32, D = float64, lhs first.
type Routine2[R any] interface {
	FF(lhs, rhs []float32) R
	FD(lhs []float32, rhs []float64) R
	DF(lhs []float64, rhs []float32) R
	DD(lhs, rhs []float64) R
}

// Dispatch1 resolves the cell type of cells and runs the matching instantiation.
func Dispatch1[R any](cells TypedCells, r Routine1[R]) R {
	switch cells.kind {
	case Float32:
		return r.F(cells.f32)
	case Float64:
		return r.D(cells.f64)
	default:
		panic(fmt.Sprintf("dispatch: unknown cell type %d", cells.kind))
	}
}

// Dispatch2 resolves the cell type pair of lhs and rhs and runs the matching
// instantiation.
func Dispatch2[R any](lhs, rhs TypedCells, r Routine2[R]) R {
	switch pairOf(lhs.kind, rhs.kind) {
	case pairFF:
		return r.FF(lhs.f32, rhs.f32)
	case pairFD:
		return r.FD(lhs.f32, rhs.f64)
	case pairDF:
		return r.DF(lhs.f64, rhs.f32)
	case pairDD:
		return r.DD(lhs.f64, rhs.f64)
	default:
		panic(fmt.Sprintf("dispatch: unknown cell type pair (%d, %d)", lhs.kind, rhs.kind))
	}
}

type cellPair uint8

const (
	pairDD cellPair = iota
	pairDF
	pairFD
	pairFF
	pairInvalid
)

func pairOf(lhs, rhs CellType) cellPair {
	if lhs > Float32 || rhs > Float32 {
		return pairInvalid
	}
	return cellPair(uint8(lhs)<<1 | uint8(rhs))
}
