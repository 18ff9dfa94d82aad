package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/tensoreval/operation"
)

// Tensor is the read-only surface shared by Dense and View.
type Tensor interface {
	Type() *Type
	Cells() TypedCells
}

// View is a dense tensor over a cell buffer it does not own. The buffer
// must outlive the view and must not change while the view is in use.
type View struct {
	typ   *Type
	cells TypedCells
}

// Dense is a dense tensor that owns its cell buffer.
type Dense struct {
	View
}

var (
	_ Tensor = (*View)(nil)
	_ Tensor = (*Dense)(nil)
)

// NewView wraps cells without copying. It panics with a *ConsistencyError
// if the cells do not fit t.
func NewView(t *Type, cells TypedCells) *View {
	checkCells("view", t, cells)
	return &View{typ: t, cells: cells}
}

// New returns a dense tensor holding a copy of cells.
func New(t *Type, cells TypedCells) (*Dense, error) {
	if cells.Type() != t.CellType() {
		return nil, &TypeError{Spec: t.String(), Reason: fmt.Sprintf("cells are %s", cells.Type())}
	}
	if cells.Len() != t.Size() {
		return nil, &ShapeError{Type: t.String(), Expected: t.Size(), Actual: cells.Len()}
	}
	return adopt(t, cloneCells(cells)), nil
}

// FromFloat64 returns a dense tensor of type t from float64 values,
// narrowing them if t has float32 cells.
func FromFloat64(t *Type, values []float64) (*Dense, error) {
	if len(values) != t.Size() {
		return nil, &ShapeError{Type: t.String(), Expected: t.Size(), Actual: len(values)}
	}
	if t.CellType() == Float32 {
		return adopt(t, Float32Cells(convertCells[float64, float32](values))), nil
	}
	return adopt(t, cloneCells(Float64Cells(values))), nil
}

// FromFloat32 returns a dense tensor of type t from float32 values,
// widening them if t has float64 cells.
func FromFloat32(t *Type, values []float32) (*Dense, error) {
	if len(values) != t.Size() {
		return nil, &ShapeError{Type: t.String(), Expected: t.Size(), Actual: len(values)}
	}
	if t.CellType() == Float64 {
		return adopt(t, Float64Cells(convertCells[float32, float64](values))), nil
	}
	return adopt(t, cloneCells(Float32Cells(values))), nil
}

// Zeros returns a dense tensor of type t with all cells zero.
func Zeros(t *Type) *Dense {
	if t.CellType() == Float32 {
		return adopt(t, Float32Cells(newCells[float32](t.Size())))
	}
	return adopt(t, Float64Cells(newCells[float64](t.Size())))
}

// Scalar returns a tensor of the double type holding v.
func Scalar(v float64) *Dense {
	cells := newCells[float64](1)
	cells[0] = v
	return adopt(doubleType, Float64Cells(cells))
}

// adopt takes ownership of cells without copying.
func adopt(t *Type, cells TypedCells) *Dense {
	checkCells("adopt", t, cells)
	return &Dense{View{typ: t, cells: cells}}
}

func checkCells(op string, t *Type, cells TypedCells) {
	if cells.Type() != t.CellType() {
		fatal(op, "cells of "+t.CellType().String(), "cells of "+cells.Type().String())
	}
	if cells.Len() != t.Size() {
		fatal(op, strconv.Itoa(t.Size())+" cells for "+t.String(), strconv.Itoa(cells.Len())+" cells")
	}
}

func convertCells[S, D Float](src []S) []D {
	dst := newCells[D](len(src))
	for i, v := range src {
		dst[i] = D(v)
	}
	return dst
}

// Type returns the tensor type.
func (v *View) Type() *Type { return v.typ }

// Cells returns the cell buffer. Callers must not modify it.
func (v *View) Cells() TypedCells { return v.cells }

// Get returns the cell at addr widened to float64, or false if addr does
// not fit the type.
func (v *View) Get(addr Address) (float64, bool) {
	idx, ok := v.typ.Encode(addr)
	if !ok {
		return 0, false
	}
	return v.cells.Get(idx), true
}

// Equal reports whether other has the same type and the same cell values.
func (v *View) Equal(other Tensor) bool {
	if !v.typ.Equal(other.Type()) {
		return false
	}
	return Dispatch2(v.cells, other.Cells(), equalRoutine{})
}

type equalRoutine struct{}

func (equalRoutine) FF(l, r []float32) bool           { return equalCells(l, r) }
func (equalRoutine) FD(l []float32, r []float64) bool { return equalCells(l, r) }
func (equalRoutine) DF(l []float64, r []float32) bool { return equalCells(l, r) }
func (equalRoutine) DD(l, r []float64) bool           { return equalCells(l, r) }

func equalCells[L, R Float](lhs []L, rhs []R) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if float64(lhs[i]) != float64(rhs[i]) {
			return false
		}
	}
	return true
}

// Clone returns an owning copy that shares no storage with v.
func (v *View) Clone() *Dense {
	return adopt(v.typ, cloneCells(v.cells))
}

// AsDouble returns the sum of all cells.
func (v *View) AsDouble() float64 {
	return Dispatch1[float64](v.cells, sumRoutine{})
}

type sumRoutine struct{}

func (sumRoutine) F(c []float32) float64 { return sumCells(c) }
func (sumRoutine) D(c []float64) float64 { return sumCells(c) }

func sumCells[T Float](cells []T) float64 {
	var sum float64
	for _, c := range cells {
		sum += float64(c)
	}
	return sum
}

// Apply returns a tensor of the same type with op applied to every cell.
func (v *View) Apply(op *operation.Op1) *Dense {
	return adopt(v.typ, Dispatch1[TypedCells](v.cells, mapRoutine{fn: op.Func()}))
}

type mapRoutine struct {
	fn func(float64) float64
}

func (r mapRoutine) F(c []float32) TypedCells { return wrapCells(mapCells(c, r.fn)) }
func (r mapRoutine) D(c []float64) TypedCells { return wrapCells(mapCells(c, r.fn)) }

func mapCells[T Float](cells []T, fn func(float64) float64) []T {
	out := newCells[T](len(cells))
	for i, c := range cells {
		out[i] = T(fn(float64(c)))
	}
	return out
}

// Add is the sparse cell insertion entry point. Dense tensors have a fixed
// cell set, so reaching it is a consistency violation.
func (v *View) Add(Tensor) *Dense {
	fatal("add", "sparse tensor", v.typ.String())
	return nil
}

// Remove is the sparse cell removal entry point. Dense tensors have a fixed
// cell set, so reaching it is a consistency violation.
func (v *View) Remove([]Address) *Dense {
	fatal("remove", "sparse tensor", v.typ.String())
	return nil
}

// String renders the type followed by the cells in row-major order.
func (v *View) String() string {
	var sb strings.Builder
	sb.WriteString(v.typ.String())
	sb.WriteString(":[")
	for i := range v.cells.Len() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v.cells.Get(i), 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
