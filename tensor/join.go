package tensor

import "github.com/hupe1980/tensoreval/operation"

// Join combines v and other cell by cell with op.
//
// When both operands have the same dimensions the cells are zipped and the
// result takes the type of the operand whose cell type matches the promoted
// cell type. Otherwise the result type is Type.Join and every result cell
// combines the operand cells found at its projected address.
func (v *View) Join(op *operation.Op2, other Tensor) (*Dense, error) {
	if v.typ.SameShape(other.Type()) {
		return v.sameShapeJoin(op, other), nil
	}
	t, err := v.typ.Join(other.Type())
	if err != nil {
		return nil, err
	}
	plan := newJoinPlan(t, v.typ, other.Type())
	cells := Dispatch2[TypedCells](v.cells, other.Cells(), crossJoinRoutine{plan: plan, fn: binaryFunc(op)})
	return adopt(t, cells), nil
}

func (v *View) sameShapeJoin(op *operation.Op2, other Tensor) *Dense {
	lt, rt := v.typ, other.Type()
	if !lt.SameShape(rt) {
		fatal("join", lt.String(), rt.String())
	}
	oc := other.Cells()
	if v.cells.Len() != oc.Len() {
		fatal("join", "cell count of "+lt.String(), "cell count of "+rt.String())
	}

	t := lt
	if lt.CellType() != PromoteCellType(lt.CellType(), rt.CellType()) {
		t = rt
	}
	return adopt(t, Dispatch2[TypedCells](v.cells, oc, zipRoutine{fn: binaryFunc(op)}))
}

// binaryFunc returns a direct closure for the common arithmetic functions.
func binaryFunc(op *operation.Op2) func(a, b float64) float64 {
	switch op {
	case operation.Mul:
		return func(a, b float64) float64 { return a * b }
	case operation.Add:
		return func(a, b float64) float64 { return a + b }
	default:
		return op.Func()
	}
}

type zipRoutine struct {
	fn func(a, b float64) float64
}

func (r zipRoutine) FF(l, rr []float32) TypedCells {
	return wrapCells(zipCells[float32, float32, float32](l, rr, r.fn))
}

func (r zipRoutine) FD(l []float32, rr []float64) TypedCells {
	return wrapCells(zipCells[float32, float64, float64](l, rr, r.fn))
}

func (r zipRoutine) DF(l []float64, rr []float32) TypedCells {
	return wrapCells(zipCells[float64, float32, float64](l, rr, r.fn))
}

func (r zipRoutine) DD(l, rr []float64) TypedCells {
	return wrapCells(zipCells[float64, float64, float64](l, rr, r.fn))
}

func zipCells[L, R, O Float](lhs []L, rhs []R, fn func(a, b float64) float64) []O {
	out := newCells[O](len(lhs))
	rhs = rhs[:len(lhs)]
	for i, a := range lhs {
		out[i] = O(fn(float64(a), float64(rhs[i])))
	}
	return out
}

// joinPlan maps result cells to operand cells. A zero stride means the
// operand lacks that dimension and its cell is broadcast.
type joinPlan struct {
	sizes   []uint32
	lstride []int
	rstride []int
	size    int
}

func newJoinPlan(out, lhs, rhs *Type) *joinPlan {
	p := &joinPlan{
		sizes:   make([]uint32, out.NumDimensions()),
		lstride: make([]int, out.NumDimensions()),
		rstride: make([]int, out.NumDimensions()),
		size:    out.Size(),
	}
	for i, d := range out.dims {
		p.sizes[i] = d.Size
		if j := lhs.DimensionIndex(d.Name); j >= 0 {
			p.lstride[i] = lhs.strides[j]
		}
		if j := rhs.DimensionIndex(d.Name); j >= 0 {
			p.rstride[i] = rhs.strides[j]
		}
	}
	return p
}

type crossJoinRoutine struct {
	plan *joinPlan
	fn   func(a, b float64) float64
}

func (r crossJoinRoutine) FF(l, rr []float32) TypedCells {
	return wrapCells(crossJoinCells[float32, float32, float32](l, rr, r.plan, r.fn))
}

func (r crossJoinRoutine) FD(l []float32, rr []float64) TypedCells {
	return wrapCells(crossJoinCells[float32, float64, float64](l, rr, r.plan, r.fn))
}

func (r crossJoinRoutine) DF(l []float64, rr []float32) TypedCells {
	return wrapCells(crossJoinCells[float64, float32, float64](l, rr, r.plan, r.fn))
}

func (r crossJoinRoutine) DD(l, rr []float64) TypedCells {
	return wrapCells(crossJoinCells[float64, float64, float64](l, rr, r.plan, r.fn))
}

func crossJoinCells[L, R, O Float](lhs []L, rhs []R, p *joinPlan, fn func(a, b float64) float64) []O {
	out := newCells[O](p.size)
	idx := make([]uint32, len(p.sizes))
	li, ri := 0, 0
	for o := range out {
		out[o] = O(fn(float64(lhs[li]), float64(rhs[ri])))
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			li += p.lstride[d]
			ri += p.rstride[d]
			if idx[d] < p.sizes[d] {
				break
			}
			li -= p.lstride[d] * int(p.sizes[d])
			ri -= p.rstride[d] * int(p.sizes[d])
			idx[d] = 0
		}
	}
	return out
}
