package tensor

import (
	"fmt"

	"github.com/hupe1980/tensoreval/operation"
)

// Reduce folds the named dimensions away with op. With no names every
// dimension is reduced and the result is a double scalar.
func (v *View) Reduce(op *operation.Op2, dims ...string) (*Dense, error) {
	t, err := v.typ.Reduce(dims...)
	if err != nil {
		return nil, err
	}
	r := foldRoutine{plan: newReducePlan(v.typ, t), fn: binaryFunc(op), widen: t.CellType() != v.typ.CellType()}
	return adopt(t, Dispatch1[TypedCells](v.cells, r)), nil
}

// ReduceAggr is like Reduce but uses an aggregator, which also covers avg
// and count.
func (v *View) ReduceAggr(aggr operation.Aggr, dims ...string) (*Dense, error) {
	if !aggr.Valid() {
		return nil, fmt.Errorf("%w: %s", operation.ErrUnknownAggr, aggr)
	}
	if op, ok := aggr.Op2(); ok {
		return v.Reduce(op, dims...)
	}
	t, err := v.typ.Reduce(dims...)
	if err != nil {
		return nil, err
	}
	r := aggrRoutine{plan: newReducePlan(v.typ, t), aggr: aggr, widen: t.CellType() != v.typ.CellType()}
	return adopt(t, Dispatch1[TypedCells](v.cells, r)), nil
}

// reducePlan lists the input offsets of every result cell (outer) and of
// every cell folded into it relative to that offset (inner).
type reducePlan struct {
	outer []int
	inner []int
}

func newReducePlan(in, out *Type) *reducePlan {
	var (
		keptSizes, dropSizes     []uint32
		keptStrides, dropStrides []int
	)
	for i, d := range in.dims {
		if out.DimensionIndex(d.Name) >= 0 {
			keptSizes = append(keptSizes, d.Size)
			keptStrides = append(keptStrides, in.strides[i])
		} else {
			dropSizes = append(dropSizes, d.Size)
			dropStrides = append(dropStrides, in.strides[i])
		}
	}
	return &reducePlan{
		outer: subspaceOffsets(keptSizes, keptStrides),
		inner: subspaceOffsets(dropSizes, dropStrides),
	}
}

// subspaceOffsets enumerates the offsets of a strided subspace in row-major order.
func subspaceOffsets(sizes []uint32, strides []int) []int {
	n := 1
	for _, s := range sizes {
		n *= int(s)
	}
	offsets := make([]int, n)
	idx := make([]uint32, len(sizes))
	off := 0
	for i := range offsets {
		offsets[i] = off
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < sizes[d] {
				break
			}
			off -= strides[d] * int(sizes[d])
			idx[d] = 0
		}
	}
	return offsets
}

type foldRoutine struct {
	plan  *reducePlan
	fn    func(a, b float64) float64
	widen bool
}

func (r foldRoutine) F(c []float32) TypedCells {
	if r.widen {
		return wrapCells(foldCells[float32, float64](c, r.plan, r.fn))
	}
	return wrapCells(foldCells[float32, float32](c, r.plan, r.fn))
}

func (r foldRoutine) D(c []float64) TypedCells {
	return wrapCells(foldCells[float64, float64](c, r.plan, r.fn))
}

func foldCells[T, O Float](cells []T, p *reducePlan, fn func(a, b float64) float64) []O {
	out := newCells[O](len(p.outer))
	first, rest := p.inner[0], p.inner[1:]
	for o, base := range p.outer {
		acc := float64(cells[base+first])
		for _, off := range rest {
			acc = fn(acc, float64(cells[base+off]))
		}
		out[o] = O(acc)
	}
	return out
}

type aggrRoutine struct {
	plan  *reducePlan
	aggr  operation.Aggr
	widen bool
}

func (r aggrRoutine) F(c []float32) TypedCells {
	if r.widen {
		return wrapCells(aggrCells[float32, float64](c, r.plan, r.aggr))
	}
	return wrapCells(aggrCells[float32, float32](c, r.plan, r.aggr))
}

func (r aggrRoutine) D(c []float64) TypedCells {
	return wrapCells(aggrCells[float64, float64](c, r.plan, r.aggr))
}

func aggrCells[T, O Float](cells []T, p *reducePlan, aggr operation.Aggr) []O {
	out := newCells[O](len(p.outer))
	g := operation.NewAggregator(aggr)
	first, rest := p.inner[0], p.inner[1:]
	for o, base := range p.outer {
		g.First(float64(cells[base+first]))
		for _, off := range rest {
			g.Next(float64(cells[base+off]))
		}
		out[o] = O(g.Result())
	}
	return out
}
