package tensor

import "github.com/hupe1980/tensoreval/operation"

// Modify returns a copy of v where each addressed cell c becomes
// op(c, value). Overrides whose address misses a dimension, names an unknown
// one, or is out of range are skipped. Overrides for the same cell apply
// in order.
func (v *View) Modify(op *operation.Op2, cells []SpecCell) *Dense {
	out := Dispatch1(v.cells, modifyRoutine{typ: v.typ, fn: binaryFunc(op), updates: cells})
	return adopt(v.typ, out)
}

type modifyRoutine struct {
	typ     *Type
	fn      func(a, b float64) float64
	updates []SpecCell
}

func (r modifyRoutine) F(c []float32) TypedCells { return wrapCells(modifyCells(c, r)) }
func (r modifyRoutine) D(c []float64) TypedCells { return wrapCells(modifyCells(c, r)) }

func modifyCells[T Float](cells []T, r modifyRoutine) []T {
	out := newCells[T](len(cells))
	copy(out, cells)
	for _, u := range r.updates {
		idx, ok := r.typ.encodeLabels(u.Address)
		if !ok {
			continue
		}
		out[idx] = T(r.fn(float64(out[idx]), u.Value))
	}
	return out
}

func (t *Type) encodeLabels(addr map[string]uint32) (int, bool) {
	if len(addr) != len(t.dims) {
		return 0, false
	}
	idx := 0
	for i, d := range t.dims {
		label, ok := addr[d.Name]
		if !ok || label >= d.Size {
			return 0, false
		}
		idx += int(label) * t.strides[i]
	}
	return idx, true
}
