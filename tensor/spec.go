package tensor

import (
	"fmt"
	"strconv"
)

// SpecCell is one cell of a Spec, addressed by dimension name.
type SpecCell struct {
	Address map[string]uint32 `json:"address"`
	Value   float64           `json:"value"`
}

// Spec is the exchange form of a tensor: its type string and its cells.
type Spec struct {
	Type  string     `json:"type"`
	Cells []SpecCell `json:"cells"`
}

// ToSpec lists every cell with its address.
func (v *View) ToSpec() Spec {
	s := Spec{Type: v.typ.String(), Cells: make([]SpecCell, 0, v.cells.Len())}
	for it := NewIterator(v.typ, v.cells); it.Valid(); it.Next() {
		addr := make(map[string]uint32, len(v.typ.dims))
		for i, label := range it.Address() {
			addr[v.typ.dims[i].Name] = label
		}
		s.Cells = append(s.Cells, SpecCell{Address: addr, Value: it.Cell()})
	}
	return s
}

// FromSpec builds a dense tensor from s. Cells not listed are zero.
func FromSpec(s Spec) (*Dense, error) {
	t, err := ParseType(s.Type)
	if err != nil {
		return nil, err
	}
	r := fillRoutine{
		indices: make([]int, len(s.Cells)),
		values:  make([]float64, len(s.Cells)),
	}
	for i, c := range s.Cells {
		idx, ok := t.encodeLabels(c.Address)
		if !ok {
			return nil, fmt.Errorf("cell address %v does not fit %s", c.Address, t)
		}
		r.indices[i], r.values[i] = idx, c.Value
	}
	d := Zeros(t)
	Dispatch1(d.cells, r)
	return d, nil
}

// fillRoutine stores values at flat indices, in place.
type fillRoutine struct {
	indices []int
	values  []float64
}

func (r fillRoutine) F(c []float32) struct{} { fillCells(c, r); return struct{}{} }
func (r fillRoutine) D(c []float64) struct{} { fillCells(c, r); return struct{}{} }

func fillCells[T Float](cells []T, r fillRoutine) {
	for i, idx := range r.indices {
		cells[idx] = T(r.values[i])
	}
}

// Label is one coordinate of a visited cell, rendered as text.
type Label struct {
	Dimension string
	Label     string
}

// Visitor receives the cells of a tensor.
type Visitor interface {
	Visit(address []Label, value float64)
}

// Accept calls visitor once per cell in row-major order. The address slice
// is reused between calls.
func (v *View) Accept(visitor Visitor) {
	labels := make([]Label, len(v.typ.dims))
	for i, d := range v.typ.dims {
		labels[i].Dimension = d.Name
	}
	for it := NewIterator(v.typ, v.cells); it.Valid(); it.Next() {
		for i, label := range it.Address() {
			labels[i].Label = strconv.FormatUint(uint64(label), 10)
		}
		visitor.Visit(labels, it.Cell())
	}
}
