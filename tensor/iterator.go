package tensor

// Iterator walks the cells of a dense tensor in row-major order together
// with their addresses. The last dimension varies fastest.
type Iterator struct {
	typ   *Type
	cells TypedCells
	addr  Address
	idx   int
}

// NewIterator returns an iterator positioned at the first cell.
func NewIterator(t *Type, cells TypedCells) *Iterator {
	return &Iterator{
		typ:   t,
		cells: cells,
		addr:  make(Address, t.NumDimensions()),
	}
}

// Valid reports whether the iterator points at a cell.
func (it *Iterator) Valid() bool {
	return it.idx < it.cells.Len()
}

// Index returns the row-major index of the current cell.
func (it *Iterator) Index() int {
	return it.idx
}

// Cell returns the current cell value.
func (it *Iterator) Cell() float64 {
	return it.cells.Get(it.idx)
}

// Address returns the current address. The slice is reused by Next;
// callers that keep it must copy it.
func (it *Iterator) Address() Address {
	return it.addr
}

// Next advances to the next cell.
func (it *Iterator) Next() {
	it.idx++
	for i := len(it.addr) - 1; i >= 0; i-- {
		it.addr[i]++
		if it.addr[i] < it.typ.dims[i].Size {
			return
		}
		it.addr[i] = 0
	}
}
