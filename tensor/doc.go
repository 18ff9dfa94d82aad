// Package tensor implements dense tensors: a typed, multi-dimensional numeric
// array with value semantics.
//
// # Model
//
//   - CellType: float32 or float64 storage. Results cross the API as float64.
//   - Type: ordered named dimensions with sizes plus the cell type.
//   - TypedCells: a tagged, non-owning reference to a cell buffer.
//   - View / Dense: a tensor over borrowed cells, and one that owns them.
//
// Every operation (Join, Reduce, Apply, Modify, Clone) returns a new Dense
// value; no tensor is ever mutated after construction.
//
// # Dispatch
//
// Kernels are written once as generic functions over the cell element types
// and instantiated for the four cell type pairs. Dispatch1 and Dispatch2
// resolve the concrete pair once per call, outside any loop:
//
//	type sum struct{}
//	func (sum) F(c []float32) float64 { return sumCells(c) }
//	func (sum) D(c []float64) float64 { return sumCells(c) }
//	total := tensor.Dispatch1[float64](cells, sum{})
//
// # Failures
//
// Constructors return *ShapeError or *TypeError. Contract violations found
// inside an operation (cell count not matching the type, mismatching
// dimensions in the same-shape path, sparse-only mutation entry points)
// panic with a *ConsistencyError.
package tensor
