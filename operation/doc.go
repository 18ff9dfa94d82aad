// Package operation defines the scalar cell functions and aggregators used
// by tensor join, map and reduce.
//
// Functions are compared by pointer identity, so the tensor engine can
// recognize operation.Mul or operation.Add and take an inlined fast path
// while custom functions go through the generic call.
//
//	sum := operation.Add.Call(1, 2) // 3
//	sq := operation.NewOp2("sqdiff", func(a, b float64) float64 { return (a - b) * (a - b) })
package operation
