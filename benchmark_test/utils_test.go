package benchmark_test

import (
	"testing"

	"github.com/hupe1980/tensoreval"
	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/ir"
	"github.com/hupe1980/tensoreval/operation"
	"github.com/hupe1980/tensoreval/tensor"
	"github.com/hupe1980/tensoreval/testutil"
)

var dims = []uint32{16, 128, 1024}

var cellTypes = []tensor.CellType{tensor.Float64, tensor.Float32}

func vecType(ct tensor.CellType, n uint32) *tensor.Type {
	return tensor.MustType(ct, tensor.Dimension{Name: "x", Size: n})
}

// compileDot compiles sum(join(a, b, mul)) over two vectors of type t.
func compileDot(b *testing.B, e *tensoreval.Engine, t *tensor.Type) *tensoreval.Program {
	b.Helper()
	a := ir.NewArena()
	mul, err := a.Join(a.Param(0, t), a.Param(1, t), operation.Mul)
	if err != nil {
		b.Fatal(err)
	}
	sum, err := a.Reduce(mul, operation.Sum)
	if err != nil {
		b.Fatal(err)
	}
	p, err := e.Compile(b.Context(), a, sum)
	if err != nil {
		b.Fatal(err)
	}
	return p
}

// docs returns n documents that score one shared query against a random vector.
func docs(rng *testutil.RNG, t *tensor.Type, n int) [][]eval.Value {
	query := rng.Dense(t)
	out := make([][]eval.Value, n)
	for i := range out {
		out[i] = []eval.Value{query, rng.Dense(t)}
	}
	return out
}
