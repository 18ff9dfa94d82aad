package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tensoreval/operation"
)

func TestReduce(t *testing.T) {
	d := matrix(t, Float64, 1, 2, 3, 4, 5, 6)

	tests := []struct {
		name     string
		op       *operation.Op2
		dims     []string
		wantType string
		want     []float64
	}{
		{"sum y", operation.Add, []string{"y"}, "tensor(x[2])", []float64{6, 15}},
		{"sum x", operation.Add, []string{"x"}, "tensor(y[3])", []float64{5, 7, 9}},
		{"sum all", operation.Add, nil, "double", []float64{21}},
		{"sum all named", operation.Add, []string{"y", "x"}, "double", []float64{21}},
		{"prod y", operation.Mul, []string{"y"}, "tensor(x[2])", []float64{6, 120}},
		{"max x", operation.Max, []string{"x"}, "tensor(y[3])", []float64{4, 5, 6}},
		{"min all", operation.Min, nil, "double", []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := d.Reduce(tt.op, tt.dims...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, r.Type().String())
			for i, want := range tt.want {
				assert.Equal(t, want, r.Cells().Get(i))
			}
		})
	}
}

func TestReduceFloatCells(t *testing.T) {
	d := matrix(t, Float32, 1, 2, 3, 4, 5, 6)

	r, err := d.Reduce(operation.Add, "y")
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 15}, r.Cells().Float32())

	s, err := d.Reduce(operation.Add)
	require.NoError(t, err)
	assert.Equal(t, Float64, s.Cells().Type())
	assert.Equal(t, 21.0, s.AsDouble())
}

func TestReduceMiddleDimension(t *testing.T) {
	typ := MustType(Float64, Dimension{"a", 2}, Dimension{"b", 2}, Dimension{"c", 2})
	d, err := FromFloat64(typ, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	r, err := d.Reduce(operation.Add, "b")
	require.NoError(t, err)
	assert.Equal(t, "tensor(a[2],c[2])", r.Type().String())
	assert.Equal(t, []float64{4, 6, 12, 14}, r.Cells().Float64())
}

func TestReduceUnknownDimension(t *testing.T) {
	_, err := matrix(t, Float64, 1, 2, 3, 4, 5, 6).Reduce(operation.Add, "z")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestReduceAggr(t *testing.T) {
	d := matrix(t, Float32, 1, 2, 3, 4, 5, 6)

	r, err := d.ReduceAggr(operation.Avg, "y")
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 5}, r.Cells().Float32())

	r, err = d.ReduceAggr(operation.Count)
	require.NoError(t, err)
	assert.Equal(t, 6.0, r.AsDouble())

	r, err = d.ReduceAggr(operation.Sum, "x")
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 7, 9}, r.Cells().Float32())
}

func TestReduceAggrUnknown(t *testing.T) {
	_, err := matrix(t, Float64, 1, 2, 3, 4, 5, 6).ReduceAggr(operation.Aggr(42), "x")
	assert.ErrorIs(t, err, operation.ErrUnknownAggr)
}
