package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tensoreval/operation"
)

func matrix(t *testing.T, ct CellType, values ...float64) *Dense {
	t.Helper()
	d, err := FromFloat64(MustType(ct, Dimension{"x", 2}, Dimension{"y", 3}), values)
	require.NoError(t, err)
	return d
}

func vector(t *testing.T, ct CellType, values ...float64) *Dense {
	t.Helper()
	n := uint32(len(values)) //nolint:gosec // test sizes are small
	d, err := FromFloat64(MustType(ct, Dimension{"x", n}), values)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	typ := MustType(Float32, Dimension{"x", 3})

	_, err := New(typ, Float32Cells([]float32{1, 2}))
	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Expected)
	assert.Equal(t, 2, se.Actual)

	_, err = New(typ, Float64Cells([]float64{1, 2, 3}))
	var te *TypeError
	require.ErrorAs(t, err, &te)

	src := []float32{1, 2, 3}
	d, err := New(typ, Float32Cells(src))
	require.NoError(t, err)
	src[0] = 100
	assert.Equal(t, 1.0, d.Cells().Get(0))
}

func TestNewViewPanicsOnMismatch(t *testing.T) {
	typ := MustType(Float64, Dimension{"x", 3})
	assert.PanicsWithError(t, "tensor view: consistency violation, expected=3 cells for tensor(x[3]), actual=2 cells", func() {
		NewView(typ, Float64Cells([]float64{1, 2}))
	})
}

func TestViewBorrowsCells(t *testing.T) {
	typ := MustType(Float64, Dimension{"x", 2})
	buf := []float64{1, 2}
	v := NewView(typ, Float64Cells(buf))
	assert.Equal(t, 3.0, v.AsDouble())
}

func TestFromFloatConversions(t *testing.T) {
	d := vector(t, Float32, 0.5, 1.5)
	assert.Equal(t, Float32, d.Cells().Type())
	assert.Equal(t, []float32{0.5, 1.5}, d.Cells().Float32())

	w, err := FromFloat32(MustType(Float64, Dimension{"x", 2}), []float32{0.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, w.Cells().Float64())
}

func TestCloneDoesNotAlias(t *testing.T) {
	d := matrix(t, Float64, 1, 2, 3, 4, 5, 6)
	c := d.Clone()
	require.True(t, c.Equal(d))

	c.Cells().Float64()[0] = 42
	assert.Equal(t, 1.0, d.Cells().Get(0))
	assert.False(t, c.Equal(d))
}

func TestAsDouble(t *testing.T) {
	assert.Equal(t, 21.0, matrix(t, Float32, 1, 2, 3, 4, 5, 6).AsDouble())
	assert.Equal(t, 2.5, Scalar(2.5).AsDouble())
	assert.Equal(t, 0.0, Zeros(MustType(Float32, Dimension{"x", 4})).AsDouble())
}

func TestEqual(t *testing.T) {
	a := vector(t, Float32, 1, 2)
	assert.True(t, a.Equal(vector(t, Float32, 1, 2)))
	assert.False(t, a.Equal(vector(t, Float64, 1, 2)))
	assert.False(t, a.Equal(vector(t, Float32, 1, 3)))
	assert.False(t, a.Equal(vector(t, Float32, 1, 2, 3)))
}

func TestApply(t *testing.T) {
	d := vector(t, Float32, 1, -2, 3)
	r := d.Apply(operation.Neg)
	assert.True(t, r.Type().Equal(d.Type()))
	assert.Equal(t, []float32{-1, 2, -3}, r.Cells().Float32())
	assert.Equal(t, []float32{1, -2, 3}, d.Cells().Float32())
}

func TestGet(t *testing.T) {
	d := matrix(t, Float64, 1, 2, 3, 4, 5, 6)
	v, ok := d.Get(Address{1, 0})
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
	_, ok = d.Get(Address{0, 3})
	assert.False(t, ok)
}

func TestSparseEntryPointsPanic(t *testing.T) {
	d := vector(t, Float64, 1, 2)
	assertConsistencyPanic(t, func() { d.Add(d) })
	assertConsistencyPanic(t, func() { d.Remove([]Address{{0}}) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "tensor<float>(x[2]):[1,2.5]", vector(t, Float32, 1, 2.5).String())
	assert.Equal(t, "double:[3]", Scalar(3).String())
}

func assertConsistencyPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*ConsistencyError)
		assert.True(t, ok, "panic value %T", r)
	}()
	fn()
}
