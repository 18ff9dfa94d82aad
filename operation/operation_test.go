package operation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOp2Builtins(t *testing.T) {
	tests := []struct {
		op       *Op2
		a, b     float64
		expected float64
	}{
		{Add, 2, 3, 5},
		{Sub, 2, 3, -1},
		{Mul, 2, 3, 6},
		{Div, 3, 2, 1.5},
		{Max, 2, 3, 3},
		{Min, 2, 3, 2},
		{Pow, 2, 3, 8},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.Call(tt.a, tt.b))
			assert.Equal(t, tt.expected, tt.op.Func()(tt.a, tt.b))
		})
	}
}

func TestOp2Identity(t *testing.T) {
	custom := NewOp2("mul", func(a, b float64) float64 { return a * b })

	assert.NotSame(t, Mul, custom)
	assert.True(t, Mul.Commutative())
	assert.False(t, custom.Commutative())
	assert.False(t, Sub.Commutative())

	op, ok := LookupOp2("mul")
	require.True(t, ok)
	assert.Same(t, Mul, op)

	_, ok = LookupOp2("hypot")
	assert.False(t, ok)
}

func TestOp1Builtins(t *testing.T) {
	assert.Equal(t, -2.0, Neg.Call(2))
	assert.Equal(t, 9.0, Square.Call(3))
	assert.Equal(t, 0.0, Relu.Call(-1))
	assert.Equal(t, 3.0, Sqrt.Call(9))
	assert.InDelta(t, math.E, Exp.Call(1), 1e-12)

	op, ok := LookupOp1("relu")
	require.True(t, ok)
	assert.Same(t, Relu, op)
}

func TestAggregator(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	tests := []struct {
		aggr     Aggr
		expected float64
	}{
		{Sum, 14},
		{Prod, 60},
		{Maximum, 5},
		{Minimum, 1},
		{Avg, 2.8},
		{Count, 5},
	}
	for _, tt := range tests {
		t.Run(tt.aggr.String(), func(t *testing.T) {
			g := NewAggregator(tt.aggr)
			g.First(values[0])
			for _, v := range values[1:] {
				g.Next(v)
			}
			assert.InDelta(t, tt.expected, g.Result(), 1e-12)
		})
	}
}

func TestParseAggr(t *testing.T) {
	for _, a := range []Aggr{Sum, Prod, Maximum, Minimum, Avg, Count} {
		got, err := ParseAggr(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAggr("median")
	assert.ErrorIs(t, err, ErrUnknownAggr)
}

func TestAggrValid(t *testing.T) {
	for _, a := range []Aggr{Sum, Prod, Maximum, Minimum, Avg, Count} {
		assert.True(t, a.Valid(), a.String())
	}
	assert.False(t, Aggr(Count+1).Valid())
	assert.False(t, Aggr(255).Valid())
}

func TestAggrOp2(t *testing.T) {
	op, ok := Sum.Op2()
	require.True(t, ok)
	assert.Same(t, Add, op)

	_, ok = Avg.Op2()
	assert.False(t, ok)
	_, ok = Count.Op2()
	assert.False(t, ok)
}
