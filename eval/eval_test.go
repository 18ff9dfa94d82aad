package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tensoreval/tensor"
)

func TestStack(t *testing.T) {
	s := NewState([]Value{Double(10), Double(20)}, 4)

	s.Push(s.Param(0))
	s.Push(s.Param(1))
	s.Push(Double(3))
	require.Equal(t, 3, s.Len())
	assert.Equal(t, Double(3), s.Peek(0))
	assert.Equal(t, Double(20), s.Peek(1))
	assert.Equal(t, Double(10), s.Peek(2))

	s.PopPush(Double(4))
	assert.Equal(t, Double(4), s.Peek(0))
	assert.Equal(t, 3, s.Len())

	s.PopPopPush(Double(5))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Double(5), s.Pop())
	assert.Equal(t, Double(10), s.Pop())
	assert.Equal(t, 0, s.Len())
}

func TestStackUnderflowPanics(t *testing.T) {
	s := NewState(nil, 0)
	assert.PanicsWithError(t, "tensor stack pop: consistency violation, expected=1 values, actual=0 values", func() { s.Pop() })
	assert.Panics(t, func() { s.Peek(0) })
	assert.Panics(t, func() { s.Param(0) })
	assert.Panics(t, func() { s.PopPopPush(Double(1)) })
}

func TestReset(t *testing.T) {
	s := NewState([]Value{Double(1)}, 2)
	s.Push(Double(1))
	s.Reset([]Value{Double(2)})
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, Double(2), s.Param(0))
}

func TestSlots(t *testing.T) {
	s := NewState(nil, 4)
	s.ReserveSlots(2)

	s.Push(Double(7))
	s.Store(1)
	assert.Equal(t, 1, s.Len())

	s.Load(1)
	s.Load(1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Double(7), s.Pop())

	assert.Panics(t, func() { s.Load(0) })
	assert.Panics(t, func() { s.Store(2) })

	s.Reset(nil)
	assert.Panics(t, func() { s.Load(1) })
}

func TestInstruction(t *testing.T) {
	add := Instruction{
		Op: func(s *State, param any) {
			bias := param.(float64)
			lhs, rhs := s.Peek(1), s.Peek(0)
			s.PopPopPush(Double(lhs.AsDouble() + rhs.AsDouble() + bias))
		},
		Param: 0.5,
	}

	s := NewState(nil, 2)
	s.Push(Double(1))
	s.Push(Double(2))
	add.Perform(s)
	assert.Equal(t, Double(3.5), s.Pop())
}

func TestAsView(t *testing.T) {
	v := AsView(Double(2.5))
	assert.True(t, v.Type().IsDouble())
	assert.Equal(t, 2.5, v.AsDouble())

	d, err := tensor.FromFloat64(tensor.MustType(tensor.Float32, tensor.Dimension{Name: "x", Size: 2}), []float64{1, 2})
	require.NoError(t, err)
	assert.Same(t, &d.View, AsView(d))
	assert.Same(t, &d.View, AsView(&d.View))
}

func TestDouble(t *testing.T) {
	assert.True(t, Double(1).Type().IsDouble())
	assert.Equal(t, "1.5", Double(1.5).String())
}
