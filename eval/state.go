package eval

import (
	"strconv"

	"github.com/hupe1980/tensoreval/tensor"
)

// State is the operand stack of one evaluation. It is not safe for
// concurrent use; give each goroutine its own.
type State struct {
	params []Value
	stack  []Value
	slots  []Value
}

// NewState returns an empty stack bound to params.
func NewState(params []Value, capacity int) *State {
	return &State{params: params, stack: make([]Value, 0, capacity)}
}

// ReserveSlots sizes the slot table used by Store and Load.
func (s *State) ReserveSlots(n int) {
	if cap(s.slots) < n {
		s.slots = make([]Value, n)
	}
	s.slots = s.slots[:n]
}

// Reset empties the stack and slots and rebinds params, keeping the
// allocations.
func (s *State) Reset(params []Value) {
	clear(s.stack)
	s.stack = s.stack[:0]
	clear(s.slots)
	s.params = params
}

// Param returns parameter i.
func (s *State) Param(i int) Value {
	if i < 0 || i >= len(s.params) {
		underflow("param", i+1, len(s.params))
	}
	return s.params[i]
}

// Len returns the stack depth.
func (s *State) Len() int { return len(s.stack) }

// Push pushes v.
func (s *State) Push(v Value) {
	s.stack = append(s.stack, v)
}

// Pop removes and returns the top value.
func (s *State) Pop() Value {
	n := len(s.stack)
	if n == 0 {
		underflow("pop", 1, 0)
	}
	v := s.stack[n-1]
	s.stack[n-1] = nil
	s.stack = s.stack[:n-1]
	return v
}

// Peek returns the value n entries below the top; Peek(0) is the top.
func (s *State) Peek(n int) Value {
	if n < 0 || n >= len(s.stack) {
		underflow("peek", n+1, len(s.stack))
	}
	return s.stack[len(s.stack)-1-n]
}

// Replace pops n values and pushes v.
func (s *State) Replace(n int, v Value) {
	if n < 0 || n > len(s.stack) {
		underflow("replace", n, len(s.stack))
	}
	clear(s.stack[len(s.stack)-n:])
	s.stack = append(s.stack[:len(s.stack)-n], v)
}

// PopPush replaces the top value with v.
func (s *State) PopPush(v Value) { s.Replace(1, v) }

// PopPopPush replaces the top two values with v.
func (s *State) PopPopPush(v Value) { s.Replace(2, v) }

// Store saves the top value in slot i without popping it.
func (s *State) Store(i int) {
	if i < 0 || i >= len(s.slots) {
		underflow("store", i+1, len(s.slots))
	}
	s.slots[i] = s.Peek(0)
}

// Load pushes the value saved in slot i.
func (s *State) Load(i int) {
	if i < 0 || i >= len(s.slots) || s.slots[i] == nil {
		underflow("load", i+1, len(s.slots))
	}
	s.Push(s.slots[i])
}

func underflow(op string, want, have int) {
	panic(&tensor.ConsistencyError{
		Op:       "stack " + op,
		Expected: strconv.Itoa(want) + " values",
		Actual:   strconv.Itoa(have) + " values",
	})
}
