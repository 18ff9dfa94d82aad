package interp

import (
	"fmt"

	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/ir"
	"github.com/hupe1980/tensoreval/tensor"
)

// Function is a compiled expression.
type Function struct {
	program    []eval.Instruction
	params     []*tensor.Type
	resultType *tensor.Type
	maxDepth   int
	numSlots   int
}

// Compile turns the expression rooted at root into a Function. The arena
// may be reset or dropped afterwards.
//
// A node shared by several parents is evaluated once. Its value is kept in
// a slot and pushed again at every later use.
func Compile(a *ir.Arena, root ir.NodeRef) (*Function, error) {
	order, err := a.PostOrder(root)
	if err != nil {
		return nil, err
	}

	c := &compiler{
		arena: a,
		fn: &Function{
			program:    make([]eval.Instruction, 0, len(order)),
			resultType: a.Get(root).ResultType(),
		},
		uses:  make(map[ir.NodeRef]int, len(order)),
		slots: make(map[ir.NodeRef]int),
	}
	for _, ref := range order {
		for _, child := range a.Get(ref).Children() {
			c.uses[child]++
		}
	}
	if err := c.emit(root); err != nil {
		return nil, err
	}
	c.fn.numSlots = len(c.slots)
	return c.fn, nil
}

type compiler struct {
	arena *ir.Arena
	fn    *Function
	uses  map[ir.NodeRef]int
	slots map[ir.NodeRef]int
	depth int
}

func (c *compiler) emit(ref ir.NodeRef) error {
	if slot, ok := c.slots[ref]; ok {
		c.append(eval.Instruction{Op: opLoad, Param: slot}, 1)
		return nil
	}

	node := c.arena.Get(ref)
	children := node.Children()
	for _, child := range children {
		if err := c.emit(child); err != nil {
			return err
		}
	}
	if p, ok := node.(*ir.ParamNode); ok {
		if err := c.fn.declareParam(p.Index(), p.ResultType()); err != nil {
			return err
		}
	}
	c.append(node.CompileSelf(), 1-len(children))

	if c.uses[ref] > 1 {
		slot := len(c.slots)
		c.slots[ref] = slot
		c.append(eval.Instruction{Op: opStore, Param: slot}, 0)
	}
	return nil
}

func (c *compiler) append(in eval.Instruction, delta int) {
	c.fn.program = append(c.fn.program, in)
	c.depth += delta
	c.fn.maxDepth = max(c.fn.maxDepth, c.depth)
}

func opStore(s *eval.State, param any) { s.Store(param.(int)) }

func opLoad(s *eval.State, param any) { s.Load(param.(int)) }

func (f *Function) declareParam(index int, t *tensor.Type) error {
	if index < 0 {
		return fmt.Errorf("interp: negative parameter index %d", index)
	}
	for len(f.params) <= index {
		f.params = append(f.params, nil)
	}
	if prev := f.params[index]; prev != nil && !prev.Equal(t) {
		return fmt.Errorf("%w: param(%d) is %s and %s", ErrConflictingParam, index, prev, t)
	}
	f.params[index] = t
	return nil
}

// NumParams returns the number of parameters Eval expects.
func (f *Function) NumParams() int { return len(f.params) }

// ParamType returns the declared type of parameter i, or nil if the
// expression never reads it.
func (f *Function) ParamType(i int) *tensor.Type { return f.params[i] }

// ResultType returns the static type of the result.
func (f *Function) ResultType() *tensor.Type { return f.resultType }

// Size returns the number of instructions.
func (f *Function) Size() int { return len(f.program) }

// Context is the per-goroutine evaluation scratch space for a Function.
type Context struct {
	state *eval.State
}

// NewContext returns a context sized for fn.
func NewContext(fn *Function) *Context {
	s := eval.NewState(nil, fn.maxDepth)
	s.ReserveSlots(fn.numSlots)
	return &Context{state: s}
}

// Eval runs the function. The returned value may borrow from params.
func (f *Function) Eval(ctx *Context, params ...eval.Value) (eval.Value, error) {
	if err := f.checkParams(params); err != nil {
		return nil, err
	}

	s := ctx.state
	s.Reset(params)
	for _, in := range f.program {
		in.Perform(s)
	}
	if s.Len() != 1 {
		panic(&tensor.ConsistencyError{Op: "eval", Expected: "1 result", Actual: fmt.Sprintf("%d results", s.Len())})
	}
	res := s.Pop()
	s.Reset(nil)
	return res, nil
}

func (f *Function) checkParams(params []eval.Value) error {
	if len(params) != len(f.params) {
		return fmt.Errorf("%w: expected %d, got %d", ErrParamCount, len(f.params), len(params))
	}
	for i, want := range f.params {
		if params[i] == nil {
			return &ParamTypeError{Index: i, Expected: typeName(want), Actual: "nil"}
		}
		if want != nil && !want.Equal(params[i].Type()) {
			return &ParamTypeError{Index: i, Expected: want.String(), Actual: params[i].Type().String()}
		}
	}
	return nil
}

func typeName(t *tensor.Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}
