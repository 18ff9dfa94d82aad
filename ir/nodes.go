package ir

import (
	"fmt"
	"strings"

	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/operation"
	"github.com/hupe1980/tensoreval/tensor"
)

// ConstNode produces a fixed value.
type ConstNode struct {
	value eval.Value
}

func (n *ConstNode) ResultType() *tensor.Type    { return n.value.Type() }
func (n *ConstNode) Children() []NodeRef         { return nil }
func (n *ConstNode) WithChildren([]NodeRef) Node { return n }
func (n *ConstNode) String() string              { return "const" }

// Value returns the constant.
func (n *ConstNode) Value() eval.Value { return n.value }

func (n *ConstNode) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opConst, Param: n.value}
}

func opConst(s *eval.State, param any) {
	s.Push(param.(eval.Value))
}

// ParamNode produces a caller-supplied parameter.
type ParamNode struct {
	index int
	typ   *tensor.Type
}

func (n *ParamNode) ResultType() *tensor.Type    { return n.typ }
func (n *ParamNode) Children() []NodeRef         { return nil }
func (n *ParamNode) WithChildren([]NodeRef) Node { return n }
func (n *ParamNode) String() string              { return fmt.Sprintf("param(%d)", n.index) }

// Index returns the parameter position.
func (n *ParamNode) Index() int { return n.index }

func (n *ParamNode) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opParam, Param: n.index}
}

func opParam(s *eval.State, param any) {
	s.Push(s.Param(param.(int)))
}

// JoinNode combines two operands cell by cell.
type JoinNode struct {
	lhs, rhs NodeRef
	op       *operation.Op2
	typ      *tensor.Type
}

func (n *JoinNode) ResultType() *tensor.Type { return n.typ }
func (n *JoinNode) Children() []NodeRef      { return []NodeRef{n.lhs, n.rhs} }
func (n *JoinNode) String() string           { return fmt.Sprintf("join(%s)", n.op) }

// Lhs returns the left operand.
func (n *JoinNode) Lhs() NodeRef { return n.lhs }

// Rhs returns the right operand.
func (n *JoinNode) Rhs() NodeRef { return n.rhs }

// Op returns the cell function.
func (n *JoinNode) Op() *operation.Op2 { return n.op }

func (n *JoinNode) WithChildren(children []NodeRef) Node {
	c := *n
	c.lhs, c.rhs = children[0], children[1]
	return &c
}

func (n *JoinNode) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opJoin, Param: n.op}
}

func opJoin(s *eval.State, param any) {
	op := param.(*operation.Op2)
	lhs, rhs := s.Peek(1), s.Peek(0)
	if lhs.Type().IsDouble() && rhs.Type().IsDouble() {
		s.PopPopPush(eval.Double(op.Call(lhs.AsDouble(), rhs.AsDouble())))
		return
	}
	res, err := eval.AsView(lhs).Join(op, eval.AsView(rhs))
	if err != nil {
		panic(&tensor.ConsistencyError{Op: "join", Expected: "joinable operands", Actual: err.Error()})
	}
	s.PopPopPush(res)
}

// MapNode applies a unary function to every cell.
type MapNode struct {
	child NodeRef
	op    *operation.Op1
	typ   *tensor.Type
}

func (n *MapNode) ResultType() *tensor.Type { return n.typ }
func (n *MapNode) Children() []NodeRef      { return []NodeRef{n.child} }
func (n *MapNode) String() string           { return fmt.Sprintf("map(%s)", n.op) }

// Child returns the operand.
func (n *MapNode) Child() NodeRef { return n.child }

func (n *MapNode) WithChildren(children []NodeRef) Node {
	c := *n
	c.child = children[0]
	return &c
}

func (n *MapNode) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opMap, Param: n.op}
}

func opMap(s *eval.State, param any) {
	op := param.(*operation.Op1)
	v := s.Peek(0)
	if v.Type().IsDouble() {
		s.PopPush(eval.Double(op.Call(v.AsDouble())))
		return
	}
	s.PopPush(eval.AsView(v).Apply(op))
}

// ReduceNode aggregates dimensions away.
type ReduceNode struct {
	child NodeRef
	aggr  operation.Aggr
	dims  []string
	typ   *tensor.Type
}

func (n *ReduceNode) ResultType() *tensor.Type { return n.typ }
func (n *ReduceNode) Children() []NodeRef      { return []NodeRef{n.child} }

func (n *ReduceNode) String() string {
	if len(n.dims) == 0 {
		return fmt.Sprintf("reduce(%s)", n.aggr)
	}
	return fmt.Sprintf("reduce(%s, %s)", n.aggr, strings.Join(n.dims, ","))
}

// Child returns the operand.
func (n *ReduceNode) Child() NodeRef { return n.child }

// Aggr returns the aggregator.
func (n *ReduceNode) Aggr() operation.Aggr { return n.aggr }

// Dimensions returns the reduced dimension names; empty means all.
func (n *ReduceNode) Dimensions() []string { return n.dims }

func (n *ReduceNode) WithChildren(children []NodeRef) Node {
	c := *n
	c.child = children[0]
	return &c
}

func (n *ReduceNode) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opReduce, Param: n}
}

func opReduce(s *eval.State, param any) {
	n := param.(*ReduceNode)
	res, err := eval.AsView(s.Peek(0)).ReduceAggr(n.aggr, n.dims...)
	if err != nil {
		panic(&tensor.ConsistencyError{Op: "reduce", Expected: n.typ.String(), Actual: err.Error()})
	}
	if res.Type().IsDouble() {
		s.PopPush(eval.Double(res.AsDouble()))
		return
	}
	s.PopPush(res)
}

// AsJoin returns n as a join node.
func AsJoin(n Node) (*JoinNode, bool) {
	j, ok := n.(*JoinNode)
	return j, ok
}

// AsReduce returns n as a reduce node.
func AsReduce(n Node) (*ReduceNode, bool) {
	r, ok := n.(*ReduceNode)
	return r, ok
}
