package optimize

import (
	"fmt"

	"github.com/hupe1980/tensoreval/accel"
	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/ir"
	"github.com/hupe1980/tensoreval/operation"
	"github.com/hupe1980/tensoreval/tensor"
)

// DotProduct computes the sum of pairwise cell products of two operands.
type DotProduct struct {
	lhs, rhs ir.NodeRef
	strategy accel.Strategy
}

var _ ir.Node = (*DotProduct)(nil)

// NewDotProduct returns a dot product node over lhs and rhs.
func NewDotProduct(lhs, rhs ir.NodeRef, strategy accel.Strategy) *DotProduct {
	return &DotProduct{lhs: lhs, rhs: rhs, strategy: strategy}
}

func (n *DotProduct) ResultType() *tensor.Type { return tensor.DoubleType() }
func (n *DotProduct) Children() []ir.NodeRef   { return []ir.NodeRef{n.lhs, n.rhs} }

func (n *DotProduct) String() string {
	return fmt.Sprintf("dot_product(%s)", n.strategy.Name())
}

// Strategy returns the strategy the node was built with.
func (n *DotProduct) Strategy() accel.Strategy { return n.strategy }

func (n *DotProduct) WithChildren(children []ir.NodeRef) ir.Node {
	c := *n
	c.lhs, c.rhs = children[0], children[1]
	return &c
}

func (n *DotProduct) CompileSelf() eval.Instruction {
	return eval.Instruction{Op: opDotProduct, Param: n.strategy}
}

func opDotProduct(s *eval.State, param any) {
	strategy := param.(accel.Strategy)
	lhs := eval.AsView(s.Peek(1)).Cells()
	rhs := eval.AsView(s.Peek(0)).Cells()
	r := dotRoutine{strategy: strategy, n: min(lhs.Len(), rhs.Len())}
	s.PopPopPush(eval.Double(tensor.Dispatch2[float64](lhs, rhs, r)))
}

// dotRoutine sends kind-matched pairs to the strategy and computes mixed
// pairs with a sequential loop.
type dotRoutine struct {
	strategy accel.Strategy
	n        int
}

func (r dotRoutine) FF(l, rr []float32) float64 {
	return r.strategy.DotProduct32(l[:r.n], rr[:r.n])
}

func (r dotRoutine) FD(l []float32, rr []float64) float64 {
	return mixedDot(l[:r.n], rr[:r.n])
}

func (r dotRoutine) DF(l []float64, rr []float32) float64 {
	return mixedDot(l[:r.n], rr[:r.n])
}

func (r dotRoutine) DD(l, rr []float64) float64 {
	return r.strategy.DotProduct64(l[:r.n], rr[:r.n])
}

func mixedDot[L, R tensor.Float](lhs []L, rhs []R) float64 {
	var sum float64
	for i := range lhs {
		sum += float64(lhs[i]) * float64(rhs[i])
	}
	return sum
}

// CompatibleTypes reports whether a dot product can replace
// reduce(sum, join(mul, lhs, rhs)) with result type res.
func CompatibleTypes(res, lhs, rhs *tensor.Type) bool {
	return lhs.CellType() == tensor.Float64 &&
		rhs.CellType() == tensor.Float64 &&
		res.IsDouble() &&
		lhs.IsDense() &&
		rhs.Equal(lhs)
}

type dotProductRule struct {
	strategy accel.Strategy
}

// DotProductRule returns the rule that replaces a full sum over a
// multiplication of two identically typed double vectors with a DotProduct.
func DotProductRule(strategy accel.Strategy) Rule {
	return dotProductRule{strategy: strategy}
}

func (dotProductRule) Name() string { return "dot_product" }

func (r dotProductRule) Apply(a *ir.Arena, ref ir.NodeRef) ir.NodeRef {
	reduce, ok := ir.AsReduce(a.Get(ref))
	if !ok || reduce.Aggr() != operation.Sum {
		return ref
	}
	join, ok := ir.AsJoin(a.Get(reduce.Child()))
	if !ok || join.Op() != operation.Mul {
		return ref
	}
	lhs, rhs := a.Get(join.Lhs()), a.Get(join.Rhs())
	if !CompatibleTypes(reduce.ResultType(), lhs.ResultType(), rhs.ResultType()) {
		return ref
	}
	return a.Add(NewDotProduct(join.Lhs(), join.Rhs(), r.strategy))
}
