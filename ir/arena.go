package ir

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/operation"
	"github.com/hupe1980/tensoreval/tensor"
)

// NodeRef addresses a node in an Arena. The zero value is nil.
type NodeRef uint32

// IsNil reports whether r is the nil ref.
func (r NodeRef) IsNil() bool { return r == 0 }

// Node is one operation in an expression graph.
type Node interface {
	// ResultType is the static type of the value the node produces.
	ResultType() *tensor.Type
	// Children lists operand refs in evaluation order.
	Children() []NodeRef
	// WithChildren returns a copy of the node with its operands replaced.
	// The replacements must produce the same types as the originals.
	WithChildren(children []NodeRef) Node
	// CompileSelf returns the instruction that consumes the operand values
	// from the stack and pushes the node's value.
	CompileSelf() eval.Instruction
}

// Arena owns the nodes of one or more expressions.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	// Reserve index 0 as nil
	return &Arena{nodes: make([]Node, 1, 16)}
}

// Add stores n and returns its ref.
func (a *Arena) Add(n Node) NodeRef {
	a.nodes = append(a.nodes, n)
	return NodeRef(len(a.nodes) - 1) //nolint:gosec // arenas stay far below 2^32 nodes
}

// Get returns the node for ref, or nil for an invalid ref.
func (a *Arena) Get(ref NodeRef) Node {
	if ref == 0 || int(ref) >= len(a.nodes) {
		return nil
	}
	return a.nodes[ref]
}

// Len returns the number of nodes.
func (a *Arena) Len() int { return len(a.nodes) - 1 }

// Reset drops every node. Refs handed out before are invalid afterwards.
func (a *Arena) Reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
}

func (a *Arena) resolve(ref NodeRef) (Node, error) {
	n := a.Get(ref)
	if n == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRef, ref)
	}
	return n, nil
}

// Const adds a node that produces v.
func (a *Arena) Const(v eval.Value) NodeRef {
	return a.Add(&ConstNode{value: v})
}

// Param adds a node that produces parameter index, declared with type t.
func (a *Arena) Param(index int, t *tensor.Type) NodeRef {
	return a.Add(&ParamNode{index: index, typ: t})
}

// Join adds a node combining lhs and rhs cell by cell with op.
func (a *Arena) Join(lhs, rhs NodeRef, op *operation.Op2) (NodeRef, error) {
	l, err := a.resolve(lhs)
	if err != nil {
		return 0, err
	}
	r, err := a.resolve(rhs)
	if err != nil {
		return 0, err
	}
	t, err := l.ResultType().Join(r.ResultType())
	if err != nil {
		return 0, fmt.Errorf("%w: join(%s, %s): %w", ErrIncompatibleTypes, l.ResultType(), r.ResultType(), err)
	}
	return a.Add(&JoinNode{lhs: lhs, rhs: rhs, op: op, typ: t}), nil
}

// Map adds a node applying op to every cell of child.
func (a *Arena) Map(child NodeRef, op *operation.Op1) (NodeRef, error) {
	c, err := a.resolve(child)
	if err != nil {
		return 0, err
	}
	return a.Add(&MapNode{child: child, op: op, typ: c.ResultType()}), nil
}

// Reduce adds a node aggregating the named dimensions of child away.
// With no dimensions the child is reduced to a double.
func (a *Arena) Reduce(child NodeRef, aggr operation.Aggr, dims ...string) (NodeRef, error) {
	c, err := a.resolve(child)
	if err != nil {
		return 0, err
	}
	if !aggr.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAggr, aggr)
	}
	t, err := c.ResultType().Reduce(dims...)
	if err != nil {
		return 0, err
	}
	return a.Add(&ReduceNode{child: child, aggr: aggr, dims: slices.Clone(dims), typ: t}), nil
}

// PostOrder lists the nodes reachable from root, children before parents.
// A node reachable along several paths is listed once, at its first visit.
func (a *Arena) PostOrder(root NodeRef) ([]NodeRef, error) {
	var (
		order []NodeRef
		seen  = bitset.New(uint(len(a.nodes)))
		visit func(NodeRef) error
	)
	visit = func(ref NodeRef) error {
		n, err := a.resolve(ref)
		if err != nil {
			return err
		}
		if seen.Test(uint(ref)) {
			return nil
		}
		seen.Set(uint(ref))
		for _, c := range n.Children() {
			if err := visit(c); err != nil {
				return err
			}
		}
		order = append(order, ref)
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}
