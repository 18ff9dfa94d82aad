package optimize

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/tensoreval/ir"
)

// Rule rewrites a single node. It returns ref unchanged when it does not
// apply, or the ref of a replacement it added to the arena.
type Rule interface {
	Name() string
	Apply(a *ir.Arena, ref ir.NodeRef) ir.NodeRef
}

// Optimizer applies rules bottom-up over an expression graph.
type Optimizer struct {
	rules []Rule
}

// New returns an optimizer running rules in order at every node.
func New(rules ...Rule) *Optimizer {
	return &Optimizer{rules: rules}
}

// Result describes one optimizer run.
type Result struct {
	Root ir.NodeRef
	// Rewrites counts rule applications that produced a new node.
	Rewrites int
	// Visited counts distinct nodes inspected.
	Visited int
}

// Optimize returns the optimized root. If no rule applies anywhere the
// returned ref is root itself.
func (o *Optimizer) Optimize(a *ir.Arena, root ir.NodeRef) ir.NodeRef {
	return o.Run(a, root).Root
}

// Run is like Optimize but also reports what happened.
func (o *Optimizer) Run(a *ir.Arena, root ir.NodeRef) Result {
	n := a.Len() + 1
	w := &walker{
		arena:   a,
		rules:   o.rules,
		limit:   ir.NodeRef(n), //nolint:gosec // bounded by arena size
		visited: bitset.New(uint(n)),
		memo:    make([]ir.NodeRef, n),
	}
	out := w.optimize(root)
	return Result{Root: out, Rewrites: w.rewrites, Visited: int(w.visited.Count())} //nolint:gosec // bounded by arena size
}

type walker struct {
	arena    *ir.Arena
	rules    []Rule
	limit    ir.NodeRef
	visited  *bitset.BitSet
	memo     []ir.NodeRef
	rewrites int
}

func (w *walker) optimize(ref ir.NodeRef) ir.NodeRef {
	node := w.arena.Get(ref)
	if node == nil || ref >= w.limit {
		return ref
	}
	if w.visited.Test(uint(ref)) {
		return w.memo[ref]
	}

	out := ref
	children := node.Children()
	if len(children) > 0 {
		next := make([]ir.NodeRef, len(children))
		changed := false
		for i, c := range children {
			next[i] = w.optimize(c)
			changed = changed || next[i] != c
		}
		if changed {
			out = w.arena.Add(node.WithChildren(next))
		}
	}

	for _, r := range w.rules {
		if next := r.Apply(w.arena, out); next != out {
			out = next
			w.rewrites++
		}
	}

	w.visited.Set(uint(ref))
	w.memo[ref] = out
	return out
}
