// Package ir holds tensor expressions as a graph of immutable nodes owned
// by an Arena.
//
// Nodes refer to each other by NodeRef, an index into the arena. Ref 0 is
// reserved as nil. Nodes never free their children; the arena is dropped
// or Reset as a whole when the expression is no longer needed.
//
// Every constructor validates its operands and computes the static result
// type, so a graph that was built without error is well typed:
//
//	a := ir.NewArena()
//	x := a.Param(0, vecType)
//	y := a.Param(1, vecType)
//	mul, _ := a.Join(x, y, operation.Mul)
//	dot, _ := a.Reduce(mul, operation.Sum)
//
// Rewrites build new nodes with WithChildren and Add rather than editing
// existing ones.
package ir
