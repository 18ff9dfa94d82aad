package operation

import (
	"math"
)

// Op1 is a named unary cell function.
type Op1 struct {
	name string
	fn   func(a float64) float64
}

// Op2 is a named binary cell function.
type Op2 struct {
	name        string
	fn          func(a, b float64) float64
	commutative bool
}

// NewOp1 creates a custom unary function.
func NewOp1(name string, fn func(a float64) float64) *Op1 {
	return &Op1{name: name, fn: fn}
}

// NewOp2 creates a custom binary function.
func NewOp2(name string, fn func(a, b float64) float64) *Op2 {
	return &Op2{name: name, fn: fn}
}

// Call applies the function.
func (o *Op1) Call(a float64) float64 { return o.fn(a) }

// Func returns the underlying function.
func (o *Op1) Func() func(float64) float64 { return o.fn }

func (o *Op1) String() string { return o.name }

// Call applies the function.
func (o *Op2) Call(a, b float64) float64 { return o.fn(a, b) }

// Func returns the underlying function.
func (o *Op2) Func() func(float64, float64) float64 { return o.fn }

// Commutative reports whether f(a, b) == f(b, a) for all inputs.
func (o *Op2) Commutative() bool { return o.commutative }

func (o *Op2) String() string { return o.name }

// Built-in unary functions.
var (
	Neg    = &Op1{name: "neg", fn: func(a float64) float64 { return -a }}
	Exp    = &Op1{name: "exp", fn: math.Exp}
	Sqrt   = &Op1{name: "sqrt", fn: math.Sqrt}
	Square = &Op1{name: "square", fn: func(a float64) float64 { return a * a }}
	Relu   = &Op1{name: "relu", fn: func(a float64) float64 { return math.Max(a, 0) }}
)

// Built-in binary functions.
var (
	Add = &Op2{name: "add", fn: func(a, b float64) float64 { return a + b }, commutative: true}
	Sub = &Op2{name: "sub", fn: func(a, b float64) float64 { return a - b }}
	Mul = &Op2{name: "mul", fn: func(a, b float64) float64 { return a * b }, commutative: true}
	Div = &Op2{name: "div", fn: func(a, b float64) float64 { return a / b }}
	Max = &Op2{name: "max", fn: math.Max, commutative: true}
	Min = &Op2{name: "min", fn: math.Min, commutative: true}
	Pow = &Op2{name: "pow", fn: math.Pow}
)

var op2ByName = map[string]*Op2{
	Add.name: Add, Sub.name: Sub, Mul.name: Mul, Div.name: Div,
	Max.name: Max, Min.name: Min, Pow.name: Pow,
}

var op1ByName = map[string]*Op1{
	Neg.name: Neg, Exp.name: Exp, Sqrt.name: Sqrt, Square.name: Square, Relu.name: Relu,
}

// LookupOp2 returns the built-in binary function with the given name.
func LookupOp2(name string) (*Op2, bool) {
	op, ok := op2ByName[name]
	return op, ok
}

// LookupOp1 returns the built-in unary function with the given name.
func LookupOp1(name string) (*Op1, bool) {
	op, ok := op1ByName[name]
	return op, ok
}
