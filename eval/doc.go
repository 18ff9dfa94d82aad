// Package eval defines the runtime pieces shared by compiled IR: values,
// the operand stack, and instructions.
//
// An instruction is a plain function plus an opaque parameter fixed at
// compile time. It pops its operands from the State and pushes its result.
// The value of a whole program is the single value left on the stack.
package eval
