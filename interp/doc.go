// Package interp compiles IR graphs into flat instruction programs and runs
// them.
//
// Compile lays the nodes out in post-order so each instruction finds its
// operands on top of the stack. A Function is immutable and may be shared
// between goroutines; each goroutine evaluates with its own Context.
package interp
