// Package conv provides safe integer type conversion utilities.
//
// Tensor dimension sizes and address labels are uint32 while cell offsets
// are int. These helpers check the conversions that cross that boundary at
// construction time; hot loops use direct casts once sizes are validated.
package conv
