// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Tensor cell buffers are allocated 64-byte aligned so the vector dot
// product kernels start on a cache line boundary (AVX-512 friendly).
package mem
