package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Float64 allocates a zeroed, 64-byte aligned float64 slice of length n.
func Float64(n int) []float64 {
	if n <= 0 {
		return nil
	}
	raw := AllocAligned(n * 8)
	return unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n) //nolint:gosec // alignment guaranteed above
}

// Float32 allocates a zeroed, 64-byte aligned float32 slice of length n.
func Float32(n int) []float32 {
	if n <= 0 {
		return nil
	}
	raw := AllocAligned(n * 4)
	return unsafe.Slice((*float32)(unsafe.Pointer(&raw[0])), n) //nolint:gosec // alignment guaranteed above
}

// CloneFloat64 returns an aligned copy of src.
func CloneFloat64(src []float64) []float64 {
	dst := Float64(len(src))
	copy(dst, src)
	return dst
}

// CloneFloat32 returns an aligned copy of src.
func CloneFloat32(src []float32) []float32 {
	dst := Float32(len(src))
	copy(dst, src)
	return dst
}
