// Package simd provides CPU capability detection and the raw dot product
// kernels behind the acceleration strategies.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the generic Go fallback.
//
// # Operations
//
//   - Dot64: float64 x float64 dot product
//   - Dot32: float32 x float32 dot product, widened to float64
//
// Both kernels assume len(a) == len(b). Callers slice to the common length.
package simd
