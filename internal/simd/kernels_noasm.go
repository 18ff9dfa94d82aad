//go:build noasm

package simd

const vectorKernels = false

// Dot64Vector falls back to the generic kernel in noasm builds.
func Dot64Vector(a, b []float64) float64 {
	return Dot64Generic(a, b)
}

// Dot32Vector falls back to the generic kernel in noasm builds.
func Dot32Vector(a, b []float32) float64 {
	return Dot32Generic(a, b)
}
