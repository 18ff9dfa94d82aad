//go:build !noasm

package simd

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

const vectorKernels = true

// dot32Block bounds how many float32 products the vector kernel sums in
// float32 before the partial sum is carried in float64.
const dot32Block = 256

// Dot64Vector computes the float64 dot product with SIMD lanes.
// Lane-wise partial sums make the summation order differ from Dot64Generic.
func Dot64Vector(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.DotProductUnsafe(a, b)
}

// Dot32Vector computes the float32 dot product with SIMD lanes. Lanes
// accumulate in float32 within blocks of dot32Block cells; block sums are
// added in float64, which keeps long vectors close to Dot32Generic.
func Dot32Vector(a, b []float32) float64 {
	var ret float64
	for len(a) > 0 {
		n := min(len(a), dot32Block)
		ret += float64(f32.DotProductUnsafe(a[:n], b[:n]))
		a, b = a[n:], b[n:]
	}
	return ret
}
