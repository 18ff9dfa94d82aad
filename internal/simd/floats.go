package simd

var (
	dot64Impl = Dot64Generic
	dot32Impl = Dot32Generic
)

// selectKernels binds the dispatching kernels to the active ISA.
func selectKernels() {
	if activeISA == Generic || !vectorKernels {
		dot64Impl = Dot64Generic
		dot32Impl = Dot32Generic
		return
	}
	dot64Impl = Dot64Vector
	dot32Impl = Dot32Vector
}

// Dot64 calculates the dot product of two float64 vectors using the
// kernel selected for the active ISA.
//
// SAFETY: This function assumes len(a) == len(b).
func Dot64(a, b []float64) float64 {
	return dot64Impl(a, b)
}

// Dot32 calculates the dot product of two float32 vectors using the
// kernel selected for the active ISA.
//
// SAFETY: This function assumes len(a) == len(b).
func Dot32(a, b []float32) float64 {
	return dot32Impl(a, b)
}

// Dot64Generic accumulates a[i]*b[i] strictly left to right.
func Dot64Generic(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Dot32Generic accumulates float32 products in float64, left to right.
func Dot32Generic(a, b []float32) float64 {
	var ret float64
	for i := range a {
		ret += float64(a[i] * b[i])
	}

	return ret
}
