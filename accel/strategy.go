package accel

import (
	"sync"

	"github.com/hupe1980/tensoreval/internal/simd"
)

// Strategy computes dot products over kind-matched cell buffers.
// Both slices must have the same length; callers slice to the common length.
type Strategy interface {
	Name() string
	DotProduct64(a, b []float64) float64
	DotProduct32(a, b []float32) float64
}

// ISA identifies an instruction set the strategy can target.
type ISA = simd.ISA

// Supported instruction sets.
const (
	ISAGeneric = simd.Generic
	ISANEON    = simd.NEON
	ISASVE2    = simd.SVE2
	ISAAVX2    = simd.AVX2
	ISAAVX512  = simd.AVX512
)

// Generic accumulates products sequentially, left to right.
type Generic struct{}

// Name implements Strategy.
func (Generic) Name() string { return "generic" }

// DotProduct64 implements Strategy.
func (Generic) DotProduct64(a, b []float64) float64 { return simd.Dot64Generic(a, b) }

// DotProduct32 implements Strategy.
func (Generic) DotProduct32(a, b []float32) float64 { return simd.Dot32Generic(a, b) }

// Vectorized uses the SIMD kernels bound to the active ISA. Partial sums
// are kept per lane, so results may differ from Generic within rounding.
// float32 lanes are summed in float32 over short blocks only.
type Vectorized struct{}

// Name implements Strategy.
func (Vectorized) Name() string { return "vectorized(" + simd.ActiveISA().String() + ")" }

// DotProduct64 implements Strategy.
func (Vectorized) DotProduct64(a, b []float64) float64 { return simd.Dot64(a, b) }

// DotProduct32 implements Strategy.
func (Vectorized) DotProduct32(a, b []float32) float64 { return simd.Dot32(a, b) }

var (
	_ Strategy = Generic{}
	_ Strategy = Vectorized{}
)

// ForISA returns the strategy for isa. Vector kernels are bound to the
// active ISA only, so any other instruction set, available or not, gets
// Generic.
func ForISA(isa ISA) Strategy {
	if isa == ISAGeneric || isa != simd.ActiveISA() {
		return Generic{}
	}
	return Vectorized{}
}

// ParseISA parses an instruction set name such as "avx2" or "generic".
func ParseISA(s string) (ISA, bool) {
	return simd.ParseISA(s)
}

var (
	defaultOnce     sync.Once
	defaultStrategy Strategy
)

// Default returns the strategy for the active ISA. It is resolved once.
func Default() Strategy {
	defaultOnce.Do(func() {
		defaultStrategy = ForISA(simd.ActiveISA())
	})
	return defaultStrategy
}

// Available lists the instruction sets the CPU supports.
func Available() []ISA {
	return simd.Available()
}

// ActiveISA returns the instruction set chosen at startup.
func ActiveISA() ISA {
	return simd.ActiveISA()
}
