package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot64(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Positive values (size 3)", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Negative values (size 3)", []float64{-1, -2, -3}, []float64{-4, -5, -6}, 32},
		{"Vector of four", []float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}, 70},
		{"Mixed values (size 3)", []float64{1, -2, 3}, []float64{-4, 5, -6}, -32},
		{"Zero values", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Empty", []float64{}, []float64{}, 0},
		{"Positive values (size 9)", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 285},
		{"Positive values (size 16)", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1496},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Dot64Generic(tc.a, tc.b))
			assert.Equal(t, tc.expected, Dot64Vector(tc.a, tc.b))
			assert.Equal(t, tc.expected, Dot64(tc.a, tc.b))
		})
	}
}

func TestDot32(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"Vector of four", []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}, 70},
		{"Mixed values (size 3)", []float32{1, -2, 3}, []float32{-4, 5, -6}, -32},
		{"Empty", []float32{}, []float32{}, 0},
		{"Positive values (size 10)", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 385},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Dot32Generic(tc.a, tc.b))
			assert.Equal(t, tc.expected, Dot32Vector(tc.a, tc.b))
			assert.Equal(t, tc.expected, Dot32(tc.a, tc.b))
		})
	}
}

func TestDotVectorMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 3, 7, 8, 15, 16, 33, 1000, 10000} {
		a64 := make([]float64, n)
		b64 := make([]float64, n)
		a32 := make([]float32, n)
		b32 := make([]float32, n)
		for i := range n {
			a64[i] = rng.Float64()*2 - 1
			b64[i] = rng.Float64()*2 - 1
			a32[i] = float32(a64[i])
			b32[i] = float32(b64[i])
		}

		assert.InDelta(t, Dot64Generic(a64, b64), Dot64Vector(a64, b64), 1e-9, "n=%d", n)
		assert.InDelta(t, Dot32Generic(a32, b32), Dot32Vector(a32, b32), 1e-2, "n=%d", n)
	}
}

func TestDot32VectorCarriesFloat64(t *testing.T) {
	// Once a float32 accumulator holds 1e8, adding 1 rounds away.
	const ones = 1 << 16
	a := make([]float32, ones+1)
	b := make([]float32, ones+1)
	a[0], b[0] = 1e8, 1
	for i := 1; i <= ones; i++ {
		a[i], b[i] = 1, 1
	}

	want := 1e8 + float64(ones)
	assert.Equal(t, want, Dot32Generic(a, b))
	assert.InDelta(t, want, Dot32Vector(a, b), 256)
	assert.InDelta(t, want, Dot32(a, b), 256)
}

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		got, ok := ParseISA(" " + isa.String() + " ")
		assert.True(t, ok)
		assert.Equal(t, isa, got)
	}

	got, ok := ParseISA("mmx")
	assert.False(t, ok)
	assert.Equal(t, Generic, got)
	assert.Equal(t, "unknown", ISA(200).String())
}

func TestActiveISAIsAvailable(t *testing.T) {
	assert.True(t, IsAvailable(ActiveISA()))
	assert.True(t, IsAvailable(Generic))
	assert.False(t, IsAvailable(ISA(200)))
	assert.Contains(t, Available(), Generic)
	assert.Contains(t, Available(), ActiveISA())
}

func TestSelectBestISA(t *testing.T) {
	saved := available
	t.Cleanup(func() { available = saved })

	tests := []struct {
		name         string
		goarch, goos string
		supported    []ISA
		expected     ISA
	}{
		{"amd64 with avx512", "amd64", "linux", []ISA{AVX2, AVX512}, AVX512},
		{"amd64 with avx2", "amd64", "linux", []ISA{AVX2}, AVX2},
		{"amd64 without simd", "amd64", "linux", nil, Generic},
		{"arm64 with sve2", "arm64", "linux", []ISA{NEON, SVE2}, SVE2},
		{"darwin prefers neon", "arm64", "darwin", []ISA{NEON, SVE2}, NEON},
		{"arm64 ignores x86 flags", "arm64", "linux", []ISA{AVX2}, Generic},
		{"other arch", "riscv64", "linux", []ISA{AVX2, NEON}, Generic},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			available = [numISA]bool{Generic: true}
			for _, isa := range tc.supported {
				available[isa] = true
			}
			assert.Equal(t, tc.expected, selectBestISA(tc.goarch, tc.goos))
		})
	}
}
