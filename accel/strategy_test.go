package accel

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strategies() []Strategy {
	return []Strategy{Generic{}, Vectorized{}, Default()}
}

func TestDotProduct(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			assert.Equal(t, 70.0, s.DotProduct64([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}))
			assert.Equal(t, 70.0, s.DotProduct32([]float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}))
			assert.Equal(t, 0.0, s.DotProduct64(nil, nil))
			assert.Equal(t, 0.0, s.DotProduct32(nil, nil))
		})
	}
}

func TestVectorizedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{1, 3, 7, 8, 15, 16, 17, 31, 64, 100, 1000, 10000} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.Float64()*2 - 1
			b[i] = rng.Float64()*2 - 1
		}

		want := Generic{}.DotProduct64(a, b)
		got := Vectorized{}.DotProduct64(a, b)
		assert.InDelta(t, want, got, 1e-9*math.Max(1, float64(n)), "n=%d", n)
	}
}

func TestForISA(t *testing.T) {
	active := ActiveISA()
	for _, isa := range []ISA{ISAGeneric, ISANEON, ISASVE2, ISAAVX2, ISAAVX512} {
		t.Run(isa.String(), func(t *testing.T) {
			s := ForISA(isa)
			if isa != ISAGeneric && isa == active {
				assert.IsType(t, Vectorized{}, s)
				assert.Equal(t, "vectorized("+isa.String()+")", s.Name())
				return
			}
			assert.Equal(t, Generic{}, s)
		})
	}
}

func TestAvailable(t *testing.T) {
	isas := Available()
	assert.Contains(t, isas, ISAGeneric)
	assert.Contains(t, isas, ActiveISA())
}

func TestDefaultIsStable(t *testing.T) {
	require.NotNil(t, Default())
	assert.Equal(t, Default(), Default())
}

func TestParseISA(t *testing.T) {
	isa, ok := ParseISA("generic")
	require.True(t, ok)
	assert.Equal(t, ISAGeneric, isa)

	_, ok = ParseISA("mmx")
	assert.False(t, ok)
}
