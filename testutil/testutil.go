package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/tensoreval/tensor"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [-1, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.FillUniformRange(dst, -1, 1)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Dense returns a tensor of type t with cells uniform in [-1, 1).
func (r *RNG) Dense(t *tensor.Type) *tensor.Dense {
	vals := make([]float64, t.Size())
	r.FillUniform(vals)
	d, err := tensor.FromFloat64(t, vals)
	if err != nil {
		panic(err)
	}
	return d
}

// DenseBatch returns n random tensors of type t.
func (r *RNG) DenseBatch(t *tensor.Type, n int) []*tensor.Dense {
	out := make([]*tensor.Dense, n)
	for i := range out {
		out[i] = r.Dense(t)
	}
	return out
}

// Vector returns a random one-dimensional tensor named x with n cells.
func (r *RNG) Vector(ct tensor.CellType, n uint32) *tensor.Dense {
	return r.Dense(tensor.MustType(ct, tensor.Dimension{Name: "x", Size: n}))
}
