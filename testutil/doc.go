// Package testutil provides testing utilities for tensoreval.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float64, 128)
//	rng.FillUniform(vals)               // uniform [-1, 1)
//	d := rng.Dense(typ)                 // random dense tensor of any type
//	docs := rng.DenseBatch(typ, 1000)   // many tensors sharing one type
package testutil
