// Package accel selects the dot product implementation used by accelerated
// IR nodes.
//
// A Strategy holds no mutable state. The process-wide default is chosen once
// from the detected CPU features (see Default) and passed down explicitly;
// nothing in the evaluation core looks it up globally.
//
// Set TENSOREVAL_SIMD=generic to force the scalar strategy.
package accel
