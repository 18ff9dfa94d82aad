// Package resource governs how much work a batch evaluation may run at once.
//
// The Controller combines three limits:
//
//   - Workers: a weighted semaphore bounding concurrent evaluations.
//   - Memory: a fail-fast budget for result cells held by a batch.
//   - Rate: a token bucket bounding evaluations per second.
//
// A zero limit disables that dimension. All methods are safe for concurrent
// use, and all methods on a nil *Controller are no-ops.
package resource
