package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the
// memory budget.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MaxWorkers bounds concurrent evaluations. If 0, defaults to 1.
	MaxWorkers int64

	// MemoryLimitBytes bounds the bytes of result cells held at once.
	// If 0, usage is only tracked.
	MemoryLimitBytes int64

	// EvalsPerSecond bounds the evaluation rate. If 0, unlimited.
	EvalsPerSecond float64
}

// Controller enforces a Config.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a controller for cfg.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.EvalsPerSecond > 0 {
		burst := max(1, int(cfg.EvalsPerSecond))
		c.limiter = rate.NewLimiter(rate.Limit(cfg.EvalsPerSecond), burst)
	}

	return c
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 1
	}
	return c.cfg.MaxWorkers
}

// AcquireWorker reserves a worker slot, blocking until one is free or ctx
// is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	return c.workers.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workers.TryAcquire(1)
}

// ReleaseWorker returns a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// Admit waits until the rate limit allows one more evaluation.
func (c *Controller) Admit(ctx context.Context) error {
	if c == nil || c.limiter == nil {
		return ctx.Err()
	}
	return c.limiter.Wait(ctx)
}

// AcquireMemory reserves bytes. It does not block: if the budget would be
// exceeded it returns ErrMemoryLimitExceeded and the caller decides what
// to do.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory returns bytes reserved with AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}
