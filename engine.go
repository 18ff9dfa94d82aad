package tensoreval

import (
	"context"
	"time"

	"github.com/hupe1980/tensoreval/accel"
	"github.com/hupe1980/tensoreval/internal/resource"
	"github.com/hupe1980/tensoreval/interp"
	"github.com/hupe1980/tensoreval/ir"
	"github.com/hupe1980/tensoreval/optimize"
)

// Engine compiles tensor expressions into programs and evaluates them.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	opts      options
	optimizer *optimize.Optimizer
	rc        *resource.Controller
}

// New creates an engine.
func New(optFns ...Option) *Engine {
	o := applyOptions(optFns)

	e := &Engine{
		opts: o,
		rc: resource.NewController(resource.Config{
			MaxWorkers:       int64(o.maxWorkers),
			MemoryLimitBytes: o.memoryLimit,
			EvalsPerSecond:   o.evalsPerSecond,
		}),
	}
	if o.optimize {
		e.optimizer = optimize.New(optimize.DotProductRule(o.strategy))
	}

	o.logger.Debug("engine created",
		"strategy", o.strategy.Name(),
		"isa", accel.ActiveISA().String(),
		"available_isas", accel.Available(),
		"optimize", o.optimize,
		"max_workers", o.maxWorkers,
	)
	return e
}

// Strategy returns the dot product strategy optimized programs use.
func (e *Engine) Strategy() accel.Strategy {
	return e.opts.strategy
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger {
	return e.opts.logger
}

// Compile optimizes the expression rooted at root and compiles it.
// Optimization may add nodes to a; the arena can be reset once Compile
// returns.
func (e *Engine) Compile(ctx context.Context, a *ir.Arena, root ir.NodeRef) (*Program, error) {
	start := time.Now()
	log := e.opts.logger.WithNodes(a.Len())

	if e.optimizer != nil && a.Get(root) != nil {
		res := e.optimizer.Run(a, root)
		root = res.Root
		e.opts.metricsCollector.RecordOptimize(res.Rewrites, time.Since(start))
		log.LogOptimize(ctx, e.opts.strategy.Name(), res.Rewrites, res.Visited)
	}

	fn, err := interp.Compile(a, root)
	err = translateError(root, err)
	e.opts.metricsCollector.RecordCompile(time.Since(start), err)
	if err != nil {
		log.LogCompile(ctx, "", 0, err)
		return nil, err
	}

	p := newProgram(fn, ir.Dump(a, root), e.opts.metricsCollector)
	log.LogCompile(ctx, p.ResultType().String(), p.Size(), nil)
	return p, nil
}
