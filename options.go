package tensoreval

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/tensoreval/accel"
)

type options struct {
	strategy         accel.Strategy
	optimize         bool
	maxWorkers       int
	memoryLimit      int64
	evalsPerSecond   float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithStrategy configures the dot product strategy used by optimized
// programs. If nil is passed, accel.Default() is used.
func WithStrategy(s accel.Strategy) Option {
	return func(o *options) {
		if s == nil {
			s = accel.Default()
		}
		o.strategy = s
	}
}

// WithISA selects the strategy for an instruction set. Only the active ISA
// has vector kernels; any other choice falls back to the generic strategy.
func WithISA(isa accel.ISA) Option {
	return func(o *options) {
		o.strategy = accel.ForISA(isa)
	}
}

// WithOptimization enables or disables IR rewrites before compilation.
// Enabled by default.
func WithOptimization(enabled bool) Option {
	return func(o *options) {
		o.optimize = enabled
	}
}

// WithMaxWorkers bounds the documents EvalBatch evaluates concurrently.
// Values <= 0 select GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithMemoryLimit bounds the bytes of result cells one batch may hold.
// A document whose result would exceed the budget fails with
// ErrMemoryLimitExceeded. 0 disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithRateLimit bounds batch evaluations per second. 0 disables the limit.
func WithRateLimit(evalsPerSecond float64) Option {
	return func(o *options) {
		o.evalsPerSecond = evalsPerSecond
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tensoreval.BasicMetricsCollector{}
//	engine := tensoreval.New(tensoreval.WithMetricsCollector(metrics))
//	// ... compile and evaluate ...
//	stats := metrics.GetStats()
//	fmt.Printf("Evals: %d, Avg latency: %dns\n", stats.EvalCount, stats.EvalAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tensoreval.NewJSONLogger(slog.LevelInfo)
//	engine := tensoreval.New(tensoreval.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		optimize:         true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.strategy == nil {
		o.strategy = accel.Default()
	}
	if o.maxWorkers <= 0 {
		o.maxWorkers = runtime.GOMAXPROCS(0)
	}
	return o
}
