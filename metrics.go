package tensoreval

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCompile is called after each compile, err is nil if successful.
	RecordCompile(duration time.Duration, err error)

	// RecordOptimize is called after each optimizer run with the number of
	// rewrites it applied.
	RecordOptimize(rewrites int, duration time.Duration)

	// RecordEval is called after each program evaluation.
	RecordEval(duration time.Duration, err error)

	// RecordBatch is called after each batch evaluation.
	// count is the number of documents, failed the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompile(time.Duration, error)  {}
func (NoopMetricsCollector) RecordOptimize(int, time.Duration)   {}
func (NoopMetricsCollector) RecordEval(time.Duration, error)     {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	CompileCount    atomic.Int64
	CompileErrors   atomic.Int64
	OptimizeCount   atomic.Int64
	Rewrites        atomic.Int64
	EvalCount       atomic.Int64
	EvalErrors      atomic.Int64
	EvalTotalNanos  atomic.Int64
	BatchCount      atomic.Int64
	BatchDocuments  atomic.Int64
	BatchFailed     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordCompile implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompile(_ time.Duration, err error) {
	b.CompileCount.Add(1)
	if err != nil {
		b.CompileErrors.Add(1)
	}
}

// RecordOptimize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOptimize(rewrites int, _ time.Duration) {
	b.OptimizeCount.Add(1)
	b.Rewrites.Add(int64(rewrites))
}

// RecordEval implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEval(duration time.Duration, err error) {
	b.EvalCount.Add(1)
	b.EvalTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvalErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchDocuments.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CompileCount:   b.CompileCount.Load(),
		CompileErrors:  b.CompileErrors.Load(),
		OptimizeCount:  b.OptimizeCount.Load(),
		Rewrites:       b.Rewrites.Load(),
		EvalCount:      b.EvalCount.Load(),
		EvalErrors:     b.EvalErrors.Load(),
		EvalAvgNanos:   avg(b.EvalTotalNanos.Load(), b.EvalCount.Load()),
		BatchCount:     b.BatchCount.Load(),
		BatchDocuments: b.BatchDocuments.Load(),
		BatchFailed:    b.BatchFailed.Load(),
		BatchAvgNanos:  avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CompileCount   int64
	CompileErrors  int64
	OptimizeCount  int64
	Rewrites       int64
	EvalCount      int64
	EvalErrors     int64
	EvalAvgNanos   int64
	BatchCount     int64
	BatchDocuments int64
	BatchFailed    int64
	BatchAvgNanos  int64
}
