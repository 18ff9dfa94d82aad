package tensoreval

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsDefaults(t *testing.T) {
	o := applyOptions(nil)

	assert.True(t, o.optimize)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.maxWorkers)
	assert.Zero(t, o.memoryLimit)
	assert.Zero(t, o.evalsPerSecond)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
	assert.NotNil(t, o.strategy)
}

func TestApplyOptions(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	o := applyOptions([]Option{
		WithOptimization(false),
		WithMaxWorkers(3),
		WithMemoryLimit(1 << 20),
		WithRateLimit(100),
		WithMetricsCollector(metrics),
		WithLogLevel(slog.LevelDebug),
		nil,
	})

	assert.False(t, o.optimize)
	assert.Equal(t, 3, o.maxWorkers)
	assert.Equal(t, int64(1<<20), o.memoryLimit)
	assert.InDelta(t, 100.0, o.evalsPerSecond, 0)
	assert.Same(t, metrics, o.metricsCollector)
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestNilOptionsFallBack(t *testing.T) {
	o := applyOptions([]Option{WithMetricsCollector(nil), WithLogger(nil), WithMaxWorkers(-1)})

	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.maxWorkers)
}

func TestEngineWiresResourceLimits(t *testing.T) {
	e := New(WithMaxWorkers(2), WithMemoryLimit(128))
	assert.Equal(t, int64(2), e.rc.MaxWorkers())
	assert.Nil(t, New(WithOptimization(false)).optimizer)
	assert.NotNil(t, New().optimizer)
}
