package tensoreval

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/internal/resource"
)

// ErrMemoryLimitExceeded is returned for documents whose result does not fit
// the batch memory budget configured with WithMemoryLimit.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

// EvalBatch evaluates p once per document, in parallel, and returns the
// results in document order. The first failing document cancels the rest
// and its error, wrapped in *ErrDocument, is returned.
func (e *Engine) EvalBatch(ctx context.Context, p *Program, docs [][]eval.Value) ([]eval.Value, error) {
	if p == nil {
		return nil, ErrNilProgram
	}
	start := time.Now()
	results := make([]eval.Value, len(docs))
	var failed atomic.Int64

	err := e.runBatch(ctx, p, docs, func(i int, v eval.Value, err error) error {
		if err != nil {
			failed.Add(1)
			return &ErrDocument{Index: i, cause: err}
		}
		results[i] = v
		return nil
	})

	e.finishBatch(ctx, len(docs), int(failed.Load()), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// BatchResult holds the outcome of EvalBatchPartial.
type BatchResult struct {
	// Values holds the result of every successful document; failed
	// documents have a nil entry.
	Values []eval.Value
	// Failed holds the indexes of failed documents.
	Failed *roaring.Bitmap

	errs map[uint32]error
}

// Err returns the error of document i, or nil if it succeeded.
func (r *BatchResult) Err(i int) error {
	return r.errs[uint32(i)] //nolint:gosec // document indexes fit uint32
}

// EvalBatchPartial is like EvalBatch but keeps going when documents fail.
// Only context cancellation aborts the batch.
func (e *Engine) EvalBatchPartial(ctx context.Context, p *Program, docs [][]eval.Value) (*BatchResult, error) {
	if p == nil {
		return nil, ErrNilProgram
	}
	start := time.Now()
	res := &BatchResult{
		Values: make([]eval.Value, len(docs)),
		Failed: roaring.New(),
		errs:   make(map[uint32]error),
	}
	var mu sync.Mutex

	err := e.runBatch(ctx, p, docs, func(i int, v eval.Value, err error) error {
		if err == nil {
			res.Values[i] = v
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		idx := uint32(i) //nolint:gosec // document indexes fit uint32
		res.Failed.Add(idx)
		res.errs[idx] = &ErrDocument{Index: i, cause: err}
		return nil
	})

	e.finishBatch(ctx, len(docs), int(res.Failed.GetCardinality()), time.Since(start), err) //nolint:gosec // bounded by len(docs)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// runBatch schedules one evaluation per document under the resource
// controller and reports each outcome to done. A non-nil error from done
// cancels the remaining documents.
func (e *Engine) runBatch(ctx context.Context, p *Program, docs [][]eval.Value, done func(i int, v eval.Value, err error) error) error {
	g, gctx := errgroup.WithContext(ctx)

	bytes := resultBytes(p)
	var reserved atomic.Int64
	defer func() { e.rc.ReleaseMemory(reserved.Load()) }()

	var scheduleErr error
	for i, params := range docs {
		if err := e.rc.AcquireWorker(gctx); err != nil {
			scheduleErr = err
			break
		}
		g.Go(func() error {
			defer e.rc.ReleaseWorker()

			if err := e.rc.Admit(gctx); err != nil {
				return err
			}
			if err := e.rc.AcquireMemory(bytes); err != nil {
				return done(i, nil, err)
			}
			reserved.Add(bytes)

			v, err := p.Eval(params...)
			return done(i, v, err)
		})
	}

	err := g.Wait()
	if err == nil {
		err = scheduleErr
	}
	return err
}

func (e *Engine) finishBatch(ctx context.Context, count, failed int, d time.Duration, err error) {
	e.opts.metricsCollector.RecordBatch(count, failed, d)
	e.opts.logger.LogBatch(ctx, count, failed, d, err)
}

// resultBytes estimates the cell bytes of one result.
func resultBytes(p *Program) int64 {
	t := p.ResultType()
	return int64(t.Size() * t.CellType().Size())
}
