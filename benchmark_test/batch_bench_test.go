package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/tensoreval"
	"github.com/hupe1980/tensoreval/testutil"
)

func BenchmarkEvalBatch(b *testing.B) {
	const dim = 128
	batchSizes := []int{10, 100, 1000}
	workers := []int{1, 4, 0}

	for _, size := range batchSizes {
		for _, w := range workers {
			name := fmt.Sprintf("Docs%d/Workers%d", size, w)
			if w == 0 {
				name = fmt.Sprintf("Docs%d/WorkersDefault", size)
			}
			b.Run(name, func(b *testing.B) {
				var opts []tensoreval.Option
				if w > 0 {
					opts = append(opts, tensoreval.WithMaxWorkers(w))
				}
				e := tensoreval.New(opts...)
				t := vecType(cellTypes[0], dim)
				p := compileDot(b, e, t)
				batch := docs(testutil.NewRNG(42), t, size)

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := e.EvalBatch(b.Context(), p, batch); err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(size*b.N)/b.Elapsed().Seconds(), "docs/s")
			})
		}
	}
}

// Sequential is the baseline for BenchmarkEvalBatch.
func BenchmarkEvalSequential(b *testing.B) {
	const dim, size = 128, 1000

	e := tensoreval.New()
	t := vecType(cellTypes[0], dim)
	p := compileDot(b, e, t)
	batch := docs(testutil.NewRNG(42), t, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, d := range batch {
			if _, err := p.Eval(d...); err != nil {
				b.Fatal(err)
			}
		}
	}
	b.ReportMetric(float64(size*b.N)/b.Elapsed().Seconds(), "docs/s")
}
