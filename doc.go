// Package tensoreval evaluates dense tensor expressions for ranking.
//
// Expressions are built as IR graphs (package ir) over typed dense tensors
// (package tensor), compiled once into a Program, and evaluated many times,
// typically once per candidate document.
//
// # Quick Start
//
//	vec := tensor.MustType(tensor.Float64, tensor.Dimension{Name: "x", Size: 128})
//
//	a := ir.NewArena()
//	mul, _ := a.Join(a.Param(0, vec), a.Param(1, vec), operation.Mul)
//	score, _ := a.Reduce(mul, operation.Sum)
//
//	engine := tensoreval.New()
//	prog, _ := engine.Compile(ctx, a, score)
//	v, _ := prog.Eval(query, document)
//	fmt.Println(v.AsDouble())
//
// # Optimization
//
// Before compiling, the engine rewrites reduce(sum, join(mul, a, b)) over
// two identically typed double vectors into a single dot product node that
// runs on the configured accel.Strategy. Programs compiled with
// WithOptimization(false) give the same results up to summation order.
//
// # Batch Evaluation
//
//	results, err := engine.EvalBatch(ctx, prog, docs)
//
// Documents are evaluated in parallel, bounded by WithMaxWorkers, and
// optionally by WithRateLimit and WithMemoryLimit. EvalBatch stops at the
// first failing document; EvalBatchPartial records failures and continues.
//
// # Errors
//
// Problems found at the API boundary are returned as errors: invalid types
// (*tensor.TypeError), cell buffers of the wrong size (*tensor.ShapeError),
// uncompilable expressions (*ErrInvalidExpression), and wrong parameters
// (ErrInvalidParamCount, *ErrParamType). A violated internal contract panics
// with *tensor.ConsistencyError.
//
// # Key Features
//
//   - float32 and float64 cells with per-call type dispatch
//   - SIMD dot products (AVX-512/AVX2/NEON/SVE2), TENSOREVAL_SIMD=generic to disable
//   - Structured logging via log/slog and pluggable metrics
package tensoreval
