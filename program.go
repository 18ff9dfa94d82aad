package tensoreval

import (
	"sync"
	"time"

	"github.com/hupe1980/tensoreval/eval"
	"github.com/hupe1980/tensoreval/interp"
	"github.com/hupe1980/tensoreval/tensor"
)

// Program is a compiled expression. It is safe for concurrent use.
type Program struct {
	fn       *interp.Function
	plan     string
	metrics  MetricsCollector
	contexts sync.Pool
}

func newProgram(fn *interp.Function, plan string, metrics MetricsCollector) *Program {
	p := &Program{fn: fn, plan: plan, metrics: metrics}
	p.contexts.New = func() any { return interp.NewContext(fn) }
	return p
}

// Eval evaluates the program. params must match the declared parameter
// types; a Dense or View result may share cells with params.
func (p *Program) Eval(params ...eval.Value) (eval.Value, error) {
	if p == nil {
		return nil, ErrNilProgram
	}
	start := time.Now()

	ctx := p.contexts.Get().(*interp.Context)
	res, err := p.fn.Eval(ctx, params...)
	p.contexts.Put(ctx)

	p.metrics.RecordEval(time.Since(start), err)
	return res, err
}

// NumParams returns the number of parameters Eval expects.
func (p *Program) NumParams() int { return p.fn.NumParams() }

// ParamType returns the declared type of parameter i, or nil if unused.
func (p *Program) ParamType(i int) *tensor.Type { return p.fn.ParamType(i) }

// ResultType returns the static result type.
func (p *Program) ResultType() *tensor.Type { return p.fn.ResultType() }

// Size returns the number of instructions.
func (p *Program) Size() int { return p.fn.Size() }

// Plan returns the optimized expression tree the program was compiled from.
func (p *Program) Plan() string { return p.plan }
