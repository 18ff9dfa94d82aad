package eval

import (
	"strconv"

	"github.com/hupe1980/tensoreval/tensor"
)

// Value is anything that can sit on the operand stack.
// *tensor.Dense and *tensor.View implement it.
type Value interface {
	Type() *tensor.Type
	AsDouble() float64
}

// Double is a scalar value without a cell buffer.
type Double float64

// Type returns the double type.
func (Double) Type() *tensor.Type { return tensor.DoubleType() }

// AsDouble returns d.
func (d Double) AsDouble() float64 { return float64(d) }

func (d Double) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

var (
	_ Value = Double(0)
	_ Value = (*tensor.Dense)(nil)
	_ Value = (*tensor.View)(nil)
)

// AsView returns v as a tensor view. Doubles become one-cell scalar views.
func AsView(v Value) *tensor.View {
	switch x := v.(type) {
	case *tensor.View:
		return x
	case *tensor.Dense:
		return &x.View
	case Double:
		return tensor.NewView(tensor.DoubleType(), tensor.Float64Cells([]float64{float64(x)}))
	default:
		panic(&tensor.ConsistencyError{Op: "as view", Expected: "tensor value", Actual: v.Type().String()})
	}
}
