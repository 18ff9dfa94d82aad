package operation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownAggr is returned for an aggregator outside the known set.
var ErrUnknownAggr = errors.New("unknown aggregator")

// Aggr identifies a reduce aggregator.
type Aggr uint8

const (
	// Sum adds the cells.
	Sum Aggr = iota
	// Prod multiplies the cells.
	Prod
	// Maximum keeps the largest cell.
	Maximum
	// Minimum keeps the smallest cell.
	Minimum
	// Avg is the arithmetic mean.
	Avg
	// Count is the number of cells.
	Count
)

// Valid reports whether a is one of the known aggregators.
func (a Aggr) Valid() bool { return a <= Count }

func (a Aggr) String() string {
	switch a {
	case Sum:
		return "sum"
	case Prod:
		return "prod"
	case Maximum:
		return "max"
	case Minimum:
		return "min"
	case Avg:
		return "avg"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// ParseAggr parses an aggregator name.
func ParseAggr(s string) (Aggr, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum":
		return Sum, nil
	case "prod":
		return Prod, nil
	case "max":
		return Maximum, nil
	case "min":
		return Minimum, nil
	case "avg":
		return Avg, nil
	case "count":
		return Count, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownAggr, s)
	}
}

// Op2 returns the binary fold function equivalent to the aggregator.
// Avg and Count have no fold form.
func (a Aggr) Op2() (*Op2, bool) {
	switch a {
	case Sum:
		return Add, true
	case Prod:
		return Mul, true
	case Maximum:
		return Max, true
	case Minimum:
		return Min, true
	default:
		return nil, false
	}
}

// Aggregator accumulates values one at a time.
// First must be called before Next; Result is valid after First.
type Aggregator struct {
	kind  Aggr
	value float64
	count int
}

// NewAggregator returns a fresh aggregator for a.
func NewAggregator(a Aggr) *Aggregator {
	return &Aggregator{kind: a}
}

// First resets the aggregator to a single value.
func (g *Aggregator) First(v float64) {
	g.value = v
	g.count = 1
}

// Next folds one more value.
func (g *Aggregator) Next(v float64) {
	g.count++
	switch g.kind {
	case Sum, Avg:
		g.value += v
	case Prod:
		g.value *= v
	case Maximum:
		g.value = math.Max(g.value, v)
	case Minimum:
		g.value = math.Min(g.value, v)
	}
}

// Result returns the aggregated value.
func (g *Aggregator) Result() float64 {
	switch g.kind {
	case Avg:
		return g.value / float64(g.count)
	case Count:
		return float64(g.count)
	default:
		return g.value
	}
}
