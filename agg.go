package colstore

import (
	"math"

	"github.com/hupe1980/colstore/model"
)

// AggKind identifies an aggregate function.
type AggKind uint8

const (
	// AggCount counts non-null values.
	AggCount AggKind = iota + 1
	// AggAverage averages integer values, truncating toward zero.
	AggAverage
	// AggSum sums integer values.
	AggSum
	// AggMin keeps the smallest integer value.
	AggMin
	// AggMax keeps the largest integer value.
	AggMax
)

// String returns the output column name used for the aggregate.
func (k AggKind) String() string {
	switch k {
	case AggCount:
		return "count"
	case AggAverage:
		return "average"
	case AggSum:
		return "sum"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return "unknown"
	}
}

// Agg names a source column and the aggregate to compute over it.
type Agg struct {
	Column string
	Kind   AggKind
}

// Count counts the non-null values of col per group.
func Count(col string) Agg { return Agg{Column: col, Kind: AggCount} }

// Average averages the integer values of col per group. Groups without any
// integer value average to 0.
func Average(col string) Agg { return Agg{Column: col, Kind: AggAverage} }

// Sum sums the integer values of col per group, saturating at the int32
// bounds.
func Sum(col string) Agg { return Agg{Column: col, Kind: AggSum} }

// Min keeps the smallest integer value of col per group, or null.
func Min(col string) Agg { return Agg{Column: col, Kind: AggMin} }

// Max keeps the largest integer value of col per group, or null.
func Max(col string) Agg { return Agg{Column: col, Kind: AggMax} }

// accumulator folds the values of one group for one aggregate.
type accumulator interface {
	add(v model.Value)
	result() model.Value
}

func (k AggKind) newAccumulator() accumulator {
	switch k {
	case AggCount:
		return &countAcc{}
	case AggAverage:
		return &averageAcc{}
	case AggSum:
		return &sumAcc{}
	case AggMin:
		return &extremeAcc{less: func(a, b int32) bool { return a < b }}
	case AggMax:
		return &extremeAcc{less: func(a, b int32) bool { return a > b }}
	default:
		return nil
	}
}

type countAcc struct {
	n int64
}

func (a *countAcc) add(v model.Value) {
	if !v.IsNull() {
		a.n++
	}
}

func (a *countAcc) result() model.Value { return model.Int(saturate(a.n)) }

type averageAcc struct {
	sum int64
	n   int64
}

func (a *averageAcc) add(v model.Value) {
	if i, ok := v.AsInt(); ok {
		a.sum += int64(i)
		a.n++
	}
}

func (a *averageAcc) result() model.Value {
	if a.n == 0 {
		return model.Int(0)
	}
	return model.Int(saturate(a.sum / a.n))
}

type sumAcc struct {
	sum int64
}

func (a *sumAcc) add(v model.Value) {
	if i, ok := v.AsInt(); ok {
		a.sum += int64(i)
	}
}

func (a *sumAcc) result() model.Value { return model.Int(saturate(a.sum)) }

type extremeAcc struct {
	less func(a, b int32) bool
	best int32
	seen bool
}

func (a *extremeAcc) add(v model.Value) {
	i, ok := v.AsInt()
	if !ok {
		return
	}
	if !a.seen || a.less(i, a.best) {
		a.best = i
		a.seen = true
	}
}

func (a *extremeAcc) result() model.Value {
	if !a.seen {
		return model.Null()
	}
	return model.Int(a.best)
}

func saturate(n int64) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int32(n)
	}
}
