package colstore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/colstore/model"
)

func TestAggKindString(t *testing.T) {
	assert.Equal(t, "count", AggCount.String())
	assert.Equal(t, "average", AggAverage.String())
	assert.Equal(t, "sum", AggSum.String())
	assert.Equal(t, "min", AggMin.String())
	assert.Equal(t, "max", AggMax.String())
	assert.Equal(t, "unknown", AggKind(0).String())
	assert.Nil(t, AggKind(42).newAccumulator())
}

func TestAccumulators(t *testing.T) {
	feed := func(k AggKind, vs ...model.Value) model.Value {
		acc := k.newAccumulator()
		for _, v := range vs {
			acc.add(v)
		}
		return acc.result()
	}

	tests := []struct {
		name string
		kind AggKind
		in   []model.Value
		want model.Value
	}{
		{"count skips null", AggCount, []model.Value{model.Int(1), model.Null(), model.Text("a")}, model.Int(2)},
		{"count empty", AggCount, nil, model.Int(0)},
		{"average", AggAverage, []model.Value{model.Int(300), model.Int(130), model.Null()}, model.Int(215)},
		{"average empty", AggAverage, []model.Value{model.Null()}, model.Int(0)},
		{"average truncates toward zero", AggAverage, []model.Value{model.Int(-3), model.Int(-4)}, model.Int(-3)},
		{"average ignores text", AggAverage, []model.Value{model.Text("x"), model.Int(4)}, model.Int(4)},
		{"sum", AggSum, []model.Value{model.Int(1), model.Int(-5), model.Null()}, model.Int(-4)},
		{"sum saturates low", AggSum, []model.Value{model.Int(math.MinInt32), model.Int(-1)}, model.Int(math.MinInt32)},
		{"min", AggMin, []model.Value{model.Int(3), model.Int(-2), model.Int(7)}, model.Int(-2)},
		{"max", AggMax, []model.Value{model.Int(3), model.Int(-2), model.Int(7)}, model.Int(7)},
		{"min empty", AggMin, []model.Value{model.Null()}, model.Null()},
		{"max empty", AggMax, nil, model.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, feed(tt.kind, tt.in...))
		})
	}
}

func TestAggConstructors(t *testing.T) {
	assert.Equal(t, Agg{Column: "a", Kind: AggCount}, Count("a"))
	assert.Equal(t, Agg{Column: "a", Kind: AggAverage}, Average("a"))
	assert.Equal(t, Agg{Column: "a", Kind: AggSum}, Sum("a"))
	assert.Equal(t, Agg{Column: "a", Kind: AggMin}, Min("a"))
	assert.Equal(t, Agg{Column: "a", Kind: AggMax}, Max("a"))
}
