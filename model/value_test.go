package model

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k        Kind
		expected string
	}{
		{KindNull, "Null"},
		{KindInt, "Integer"},
		{KindText, "Text"},
		{KindInvalid, "Invalid"},
		{Kind(99), "Invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.k.String())
	}
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(42).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int32(42), i)

	_, ok = Int(42).AsText()
	assert.False(t, ok)

	s, ok := Text("abc").AsText()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)

	_, ok = Null().AsInt()
	assert.False(t, ok)
	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "-7", Int(-7).String())
	assert.Equal(t, "apple", Text("apple").String())
	assert.Equal(t, "invalid", Value{}.String())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"string", "x", Text("x")},
		{"int", 3, Int(3)},
		{"int32", int32(4), Int(4)},
		{"int64", int64(5), Int(5)},
		{"value", Text("y"), Text("y")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ValueOf(tt.in)))
		})
	}

	assert.Equal(t, KindInvalid, ValueOf(1.5).Kind())
	assert.Equal(t, KindInvalid, ValueOf(int64(math.MaxInt32)+1).Kind())
	assert.Equal(t, KindInvalid, ValueOf(int64(math.MinInt32)-1).Kind())
	assert.Equal(t, KindInt, ValueOf(int64(math.MinInt32)).Kind())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"text before int", Text("z"), Int(-100), -1},
		{"int before null", Int(100), Null(), -1},
		{"text before null", Text(""), Null(), -1},
		{"null equals null", Null(), Null(), 0},
		{"int payload", Int(1), Int(2), -1},
		{"text payload", Text("b"), Text("a"), 1},
		{"equal text", Text("a"), Text("a"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestNullIsDistinct(t *testing.T) {
	assert.False(t, Null().Equal(Int(0)))
	assert.False(t, Null().Equal(Text("")))
	assert.False(t, Null().Equal(Text("null")))
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(Values("a", 1, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["a",1,null]`, string(data))

	var back Tuple
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 0, back.Compare(Values("a", 1, nil)))

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
	assert.Error(t, json.Unmarshal([]byte(`4294967296`), &v))
	require.NoError(t, json.Unmarshal([]byte(`-2147483648`), &v))
	assert.Equal(t, Int(math.MinInt32), v)

	_, err = json.Marshal(Value{})
	assert.Error(t, err)
}

func TestTuplesSort(t *testing.T) {
	rows := Tuples{
		Values(2, 1),
		Values(nil, 1),
		Values(1, 3),
		Values(1, 2),
	}
	rows.Sort()

	assert.Equal(t, Tuples{
		Values(1, 2),
		Values(1, 3),
		Values(2, 1),
		Values(nil, 1),
	}, rows)
	assert.Equal(t, []Value{Int(1), Int(1), Int(2), Null()}, rows.Column(0))
}

func TestTupleString(t *testing.T) {
	assert.Equal(t, "(1, a, null)", Values(1, "a", nil).String())
}

func TestSpan(t *testing.T) {
	s := Span{Start: -2, End: 10}.Clip(5)
	assert.Equal(t, Span{Start: 0, End: 5}, s)
	assert.Equal(t, 5, s.Len())
	assert.True(t, Span{Start: 4, End: 4}.Empty())
	assert.True(t, Span{Start: 6, End: 2}.Empty())
	assert.Equal(t, "[1,3)", Span{Start: 1, End: 3}.String())
}
