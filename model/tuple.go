package model

import (
	"slices"
	"strings"
)

// Tuple is one materialized row: an ordered sequence of Values.
type Tuple []Value

// Values builds a Tuple from plain Go values using ValueOf.
//
//	row := model.Values(1, "apple", nil, 300)
func Values(vs ...any) Tuple {
	t := make(Tuple, len(vs))
	for i, v := range vs {
		t[i] = ValueOf(v)
	}
	return t
}

// Compare orders tuples lexicographically using Compare on each field.
// A shorter tuple that is a prefix of a longer one sorts first.
func (t Tuple) Compare(other Tuple) int {
	for i := 0; i < len(t) && i < len(other); i++ {
		if c := Compare(t[i], other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(t) < len(other):
		return -1
	case len(t) > len(other):
		return 1
	default:
		return 0
	}
}

// String renders the tuple as "(v1, v2, ...)".
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Tuples is a materialized result set.
type Tuples []Tuple

// Sort orders the rows in place by Tuple.Compare.
func (ts Tuples) Sort() {
	slices.SortFunc(ts, Tuple.Compare)
}

// Column returns the values of column col across all rows.
// Rows shorter than col+1 contribute nothing.
func (ts Tuples) Column(col ColumnID) []Value {
	out := make([]Value, 0, len(ts))
	for _, t := range ts {
		if int(col) < len(t) {
			out = append(out, t[col])
		}
	}
	return out
}
