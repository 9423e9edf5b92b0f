package colstore

import (
	"github.com/hupe1980/colstore/model"
)

// The operators below are available on every relation of this package so
// that queries read left to right:
//
//	rows, ok := shohin.LessThan("price", model.Int(200)).Select("name", "price").Fetch(0, 10)

// Select projects onto the named columns; see Select.
func (t *Table) Select(names ...string) *SelectedRelation { return Select(t, names...) }

// LessThan keeps rows whose col value is < v; see LessThan.
func (t *Table) LessThan(col string, v model.Value) *FilteredRelation { return LessThan(t, col, v) }

// EqualTo keeps rows whose col value equals v; see EqualTo.
func (t *Table) EqualTo(col string, v model.Value) *FilteredRelation { return EqualTo(t, col, v) }

// GreaterEqual keeps rows whose col value is >= v; see GreaterEqual.
func (t *Table) GreaterEqual(col string, v model.Value) *FilteredRelation {
	return GreaterEqual(t, col, v)
}

// Between keeps rows whose col value lies in [lo, hi); see Between.
func (t *Table) Between(col string, lo, hi model.Value) *FilteredRelation {
	return Between(t, col, lo, hi)
}

// GroupBy aggregates rows per group into a new table; see GroupBy.
func (t *Table) GroupBy(groupCols []string, aggs ...Agg) *Table { return GroupBy(t, groupCols, aggs...) }

// Fetch materializes the rows [start, end); see Fetch.
func (t *Table) Fetch(start, end int) (model.Tuples, bool) { return Fetch(t, start, end) }

// String renders the relation; see Format.
func (t *Table) String() string { return Format(t) }

// MarshalJSON implements json.Marshaler; see MarshalRows.
func (t *Table) MarshalJSON() ([]byte, error) { return MarshalRows(t) }

// Select projects onto the named columns; see Select.
func (s *SelectedRelation) Select(names ...string) *SelectedRelation { return Select(s, names...) }

// LessThan keeps rows whose col value is < v; see LessThan.
func (s *SelectedRelation) LessThan(col string, v model.Value) *FilteredRelation { return LessThan(s, col, v) }

// EqualTo keeps rows whose col value equals v; see EqualTo.
func (s *SelectedRelation) EqualTo(col string, v model.Value) *FilteredRelation { return EqualTo(s, col, v) }

// GreaterEqual keeps rows whose col value is >= v; see GreaterEqual.
func (s *SelectedRelation) GreaterEqual(col string, v model.Value) *FilteredRelation {
	return GreaterEqual(s, col, v)
}

// Between keeps rows whose col value lies in [lo, hi); see Between.
func (s *SelectedRelation) Between(col string, lo, hi model.Value) *FilteredRelation {
	return Between(s, col, lo, hi)
}

// GroupBy aggregates rows per group into a new table; see GroupBy.
func (s *SelectedRelation) GroupBy(groupCols []string, aggs ...Agg) *Table { return GroupBy(s, groupCols, aggs...) }

// Fetch materializes the rows [start, end); see Fetch.
func (s *SelectedRelation) Fetch(start, end int) (model.Tuples, bool) { return Fetch(s, start, end) }

// String renders the relation; see Format.
func (s *SelectedRelation) String() string { return Format(s) }

// MarshalJSON implements json.Marshaler; see MarshalRows.
func (s *SelectedRelation) MarshalJSON() ([]byte, error) { return MarshalRows(s) }

// Select projects onto the named columns; see Select.
func (f *FilteredRelation) Select(names ...string) *SelectedRelation { return Select(f, names...) }

// LessThan keeps rows whose col value is < v; see LessThan.
func (f *FilteredRelation) LessThan(col string, v model.Value) *FilteredRelation { return LessThan(f, col, v) }

// EqualTo keeps rows whose col value equals v; see EqualTo.
func (f *FilteredRelation) EqualTo(col string, v model.Value) *FilteredRelation { return EqualTo(f, col, v) }

// GreaterEqual keeps rows whose col value is >= v; see GreaterEqual.
func (f *FilteredRelation) GreaterEqual(col string, v model.Value) *FilteredRelation {
	return GreaterEqual(f, col, v)
}

// Between keeps rows whose col value lies in [lo, hi); see Between.
func (f *FilteredRelation) Between(col string, lo, hi model.Value) *FilteredRelation {
	return Between(f, col, lo, hi)
}

// GroupBy aggregates rows per group into a new table; see GroupBy.
func (f *FilteredRelation) GroupBy(groupCols []string, aggs ...Agg) *Table { return GroupBy(f, groupCols, aggs...) }

// Fetch materializes the rows [start, end); see Fetch.
func (f *FilteredRelation) Fetch(start, end int) (model.Tuples, bool) { return Fetch(f, start, end) }

// String renders the relation; see Format.
func (f *FilteredRelation) String() string { return Format(f) }

// MarshalJSON implements json.Marshaler; see MarshalRows.
func (f *FilteredRelation) MarshalJSON() ([]byte, error) { return MarshalRows(f) }
