package colstore

import (
	"time"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/model"
)

// slotMatcher reports whether a row's slot satisfies a predicate.
// Null slots never match.
type slotMatcher func(column.Slot) bool

func inBitmap(bits *bitmap.Bitmap) slotMatcher {
	return func(s column.Slot) bool {
		return s.Valid && bits.Get(uint32(s.ID))
	}
}

func equalsID(id model.KeyID) slotMatcher {
	return func(s column.Slot) bool {
		return s.Valid && s.ID == id
	}
}

// LessThan keeps the rows of r whose value in column col is < v.
func LessThan(r Relation, col string, v model.Value) *FilteredRelation {
	return filter(r, "less_than", col, func(c column.TableColumn) (slotMatcher, error) {
		bits, err := c.RangeTo(v)
		if err != nil {
			return nil, err
		}
		return inBitmap(bits), nil
	})
}

// GreaterEqual keeps the rows of r whose value in column col is >= v.
func GreaterEqual(r Relation, col string, v model.Value) *FilteredRelation {
	return filter(r, "greater_equal", col, func(c column.TableColumn) (slotMatcher, error) {
		bits, err := c.RangeFrom(v)
		if err != nil {
			return nil, err
		}
		return inBitmap(bits), nil
	})
}

// Between keeps the rows of r whose value in column col lies in [lo, hi).
func Between(r Relation, col string, lo, hi model.Value) *FilteredRelation {
	return filter(r, "between", col, func(c column.TableColumn) (slotMatcher, error) {
		bits, err := c.Range(lo, hi)
		if err != nil {
			return nil, err
		}
		return inBitmap(bits), nil
	})
}

// EqualTo keeps the rows of r whose value in column col equals v.
// A value the column has never stored matches nothing.
func EqualTo(r Relation, col string, v model.Value) *FilteredRelation {
	return filter(r, "equal_to", col, func(c column.TableColumn) (slotMatcher, error) {
		id, ok := c.IDOf(v)
		if !ok {
			return nil, nil
		}
		return equalsID(id), nil
	})
}

// filter resolves col, asks admit for a matcher over that column's slots and
// scans every row of r once. An unknown column, a probe outside the column
// domain or a nil matcher yield an empty view.
func filter(r Relation, op, col string, admit func(column.TableColumn) (slotMatcher, error)) *FilteredRelation {
	opts := optionsOf(r)
	began := time.Now()

	view := &FilteredRelation{
		viewBase: newViewBase(r),
		source:   r,
	}
	view.checkFresh()

	numRows := r.NumRows()
	defer func() {
		opts.metricsCollector.RecordFilter(numRows, len(view.rows), time.Since(began))
		opts.logger.LogFilter(op, col, numRows, len(view.rows))
	}()

	pos, ok := r.Definition().NameToID(col)
	if !ok {
		opts.logger.LogUnknownColumn(op, col)
		return view
	}
	c := r.ColumnAt(pos)

	match, err := admit(c)
	if err != nil {
		opts.logger.LogProbeRejected(op, col, err)
		return view
	}
	if match == nil {
		return view
	}

	rows := make([]model.RowID, 0, numRows)
	forEachRow(r, model.Span{End: numRows}, opts.batchSize, func(row model.RowID) {
		if match(c.IDAt(row)) {
			rows = append(rows, row)
		}
	})
	view.rows = rows[:len(rows):len(rows)]
	return view
}
