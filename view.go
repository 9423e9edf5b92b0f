package colstore

import (
	"fmt"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// viewBase pins a view to the generation of the table it reads.
type viewBase struct {
	root       *Table
	generation uint64
}

// newViewBase pins a new view. A view built over another view inherits that
// view's generation, so a stale source yields a stale view.
func newViewBase(source Relation) viewBase {
	if p, ok := source.(pinned); ok {
		return p.pin()
	}
	var root *Table
	if o, ok := source.(owned); ok {
		root = o.owner()
	}
	if root == nil {
		return viewBase{}
	}
	return viewBase{root: root, generation: root.generation}
}

func (v *viewBase) owner() *Table { return v.root }

// pinned is implemented by views. Tables are not pinned: a view over a
// table starts at the table's current generation.
type pinned interface {
	pin() viewBase
}

func (v *viewBase) pin() viewBase { return *v }

// checkFresh panics if the backing table was modified after the view was
// built. Reading a view over a mutated table is a programming error.
func (v *viewBase) checkFresh() {
	if v.root != nil && v.root.generation != v.generation {
		panic(fmt.Errorf("%w: table %q at generation %d, view built at %d",
			ErrStaleView, v.root.Name(), v.root.generation, v.generation))
	}
}

// Stale reports whether the backing table was modified after the view was
// built. A stale view panics on use.
func (v *viewBase) Stale() bool {
	return v.root != nil && v.root.generation != v.generation
}

// SelectedRelation is a projection: it exposes a subset of the columns of its
// source, in a chosen order, without copying them.
type SelectedRelation struct {
	viewBase
	source     Relation
	cols       []model.ColumnID
	definition *schema.Definition
}

// Select projects r onto the named columns, in the given order.
// Unknown names are dropped.
func Select(r Relation, names ...string) *SelectedRelation {
	def := r.Definition()
	cols := make([]model.ColumnID, 0, len(names))
	for _, name := range names {
		if col, ok := def.NameToID(name); ok {
			cols = append(cols, col)
		} else {
			optionsOf(r).logger.LogUnknownColumn("select", name)
		}
	}
	base := newViewBase(r)
	base.checkFresh()
	return &SelectedRelation{
		viewBase:   base,
		source:     r,
		cols:       cols,
		definition: def.Select(cols),
	}
}

// NumRows implements Relation.
func (s *SelectedRelation) NumRows() int {
	s.checkFresh()
	return s.source.NumRows()
}

// NumColumns implements Relation.
func (s *SelectedRelation) NumColumns() int { return len(s.cols) }

// Definition implements Relation.
func (s *SelectedRelation) Definition() *schema.Definition { return s.definition }

// ColumnAt implements Relation.
func (s *SelectedRelation) ColumnAt(col model.ColumnID) column.TableColumn {
	return s.source.ColumnAt(s.cols[col])
}

// ScanRowIDs implements RowScanner. Rows are those of the source.
func (s *SelectedRelation) ScanRowIDs(start, end int, buf []model.RowID) []model.RowID {
	s.checkFresh()
	return ScanRowIDs(s.source, start, end, buf)
}

// FilteredRelation keeps the rows of its source that satisfied a predicate.
// The surviving physical row ids are computed once, at construction; values
// are only read when the view is fetched.
type FilteredRelation struct {
	viewBase
	source Relation
	rows   []model.RowID // ascending
}

// NumRows implements Relation.
func (f *FilteredRelation) NumRows() int {
	f.checkFresh()
	return len(f.rows)
}

// NumColumns implements Relation.
func (f *FilteredRelation) NumColumns() int { return f.source.NumColumns() }

// Definition implements Relation.
func (f *FilteredRelation) Definition() *schema.Definition { return f.source.Definition() }

// ColumnAt implements Relation.
func (f *FilteredRelation) ColumnAt(col model.ColumnID) column.TableColumn {
	return f.source.ColumnAt(col)
}

// ScanRowIDs implements RowScanner. Logical position i maps to the i-th
// surviving physical row.
func (f *FilteredRelation) ScanRowIDs(start, end int, buf []model.RowID) []model.RowID {
	f.checkFresh()
	span := model.Span{Start: start, End: end}.Clip(len(f.rows))
	n := span.Len()
	if n == 0 || len(buf) < n {
		return buf[:0]
	}
	return buf[:copy(buf, f.rows[span.Start:span.End])]
}

// RowIDs returns a copy of the surviving physical row ids, ascending.
func (f *FilteredRelation) RowIDs() []model.RowID {
	f.checkFresh()
	return append([]model.RowID(nil), f.rows...)
}
