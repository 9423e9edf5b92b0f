package colstore

import (
	"fmt"
	"time"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// Table owns column storage: one typed column per attribute plus a row
// counter. Insert is the only mutator.
//
// Invariant: every column holds NumRows rows outside of Insert.
type Table struct {
	definition *schema.Definition
	columns    []column.TableColumn
	numRows    int

	// generation advances on every successful insert. Views remember the
	// generation they were built at and refuse to run once it moved.
	generation uint64

	opts   options
	logger *Logger
}

// NewTable creates an empty table with one column per attribute.
//
// Example:
//
//	shohin := colstore.NewTable("shohin", []schema.Attribute{
//	    schema.Integer("id"),
//	    schema.Text("name"),
//	})
func NewTable(name string, attributes []schema.Attribute, optFns ...Option) *Table {
	return newTable(schema.NewDefinition(name, attributes...), applyOptions(optFns))
}

func newTable(def *schema.Definition, opts options) *Table {
	columns := make([]column.TableColumn, def.NumColumns())
	for i := range columns {
		columns[i] = column.NewTableColumn(def.At(model.ColumnID(i)).Type())
	}
	return &Table{
		definition: def,
		columns:    columns,
		opts:       opts,
		logger:     opts.logger.WithTable(def.Name()),
	}
}

// Name returns the table name.
func (t *Table) Name() string { return t.definition.Name() }

// NumRows implements Relation.
func (t *Table) NumRows() int { return t.numRows }

// NumColumns implements Relation.
func (t *Table) NumColumns() int { return len(t.columns) }

// Definition implements Relation.
func (t *Table) Definition() *schema.Definition { return t.definition }

// ColumnAt implements Relation.
func (t *Table) ColumnAt(col model.ColumnID) column.TableColumn { return t.columns[col] }

// Generation returns a counter that advances on every successful insert.
func (t *Table) Generation() uint64 { return t.generation }

func (t *Table) owner() *Table { return t }

// Insert appends one row. values must hold one value per column, in column
// order; Null is accepted by every column.
//
// The insert is all-or-nothing: on the first value that does not match its
// column type, every column already appended for this row is rolled back and
// the table is left exactly as it was.
func (t *Table) Insert(values ...model.Value) error {
	began := time.Now()
	err := t.insert(values)
	t.opts.metricsCollector.RecordInsert(time.Since(began), err)
	t.logger.LogInsert(t.numRows, err)
	return err
}

func (t *Table) insert(values []model.Value) error {
	if len(values) != len(t.columns) {
		return &ArityMismatchError{Table: t.Name(), Expected: len(t.columns), Actual: len(values)}
	}
	if _, err := conv.IntToUint32(t.numRows); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrTableFull, t.Name(), err)
	}
	// Type-check the whole row before touching any dictionary, so a rejected
	// row cannot leave interned keys behind.
	for i, v := range values {
		if typ := t.columns[i].Type(); !typ.Accepts(v) {
			return t.columnError(i, &column.TypeMismatchError{Expected: typ, Actual: v.Kind()})
		}
	}
	// Columns may still refuse a value the type check accepted; undo the
	// appends already made so every column keeps numRows rows.
	for i, v := range values {
		if _, err := t.columns[i].Append(v); err != nil {
			for j := range i {
				t.columns[j].Pop()
			}
			return t.columnError(i, err)
		}
	}
	t.numRows++
	t.generation++
	return nil
}

func (t *Table) columnError(col int, err error) error {
	return &ColumnError{
		Table:  t.Name(),
		Column: t.definition.At(model.ColumnID(col)).Name(),
		cause:  err,
	}
}

// InsertValues converts plain Go values with model.ValueOf and inserts them.
//
//	err := t.InsertValues(1, "apple", nil, 300)
func (t *Table) InsertValues(values ...any) error {
	return t.Insert(model.Values(values...)...)
}

// Chain starts a fluent insert sequence:
//
//	err := t.Chain().
//	    Insert(model.Values(1, "apple")...).
//	    Insert(model.Values(2, "kiwi")...).
//	    Err()
func (t *Table) Chain() *Inserter {
	return &Inserter{table: t}
}

// Inserter chains inserts into one table. After the first failed insert the
// remaining inserts are skipped and Err reports the failure.
type Inserter struct {
	table *Table
	err   error
}

// Insert inserts values unless an earlier insert of the chain failed.
func (in *Inserter) Insert(values ...model.Value) *Inserter {
	if in.err == nil {
		in.err = in.table.Insert(values...)
	}
	return in
}

// Values is Insert with model.ValueOf conversion.
func (in *Inserter) Values(values ...any) *Inserter {
	return in.Insert(model.Values(values...)...)
}

// Err returns the first insert error of the chain.
func (in *Inserter) Err() error { return in.err }

// Table returns the table the chain inserts into.
func (in *Inserter) Table() *Table { return in.table }
