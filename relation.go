package colstore

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// Relation is the contract shared by tables and views.
//
// Implementing these four methods is enough to get scanning (ScanRowIDs),
// materialization (Fetch) and rendering (Format) from this package.
type Relation interface {
	// NumRows returns the number of logical rows.
	NumRows() int
	// NumColumns returns the number of columns.
	NumColumns() int
	// Definition returns the relation schema.
	Definition() *schema.Definition
	// ColumnAt returns the column at position col.
	ColumnAt(col model.ColumnID) column.TableColumn
}

// RowScanner is implemented by relations whose logical rows are not the
// identity mapping onto physical row ids.
type RowScanner interface {
	// ScanRowIDs writes the physical row ids of the logical window
	// [start, end) into buf and returns the filled prefix.
	ScanRowIDs(start, end int, buf []model.RowID) []model.RowID
}

// owned is implemented by every relation of this package. It links a
// relation to the table whose storage it reads.
type owned interface {
	owner() *Table
}

// ScanRowIDs fills buf with the physical row ids of the logical window
// [start, end), clipped to r.NumRows(), and returns the filled prefix.
// The result is empty if the window is empty or buf is too short for it.
func ScanRowIDs(r Relation, start, end int, buf []model.RowID) []model.RowID {
	if s, ok := r.(RowScanner); ok {
		return s.ScanRowIDs(start, end, buf)
	}
	return identityScan(r.NumRows(), start, end, buf)
}

func identityScan(numRows, start, end int, buf []model.RowID) []model.RowID {
	span := model.Span{Start: start, End: end}.Clip(numRows)
	n := span.Len()
	if n == 0 || len(buf) < n {
		return buf[:0]
	}
	for i := range n {
		buf[i] = model.RowID(span.Start + i)
	}
	return buf[:n]
}

// forEachRow walks every logical row of r in windows of batch row ids and
// calls fn with the physical row id.
func forEachRow(r Relation, span model.Span, batch int, fn func(model.RowID)) {
	buf := make([]model.RowID, batch)
	for start := span.Start; start < span.End; start += batch {
		end := min(start+batch, span.End)
		for _, row := range ScanRowIDs(r, start, end, buf) {
			fn(row)
		}
	}
}

// Fetch materializes the logical rows [start, end) of r, clipped to
// [0, r.NumRows()). It reports false if the clipped window is empty.
func Fetch(r Relation, start, end int) (model.Tuples, bool) {
	span := model.Span{Start: start, End: end}.Clip(r.NumRows())
	if span.Empty() {
		return nil, false
	}

	opts := optionsOf(r)
	began := time.Now()

	numCols := r.NumColumns()
	cols := make([]column.TableColumn, numCols)
	for i := range cols {
		cols[i] = r.ColumnAt(model.ColumnID(i))
	}

	tuples := make(model.Tuples, 0, span.Len())
	forEachRow(r, span, opts.batchSize, func(row model.RowID) {
		tuple := make(model.Tuple, numCols)
		for i, c := range cols {
			tuple[i] = c.KeyAt(row)
		}
		tuples = append(tuples, tuple)
	})

	opts.metricsCollector.RecordFetch(len(tuples), time.Since(began))
	return tuples, true
}

// FetchAll materializes every row of r. The result is empty, not nil, for
// an empty relation.
func FetchAll(r Relation) model.Tuples {
	tuples, ok := Fetch(r, 0, r.NumRows())
	if !ok {
		return model.Tuples{}
	}
	return tuples
}

const fieldSep = "│"

// Render writes r to w: one header line with the attribute names, then one
// line per row. Every field is preceded by "│" and every line ends in "│".
func Render(w io.Writer, r Relation) (int64, error) {
	var sb strings.Builder
	writeLine := func(fields []string) {
		for _, f := range fields {
			sb.WriteString(fieldSep)
			sb.WriteString(f)
		}
		sb.WriteString(fieldSep)
		sb.WriteByte('\n')
	}

	writeLine(r.Definition().Names())

	fields := make([]string, r.NumColumns())
	for _, tuple := range FetchAll(r) {
		for i, v := range tuple {
			fields[i] = v.String()
		}
		writeLine(fields)
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Format renders r as a string; see Render.
func Format(r Relation) string {
	var sb strings.Builder
	_, _ = Render(&sb, r)
	return sb.String()
}

type jsonRelation struct {
	Name    string       `json:"name"`
	Columns []string     `json:"columns"`
	Rows    model.Tuples `json:"rows"`
}

// MarshalRows encodes r as JSON with the codec configured on its table:
//
//	{"name":"shohin","columns":["id","name"],"rows":[[1,"apple"],[2,null]]}
func MarshalRows(r Relation) ([]byte, error) {
	def := r.Definition()
	return optionsOf(r).codec.Marshal(jsonRelation{
		Name:    def.Name(),
		Columns: def.Names(),
		Rows:    FetchAll(r),
	})
}

// LoadRows decodes data in the MarshalRows format and inserts its rows into t,
// in order. The encoded column names must equal the table's; the relation
// name is ignored. It returns the number of rows inserted before the first
// failure.
func LoadRows(t *Table, data []byte) (int, error) {
	var in jsonRelation
	if err := t.opts.codec.Unmarshal(data, &in); err != nil {
		return 0, err
	}
	if !slices.Equal(in.Columns, t.definition.Names()) {
		return 0, fmt.Errorf("%w: table %q has columns %v, data has %v",
			ErrSchemaMismatch, t.Name(), t.definition.Names(), in.Columns)
	}
	for i, row := range in.Rows {
		if err := t.Insert(row...); err != nil {
			return i, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return len(in.Rows), nil
}

func optionsOf(r Relation) *options {
	if o, ok := r.(owned); ok {
		if t := o.owner(); t != nil {
			return &t.opts
		}
	}
	return &fallbackOptions
}

var fallbackOptions = defaultOptions()
