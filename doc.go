// Package colstore provides a small in-memory columnar relational store.
//
// Tables store each column dictionary-encoded: every distinct value is kept
// once and rows hold its small integer id. Read-only operators are layered on
// top of a table, or on top of each other, without copying column data:
//
//   - Select:   projection onto named columns (SelectedRelation)
//   - LessThan, EqualTo, GreaterEqual, Between: row filters (FilteredRelation)
//   - GroupBy:  grouped aggregation into a new Table
//
// Values are only decoded when rows are materialized with Fetch or rendered.
//
// # Quick Start
//
//	shohin := colstore.NewTable("shohin", []schema.Attribute{
//	    schema.Integer("id"),
//	    schema.Text("name"),
//	    schema.Integer("price"),
//	})
//	err := shohin.Chain().
//	    Values(1, "apple", 300).
//	    Values(2, "orange", 130).
//	    Err()
//
//	cheap := shohin.LessThan("price", model.Int(200)).Select("name")
//	fmt.Print(cheap)
//
//	stats := shohin.GroupBy([]string{"price"}, colstore.Count("name"))
//
// # Relations
//
// Anything implementing Relation (NumRows, NumColumns, Definition, ColumnAt)
// can be scanned, fetched and rendered by the free functions of this package.
// Relations that renumber rows additionally implement RowScanner.
//
// # Filters
//
// A filter first resolves the admissible dictionary ids of the probed column
// from its ordered index (O(log D) for D distinct values), then scans every
// row once comparing ids. Rows holding null never match.
//
// # Single Writer
//
// A table may be read by any number of views, but must not be modified
// while they are in use. Every insert advances Table.Generation; a view whose
// table moved on panics with ErrStaleView instead of reading inconsistent
// storage. Nothing in this package is safe for concurrent use.
package colstore
