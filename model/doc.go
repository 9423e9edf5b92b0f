// Package model defines the core types shared by every colstore package.
//
// # Identity Types
//
//   - RowID: physical row position inside a table (uint32)
//   - KeyID: dictionary id of a distinct column value (uint32)
//   - ColumnID: column position inside a relation (int)
//
// # Data Types
//
//   - Value: tagged union of Text, Integer and Null
//   - Tuple: one materialized row
//   - Tuples: a materialized result set
//
// Values are ordered by variant first (Text < Integer < Null) and then by
// payload. Compare implements that total order and Tuples.Sort uses it:
//
//	rows, _ := rel.Fetch(0, rel.NumRows())
//	rows.Sort()
package model
