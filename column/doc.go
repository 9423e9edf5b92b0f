// Package column implements dictionary-encoded columns.
//
// A Column[K] stores one Slot per row. A valid slot holds the KeyID of the
// row's value in the column dictionary; a null slot holds nothing and never
// touches the dictionary:
//
//	dictionary: {"apple":0, "kiwi":1}
//	rows:       [0, 1, null, 0]
//
// TableColumn is the closed, typed front of a Column. It is the single place
// where incoming Values are checked against the column's declared domain:
//
//	col := column.NewTableColumn(schema.TypeInteger)
//	_, err := col.Append(model.Text("x")) // ErrTypeMismatch, column unchanged
//	_, _ = col.Append(model.Null())       // always accepted
package column
