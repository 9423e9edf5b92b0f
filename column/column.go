package column

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/internal/dictionary"
	"github.com/hupe1980/colstore/model"
)

// Slot is the per-row cell of a column: either a dictionary id or null.
type Slot struct {
	ID    model.KeyID
	Valid bool
}

// NullSlot is the slot of a null row.
var NullSlot = Slot{}

// IsNull reports whether the slot marks a null row.
func (s Slot) IsNull() bool { return !s.Valid }

// Column is an append-only sequence of dictionary-encoded rows.
type Column[K cmp.Ordered] struct {
	dict  *dictionary.Dictionary[K]
	slots []Slot
}

// New creates an empty column.
func New[K cmp.Ordered]() *Column[K] {
	return &Column[K]{dict: dictionary.New[K]()}
}

// NumKeys returns the number of distinct non-null values.
func (c *Column[K]) NumKeys() int { return c.dict.NumKeys() }

// NumRows returns the number of rows, null rows included.
func (c *Column[K]) NumRows() int { return len(c.slots) }

// Append interns key, appends its id as a new row and returns the id.
func (c *Column[K]) Append(key K) model.KeyID {
	id := c.dict.Insert(key)
	c.slots = append(c.slots, Slot{ID: id, Valid: true})
	return id
}

// AppendNull appends a null row. The dictionary is not touched.
func (c *Column[K]) AppendNull() {
	c.slots = append(c.slots, NullSlot)
}

// Pop removes the last row and returns its slot. ok is false if the column
// is empty. Interned keys stay in the dictionary.
func (c *Column[K]) Pop() (Slot, bool) {
	n := len(c.slots)
	if n == 0 {
		return NullSlot, false
	}
	s := c.slots[n-1]
	c.slots = c.slots[:n-1]
	return s, true
}

// IDOf returns the dictionary id of key.
func (c *Column[K]) IDOf(key K) (model.KeyID, bool) { return c.dict.IDOf(key) }

// KeyOf returns the key of id. It panics if id >= NumKeys.
func (c *Column[K]) KeyOf(id model.KeyID) K { return c.dict.KeyOf(id) }

// Range iterates dictionary entries whose key lies in r, in key order.
func (c *Column[K]) Range(r dictionary.KeyRange[K]) iter.Seq2[K, model.KeyID] {
	return c.dict.Range(r)
}

// RangeIntoBits returns the bitmap of ids whose key lies in r.
func (c *Column[K]) RangeIntoBits(r dictionary.KeyRange[K]) *bitmap.Bitmap {
	return c.dict.RangeIntoBits(r)
}

// IDAt returns the slot of row. It panics if row >= NumRows.
func (c *Column[K]) IDAt(row model.RowID) Slot {
	if int(row) >= len(c.slots) {
		panic(fmt.Sprintf("column: row %d out of range [0,%d)", row, len(c.slots)))
	}
	return c.slots[row]
}

// KeyAt returns the decoded key of row; ok is false iff the row is null.
func (c *Column[K]) KeyAt(row model.RowID) (key K, ok bool) {
	s := c.IDAt(row)
	if s.IsNull() {
		return key, false
	}
	return c.dict.KeyOf(s.ID), true
}
