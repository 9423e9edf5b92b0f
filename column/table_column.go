package column

import (
	"cmp"

	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// TableColumn is a Column behind a Value-typed API.
//
// The set of implementations is closed: *TextColumn and *IntColumn.
// Lookups that decode ids (KeyOf, KeyAt) are total and yield Null for ids
// the dictionary does not know.
type TableColumn interface {
	// Type returns the declared domain.
	Type() schema.Type
	NumKeys() int
	NumRows() int

	// Append type-checks v and appends it. Null is always accepted.
	// On mismatch the column is left unchanged.
	Append(v model.Value) (Slot, error)
	// Pop removes the last row; it reports false if the column is empty.
	Pop() bool

	// IDOf returns the dictionary id of v. Values of another domain and
	// unknown values report false.
	IDOf(v model.Value) (model.KeyID, bool)
	// Range returns the ids of keys in [lo, hi).
	Range(lo, hi model.Value) (*bitmap.Bitmap, error)
	// RangeFrom returns the ids of keys >= lo.
	RangeFrom(lo model.Value) (*bitmap.Bitmap, error)
	// RangeTo returns the ids of keys < hi.
	RangeTo(hi model.Value) (*bitmap.Bitmap, error)

	KeyOf(id model.KeyID) model.Value
	IDAt(row model.RowID) Slot
	KeyAt(row model.RowID) model.Value

	sealed()
}

// NewTableColumn creates an empty column for the given type.
// It panics on an unknown type.
func NewTableColumn(typ schema.Type) TableColumn {
	switch typ {
	case schema.TypeText:
		return NewTextColumn()
	case schema.TypeInteger:
		return NewIntColumn()
	default:
		panic("column: unknown type " + typ.String())
	}
}

// TextColumn stores text values.
type TextColumn struct {
	typed[string]
}

// NewTextColumn creates an empty text column.
func NewTextColumn() *TextColumn {
	return &TextColumn{typed[string]{
		col:    New[string](),
		typ:    schema.TypeText,
		unwrap: model.Value.AsText,
		wrap:   model.Text,
	}}
}

// IntColumn stores 32-bit integer values.
type IntColumn struct {
	typed[int32]
}

// NewIntColumn creates an empty integer column.
func NewIntColumn() *IntColumn {
	return &IntColumn{typed[int32]{
		col:    New[int32](),
		typ:    schema.TypeInteger,
		unwrap: model.Value.AsInt,
		wrap:   model.Int,
	}}
}

type typed[K cmp.Ordered] struct {
	col    *Column[K]
	typ    schema.Type
	unwrap func(model.Value) (K, bool)
	wrap   func(K) model.Value
}

func (t *typed[K]) sealed() {}

// Column returns the underlying generic column.
func (t *typed[K]) Column() *Column[K] { return t.col }

func (t *typed[K]) Type() schema.Type { return t.typ }

func (t *typed[K]) NumKeys() int { return t.col.NumKeys() }

func (t *typed[K]) NumRows() int { return t.col.NumRows() }

func (t *typed[K]) Append(v model.Value) (Slot, error) {
	if v.IsNull() {
		t.col.AppendNull()
		return NullSlot, nil
	}
	key, ok := t.unwrap(v)
	if !ok {
		return NullSlot, t.mismatch(v)
	}
	return Slot{ID: t.col.Append(key), Valid: true}, nil
}

func (t *typed[K]) Pop() bool {
	_, ok := t.col.Pop()
	return ok
}

func (t *typed[K]) IDOf(v model.Value) (model.KeyID, bool) {
	key, ok := t.unwrap(v)
	if !ok {
		return 0, false
	}
	return t.col.IDOf(key)
}

func (t *typed[K]) Range(lo, hi model.Value) (*bitmap.Bitmap, error) {
	l, err := t.key(lo)
	if err != nil {
		return nil, err
	}
	h, err := t.key(hi)
	if err != nil {
		return nil, err
	}
	return t.col.RangeIntoBits(Between(l, h)), nil
}

func (t *typed[K]) RangeFrom(lo model.Value) (*bitmap.Bitmap, error) {
	l, err := t.key(lo)
	if err != nil {
		return nil, err
	}
	return t.col.RangeIntoBits(From(l)), nil
}

func (t *typed[K]) RangeTo(hi model.Value) (*bitmap.Bitmap, error) {
	h, err := t.key(hi)
	if err != nil {
		return nil, err
	}
	return t.col.RangeIntoBits(To(h)), nil
}

func (t *typed[K]) KeyOf(id model.KeyID) model.Value {
	if int(id) >= t.col.NumKeys() {
		return model.Null()
	}
	return t.wrap(t.col.KeyOf(id))
}

func (t *typed[K]) IDAt(row model.RowID) Slot { return t.col.IDAt(row) }

func (t *typed[K]) KeyAt(row model.RowID) model.Value {
	key, ok := t.col.KeyAt(row)
	if !ok {
		return model.Null()
	}
	return t.wrap(key)
}

func (t *typed[K]) key(v model.Value) (K, error) {
	key, ok := t.unwrap(v)
	if !ok {
		return key, t.mismatch(v)
	}
	return key, nil
}

func (t *typed[K]) mismatch(v model.Value) error {
	return &TypeMismatchError{Expected: t.typ, Actual: v.Kind()}
}
