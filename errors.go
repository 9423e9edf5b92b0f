package colstore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colstore/column"
)

var (
	// ErrArityMismatch is returned when a row does not have one value per column.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrTypeMismatch is returned when a value does not belong to a column's domain.
	ErrTypeMismatch = column.ErrTypeMismatch

	// ErrTableFull is returned when a table cannot address another row.
	ErrTableFull = errors.New("table is full")

	// ErrSchemaMismatch is returned when encoded rows do not match a table's
	// column names.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrStaleView is the panic value (wrapped) raised when a view is used
	// after its backing table was modified.
	ErrStaleView = errors.New("view used after its table was modified")
)

// ArityMismatchError indicates a row with the wrong number of values.
type ArityMismatchError struct {
	Table    string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("table %q: arity mismatch: expected %d values, got %d", e.Table, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// ColumnError attaches the failing column to an insert error.
//
// The underlying error (typically a *column.TypeMismatchError) can be
// accessed via errors.Unwrap.
type ColumnError struct {
	Table  string
	Column string
	cause  error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("table %q column %q: %v", e.Table, e.Column, e.cause)
}

func (e *ColumnError) Unwrap() error { return e.cause }
