package column

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// ErrTypeMismatch is returned when a value does not belong to a column's domain.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError describes a value whose kind differs from the column type.
//
// errors.Is(err, ErrTypeMismatch) reports true for it.
type TypeMismatchError struct {
	Expected schema.Type
	Actual   model.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
