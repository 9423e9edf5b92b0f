// Package schema describes relation layouts: typed attributes and ordered
// definitions.
package schema

import (
	"github.com/hupe1980/colstore/model"
)

// Type defines the value domain of a column.
type Type uint8

const (
	// TypeText stores text values.
	TypeText Type = iota + 1
	// TypeInteger stores 32-bit integer values.
	TypeInteger
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "Text"
	case TypeInteger:
		return "Integer"
	default:
		return "Unknown"
	}
}

// Kind returns the value kind stored by columns of this type.
func (t Type) Kind() model.Kind {
	switch t {
	case TypeText:
		return model.KindText
	case TypeInteger:
		return model.KindInt
	default:
		return model.KindInvalid
	}
}

// Accepts reports whether v may be stored in a column of this type.
// Null is accepted by every type.
func (t Type) Accepts(v model.Value) bool {
	if v.IsNull() {
		return true
	}
	return v.Kind() == t.Kind()
}

// Attribute is a named, typed column declaration.
type Attribute struct {
	name string
	typ  Type
}

// NewAttribute creates an attribute.
func NewAttribute(name string, typ Type) Attribute {
	return Attribute{name: name, typ: typ}
}

// Text is shorthand for NewAttribute(name, TypeText).
func Text(name string) Attribute { return NewAttribute(name, TypeText) }

// Integer is shorthand for NewAttribute(name, TypeInteger).
func Integer(name string) Attribute { return NewAttribute(name, TypeInteger) }

// Name returns the attribute name.
func (a Attribute) Name() string { return a.name }

// Type returns the attribute domain.
func (a Attribute) Type() Type { return a.typ }

// String returns "name:Type".
func (a Attribute) String() string { return a.name + ":" + a.typ.String() }
