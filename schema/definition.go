package schema

import (
	"strings"

	"github.com/hupe1980/colstore/model"
)

// Definition is the ordered list of attributes of a relation.
type Definition struct {
	name       string
	attributes []Attribute
}

// NewDefinition creates a definition. The attribute slice is copied.
func NewDefinition(name string, attributes ...Attribute) *Definition {
	return &Definition{
		name:       name,
		attributes: append([]Attribute(nil), attributes...),
	}
}

// Name returns the relation name.
func (d *Definition) Name() string { return d.name }

// NumColumns returns the number of attributes.
func (d *Definition) NumColumns() int { return len(d.attributes) }

// At returns the attribute at position col. It panics if col is out of range.
func (d *Definition) At(col model.ColumnID) Attribute { return d.attributes[col] }

// Attributes returns a copy of the attribute list.
func (d *Definition) Attributes() []Attribute {
	return append([]Attribute(nil), d.attributes...)
}

// Names returns the attribute names in order.
func (d *Definition) Names() []string {
	names := make([]string, len(d.attributes))
	for i, a := range d.attributes {
		names[i] = a.name
	}
	return names
}

// NameToID returns the position of the first attribute called name.
// Schemas are small, so this is a linear scan.
func (d *Definition) NameToID(name string) (model.ColumnID, bool) {
	for i, a := range d.attributes {
		if a.name == name {
			return model.ColumnID(i), true
		}
	}
	return 0, false
}

// Select builds a definition keeping only the given positions, in the given
// order. Out-of-range positions are dropped.
func (d *Definition) Select(cols []model.ColumnID) *Definition {
	attrs := make([]Attribute, 0, len(cols))
	for _, col := range cols {
		if col >= 0 && int(col) < len(d.attributes) {
			attrs = append(attrs, d.attributes[col])
		}
	}
	return &Definition{name: d.name, attributes: attrs}
}

// Equal reports whether both definitions have the same name and attributes.
func (d *Definition) Equal(other *Definition) bool {
	if d.name != other.name || len(d.attributes) != len(other.attributes) {
		return false
	}
	for i := range d.attributes {
		if d.attributes[i] != other.attributes[i] {
			return false
		}
	}
	return true
}

// String returns "name(a:Type, b:Type)".
func (d *Definition) String() string {
	var sb strings.Builder
	sb.WriteString(d.name)
	sb.WriteByte('(')
	for i, a := range d.attributes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
