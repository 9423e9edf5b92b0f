package model

import (
	"cmp"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/hupe1980/colstore/internal/conv"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents a value that was built from an unsupported Go type.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents a 32-bit integer value.
	KindInt
	// KindText represents a text value.
	KindText
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Integer"
	case KindText:
		return "Text"
	default:
		return "Invalid"
	}
}

// rank is the variant precedence used by Compare.
func (k Kind) rank() int {
	switch k {
	case KindText:
		return 0
	case KindInt:
		return 1
	case KindNull:
		return 2
	default:
		return 3
	}
}

// Value is a small typed value: Text, Integer or Null.
//
// Values are immutable and cheap to copy. The zero Value is invalid; use
// Null() for the null value.
type Value struct {
	kind Kind
	i    int32
	s    string
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Int returns an integer Value.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Text returns a text Value.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// ValueOf converts a plain Go value into a Value.
//
// Supported inputs are string, int, int32, int64, nil and Value. Anything
// else, including integers outside the int32 range, yields an invalid Value,
// which every column rejects.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return Text(x)
	case int:
		if i, err := conv.IntToInt32(x); err == nil {
			return Int(i)
		}
	case int32:
		return Int(x)
	case int64:
		if i, err := conv.Int64ToInt32(x); err == nil {
			return Int(i)
		}
	}
	return Value{}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the integer payload if Kind is KindInt.
func (v Value) AsInt() (int32, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsText returns the text payload if Kind is KindText.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// String renders the payload; null renders as "null".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindText:
		return v.s
	default:
		return "invalid"
	}
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("model.Int(%d)", v.i)
	case KindText:
		return fmt.Sprintf("model.Text(%q)", v.s)
	case KindNull:
		return "model.Null()"
	default:
		return "model.Value{}"
	}
}

// Equal reports whether a and b hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	return Compare(v, other) == 0
}

// Compare orders values by variant (Text < Integer < Null) and then by payload.
// It returns -1, 0 or +1.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.kind.rank(), b.kind.rank()); c != 0 {
		return c
	}
	switch a.kind {
	case KindInt:
		return cmp.Compare(a.i, b.i)
	case KindText:
		return cmp.Compare(a.s, b.s)
	default:
		return 0
	}
}

// MarshalJSON implements json.Marshaler.
// Text encodes as a JSON string, Integer as a number and Null as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindInt:
		return strconv.AppendInt(nil, int64(v.i), 10), nil
	case KindText:
		return json.Marshal(v.s)
	default:
		return nil, fmt.Errorf("cannot marshal %s value", v.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case string:
		*v = Text(x)
	case float64:
		i, err := conv.Float64ToInt32(x)
		if err != nil {
			return err
		}
		*v = Int(i)
	default:
		return fmt.Errorf("unsupported JSON value %T", raw)
	}
	return nil
}
