// Package codec centralizes the encoding of materialized rows.
//
// Relations are encoded as JSON objects carrying the relation name, the
// column names and the rows. A Codec decides which JSON implementation does
// the work; the wire format is the same for every built-in codec.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
