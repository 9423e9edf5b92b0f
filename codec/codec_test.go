package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colstore/model"
)

type relation struct {
	Name    string       `json:"name"`
	Columns []string     `json:"columns"`
	Rows    model.Tuples `json:"rows"`
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)

	assert.Equal(t, "go-json", Default.Name())
}

func TestCodecsAgree(t *testing.T) {
	in := relation{
		Name:    "shohin",
		Columns: []string{"id", "name", "price"},
		Rows: model.Tuples{
			model.Values(1, "りんご", 300),
			model.Values(2, "a \"quoted\" name", nil),
		},
	}

	var encoded [][]byte
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)
			encoded = append(encoded, data)

			var out relation
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}

	require.Len(t, encoded, 2)
	assert.JSONEq(t, string(encoded[0]), string(encoded[1]))
}

func BenchmarkMarshal(b *testing.B) {
	rows := make(model.Tuples, 1000)
	for i := range rows {
		rows[i] = model.Values(i, "name", i%7)
	}
	in := relation{Name: "bench", Columns: []string{"id", "name", "group"}, Rows: rows}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Marshal(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
