package colstore

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colstore/codec"
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// reversed is a relation defined outside the package's own views: it exposes
// the rows of a table back to front and only implements the primitives.
type reversed struct {
	t *Table
}

func (r reversed) NumRows() int                                 { return r.t.NumRows() }
func (r reversed) NumColumns() int                              { return r.t.NumColumns() }
func (r reversed) Definition() *schema.Definition               { return r.t.Definition() }
func (r reversed) ColumnAt(c model.ColumnID) column.TableColumn { return r.t.ColumnAt(c) }

func (r reversed) ScanRowIDs(start, end int, buf []model.RowID) []model.RowID {
	span := model.Span{Start: start, End: end}.Clip(r.t.NumRows())
	n := span.Len()
	if n == 0 || len(buf) < n {
		return buf[:0]
	}
	last := r.t.NumRows() - 1
	for i := range n {
		buf[i] = model.RowID(last - span.Start - i)
	}
	return buf[:n]
}

func TestScanRowIDs(t *testing.T) {
	tb := newShohin(t)
	buf := make([]model.RowID, 16)

	tests := []struct {
		name       string
		start, end int
		buf        []model.RowID
		want       []model.RowID
	}{
		{"full", 0, 7, buf, []model.RowID{0, 1, 2, 3, 4, 5, 6}},
		{"window", 2, 4, buf, []model.RowID{2, 3}},
		{"clipped end", 5, 100, buf, []model.RowID{5, 6}},
		{"negative start", -3, 2, buf, []model.RowID{0, 1}},
		{"empty", 3, 3, buf, []model.RowID{}},
		{"inverted", 5, 2, buf, []model.RowID{}},
		{"past end", 9, 12, buf, []model.RowID{}},
		{"short buffer", 0, 7, make([]model.RowID, 3), []model.RowID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanRowIDs(tb, tt.start, tt.end, tt.buf)
			assert.Equal(t, tt.want, append([]model.RowID{}, got...))
		})
	}
}

func TestFetch(t *testing.T) {
	tb := newShohin(t)

	rows, ok := tb.Fetch(0, 2)
	require.True(t, ok)
	assert.Equal(t, model.Tuples{
		model.Values(1, "A", 1, 300),
		model.Values(2, "B", 1, 130),
	}, rows)

	rows, ok = tb.Fetch(5, 50)
	require.True(t, ok)
	assert.Equal(t, model.Tuples{
		model.Values(6, "F", 4, 180),
		model.Values(7, "G", 1, nil),
	}, rows)

	_, ok = tb.Fetch(7, 10)
	assert.False(t, ok)
	_, ok = tb.Fetch(3, 3)
	assert.False(t, ok)

	empty := NewTable("empty", shohinAttributes())
	_, ok = empty.Fetch(0, 10)
	assert.False(t, ok)
	assert.Equal(t, model.Tuples{}, FetchAll(empty))
}

func TestFetchIndependentOfBatchSize(t *testing.T) {
	want := FetchAll(newShohin(t))

	for _, n := range []int{1, 2, 3, 7, 64, 1000} {
		tb := newShohin(t, WithBatchSize(n))
		assert.Equal(t, want, FetchAll(tb), "batch size %d", n)
		assert.Equal(t, want[2:6], FetchAll(Select(tb, "id", "name", "category", "price"))[2:6])

		filtered := tb.LessThan("price", model.Int(250))
		assert.Equal(t, FetchAll(newShohin(t).LessThan("price", model.Int(250))), FetchAll(filtered))
	}
}

func TestCustomRelation(t *testing.T) {
	tb := newShohin(t)
	rev := reversed{t: tb}

	rows, ok := Fetch(rev, 0, 2)
	require.True(t, ok)
	assert.Equal(t, model.Tuples{
		model.Values(7, "G", 1, nil),
		model.Values(6, "F", 4, 180),
	}, rows)

	// Operators compose over foreign relations too.
	cheap := LessThan(rev, "price", model.Int(200))
	assert.Equal(t, model.Tuples{
		model.Values(6, "F", 4, 180),
		model.Values(2, "B", 1, 130),
	}, FetchAll(cheap))

	names := FetchAll(Select(rev, "name"))
	assert.Equal(t, model.Values("G"), names[0])
	assert.Equal(t, model.Values("A"), names[6])

	counts := GroupBy(rev, []string{"category"}, Count("id"))
	assert.Equal(t, 5, counts.NumRows())
}

func TestFormat(t *testing.T) {
	tb := NewTable("t", []schema.Attribute{schema.Integer("id"), schema.Text("name")})
	assert.Equal(t, "│id│name│\n", Format(tb))

	require.NoError(t, tb.Chain().Values(1, "apple").Values(2, nil).Err())
	assert.Equal(t, "│id│name│\n│1│apple│\n│2│null│\n", tb.String())
	assert.Equal(t, "│id│name│\n", Format(tb.EqualTo("id", model.Int(9))))

	var buf bytes.Buffer
	n, err := Render(&buf, tb.Select("name"))
	require.NoError(t, err)
	assert.Equal(t, "│name│\n│apple│\n│null│\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestMarshalRows(t *testing.T) {
	tb := NewTable("t", []schema.Attribute{schema.Integer("id"), schema.Text("name")})
	require.NoError(t, tb.Chain().Values(1, "apple").Values(2, nil).Err())

	data, err := json.Marshal(tb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"t","columns":["id","name"],"rows":[[1,"apple"],[2,null]]}`, string(data))

	data, err = tb.EqualTo("id", model.Int(5)).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"t","columns":["id","name"],"rows":[]}`, string(data))
}

func TestOptionsInherited(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	tb := newShohin(t, WithMetricsCollector(metrics))

	view := tb.LessThan("price", model.Int(200)).Select("name")
	FetchAll(view)
	grouped := view.GroupBy([]string{"name"}, Count("name"))
	FetchAll(grouped)

	stats := metrics.GetStats()
	// Group-by results are filled without going through Insert.
	assert.Equal(t, int64(7), stats.InsertCount)
	assert.Equal(t, int64(0), stats.InsertErrors)
	assert.Equal(t, int64(1), stats.FilterCount)
	assert.Equal(t, int64(1), stats.GroupByCount)
	assert.Equal(t, int64(2), stats.FetchCount)
	assert.Equal(t, int64(4), stats.FetchRows)
}

func TestLoadRows(t *testing.T) {
	src := newShohin(t)
	data, err := MarshalRows(src.LessThan("price", model.Int(250)))
	require.NoError(t, err)

	dst := NewTable("copy", shohinAttributes())
	n, err := LoadRows(dst, data)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, FetchAll(src.LessThan("price", model.Int(250))), FetchAll(dst))
}

func TestLoadRowsErrors(t *testing.T) {
	dst := NewTable("t", []schema.Attribute{schema.Integer("id"), schema.Text("name")})

	_, err := LoadRows(dst, []byte(`{"columns":["name","id"],"rows":[]}`))
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	_, err = LoadRows(dst, []byte(`{"columns":`))
	assert.Error(t, err)

	n, err := LoadRows(dst, []byte(`{"columns":["id","name"],"rows":[[1,"a"],["b",2],[3,"c"]]}`))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, dst.NumRows())

	n, err = LoadRows(dst, []byte(`{"columns":["id","name"],"rows":[[1]]}`))
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.Equal(t, 0, n)
}

func TestWithCodec(t *testing.T) {
	std := NewTable("t", []schema.Attribute{schema.Integer("id"), schema.Text("name")}, WithCodec(codec.JSON{}))
	fast := NewTable("t", []schema.Attribute{schema.Integer("id"), schema.Text("name")}, WithCodec(nil))
	for _, tb := range []*Table{std, fast} {
		require.NoError(t, tb.Chain().Values(1, "<apple>").Values(2, nil).Err())
	}

	a, err := MarshalRows(std.Select("name"))
	require.NoError(t, err)
	b, err := MarshalRows(fast.Select("name"))
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
	assert.Equal(t, "go-json", fast.opts.codec.Name())
	assert.Equal(t, "json", std.opts.codec.Name())
}
