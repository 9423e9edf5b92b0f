package colstore

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colstore/model"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tb := newShohin(t, WithLogger(logger))
	require.Error(t, tb.InsertValues("bad", "H", 1, 1))
	tb.LessThan("price", model.Int(200))
	tb.LessThan("nope", model.Int(200))
	tb.GroupBy([]string{"category"}, Count("id"))

	logOutput := buf.String()
	require.Contains(t, logOutput, "insert completed")
	require.Contains(t, logOutput, "insert failed")
	require.Contains(t, logOutput, `"table":"shohin"`)
	require.Contains(t, logOutput, "filter completed")
	require.Contains(t, logOutput, `"rows_out":2`)
	require.Contains(t, logOutput, "unknown column ignored")
	require.Contains(t, logOutput, `"column":"nope"`)
	require.Contains(t, logOutput, "group by completed")
	require.Contains(t, logOutput, `"groups":5`)
}

func TestProbeRejectedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tb := newShohin(t, WithLogger(logger))
	tb.GreaterEqual("price", model.Text("x"))

	require.Contains(t, buf.String(), "probe rejected")
	require.Contains(t, buf.String(), "type mismatch")
}

func TestUnknownAggLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tb := newShohin(t, WithLogger(logger))
	grouped := tb.GroupBy([]string{"category"}, Agg{Column: "price", Kind: AggKind(99)}, Count("id"))
	require.Equal(t, []string{"category", "count"}, grouped.Definition().Names())

	logOutput := buf.String()
	require.Contains(t, logOutput, "unknown aggregate ignored")
	require.Contains(t, logOutput, `"kind":99`)
	require.NotContains(t, logOutput, "unknown column ignored")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tb := newShohin(t, WithLogger(logger))
	tb.LessThan("price", model.Int(200))
	require.Empty(t, buf.String())

	require.Error(t, tb.InsertValues(1))
	require.Contains(t, buf.String(), "insert failed")
}

func TestNilLoggerDisablesLogging(t *testing.T) {
	tb := newShohin(t, WithLogger(nil))
	require.NotNil(t, tb.logger)
	require.NoError(t, tb.InsertValues(8, "H", 1, 1))
}
