package colstore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colstore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// LogInsert logs a row insert.
func (l *Logger) LogInsert(row int, err error) {
	ctx := context.Background()
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"row", row,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "insert completed",
		"row", row,
	)
}

// LogFilter logs a predicate evaluation.
func (l *Logger) LogFilter(op, col string, rowsIn, rowsOut int) {
	l.DebugContext(context.Background(), "filter completed",
		"op", op,
		"column", col,
		"rows_in", rowsIn,
		"rows_out", rowsOut,
	)
}

// LogGroupBy logs a grouped aggregation.
func (l *Logger) LogGroupBy(rowsIn, groups int) {
	l.DebugContext(context.Background(), "group by completed",
		"rows_in", rowsIn,
		"groups", groups,
	)
}

// LogUnknownColumn logs a column name that did not resolve.
func (l *Logger) LogUnknownColumn(op, col string) {
	l.DebugContext(context.Background(), "unknown column ignored",
		"op", op,
		"column", col,
	)
}

// LogUnknownAgg logs an aggregate whose kind is not one of the AggKind
// constants.
func (l *Logger) LogUnknownAgg(op string, agg Agg) {
	l.DebugContext(context.Background(), "unknown aggregate ignored",
		"op", op,
		"column", agg.Column,
		"kind", uint8(agg.Kind),
	)
}

// LogProbeRejected logs a probe value outside the column domain.
func (l *Logger) LogProbeRejected(op, col string, err error) {
	l.DebugContext(context.Background(), "probe rejected",
		"op", op,
		"column", col,
		"error", err,
	)
}
