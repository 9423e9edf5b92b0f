package colstore

import (
	"log/slog"

	"github.com/hupe1980/colstore/codec"
)

// DefaultBatchSize is the number of row ids scanned per window.
const DefaultBatchSize = 64

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	batchSize        int
	codec            codec.Codec
}

// Option configures a Table. Views and group-by results inherit the options
// of the table they were derived from.
type Option func(*options)

// WithBatchSize configures the scan window used by Fetch, predicates and
// GroupBy. The value only changes how many row ids are resolved per step;
// results are identical for every batch size.
//
// Values <= 0 are ignored.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithCodec configures the codec used by MarshalRows and LoadRows.
// Pass nil to restore codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &colstore.BasicMetricsCollector{}
//	t := colstore.NewTable("t", attrs, colstore.WithMetricsCollector(metrics))
//	// ... use t ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Filters: %d\n", stats.InsertCount, stats.FilterCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colstore.NewJSONLogger(slog.LevelDebug)
//	t := colstore.NewTable("t", attrs, colstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		batchSize:        DefaultBatchSize,
		codec:            codec.Default,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
