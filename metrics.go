package colstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each row insert.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordFilter is called after each predicate evaluation.
	// rowsIn is the number of rows scanned, rowsOut the number kept.
	RecordFilter(rowsIn, rowsOut int, duration time.Duration)

	// RecordGroupBy is called after each grouped aggregation.
	RecordGroupBy(rowsIn, groups int, duration time.Duration)

	// RecordFetch is called after each materialization.
	RecordFetch(rows int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)     {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordGroupBy(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordFetch(int, time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	FilterCount       atomic.Int64
	FilterRowsIn      atomic.Int64
	FilterRowsOut     atomic.Int64
	FilterTotalNanos  atomic.Int64
	GroupByCount      atomic.Int64
	GroupByGroups     atomic.Int64
	GroupByTotalNanos atomic.Int64
	FetchCount        atomic.Int64
	FetchRows         atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(rowsIn, rowsOut int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterRowsIn.Add(int64(rowsIn))
	b.FilterRowsOut.Add(int64(rowsOut))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordGroupBy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroupBy(_, groups int, duration time.Duration) {
	b.GroupByCount.Add(1)
	b.GroupByGroups.Add(int64(groups))
	b.GroupByTotalNanos.Add(duration.Nanoseconds())
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(rows int, _ time.Duration) {
	b.FetchCount.Add(1)
	b.FetchRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		FilterCount:     b.FilterCount.Load(),
		FilterRowsIn:    b.FilterRowsIn.Load(),
		FilterRowsOut:   b.FilterRowsOut.Load(),
		FilterAvgNanos:  avg(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
		GroupByCount:    b.GroupByCount.Load(),
		GroupByGroups:   b.GroupByGroups.Load(),
		GroupByAvgNanos: avg(b.GroupByTotalNanos.Load(), b.GroupByCount.Load()),
		FetchCount:      b.FetchCount.Load(),
		FetchRows:       b.FetchRows.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	FilterCount     int64
	FilterRowsIn    int64
	FilterRowsOut   int64
	FilterAvgNanos  int64
	GroupByCount    int64
	GroupByGroups   int64
	GroupByAvgNanos int64
	FetchCount      int64
	FetchRows       int64
}
