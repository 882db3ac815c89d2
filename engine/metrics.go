// SPDX-License-Identifier: MIT

package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector receives one event per engine outcome.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordSearch is called after each permutation search.
	// score is the winning score (+Inf for a rejected first dataset);
	// err is nil if the search succeeded.
	RecordSearch(duration time.Duration, score float64, err error)

	// RecordFallback is called when a failed search is answered by the
	// identity relabeling. cause is the search error.
	RecordFallback(cause error)

	// RecordReject is called whenever a comparison ends at +Inf.
	// reason is one of the Reason* constants.
	RecordReject(reason string)
}

// NoopMetricsCollector discards every event.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(time.Duration, float64, error) {}
func (NoopMetricsCollector) RecordFallback(error)                       {}
func (NoopMetricsCollector) RecordReject(string)                        {}

// BasicMetricsCollector keeps simple in-memory counters.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	FallbackCount    atomic.Int64
	RejectCount      atomic.Int64

	mu      sync.Mutex
	reasons map[string]int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, _ float64, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFallback(error) {
	b.FallbackCount.Add(1)
}

// RecordReject implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReject(reason string) {
	b.RejectCount.Add(1)
	b.mu.Lock()
	if b.reasons == nil {
		b.reasons = make(map[string]int64)
	}
	b.reasons[reason]++
	b.mu.Unlock()
}

// Rejects returns how many rejections carried reason.
func (b *BasicMetricsCollector) Rejects(reason string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reasons[reason]
}

// Stats returns a snapshot of the counters.
func (b *BasicMetricsCollector) Stats() MetricsStats {
	searches := b.SearchCount.Load()
	stats := MetricsStats{
		SearchCount:   searches,
		SearchErrors:  b.SearchErrors.Load(),
		FallbackCount: b.FallbackCount.Load(),
		RejectCount:   b.RejectCount.Load(),
	}
	if searches > 0 {
		stats.AvgSearchLatency = time.Duration(b.SearchTotalNanos.Load() / searches)
	}

	return stats
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector.
type MetricsStats struct {
	SearchCount      int64
	SearchErrors     int64
	FallbackCount    int64
	RejectCount      int64
	AvgSearchLatency time.Duration
}

// Compile-time interface checks.
var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)
