// SPDX-License-Identifier: MIT

// Package promobserver exports engine metrics to Prometheus.
//
// Collector implements engine.MetricsCollector:
//
//	<ns>_search_duration_seconds{status}  histogram, status ok|error|rejected
//	<ns>_search_score                     histogram of finite winning scores
//	<ns>_fallbacks_total                  counter
//	<ns>_rejects_total{reason}            counter
package promobserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/demedist/engine"
	"github.com/katalvlaran/demedist/penalty"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "demedist"

// Search status label values.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusRejected = "rejected"
)

// ErrNilRegisterer is returned by NewCollector for a nil registerer.
var ErrNilRegisterer = errors.New("promobserver: nil registerer")

// DefaultScoreBuckets spans legitimate scores and the penalty rungs.
var DefaultScoreBuckets = []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, penalty.Structural, penalty.Distributional, 10 * penalty.Distributional, 100 * penalty.Distributional}

// Config names and shapes the metrics.
type Config struct {
	Namespace    string    // DefaultNamespace when empty
	Subsystem    string    // optional
	Buckets      []float64 // latency buckets; prometheus.DefBuckets when nil
	ScoreBuckets []float64 // DefaultScoreBuckets when nil
}

// Collector is an engine.MetricsCollector backed by Prometheus metrics.
type Collector struct {
	latency   *prometheus.HistogramVec
	score     prometheus.Histogram
	fallbacks prometheus.Counter
	rejects   *prometheus.CounterVec
}

var _ engine.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
//
// Errors: ErrNilRegisterer, or the registration error from reg (for example
// prometheus.AlreadyRegisteredError when two collectors share a namespace).
func NewCollector(reg prometheus.Registerer, cfg Config) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.ScoreBuckets == nil {
		cfg.ScoreBuckets = DefaultScoreBuckets
	}

	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "search_duration_seconds",
			Help:      "Duration of permutation searches.",
			Buckets:   cfg.Buckets,
		}, []string{"status"}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "search_score",
			Help:      "Finite winning scores of permutation searches.",
			Buckets:   cfg.ScoreBuckets,
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "fallbacks_total",
			Help:      "Failed searches answered by the identity relabeling.",
		}),
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "rejects_total",
			Help:      "Comparisons answered with +Inf, by reason.",
		}, []string{"reason"}),
	}
	for _, m := range []prometheus.Collector{c.latency, c.score, c.fallbacks, c.rejects} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("promobserver: register: %w", err)
		}
	}

	return c, nil
}

// RecordSearch implements engine.MetricsCollector.
func (c *Collector) RecordSearch(d time.Duration, score float64, err error) {
	status := StatusOK
	switch {
	case err != nil:
		status = StatusError
	case penalty.IsReject(score):
		status = StatusRejected
	default:
		c.score.Observe(score)
	}
	c.latency.WithLabelValues(status).Observe(d.Seconds())
}

// RecordFallback implements engine.MetricsCollector.
func (c *Collector) RecordFallback(error) {
	c.fallbacks.Inc()
}

// RecordReject implements engine.MetricsCollector.
func (c *Collector) RecordReject(reason string) {
	c.rejects.WithLabelValues(reason).Inc()
}
