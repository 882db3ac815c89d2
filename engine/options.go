// SPDX-License-Identifier: MIT

// Package engine: functional configuration of an Engine.
//
// Options are resolved once in New; an Engine never changes its
// configuration afterwards.

package engine

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultFallback scores the identity relabeling when the search fails.
	DefaultFallback = true

	// DefaultStrictInput skips deme.Validate; out-of-range values are scored as is.
	DefaultStrictInput = false

	// chunksPerWorker is the number of contiguous candidate chunks per worker.
	chunksPerWorker = 4
)

// ---------- Internal panic messages ----------

const (
	panicWorkersNegative = "engine: WithWorkers: n must be >= 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of an Engine.
type Options struct {
	workers     int              // > 0 once resolved
	logger      *Logger          // never nil once resolved
	metrics     MetricsCollector // never nil once resolved
	fallback    bool             // DefaultFallback
	strictInput bool             // DefaultStrictInput
}

// WithWorkers bounds the number of goroutines scoring candidates.
// 0 selects runtime.GOMAXPROCS(0); 1 runs the search sequentially.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger. nil restores NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics sets the metrics collector. nil restores NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) { o.metrics = m }
}

// WithFallback toggles the identity fallback of TotalDistance and Compare.
// With the fallback disabled a failed search yields +Inf directly.
func WithFallback(enabled bool) Option {
	return func(o *Options) { o.fallback = enabled }
}

// WithStrictInput runs deme.Validate on both datasets before scoring, so NaN
// or out-of-range methylation values fail the comparison.
func WithStrictInput(enabled bool) Option {
	return func(o *Options) { o.strictInput = enabled }
}

// DefaultOptions returns the resolved defaults.
func DefaultOptions() Options {
	return gatherOptions()
}

// gatherOptions applies opts over the defaults and resolves zero values.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		fallback:    DefaultFallback,
		strictInput: DefaultStrictInput,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	return o
}

// Workers returns the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// Fallback reports whether the identity fallback is enabled.
func (o Options) Fallback() bool { return o.fallback }

// StrictInput reports whether inputs are validated before scoring.
func (o Options) StrictInput() bool { return o.strictInput }
