// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/penalty"
)

// Logger wraps slog.Logger with the engine's field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
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

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDemes adds the deme counts of both datasets.
func (l *Logger) WithDemes(demes1, demes2 int) *Logger {
	return &Logger{
		Logger: l.Logger.With("demes1", demes1, "demes2", demes2),
	}
}

// LogSearch logs a finished permutation search.
func (l *Logger) LogSearch(ctx context.Context, res Result, took time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "search failed",
			"duration", took,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		scoreAttr(res.Score),
		"permutation", res.Permutation,
		"structural", res.Structural,
		"distributional", res.Distributional,
		"point_cloud", res.PointCloud,
		"candidates", res.Candidates,
		"duration", took,
	)
}

// LogReject logs a comparison answered with +Inf.
func (l *Logger) LogReject(ctx context.Context, reason string, err error) {
	if err != nil {
		l.WarnContext(ctx, "comparison rejected",
			"reason", reason,
			scoreAttr(penalty.Reject()),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "comparison rejected",
		"reason", reason,
		scoreAttr(penalty.Reject()),
	)
}

// LogFallback logs a search failure answered by the identity relabeling.
func (l *Logger) LogFallback(ctx context.Context, score float64, cause error) {
	l.WarnContext(ctx, "search failed, scored identity relabeling",
		scoreAttr(score),
		"error", cause,
	)
}

// LogInputs logs per-deme summaries of both datasets at Debug level.
// Summaries are only computed when Debug is enabled.
func (l *Logger) LogInputs(ctx context.Context, n1, n2 deme.Normalized) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for i, n := range []deme.Normalized{n1, n2} {
		sums, err := deme.Summarize(n)
		if err != nil {
			l.DebugContext(ctx, "dataset summary unavailable", "dataset", i+1, "error", err)
			continue
		}
		means := make([]float64, len(sums))
		for k, s := range sums {
			means[k] = s.Mean
		}
		l.DebugContext(ctx, "dataset summary",
			"dataset", i+1,
			"sides", n.Sides,
			"sites", n.Sites(),
			"means", means,
		)
	}
}

// scoreAttr renders +Inf as a string; JSON has no infinity literal.
func scoreAttr(score float64) slog.Attr {
	if penalty.IsReject(score) {
		return slog.String("score", "+Inf")
	}
	return slog.Float64("score", score)
}
