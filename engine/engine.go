// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/penalty"
	"github.com/katalvlaran/demedist/permute"
	"github.com/katalvlaran/demedist/structural"
	"github.com/katalvlaran/demedist/transport"
)

// Engine compares deme datasets. It holds only its resolved Options and is
// safe for concurrent use.
type Engine struct {
	opts Options
}

// Result is the outcome of one comparison.
type Result struct {
	// Score is Structural + Distributional + PointCloud, or +Inf.
	Score float64

	// Permutation relabels the first dataset: position k holds its deme
	// Permutation[k]. Nil when the comparison failed outright.
	Permutation permute.Permutation

	// Index is the candidate index of Permutation in its permute.Space,
	// or -1 when the result did not come from the search.
	Index int

	// Component scores under Permutation.
	Structural     float64
	Distributional float64
	PointCloud     float64

	// Candidates is the number of relabelings scored.
	Candidates int

	// Fallback is set when the search failed and the identity was scored.
	Fallback bool

	// Err is the cause of a fallback or a +Inf score, if any.
	Err error
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (e *Engine) Options() Options { return e.opts }

// TotalDistance is Compare(...).Score: a finite non-negative score or +Inf.
// It never panics and never returns NaN.
func (e *Engine) TotalDistance(ctx context.Context, d1, d2 deme.Dataset) float64 {
	return e.Compare(ctx, d1, d2).Score
}

// TotalDistance compares d1 with d2 using a default Engine.
func TotalDistance(d1, d2 deme.Dataset) float64 {
	return New().TotalDistance(context.Background(), d1, d2)
}

// Compare runs the search and applies the failure ladder.
//
// Implementation:
//   - Stage 1: Search; on success return its result.
//   - Stage 2: unless the fallback is disabled or ctx ended the search, score the
//     identity relabeling with Evaluate and flag the result as a fallback.
//   - Stage 3: if that fails too, return +Inf with the joined causes.
//
// Panics anywhere in the ladder end at +Inf.
func (e *Engine) Compare(ctx context.Context, d1, d2 deme.Dataset) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = e.reject(ctx, ReasonFailure, nil, fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	res, err := e.Search(ctx, d1, d2)
	if err == nil {
		return res
	}
	if !e.opts.fallback || isContextErr(err) {
		return e.reject(ctx, ReasonFailure, nil, err)
	}

	e.opts.metrics.RecordFallback(err)
	fb, ferr := e.Evaluate(d1, d2, nil)
	if ferr != nil {
		return e.reject(ctx, ReasonFailure, nil, errors.Join(err, ferr))
	}
	fb.Fallback = true
	fb.Err = err
	e.opts.logger.LogFallback(ctx, fb.Score, err)

	return fb
}

// Search finds the relabeling of d1 closest to d2.
//
// A first dataset without deme.Count demes split deme.PerSide per side is
// not an error: the result holds the identity and +Inf.
//
// Errors: normalization and validation errors from package deme, metric
// errors (structural.ErrLengthMismatch, wasserstein.ErrEmpty, ...),
// ErrNaNScore, ErrNoCandidate, ErrPanic, and ctx.Err().
//
// Complexity: O(1152·Count²) on warm tables plus one O(S³) assignment per
// reachable point-cloud cell, spread over Options.Workers goroutines.
func (e *Engine) Search(ctx context.Context, d1, d2 deme.Dataset) (res Result, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("%w: %v", ErrPanic, r)
		}
		took := time.Since(start)
		e.opts.metrics.RecordSearch(took, res.Score, err)
		e.opts.logger.LogSearch(ctx, res, took, err)
	}()

	n1, n2, err := e.normalize(d1, d2)
	if err != nil {
		return Result{}, err
	}

	return e.search(ctx, n1, n2)
}

// Evaluate scores d1 relabeled by p against d2 without searching.
// A nil p means the identity. Wrong deme counts are scored with penalties.
//
// Errors: as Search, plus permute/transport errors for an invalid p.
func (e *Engine) Evaluate(d1, d2 deme.Dataset, p permute.Permutation) (res Result, err error) {
	defer recoverInto(&err)

	n1, n2, err := e.normalize(d1, d2)
	if err != nil {
		return Result{}, err
	}

	return evaluate(n1, n2, p)
}

func evaluate(n1, n2 deme.Normalized, p permute.Permutation) (Result, error) {
	if p == nil {
		p = permute.Identity(n1.Len())
	}
	st, err := structural.Distance(n1, n2, structuralPerm(n1, p))
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	di, err := transport.Distributional(n1, n2, transportPerm(n1, n2, p))
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	pc, err := transport.PointCloud(n1, n2, transportPerm(n1, n2, p))
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	b := breakdown{structural: st, distributional: di, pointCloud: pc}
	if err = b.sum(); err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}

	return Result{
		Score:          b.total,
		Permutation:    p,
		Index:          -1,
		Structural:     st,
		Distributional: di,
		PointCloud:     pc,
		Candidates:     1,
	}, nil
}

// structuralPerm drops p when n1 is scored by the constant penalty matrix,
// which has Count rows whatever n1's length.
func structuralPerm(n1 deme.Normalized, p permute.Permutation) []int {
	if n1.Len() != deme.Count {
		return nil
	}
	return p
}

// transportPerm drops p when the transport metrics answer with penalties.
func transportPerm(n1, n2 deme.Normalized, p permute.Permutation) []int {
	if n1.Len() != deme.Count || n2.Len() != deme.Count {
		return nil
	}
	return p
}

// normalize converts both datasets and, in strict mode, validates them.
func (e *Engine) normalize(d1, d2 deme.Dataset) (n1, n2 deme.Normalized, err error) {
	if n1, err = deme.Normalize(d1); err != nil {
		return n1, n2, fmt.Errorf("dataset 1: %w", err)
	}
	if n2, err = deme.Normalize(d2); err != nil {
		return n1, n2, fmt.Errorf("dataset 2: %w", err)
	}
	if e.opts.strictInput {
		if err = deme.Validate(n1); err != nil {
			return n1, n2, fmt.Errorf("dataset 1: %w", err)
		}
		if err = deme.Validate(n2); err != nil {
			return n1, n2, fmt.Errorf("dataset 2: %w", err)
		}
	}

	return n1, n2, nil
}

// reject builds a +Inf result and reports it.
func (e *Engine) reject(ctx context.Context, reason string, p permute.Permutation, cause error) Result {
	e.opts.metrics.RecordReject(reason)
	e.opts.logger.LogReject(ctx, reason, cause)

	return Result{Score: penalty.Reject(), Permutation: p, Index: -1, Err: cause}
}

// recoverInto turns a panic into an ErrPanic error. Use as defer recoverInto(&err).
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrPanic, r)
	}
}
