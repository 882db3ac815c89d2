// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/matrix"
	"github.com/katalvlaran/demedist/permute"
	"github.com/katalvlaran/demedist/structural"
	"github.com/katalvlaran/demedist/transport"
)

// breakdown holds the three components of one candidate and their sum.
type breakdown struct {
	structural     float64
	distributional float64
	pointCloud     float64
	total          float64
}

// sum fixes the summation order so every path produces the same bits.
func (b *breakdown) sum() error {
	b.total = b.structural + b.distributional + b.pointCloud
	if math.IsNaN(b.total) {
		return ErrNaNScore
	}
	return nil
}

// candidateHook, when set by tests, runs before each candidate is scored.
var candidateHook func(idx int) error

// candidate is a (score, index) pair; idx -1 means none yet.
type candidate struct {
	idx   int
	score float64
}

func noCandidate() candidate { return candidate{idx: -1, score: math.Inf(1)} }

// scorer evaluates candidates against per-call memo tables.
type scorer struct {
	m1, m2 *matrix.Dense
	tab    *transport.Table
}

func (s scorer) score(p permute.Permutation, w *transport.Workspace) (breakdown, error) {
	pm, err := structural.Permuted(s.m1, p)
	if err != nil {
		return breakdown{}, err
	}
	st, err := structural.MatrixL2(pm, s.m2)
	if err != nil {
		return breakdown{}, err
	}
	b := breakdown{
		structural:     st,
		distributional: s.tab.Distributional(p),
		pointCloud:     s.tab.PointCloud(p, w),
	}

	return b, b.sum()
}

// scanRange scores candidates [lo, hi) and returns the first minimum.
func (s scorer) scanRange(ctx context.Context, space *permute.Space, lo, hi int) (candidate, error) {
	var (
		w    = transport.NewWorkspace()
		buf  = make(permute.Permutation, space.N())
		best = noCandidate()
	)
	for idx := lo; idx < hi; idx++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}
		if candidateHook != nil {
			if err := candidateHook(idx); err != nil {
				return best, err
			}
		}
		p, err := space.At(idx, buf)
		if err != nil {
			return best, err
		}
		b, err := s.score(p, w)
		if err != nil {
			return best, fmt.Errorf("candidate %d %v: %w", idx, p, err)
		}
		if b.total < best.score {
			best = candidate{idx: idx, score: b.total}
		}
	}

	return best, nil
}

// search runs the permutation search on normalized datasets.
//
// Implementation:
//   - Stage 1: partition n1 by side; a bad split is answered with +Inf.
//   - Stage 2: build the relabeling space and the memo tables (both deme
//     matrices, the Wasserstein table, the lazy point-cloud cells).
//   - Stage 3: scan contiguous chunks on an errgroup bounded by Workers;
//     each chunk reports its first minimum.
//   - Stage 4: reduce the chunk minima in chunk order with a strict <,
//     so the earliest candidate wins ties, then rescore the winner for
//     its breakdown.
func (e *Engine) search(ctx context.Context, n1, n2 deme.Normalized) (Result, error) {
	sideA, sideB, err := n1.Partition()
	if err != nil {
		reason := ReasonSideSplit
		if n1.Len() != deme.Count {
			reason = ReasonDemeCount
		}
		return e.reject(ctx, reason, permute.Identity(n1.Len()), err), nil
	}
	e.opts.logger.WithDemes(n1.Len(), n2.Len()).LogInputs(ctx, n1, n2)

	space, err := permute.NewSpace(sideA, sideB)
	if err != nil {
		return Result{}, err
	}
	s := scorer{}
	if s.m1, err = structural.DemeMatrix(n1); err != nil {
		return Result{}, fmt.Errorf("dataset 1: %w", err)
	}
	if s.m2, err = structural.DemeMatrix(n2); err != nil {
		return Result{}, fmt.Errorf("dataset 2: %w", err)
	}
	if s.tab, err = transport.NewTable(n1, n2); err != nil {
		return Result{}, err
	}

	best, err := e.scan(ctx, space, s)
	if err != nil {
		return Result{}, err
	}

	p, err := space.At(best.idx, nil)
	if err != nil {
		return Result{}, err
	}
	b, err := s.score(p, transport.NewWorkspace())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:          b.total,
		Permutation:    p,
		Index:          best.idx,
		Structural:     b.structural,
		Distributional: b.distributional,
		PointCloud:     b.pointCloud,
		Candidates:     space.Len(),
	}, nil
}

// scan is the map-reduce over the whole space.
func (e *Engine) scan(ctx context.Context, space *permute.Space, s scorer) (candidate, error) {
	total := space.Len()
	chunks := min(e.opts.workers*chunksPerWorker, total)
	size := (total + chunks - 1) / chunks
	chunks = (total + size - 1) / size

	local := make([]candidate, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for c := 0; c < chunks; c++ {
		lo, hi := c*size, min((c+1)*size, total)
		g.Go(func() (err error) {
			defer recoverInto(&err)
			local[c], err = s.scanRange(gctx, space, lo, hi)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	best := noCandidate()
	for _, c := range local {
		if c.idx >= 0 && c.score < best.score {
			best = c
		}
	}
	if best.idx < 0 {
		return candidate{}, ErrNoCandidate
	}

	return best, nil
}

// isContextErr reports whether err came from ctx cancellation.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
