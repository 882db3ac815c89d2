// SPDX-License-Identifier: MIT

package deme

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of one deme's methylation array.
type Summary struct {
	Sites  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Validate checks that every deme has at least one site and that every value
// is a finite fraction in [0,1]. Deme count is not checked.
//
// Complexity: O(total sites).
func Validate(n Normalized) error {
	for i, a := range n.Arrays {
		if len(a) == 0 {
			return fmt.Errorf("Validate: deme %d: %w", i, ErrEmptyArray)
		}
		for _, v := range a {
			if math.IsNaN(v) {
				return fmt.Errorf("Validate: deme %d: %w", i, ErrValueRange)
			}
		}
		lo, err := stats.Min(a)
		if err != nil {
			return fmt.Errorf("Validate: deme %d: %w", i, err)
		}
		hi, err := stats.Max(a)
		if err != nil {
			return fmt.Errorf("Validate: deme %d: %w", i, err)
		}
		if lo < 0 || hi > 1 {
			return fmt.Errorf("Validate: deme %d: [%g,%g]: %w", i, lo, hi, ErrValueRange)
		}
	}

	return nil
}

// Summarize returns one Summary per deme, in Normalized order.
// Fails with ErrEmptyArray if a deme has no sites.
func Summarize(n Normalized) ([]Summary, error) {
	out := make([]Summary, n.Len())
	for i, a := range n.Arrays {
		if len(a) == 0 {
			return nil, fmt.Errorf("Summarize: deme %d: %w", i, ErrEmptyArray)
		}
		s, err := summarize(a)
		if err != nil {
			return nil, fmt.Errorf("Summarize: deme %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

func summarize(a []float64) (Summary, error) {
	var (
		s   = Summary{Sites: len(a)}
		err error
	)
	if s.Mean, err = stats.Mean(a); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(a); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(a); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(a); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(a); err != nil {
		return Summary{}, err
	}

	return s, nil
}
