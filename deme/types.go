// SPDX-License-Identifier: MIT

package deme

import "fmt"

const (
	// Count is the number of demes in a comparable dataset.
	Count = 8

	// PerSide is the number of demes on each side.
	PerSide = Count / 2
)

// Side is the physical side / lineage group of a deme.
type Side int

const (
	// SideA is the first lineage group.
	SideA Side = iota
	// SideB is the second lineage group.
	SideB
)

// String renders the side as the simulator writes it ("A" or "B").
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is SideA or SideB.
func (s Side) Valid() bool { return s == SideA || s == SideB }

// ParseSide maps "A"/"B" onto a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "A":
		return SideA, nil
	case "B":
		return SideB, nil
	default:
		return 0, fmt.Errorf("ParseSide(%q): %w", s, ErrUnknownSide)
	}
}

// Record is one row of simulator output.
type Record struct {
	Side       Side      // lineage group
	OriginTime float64   // ordering key for the canonical deme order
	Generation float64   // simulator generation the row was written at
	Array      []float64 // methylation fraction per fCpG site, in [0,1]
}

// Dataset is either Structured or Columnar.
// The unexported method closes the set of variants.
type Dataset interface {
	// Len returns the number of demes.
	Len() int

	normalize() (Normalized, error)
}

// Structured is a dataset in simulator format.
type Structured struct {
	Records []Record
}

// Columnar is a dataset in observed format: one column per deme and no side
// metadata. Names is optional; when set it must match Columns in length.
type Columnar struct {
	Names   []string
	Columns [][]float64
}

// Compile-time assertions for the closed variant set.
var (
	_ Dataset = Structured{}
	_ Dataset = Columnar{}
)

// Len returns the number of records.
func (s Structured) Len() int { return len(s.Records) }

// Len returns the number of columns.
func (c Columnar) Len() int { return len(c.Columns) }

// Normalized is the format-agnostic representation consumed by every metric.
// Arrays[i] is the methylation array of deme i and Sides[i] its side.
type Normalized struct {
	Arrays [][]float64
	Sides  []Side
}

// Len returns the number of demes.
func (n Normalized) Len() int { return len(n.Arrays) }
