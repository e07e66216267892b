// Package traits holds the vocabulary shared by the arrangement core and its
// geometry and topology collaborators.
package traits

import "fmt"

// ParameterSpace classifies where a curve end or vertex lies relative to the
// boundary of the parameter space.
type ParameterSpace int8

const (
	Interior ParameterSpace = iota
	LeftBoundary
	RightBoundary
	BottomBoundary
	TopBoundary
)

func (ps ParameterSpace) String() string {
	switch ps {
	case Interior:
		return "interior"
	case LeftBoundary:
		return "left"
	case RightBoundary:
		return "right"
	case BottomBoundary:
		return "bottom"
	case TopBoundary:
		return "top"
	}
	return fmt.Sprintf("ParameterSpace(%d)", int8(ps))
}

// CurveEnd selects one of the two ends of an x-monotone curve.
type CurveEnd int8

const (
	MinEnd CurveEnd = iota
	MaxEnd
)

func (e CurveEnd) Opposite() CurveEnd {
	if e == MinEnd {
		return MaxEnd
	}
	return MinEnd
}

func (e CurveEnd) String() string {
	if e == MinEnd {
		return "min"
	}
	return "max"
}

// Comparison is the result of a three-way predicate.
type Comparison int8

const (
	Smaller Comparison = -1
	Equal   Comparison = 0
	Larger  Comparison = 1
)

func (c Comparison) Opposite() Comparison { return -c }

func (c Comparison) String() string {
	switch c {
	case Smaller:
		return "smaller"
	case Equal:
		return "equal"
	case Larger:
		return "larger"
	}
	return fmt.Sprintf("Comparison(%d)", int8(c))
}

// Compare is a Comparison for ordered values.
func Compare[T int | int8 | int32 | int64 | float64](a, b T) Comparison {
	switch {
	case a < b:
		return Smaller
	case a > b:
		return Larger
	}
	return Equal
}

// SideCategory tells how a side of the parameter space behaves.
type SideCategory int8

const (
	// Oblivious sides are never reached by a curve.
	Oblivious SideCategory = iota
	// Open sides are at infinity: vertices there carry no point.
	Open
	// Closed sides carry points.
	Closed
	// Contracted sides collapse to a single point.
	Contracted
	// Identified sides are glued to the opposite side.
	Identified
)

// Signs is the pair of crossing signs of a closed path with respect to the
// identification curves in x and in y.
type Signs struct {
	X, Y int
}

func (s Signs) IsZero() bool { return s.X == 0 && s.Y == 0 }

func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
