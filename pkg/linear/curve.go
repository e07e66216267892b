// Package linear provides geometry traits for linear curves in the plane:
// segments, rays and full lines over r2.Point. Coordinates are compared
// exactly, so inputs are expected to be snapped by the caller.
package linear

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

type Kind int8

const (
	Segment Kind = iota
	Ray
	Line
)

func (k Kind) String() string {
	switch k {
	case Segment:
		return "segment"
	case Ray:
		return "ray"
	case Line:
		return "line"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Curve is an x-monotone linear curve. min and max are points of the
// supporting line with min lexicographically smaller than max; the curve
// ends at them only where hasMin and hasMax say so.
type Curve struct {
	min, max       r2.Point
	hasMin, hasMax bool
}

func less(p, q r2.Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// NewSegment returns the segment between two distinct points.
func NewSegment(p, q r2.Point) Curve {
	if p == q {
		panic(fmt.Sprintf("linear: degenerate segment at %v", p))
	}
	if less(q, p) {
		p, q = q, p
	}
	return Curve{min: p, max: q, hasMin: true, hasMax: true}
}

// NewRay returns the ray that starts at src and passes through through.
func NewRay(src, through r2.Point) Curve {
	if src == through {
		panic(fmt.Sprintf("linear: degenerate ray at %v", src))
	}
	if less(src, through) {
		return Curve{min: src, max: through, hasMin: true}
	}
	return Curve{min: through, max: src, hasMax: true}
}

// NewLine returns the line through two distinct points.
func NewLine(p, q r2.Point) Curve {
	if p == q {
		panic(fmt.Sprintf("linear: degenerate line at %v", p))
	}
	if less(q, p) {
		p, q = q, p
	}
	return Curve{min: p, max: q}
}

func (c Curve) Kind() Kind {
	switch {
	case c.hasMin && c.hasMax:
		return Segment
	case c.hasMin || c.hasMax:
		return Ray
	}
	return Line
}

// Source returns the bounded end of a ray or the smaller end of a segment.
func (c Curve) Source() r2.Point {
	if !c.hasMin && c.hasMax {
		return c.max
	}
	return c.min
}

// Through returns the second defining point: the larger end of a segment, a
// point the ray or line passes through otherwise.
func (c Curve) Through() r2.Point {
	if !c.hasMin && c.hasMax {
		return c.min
	}
	return c.max
}

// Dir is the direction of the supporting line, pointing to the larger end.
func (c Curve) Dir() r2.Point { return c.max.Sub(c.min) }

func (c Curve) IsVertical() bool { return c.min.X == c.max.X }

// HasMin and HasMax report whether the curve ends on its min or max side.
func (c Curve) HasMin() bool { return c.hasMin }
func (c Curve) HasMax() bool { return c.hasMax }

// Min and Max return the defining points. They are curve ends only when
// HasMin and HasMax are set.
func (c Curve) Min() r2.Point { return c.min }
func (c Curve) Max() r2.Point { return c.max }

// Contains reports whether p lies on the curve.
func (c Curve) Contains(p r2.Point) bool {
	if c.Dir().Cross(p.Sub(c.min)) != 0 {
		return false
	}
	if c.hasMin && less(p, c.min) {
		return false
	}
	if c.hasMax && less(c.max, p) {
		return false
	}
	return true
}

// Split cuts the curve at p, which must lie strictly inside it, and returns
// the pieces on the min side and on the max side.
func (c Curve) Split(p r2.Point) (Curve, Curve) {
	if !c.Contains(p) || (c.hasMin && p == c.min) || (c.hasMax && p == c.max) {
		panic(fmt.Sprintf("linear: %v is not in the interior of %v", p, c))
	}
	lo, hi := c, c
	lo.max, lo.hasMax = p, true
	hi.min, hi.hasMin = p, true
	// keep a second defining point on the unbounded side
	if !c.hasMin {
		lo.min = p.Sub(c.Dir())
	}
	if !c.hasMax {
		hi.max = p.Add(c.Dir())
	}
	return lo, hi
}

// Merge joins two curves that share an end and lie on the same line.
func Merge(c1, c2 Curve) (Curve, bool) {
	if c2.hasMax && c1.hasMin && c2.max == c1.min {
		c1, c2 = c2, c1
	}
	if !c1.hasMax || !c2.hasMin || c1.max != c2.min {
		return Curve{}, false
	}
	if c1.Dir().Cross(c2.Dir()) != 0 {
		return Curve{}, false
	}
	return Curve{min: c1.min, max: c2.max, hasMin: c1.hasMin, hasMax: c2.hasMax}, true
}

// span returns the parameter range of c along the line min + t*Dir.
func (c Curve) span() (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if c.hasMin {
		lo = 0
	}
	if c.hasMax {
		hi = 1
	}
	return lo, hi
}

// InteriorMeets reports whether other meets c anywhere except at the ends
// of c. Overlapping collinear curves always meet.
func InteriorMeets(c, other Curve) bool {
	d1, d2 := c.Dir(), other.Dir()
	w := other.min.Sub(c.min)
	den := d1.Cross(d2)

	if den == 0 {
		if d1.Cross(w) != 0 {
			return false
		}
		// Collinear: compare the spans in the parameter of c.
		lo1, hi1 := c.span()
		lo2, hi2 := other.span()
		at := func(t float64) float64 { return (w.Dot(d1) + t*d2.Dot(d1)) / d1.Dot(d1) }
		if !math.IsInf(lo2, 0) {
			lo2 = at(lo2)
		}
		if !math.IsInf(hi2, 0) {
			hi2 = at(hi2)
		}
		return math.Min(hi1, hi2) > math.Max(lo1, lo2)
	}

	n1, n2 := w.Cross(d2), w.Cross(d1)
	if den < 0 {
		den, n1, n2 = -den, -n1, -n2
	}
	// The lines meet at c.min + (n1/den)*d1 = other.min + (n2/den)*d2.
	if (c.hasMin && n1 < 0) || (c.hasMax && n1 > den) {
		return false
	}
	if (other.hasMin && n2 < 0) || (other.hasMax && n2 > den) {
		return false
	}
	atEnd := (c.hasMin && n1 == 0) || (c.hasMax && n1 == den)
	return !atEnd
}

func (c Curve) String() string {
	switch c.Kind() {
	case Segment:
		return fmt.Sprintf("segment[%v, %v]", c.min, c.max)
	case Ray:
		return fmt.Sprintf("ray[%v -> %v]", c.Source(), c.Through())
	}
	return fmt.Sprintf("line[%v, %v]", c.min, c.max)
}
