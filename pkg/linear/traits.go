package linear

import (
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"github.com/golang/geo/r2"
)

// Traits implements traits.Geometry for linear curves.
type Traits struct{}

var _ traits.Geometry[r2.Point, Curve] = Traits{}

func sign(x float64) traits.Comparison { return traits.Compare(x, 0) }

func (Traits) ParameterSpaceInX(cv Curve, end traits.CurveEnd) traits.ParameterSpace {
	if end == traits.MinEnd {
		if cv.hasMin || cv.IsVertical() {
			return traits.Interior
		}
		return traits.LeftBoundary
	}
	if cv.hasMax || cv.IsVertical() {
		return traits.Interior
	}
	return traits.RightBoundary
}

// ParameterSpaceInY is only off the interior for the unbounded ends of
// vertical curves; other unbounded ends are classified by x.
func (Traits) ParameterSpaceInY(cv Curve, end traits.CurveEnd) traits.ParameterSpace {
	if !cv.IsVertical() {
		return traits.Interior
	}
	if end == traits.MinEnd {
		if cv.hasMin {
			return traits.Interior
		}
		return traits.BottomBoundary
	}
	if cv.hasMax {
		return traits.Interior
	}
	return traits.TopBoundary
}

func (Traits) MinVertex(cv Curve) r2.Point { return cv.min }
func (Traits) MaxVertex(cv Curve) r2.Point { return cv.max }

func (Traits) EqualPoints(p, q r2.Point) bool { return p == q }

func (Traits) EqualCurves(c1, c2 Curve) bool {
	if c1.hasMin != c2.hasMin || c1.hasMax != c2.hasMax {
		return false
	}
	if (c1.hasMin && c1.min != c2.min) || (c1.hasMax && c1.max != c2.max) {
		return false
	}
	d := c1.Dir()
	return d.Cross(c2.Dir()) == 0 && d.Cross(c2.min.Sub(c1.min)) == 0
}

func (Traits) CompareX(p, q r2.Point) traits.Comparison { return traits.Compare(p.X, q.X) }

func (Traits) CompareXY(p, q r2.Point) traits.Comparison {
	if r := traits.Compare(p.X, q.X); r != traits.Equal {
		return r
	}
	return traits.Compare(p.Y, q.Y)
}

// CompareYAtX compares p with cv above p.X. For a vertical curve p is equal
// when it lies within the curve's y-range.
func (Traits) CompareYAtX(p r2.Point, cv Curve) traits.Comparison {
	if cv.IsVertical() {
		switch {
		case cv.hasMin && p.Y < cv.min.Y:
			return traits.Smaller
		case cv.hasMax && p.Y > cv.max.Y:
			return traits.Larger
		}
		return traits.Equal
	}
	return sign(cv.Dir().Cross(p.Sub(cv.min)))
}

// CompareYAtXRight compares the slopes of c1 and c2. A vertical curve
// leaving p upwards is above everything else.
func (Traits) CompareYAtXRight(c1, c2 Curve, _ r2.Point) traits.Comparison {
	return sign(c2.Dir().Cross(c1.Dir()))
}

func (Traits) IsVertical(cv Curve) bool { return cv.IsVertical() }

// away returns the direction in which cv leaves its end at p.
func away(cv Curve, right bool) r2.Point {
	if right {
		return cv.Dir()
	}
	return cv.Dir().Mul(-1)
}

// cwHalf places v in the clockwise sweep that starts at a: 0 for angles in
// (0, pi], 1 for (pi, 2pi) and 2 for a itself.
func cwHalf(a, v r2.Point) int {
	c := a.Cross(v)
	switch {
	case c < 0 || (c == 0 && a.Dot(v) < 0):
		return 0
	case c > 0:
		return 1
	}
	return 2
}

// cwBefore reports whether u comes strictly before w when sweeping
// clockwise from a.
func cwBefore(a, u, w r2.Point) bool {
	hu, hw := cwHalf(a, u), cwHalf(a, w)
	if hu != hw {
		return hu < hw
	}
	if hu == 2 {
		return false
	}
	return u.Cross(w) < 0
}

func sameDirection(u, w r2.Point) bool { return u.Cross(w) == 0 && u.Dot(w) > 0 }

func (Traits) IsBetweenCW(cv Curve, cvRight bool, c1 Curve, c1Right bool, c2 Curve, c2Right bool, _ r2.Point) (between, eq1, eq2 bool) {
	d, d1, d2 := away(cv, cvRight), away(c1, c1Right), away(c2, c2Right)
	eq1, eq2 = sameDirection(d, d1), sameDirection(d, d2)
	if eq1 || eq2 {
		return false, eq1, eq2
	}
	return cwBefore(d1, d, d2), false, false
}

// CompareXOnBoundary compares p.X with the x-coordinate of a vertical curve
// that reaches the bottom or top.
func (Traits) CompareXOnBoundary(p r2.Point, cv Curve, _ traits.CurveEnd) traits.Comparison {
	return traits.Compare(p.X, cv.min.X)
}

func (Traits) CompareXCurveEndsOnBoundary(c1 Curve, _ traits.CurveEnd, c2 Curve, _ traits.CurveEnd) traits.Comparison {
	return traits.Compare(c1.min.X, c2.min.X)
}

func (Traits) CompareYOnBoundary(p, q r2.Point) traits.Comparison { return traits.Compare(p.Y, q.Y) }

// CompareYNearBoundary compares two curves where they approach x = -inf
// (MinEnd) or x = +inf (MaxEnd): by slope first, by offset for parallel
// curves.
func (Traits) CompareYNearBoundary(c1, c2 Curve, end traits.CurveEnd) traits.Comparison {
	if r := sign(c2.Dir().Cross(c1.Dir())); r != traits.Equal {
		if end == traits.MinEnd {
			return r.Opposite()
		}
		return r
	}
	return sign(c2.Dir().Cross(c1.min.Sub(c2.min)))
}
