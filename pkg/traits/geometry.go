package traits

// Geometry is the set of geometric predicates and constructions the
// arrangement and the topologies need. P is the point type and C the
// x-monotone curve type.
type Geometry[P, C any] interface {
	ParameterSpaceInX(cv C, end CurveEnd) ParameterSpace
	ParameterSpaceInY(cv C, end CurveEnd) ParameterSpace

	// MinVertex and MaxVertex return the lexicographically smaller and
	// larger endpoints. They must only be called for ends in the interior.
	MinVertex(cv C) P
	MaxVertex(cv C) P

	EqualPoints(p, q P) bool
	EqualCurves(c1, c2 C) bool

	CompareX(p, q P) Comparison
	CompareXY(p, q P) Comparison

	// CompareYAtX compares p with the curve at the x-coordinate of p, which
	// must lie in the x-range of cv.
	CompareYAtX(p P, cv C) Comparison

	// CompareYAtXRight compares two curves immediately to the right of p,
	// where both are defined.
	CompareYAtXRight(c1, c2 C, p P) Comparison

	IsVertical(cv C) bool

	// IsBetweenCW reports whether cv is encountered strictly between c1 and
	// c2 when moving clockwise around p starting at c1. The bool after each
	// curve tells whether that curve extends to the right of p. eq1 and eq2
	// report an overlap of cv with c1 and c2.
	IsBetweenCW(cv C, cvRight bool, c1 C, c1Right bool, c2 C, c2Right bool, p P) (between, eq1, eq2 bool)

	// CompareXOnBoundary compares the x-coordinate of p with the x-limit of a
	// curve end that lies on the bottom or top boundary.
	CompareXOnBoundary(p P, cv C, end CurveEnd) Comparison

	// CompareXCurveEndsOnBoundary compares the x-limits of two curve ends on
	// the bottom or top boundary.
	CompareXCurveEndsOnBoundary(c1 C, e1 CurveEnd, c2 C, e2 CurveEnd) Comparison

	// CompareYOnBoundary compares two points on a left or right boundary.
	CompareYOnBoundary(p, q P) Comparison

	// CompareYNearBoundary compares two curve ends that approach the same
	// left or right side.
	CompareYNearBoundary(c1, c2 C, end CurveEnd) Comparison
}

// Cloner is implemented by geometry traits whose points or curves hold
// references. The arrangement stores clones and never keeps caller values.
type Cloner[P, C any] interface {
	ClonePoint(p P) P
	CloneCurve(cv C) C
}
