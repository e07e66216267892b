package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// localMin is a vertex of a closed path reached from the right and left
// towards the right again. index counts the crossings of the path with the
// x-identification curve up to that vertex.
type localMin struct {
	he    dcel.HalfedgeID
	index int
}

// crossing updates the crossing counters for a path that arrives at a vertex
// through a curve end in (currX, currY) and leaves it through a curve end in
// (nextX, nextY).
func crossing(x, y *int, currX, currY, nextX, nextY traits.ParameterSpace) {
	switch {
	case currX == traits.LeftBoundary && nextX == traits.RightBoundary:
		*x--
	case currX == traits.RightBoundary && nextX == traits.LeftBoundary:
		*x++
	}
	switch {
	case currY == traits.BottomBoundary && nextY == traits.TopBoundary:
		*y--
	case currY == traits.TopBoundary && nextY == traits.BottomBoundary:
		*y++
	}
}

// endSpace returns the parameter space of the end of h's curve at its target
// (target=true) or source. Fictitious halfedges take the boundary of the
// vertex itself.
func (a *Arrangement[P, C]) endSpace(h dcel.HalfedgeID, target bool) (traits.ParameterSpace, traits.ParameterSpace) {
	cv, ok := a.d.Curve(h)
	if !ok {
		if target {
			return a.d.Boundary(a.d.Target(h))
		}
		return a.d.Boundary(a.d.Source(h))
	}
	l2r := a.d.Direction(h) == dcel.LeftToRight
	end := traits.MinEnd
	if l2r == target {
		end = traits.MaxEnd
	}
	return a.parameterSpace(cv, end)
}

// computeSignsForInsertion walks the closed path formed by heTo, the curve cv
// about to be inserted (traversed in direction cvDir) and the boundary chain
// from heAway back to heTo. It returns the crossing signs of the path and
// its local minima, excluding those at the ends of cv.
func (a *Arrangement[P, C]) computeSignsForInsertion(heTo dcel.HalfedgeID, cv C, cvDir dcel.Direction, heAway dcel.HalfedgeID) (traits.Signs, []localMin) {
	cvToEnd, cvAwayEnd := traits.MinEnd, traits.MaxEnd
	if cvDir == dcel.RightToLeft {
		cvToEnd, cvAwayEnd = traits.MaxEnd, traits.MinEnd
	}

	var (
		x, y         int
		mins         []localMin
		toHandled    bool
		awayHandled  bool
		saveX, saveY traits.ParameterSpace
	)
	he := heAway
	for he != heTo {
		var currX, currY, nextX, nextY traits.ParameterSpace
		switch {
		case !toHandled:
			currX, currY = a.endSpace(heTo, true)
			nextX, nextY = a.parameterSpace(cv, cvToEnd)
		case !awayHandled:
			currX, currY = a.parameterSpace(cv, cvAwayEnd)
			nextX, nextY = a.endSpace(heAway, false)
			saveX, saveY = a.endSpace(heAway, true)
		default:
			n := a.d.Next(he)
			currX, currY = saveX, saveY
			nextX, nextY = a.endSpace(n, false)
			saveX, saveY = a.endSpace(n, true)
			if a.d.Direction(he) == dcel.RightToLeft && a.d.Direction(n) == dcel.LeftToRight {
				mins = append(mins, localMin{he: he, index: x})
			}
		}

		crossing(&x, &y, currX, currY, nextX, nextY)

		switch {
		case !toHandled:
			toHandled = true
		case !awayHandled:
			awayHandled = true
		default:
			he = a.d.Next(he)
		}
	}
	return traits.Signs{X: traits.Sign(x), Y: traits.Sign(y)}, mins
}

// computeSignsForRemoval walks the path that starts with heCCB and ends
// before its twin, that is the boundary component that stays on the side of
// heCCB's target once the edge is removed. perimetric is set when the path
// reaches a vertex at infinity, where the local minima cannot be compared.
func (a *Arrangement[P, C]) computeSignsForRemoval(heCCB dcel.HalfedgeID) (signs traits.Signs, mins []localMin, perimetric bool) {
	var x, y int
	stop := a.d.Twin(heCCB)
	saveX, saveY := a.endSpace(heCCB, true)
	he := heCCB
	for {
		n := a.d.Next(he)
		currX, currY := saveX, saveY
		nextX, nextY := a.endSpace(n, false)
		saveX, saveY = a.endSpace(n, true)

		if a.d.IsFictitious(he) || !a.HasPoint(a.d.Target(he)) {
			perimetric = true
		} else if a.d.Direction(he) == dcel.RightToLeft && a.d.Direction(n) == dcel.LeftToRight {
			mins = append(mins, localMin{he: he, index: x})
		}

		crossing(&x, &y, currX, currY, nextX, nextY)

		he = n
		if he == stop {
			break
		}
	}
	signs = traits.Signs{X: traits.Sign(x), Y: traits.Sign(y)}
	return signs, mins, perimetric || !signs.IsZero()
}

// definesOuterCCBOfNewFace reports whether the closed path heTo, cv, heAway,
// ..., heTo is traversed counterclockwise, i.e. bounds the face that the
// insertion of cv creates. mins are the local minima of the path found by
// computeSignsForInsertion.
func (a *Arrangement[P, C]) definesOuterCCBOfNewFace(heTo dcel.HalfedgeID, cv C, cvDir dcel.Direction, heAway dcel.HalfedgeID, mins []localMin) bool {
	const op = "outer ccb of new face"

	vMin, heMin := dcel.NoVertex, dcel.NoHalfedge
	var (
		cvMin          C
		haveCvMin      bool
		psxMin, psyMin traits.ParameterSpace
		indexMin       int
	)
	if cvDir == dcel.RightToLeft && a.d.Direction(heAway) == dcel.LeftToRight {
		vMin = a.d.Source(heAway)
		cvMin, haveCvMin = cv, true
		psxMin, psyMin = a.parameterSpace(cv, traits.MinEnd)
	}
	if cvDir == dcel.LeftToRight && a.d.Direction(heTo) == dcel.RightToLeft {
		vMin = a.d.Target(heTo)
		cvMin, haveCvMin = a.curve(heTo), true
		psxMin, psyMin = a.parameterSpace(cvMin, traits.MinEnd)
		heMin = heTo
	}

	for _, m := range mins {
		v := a.d.Target(m.he)
		hcv := a.curve(m.he)
		psx, psy := a.parameterSpace(hcv, traits.MinEnd)

		replace := !haveCvMin || m.index < indexMin
		if !replace && m.index == indexMin {
			if v == vMin {
				replace = a.geom.CompareYAtXRight(hcv, cvMin, a.point(vMin)) == traits.Smaller
			} else {
				replace = a.isSmallerCurve(hcv, psx, psy, cvMin, psxMin, psyMin)
			}
		}
		if replace {
			vMin, cvMin, haveCvMin = v, hcv, true
			psxMin, psyMin = psx, psy
			heMin = m.he
			indexMin = m.index
		}
	}
	if vMin == dcel.NoVertex {
		broken(op, "the path has no leftmost vertex")
	}

	var curr, next C
	if heMin != dcel.NoHalfedge {
		curr = a.curve(heMin)
		if n := a.d.Next(heMin); n != a.d.Next(heTo) {
			next = a.curve(n)
		} else {
			next = cv
		}
	} else {
		curr = cv
		next = a.curve(heAway)
	}

	return a.geom.CompareYAtXRight(curr, next, a.point(vMin)) == traits.Larger
}

// isSmallerCurve compares the minimal ends of two curves that are both local
// minima of the same path, ends on the boundary included.
func (a *Arrangement[P, C]) isSmallerCurve(cv1 C, psx1, psy1 traits.ParameterSpace, cv2 C, psx2, psy2 traits.ParameterSpace) bool {
	if psx2 == traits.Interior {
		if psx1 != traits.Interior {
			return true
		}
		switch {
		case psy1 == traits.Interior && psy2 == traits.Interior:
			return a.geom.CompareXY(a.geom.MinVertex(cv1), a.geom.MinVertex(cv2)) == traits.Smaller
		case psy2 == traits.Interior:
			r := a.geom.CompareXOnBoundary(a.geom.MinVertex(cv2), cv1, traits.MinEnd)
			if r == traits.Equal {
				return psy1 == traits.BottomBoundary
			}
			return r == traits.Larger
		case psy1 == traits.Interior:
			r := a.geom.CompareXOnBoundary(a.geom.MinVertex(cv1), cv2, traits.MinEnd)
			if r == traits.Equal {
				return psy2 == traits.TopBoundary
			}
			return r == traits.Smaller
		}
		r := a.geom.CompareXCurveEndsOnBoundary(cv1, traits.MinEnd, cv2, traits.MinEnd)
		if r == traits.Equal {
			return psy1 == traits.BottomBoundary && psy2 == traits.TopBoundary
		}
		return r == traits.Smaller
	}
	if psx1 == traits.Interior {
		return false
	}
	return a.geom.CompareYOnBoundary(a.geom.MinVertex(cv1), a.geom.MinVertex(cv2)) == traits.Smaller
}

// isSmallerVertex is isSmallerCurve for the targets of two halfedges that
// are local minima.
func (a *Arrangement[P, C]) isSmallerVertex(he1 dcel.HalfedgeID, psx1, psy1 traits.ParameterSpace, he2 dcel.HalfedgeID, psx2, psy2 traits.ParameterSpace) bool {
	v1, v2 := a.d.Target(he1), a.d.Target(he2)
	if v1 == v2 {
		return false
	}
	p1, ok1 := a.d.Point(v1)
	p2, ok2 := a.d.Point(v2)
	if psx2 == traits.Interior {
		if psx1 != traits.Interior {
			return true
		}
		switch {
		case psy1 == traits.Interior && psy2 == traits.Interior:
			return a.geom.CompareXY(p1, p2) == traits.Smaller
		case psy2 == traits.Interior && ok2:
			r := a.geom.CompareXOnBoundary(p2, a.curve(he1), traits.MinEnd)
			if r == traits.Equal {
				return psy1 == traits.BottomBoundary
			}
			return r == traits.Larger
		case psy1 == traits.Interior && ok1:
			r := a.geom.CompareXOnBoundary(p1, a.curve(he2), traits.MinEnd)
			if r == traits.Equal {
				return psy2 == traits.TopBoundary
			}
			return r == traits.Smaller
		}
		r := a.geom.CompareXCurveEndsOnBoundary(a.curve(he1), traits.MinEnd, a.curve(he2), traits.MinEnd)
		if r == traits.Equal {
			return psy1 == traits.BottomBoundary && psy2 == traits.TopBoundary
		}
		return r == traits.Smaller
	}
	if psx1 == traits.Interior {
		return false
	}
	if !ok1 || !ok2 {
		return false
	}
	return a.geom.CompareYOnBoundary(p1, p2) == traits.Smaller
}

// leftmostOnLoop is the result of a full traversal of a closed loop.
type leftmostOnLoop struct {
	he         dcel.HalfedgeID // incoming halfedge at the leftmost vertex
	perimetric bool
	open       bool // the loop reaches a vertex at infinity
}

// findLeftmostVertexOnClosedLoop walks the whole loop of anchor and returns
// the lexicographically smallest vertex. It is the slow counterpart of the
// local-minima scan and only runs in self-check mode.
func (a *Arrangement[P, C]) findLeftmostVertexOnClosedLoop(anchor dcel.HalfedgeID) leftmostOnLoop {
	var x, y int
	res := leftmostOnLoop{he: dcel.NoHalfedge}

	for _, he := range a.d.CCBHalfedges(anchor) {
		n := a.d.Next(he)
		v := a.d.Target(he)
		p, ok := a.d.Point(v)
		if !ok || a.d.IsFictitious(he) {
			res.open = true
			return res
		}
		currX, currY := a.endSpace(he, true)
		nextX, nextY := a.endSpace(n, false)
		crossing(&x, &y, currX, currY, nextX, nextY)

		if res.he == dcel.NoHalfedge {
			res.he = he
			continue
		}
		q := a.point(a.d.Target(res.he))
		switch a.geom.CompareXY(p, q) {
		case traits.Smaller:
			res.he = he
		case traits.Equal:
			// A pinched loop passes its leftmost vertex twice; keep the
			// visit that arrives from below.
			if a.geom.CompareYAtXRight(a.curve(he), a.curve(res.he), p) == traits.Smaller {
				res.he = he
			}
		}
	}
	res.perimetric = x%2 != 0 || y%2 != 0
	return res
}

// loopIsCounterclockwise decides the orientation of the loop of anchor at its
// leftmost vertex. ok is false when the traversal cannot tell.
func (a *Arrangement[P, C]) loopIsCounterclockwise(anchor dcel.HalfedgeID) (ccw, ok bool) {
	lm := a.findLeftmostVertexOnClosedLoop(anchor)
	if lm.open || lm.perimetric || lm.he == dcel.NoHalfedge {
		return false, false
	}
	n := a.d.Next(lm.he)
	if a.d.Direction(lm.he) != dcel.RightToLeft || a.d.Direction(n) != dcel.LeftToRight {
		return false, false
	}
	switch a.geom.CompareYAtXRight(a.curve(lm.he), a.curve(n), a.point(a.d.Target(lm.he))) {
	case traits.Larger:
		return true, true
	case traits.Smaller:
		return false, true
	}
	return false, false
}
