package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/zap"
)

func (a *Arrangement[P, C]) isInteriorEnd(cv C, end traits.CurveEnd) bool {
	psx, psy := a.parameterSpace(cv, end)
	return psx == traits.Interior && psy == traits.Interior
}

// InsertPoint adds p as an isolated vertex of f.
func (a *Arrangement[P, C]) InsertPoint(p P, f dcel.FaceID) dcel.VertexID {
	const op = "insert point"
	a.enter(op)
	a.checkFace(op, f)

	v := a.createVertex(p)
	a.insertIsolatedVertex(f, v)
	a.log.Debug("[aos-insert] isolated vertex", zap.Int("vertex", int(v)), zap.Int("face", int(f)))
	return v
}

// InsertInFaceInterior inserts cv, whose ends are not in the arrangement
// yet, into f. The returned halfedge is directed from left to right.
func (a *Arrangement[P, C]) InsertInFaceInterior(cv C, f dcel.FaceID) dcel.HalfedgeID {
	const op = "insert in face interior"
	a.enter(op)
	a.checkFace(op, f)

	var v1, v2 dcel.VertexID
	fp1, fp2 := dcel.NoHalfedge, dcel.NoHalfedge
	if a.isInteriorEnd(cv, traits.MinEnd) {
		v1 = a.createVertex(a.geom.MinVertex(cv))
	} else {
		psx, psy := a.parameterSpace(cv, traits.MinEnd)
		v1, fp1 = a.placeAndSetCurveEnd(f, cv, traits.MinEnd, psx, psy)
	}
	if a.isInteriorEnd(cv, traits.MaxEnd) {
		v2 = a.createVertex(a.geom.MaxVertex(cv))
	} else {
		psx, psy := a.parameterSpace(cv, traits.MaxEnd)
		v2, fp2 = a.placeAndSetCurveEnd(f, cv, traits.MaxEnd, psx, psy)
	}

	switch {
	case fp1 == dcel.NoHalfedge && fp2 == dcel.NoHalfedge:
		return a.insertInFaceInterior(f, cv, traits.Smaller, v1, v2)
	case fp1 == dcel.NoHalfedge:
		return a.d.Twin(a.insertFromVertex(cv, fp2, v1, traits.Larger))
	case fp2 == dcel.NoHalfedge:
		return a.insertFromVertex(cv, fp1, v2, traits.Smaller)
	}

	// Both ends landed on the same fictitious edge; the second split moved
	// the first end to the new part.
	if fp1 == fp2 {
		fp1 = a.d.Next(fp1)
	}
	he, newFace := a.insertAtVertices(cv, fp1, fp2, traits.Smaller)
	if newFace {
		a.relocateInNewFace(he)
	}
	return he
}

// InsertFromLeftVertex inserts cv whose left end is the vertex v and whose
// right end is not in the arrangement. f is the face containing v when v is
// isolated and may be NoFace otherwise. The returned halfedge leaves v.
func (a *Arrangement[P, C]) InsertFromLeftVertex(cv C, v dcel.VertexID, f dcel.FaceID) dcel.HalfedgeID {
	const op = "insert from left vertex"
	a.enter(op)
	a.checkVertex(op, v)
	if !a.areEqual(v, cv, traits.MinEnd) {
		precondition(op, "vertex %d is not the left end of the curve", v)
	}
	return a.insertFromVertexEnd(op, cv, v, f, traits.MinEnd)
}

// InsertFromLeftVertexAt is InsertFromLeftVertex with the clockwise
// predecessor of cv around its left end already known.
func (a *Arrangement[P, C]) InsertFromLeftVertexAt(cv C, prev dcel.HalfedgeID) dcel.HalfedgeID {
	const op = "insert from left vertex"
	a.enter(op)
	a.checkHalfedge(op, prev)
	if !a.areEqual(a.d.Target(prev), cv, traits.MinEnd) {
		precondition(op, "the target of halfedge %d is not the left end of the curve", prev)
	}
	return a.insertFromPrev(cv, prev, traits.MinEnd)
}

// InsertFromRightVertex inserts cv whose right end is the vertex v and whose
// left end is not in the arrangement. The returned halfedge leaves v.
func (a *Arrangement[P, C]) InsertFromRightVertex(cv C, v dcel.VertexID, f dcel.FaceID) dcel.HalfedgeID {
	const op = "insert from right vertex"
	a.enter(op)
	a.checkVertex(op, v)
	if !a.areEqual(v, cv, traits.MaxEnd) {
		precondition(op, "vertex %d is not the right end of the curve", v)
	}
	return a.insertFromVertexEnd(op, cv, v, f, traits.MaxEnd)
}

func (a *Arrangement[P, C]) InsertFromRightVertexAt(cv C, prev dcel.HalfedgeID) dcel.HalfedgeID {
	const op = "insert from right vertex"
	a.enter(op)
	a.checkHalfedge(op, prev)
	if !a.areEqual(a.d.Target(prev), cv, traits.MaxEnd) {
		precondition(op, "the target of halfedge %d is not the right end of the curve", prev)
	}
	return a.insertFromPrev(cv, prev, traits.MaxEnd)
}

// insertFromVertexEnd inserts cv whose end at v already exists.
func (a *Arrangement[P, C]) insertFromVertexEnd(op string, cv C, v dcel.VertexID, f dcel.FaceID, end traits.CurveEnd) dcel.HalfedgeID {
	if a.d.VertexHalfedge(v) != dcel.NoHalfedge {
		return a.insertFromPrev(cv, a.locateAroundVertex(v, cv, end), end)
	}

	face := a.IsolatedVertexFace(v)
	if face == dcel.NoFace {
		face = f
	}
	a.checkFace(op, face)

	other := end.Opposite()
	res := traits.Smaller
	if end == traits.MaxEnd {
		res = traits.Larger
	}

	var v2 dcel.VertexID
	fp2 := dcel.NoHalfedge
	if a.isInteriorEnd(cv, other) {
		v2 = a.createVertex(a.endPoint(cv, other))
	} else {
		psx, psy := a.parameterSpace(cv, other)
		v2, fp2 = a.placeAndSetCurveEnd(face, cv, other, psx, psy)
	}
	a.detachIsolatedVertex(v)

	if fp2 == dcel.NoHalfedge {
		return a.insertInFaceInterior(face, cv, res, v, v2)
	}
	return a.d.Twin(a.insertFromVertex(cv, fp2, v, res.Opposite()))
}

// insertFromPrev inserts cv after prev, whose target is the given end of cv.
// The other end is created.
func (a *Arrangement[P, C]) insertFromPrev(cv C, prev dcel.HalfedgeID, end traits.CurveEnd) dcel.HalfedgeID {
	other := end.Opposite()
	res := traits.Smaller
	if end == traits.MaxEnd {
		res = traits.Larger
	}

	var v2 dcel.VertexID
	fp2 := dcel.NoHalfedge
	if a.isInteriorEnd(cv, other) {
		v2 = a.createVertex(a.endPoint(cv, other))
	} else {
		psx, psy := a.parameterSpace(cv, other)
		v2, fp2 = a.placeAndSetCurveEnd(a.d.IncidentFace(prev), cv, other, psx, psy)
	}

	if fp2 == dcel.NoHalfedge {
		return a.insertFromVertex(cv, prev, v2, res)
	}
	he, newFace := a.insertAtVertices(cv, prev, fp2, res)
	if newFace {
		a.relocateInNewFace(he)
	}
	return he
}

// curveEnds returns the ends of cv at v1 and at v2.
func (a *Arrangement[P, C]) curveEnds(op string, cv C, v1, v2 dcel.VertexID) (traits.CurveEnd, traits.CurveEnd) {
	switch {
	case a.areEqual(v1, cv, traits.MinEnd) && a.areEqual(v2, cv, traits.MaxEnd):
		return traits.MinEnd, traits.MaxEnd
	case a.areEqual(v1, cv, traits.MaxEnd) && a.areEqual(v2, cv, traits.MinEnd):
		return traits.MaxEnd, traits.MinEnd
	}
	precondition(op, "vertices %d and %d are not the ends of the curve", v1, v2)
	return traits.MinEnd, traits.MaxEnd
}

func compareEnds(end1 traits.CurveEnd) traits.Comparison {
	if end1 == traits.MinEnd {
		return traits.Smaller
	}
	return traits.Larger
}

// InsertAtVertices inserts cv between the existing vertices v1 and v2. f is
// used only when both vertices are isolated and neither knows its face. The
// returned halfedge is directed from v1 to v2.
func (a *Arrangement[P, C]) InsertAtVertices(cv C, v1, v2 dcel.VertexID, f dcel.FaceID) dcel.HalfedgeID {
	const op = "insert at vertices"
	a.enter(op)
	a.checkVertex(op, v1)
	a.checkVertex(op, v2)
	if v1 == v2 {
		precondition(op, "the curve is a loop at vertex %d", v1)
	}
	end1, end2 := a.curveEnds(op, cv, v1, v2)
	res := compareEnds(end1)

	free1 := a.d.VertexHalfedge(v1) == dcel.NoHalfedge
	free2 := a.d.VertexHalfedge(v2) == dcel.NoHalfedge

	switch {
	case free1 && free2:
		f1, f2 := a.IsolatedVertexFace(v1), a.IsolatedVertexFace(v2)
		if f1 != dcel.NoFace && f2 != dcel.NoFace && f1 != f2 {
			precondition(op, "isolated vertices %d and %d lie in different faces", v1, v2)
		}
		face := f1
		if face == dcel.NoFace {
			face = f2
		}
		if face == dcel.NoFace {
			face = f
		}
		a.checkFace(op, face)
		a.detachIsolatedVertex(v1)
		a.detachIsolatedVertex(v2)
		return a.insertInFaceInterior(face, cv, res, v1, v2)

	case free1:
		prev2 := a.locateAroundVertex(v2, cv, end2)
		if f1 := a.IsolatedVertexFace(v1); f1 != dcel.NoFace && f1 != a.d.IncidentFace(prev2) {
			precondition(op, "isolated vertex %d does not lie in the face of vertex %d", v1, v2)
		}
		a.detachIsolatedVertex(v1)
		return a.d.Twin(a.insertFromVertex(cv, prev2, v1, res.Opposite()))

	case free2:
		prev1 := a.locateAroundVertex(v1, cv, end1)
		if f2 := a.IsolatedVertexFace(v2); f2 != dcel.NoFace && f2 != a.d.IncidentFace(prev1) {
			precondition(op, "isolated vertex %d does not lie in the face of vertex %d", v2, v1)
		}
		a.detachIsolatedVertex(v2)
		return a.insertFromVertex(cv, prev1, v2, res)
	}

	prev1 := a.locateAroundVertex(v1, cv, end1)
	prev2 := a.locateAroundVertex(v2, cv, end2)
	return a.insertAtPrevs(op, cv, prev1, prev2, res)
}

// InsertAtVerticesWithPrev is InsertAtVertices with the clockwise
// predecessor of cv around its first end already known.
func (a *Arrangement[P, C]) InsertAtVerticesWithPrev(cv C, prev1 dcel.HalfedgeID, v2 dcel.VertexID) dcel.HalfedgeID {
	const op = "insert at vertices"
	a.enter(op)
	a.checkHalfedge(op, prev1)
	a.checkVertex(op, v2)
	v1 := a.d.Target(prev1)
	if v1 == v2 {
		precondition(op, "the curve is a loop at vertex %d", v1)
	}
	end1, end2 := a.curveEnds(op, cv, v1, v2)
	res := compareEnds(end1)

	if a.d.VertexHalfedge(v2) == dcel.NoHalfedge {
		if f2 := a.IsolatedVertexFace(v2); f2 != dcel.NoFace && f2 != a.d.IncidentFace(prev1) {
			precondition(op, "isolated vertex %d does not lie in the face of halfedge %d", v2, prev1)
		}
		a.detachIsolatedVertex(v2)
		return a.insertFromVertex(cv, prev1, v2, res)
	}

	prev2 := a.locateAroundVertex(v2, cv, end2)
	return a.insertAtPrevs(op, cv, prev1, prev2, res)
}

// InsertAtVerticesWithPrevs inserts cv between the targets of prev1 and
// prev2, right after each of them in clockwise order. The returned
// halfedge is directed from the target of prev1 to the target of prev2.
func (a *Arrangement[P, C]) InsertAtVerticesWithPrevs(cv C, prev1, prev2 dcel.HalfedgeID) dcel.HalfedgeID {
	const op = "insert at vertices"
	a.enter(op)
	a.checkHalfedge(op, prev1)
	a.checkHalfedge(op, prev2)
	v1, v2 := a.d.Target(prev1), a.d.Target(prev2)
	if v1 == v2 {
		precondition(op, "the curve is a loop at vertex %d", v1)
	}
	end1, _ := a.curveEnds(op, cv, v1, v2)
	return a.insertAtPrevs(op, cv, prev1, prev2, compareEnds(end1))
}

// insertAtPrevs decides which of the two predecessors ends up on the outer
// boundary of a face the new edge may close, and inserts accordingly.
func (a *Arrangement[P, C]) insertAtPrevs(op string, cv C, prev1, prev2 dcel.HalfedgeID, res traits.Comparison) dcel.HalfedgeID {
	if a.d.IncidentFace(prev1) != a.d.IncidentFace(prev2) {
		precondition(op, "halfedges %d and %d do not lie on the same face", prev1, prev2)
	}

	prev1OnOuter := true
	if a.d.OnInnerCCB(prev1) && a.d.InnerCCB(prev1) == a.d.InnerCCB(prev2) {
		dir1 := directionOf(res)
		dir2 := dir1.Opposite()
		signs1, mins1 := a.computeSignsForInsertion(prev1, cv, dir1, a.d.Next(prev2))
		signs2, mins2 := a.computeSignsForInsertion(prev2, cv, dir2, a.d.Next(prev1))

		decided, onOuter := a.topo.LetMeDecideTheOuterCCB(signs1, signs2)
		switch {
		case decided:
			prev1OnOuter = onOuter
		case a.topo.IsOnNewPerimetricFaceBoundary(prev1, prev2, cv):
			// A perimetric boundary has no leftmost vertex to decide by.
		case len(mins1) > 0 && len(mins1) < len(mins2):
			prev1OnOuter = a.definesOuterCCBOfNewFace(prev1, cv, dir1, a.d.Next(prev2), mins1)
		default:
			prev1OnOuter = !a.definesOuterCCBOfNewFace(prev2, cv, dir2, a.d.Next(prev1), mins2)
		}
	}

	swapped := !prev1OnOuter
	if swapped {
		prev1, prev2 = prev2, prev1
		res = res.Opposite()
	}

	he, newFace := a.insertAtVertices(cv, prev1, prev2, res)
	if newFace {
		if a.selfCheck {
			a.checkNewFaceBoundary(he)
		}
		a.relocateInNewFace(he)
	}
	if swapped {
		a.log.Debug("[aos-insert] predecessors swapped", zap.Int("halfedge", int(he)))
		he = a.d.Twin(he)
	}
	return he
}

// checkNewFaceBoundary compares the orientation chosen for a new face with
// a full traversal of its outer boundary.
func (a *Arrangement[P, C]) checkNewFaceBoundary(he dcel.HalfedgeID) {
	if ccw, ok := a.loopIsCounterclockwise(he); ok && !ccw {
		broken("self check", "the outer boundary of new face %d runs clockwise", a.d.IncidentFace(he))
	}
}
