package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

func (a *Arrangement[P, C]) createVertex(p P) dcel.VertexID {
	p = a.ownPoint(p)
	a.notify(newEvent[P, C](CreateVertex, Before).point(p))
	v := a.d.NewVertex()
	a.d.SetPoint(v, p)
	a.d.SetBoundary(v, traits.Interior, traits.Interior)
	a.notify(newEvent[P, C](CreateVertex, After).vertex(v))
	return v
}

// createBoundaryVertex creates the vertex of a curve end on the boundary.
// Ends on an open side get no point.
func (a *Arrangement[P, C]) createBoundaryVertex(cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) dcel.VertexID {
	ev := newEvent[P, C](CreateBoundaryVertex, Before).curve(cv)
	ev.End, ev.PSX, ev.PSY = end, psx, psy
	a.notify(ev)

	v := a.d.NewVertex()
	a.d.SetBoundary(v, psx, psy)
	if !a.isOpen(psx, psy) {
		a.d.SetPoint(v, a.ownPoint(a.endPoint(cv, end)))
	}

	ev.Phase, ev.Vertex = After, v
	a.notify(ev)
	return v
}

// placeAndSetCurveEnd resolves the vertex of a curve end that lies on the
// boundary. The returned predecessor is the halfedge after which the curve
// is spliced, or NoHalfedge when the vertex is new and has no edges.
func (a *Arrangement[P, C]) placeAndSetCurveEnd(f dcel.FaceID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) (dcel.VertexID, dcel.HalfedgeID) {
	feat := a.topo.PlaceBoundaryVertex(f, cv, end, psx, psy)
	switch feat.Kind {
	case dcel.FeatureHalfedge:
		v := a.createBoundaryVertex(cv, end, psx, psy)
		a.notify(newEvent[P, C](SplitFictitiousEdge, Before).halfedge(feat.Halfedge).vertex(v))
		prev := a.topo.SplitFictitiousEdge(feat.Halfedge, v)
		a.notify(newEvent[P, C](SplitFictitiousEdge, After).halfedges(prev, a.d.Next(prev)))
		return v, prev
	case dcel.FeatureVertex:
		return feat.Vertex, a.topo.LocateAroundBoundaryVertex(feat.Vertex, cv, end, psx, psy)
	}
	v := a.createBoundaryVertex(cv, end, psx, psy)
	a.topo.NotifyOnBoundaryVertexCreation(v, cv, end, psx, psy)
	return v, dcel.NoHalfedge
}

// locateAroundVertex returns the halfedge incident to v after which cv has
// to be inserted in clockwise order.
func (a *Arrangement[P, C]) locateAroundVertex(v dcel.VertexID, cv C, end traits.CurveEnd) dcel.HalfedgeID {
	const op = "locate around vertex"

	psx, psy := a.parameterSpace(cv, end)
	if psx != traits.Interior || psy != traits.Interior {
		return a.topo.LocateAroundBoundaryVertex(v, cv, end, psx, psy)
	}

	first := a.d.VertexHalfedge(v)
	if first == dcel.NoHalfedge {
		broken(op, "vertex %d has no incident halfedge", v)
	}
	curr := first
	next := a.d.Twin(a.d.Next(curr))
	if next == curr {
		return curr
	}

	p := a.point(v)
	cvRight := end == traits.MinEnd
	for {
		between, eq1, eq2 := a.geom.IsBetweenCW(cv, cvRight,
			a.curve(curr), a.d.Direction(curr) == dcel.RightToLeft,
			a.curve(next), a.d.Direction(next) == dcel.RightToLeft,
			p)
		if eq1 || eq2 {
			precondition(op, "the curve already exists around vertex %d", v)
		}
		if between {
			return curr
		}
		curr = next
		next = a.d.Twin(a.d.Next(curr))
		if curr == first {
			precondition(op, "no place for the curve around vertex %d", v)
		}
	}
}

// areEqual reports whether v represents the given curve end.
func (a *Arrangement[P, C]) areEqual(v dcel.VertexID, cv C, end traits.CurveEnd) bool {
	psx, psy := a.parameterSpace(cv, end)
	if psx != traits.Interior || psy != traits.Interior {
		return a.topo.AreEqual(v, cv, end, psx, psy)
	}
	p, ok := a.d.Point(v)
	if !ok {
		return false
	}
	return a.geom.EqualPoints(p, a.endPoint(cv, end))
}

func (a *Arrangement[P, C]) insertIsolatedVertex(f dcel.FaceID, v dcel.VertexID) {
	a.notify(newEvent[P, C](AddIsolatedVertex, Before).face(f).vertex(v))
	iv := a.d.NewIsoVertex(v)
	a.d.AddIsoVertex(f, iv)
	a.notify(newEvent[P, C](AddIsolatedVertex, After).vertex(v))
}

// detachIsolatedVertex drops the isolated-vertex record of v, which is about
// to get its first edge, and returns the face that contained it.
func (a *Arrangement[P, C]) detachIsolatedVertex(v dcel.VertexID) dcel.FaceID {
	iv := a.d.VertexIso(v)
	if iv == dcel.NoIsoVertex {
		return dcel.NoFace
	}
	f := a.d.IsoFace(iv)
	a.d.EraseIsoVertex(f, iv)
	a.d.DeleteIsoVertex(iv)
	return f
}

func (a *Arrangement[P, C]) moveOuterCCB(from, to dcel.FaceID, h dcel.HalfedgeID) {
	oc := a.d.OuterCCB(h)
	a.notify(newEvent[P, C](MoveOuterCCB, Before).faces(from, to).halfedge(h))
	a.d.EraseOuterCCB(from, oc)
	a.d.AddOuterCCB(to, oc)
	a.notify(newEvent[P, C](MoveOuterCCB, After).halfedge(h))
}

func (a *Arrangement[P, C]) moveInnerCCB(from, to dcel.FaceID, h dcel.HalfedgeID) {
	ic := a.d.InnerCCB(h)
	a.notify(newEvent[P, C](MoveInnerCCB, Before).faces(from, to).halfedge(h))
	a.d.EraseInnerCCB(from, ic)
	a.d.AddInnerCCB(to, ic)
	a.notify(newEvent[P, C](MoveInnerCCB, After).halfedge(h))
}

func (a *Arrangement[P, C]) moveIsolatedVertex(from, to dcel.FaceID, v dcel.VertexID) {
	iv := a.d.VertexIso(v)
	a.notify(newEvent[P, C](MoveIsolatedVertex, Before).faces(from, to).vertex(v))
	a.d.EraseIsoVertex(from, iv)
	a.d.AddIsoVertex(to, iv)
	a.notify(newEvent[P, C](MoveIsolatedVertex, After).vertex(v))
}

// relocateInNewFace moves the holes and isolated vertices of the face that
// was split by newHe into the new face on its left when they lie inside it.
func (a *Arrangement[P, C]) relocateInNewFace(newHe dcel.HalfedgeID) {
	newFace := a.d.IncidentFace(newHe)
	opp := a.d.Twin(newHe)
	oldFace := a.d.IncidentFace(opp)

	oppIC := dcel.NoInnerCCB
	if a.d.OnInnerCCB(opp) {
		oppIC = a.d.InnerCCB(opp)
	}

	for _, ic := range a.d.FaceInnerCCBs(oldFace) {
		if ic == oppIC {
			continue
		}
		rep := a.d.InnerCCBHalfedge(ic)
		v, p, ok := a.pointOnCCB(rep)
		if !ok {
			continue
		}
		if a.topo.IsInFace(newFace, p, v) {
			a.moveInnerCCB(oldFace, newFace, rep)
		}
	}

	for _, iv := range a.d.FaceIsoVertices(oldFace) {
		v := a.d.IsoVertexOf(iv)
		p, ok := a.d.Point(v)
		if !ok {
			continue
		}
		if a.topo.IsInFace(newFace, p, v) {
			a.moveIsolatedVertex(oldFace, newFace, v)
		}
	}
}

// pointOnCCB returns some vertex with a point on the chain of h.
func (a *Arrangement[P, C]) pointOnCCB(h dcel.HalfedgeID) (dcel.VertexID, P, bool) {
	for _, e := range a.d.CCBHalfedges(h) {
		v := a.d.Target(e)
		if p, ok := a.d.Point(v); ok {
			return v, p, true
		}
	}
	var zero P
	return dcel.NoVertex, zero, false
}
