package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/zap"
)

// RemoveEdge removes e from the arrangement and returns the face that
// replaces the faces incident to it. An end vertex left without edges is
// deleted when its remove flag is set and kept as an isolated vertex
// otherwise. Vertices at infinity are dropped whenever they become
// redundant.
func (a *Arrangement[P, C]) RemoveEdge(e dcel.HalfedgeID, removeSource, removeTarget bool) dcel.FaceID {
	const op = "remove edge"
	a.enter(op)
	a.checkHalfedge(op, e)
	if a.d.IsFictitious(e) {
		precondition(op, "halfedge %d is fictitious", e)
	}

	he1, he2 := e, a.d.Twin(e)
	if a.sameCCB(he1, he2) && a.d.Next(he1) != he2 && a.d.Next(he2) != he1 && !a.d.OnInnerCCB(he1) &&
		a.topo.HoleCreationAfterEdgeRemoval(he1) {
		// The part beyond the target of he1 becomes a hole, so he1 must
		// point away from the leftmost vertex.
		if a.targetSideIsOuter(op, he1, he2) {
			he1 = he2
			removeSource, removeTarget = removeTarget, removeSource
		}
	}
	return a.removeEdge(he1, removeSource, removeTarget)
}

func (a *Arrangement[P, C]) sameCCB(h1, h2 dcel.HalfedgeID) bool {
	if a.d.OnInnerCCB(h1) != a.d.OnInnerCCB(h2) {
		return false
	}
	if a.d.OnInnerCCB(h1) {
		return a.d.InnerCCB(h1) == a.d.InnerCCB(h2)
	}
	return a.d.OuterCCB(h1) == a.d.OuterCCB(h2)
}

// targetSideIsOuter reports whether the loop that stays at the target of he1
// once the edge is gone encloses the loop at its source.
func (a *Arrangement[P, C]) targetSideIsOuter(op string, he1, he2 dcel.HalfedgeID) bool {
	signs1, mins1, perim1 := a.computeSignsForRemoval(he1)
	signs2, mins2, perim2 := a.computeSignsForRemoval(he2)
	switch {
	case perim1 && perim2:
		broken(op, "both sides of halfedge %d are perimetric (signs %v and %v)", he1, signs1, signs2)
	case perim1:
		return true
	case perim2:
		return false
	}

	min1, ok1 := a.leftmostLocalMin(mins1)
	min2, ok2 := a.leftmostLocalMin(mins2)
	switch {
	case !ok1 && !ok2:
		broken(op, "no local minimum on either side of halfedge %d", he1)
	case !ok1:
		return false
	case !ok2:
		return true
	}
	return a.isSmallerMin(min1, min2)
}

// leftmostLocalMin picks the smallest of mins in the order of isSmallerMin.
func (a *Arrangement[P, C]) leftmostLocalMin(mins []localMin) (localMin, bool) {
	best := -1
	for i, m := range mins {
		if best < 0 || a.isSmallerMin(m, mins[best]) {
			best = i
		}
	}
	if best < 0 {
		return localMin{he: dcel.NoHalfedge}, false
	}
	return mins[best], true
}

// isSmallerMin orders local minima by crossing index first and by the
// position of their vertices after that.
func (a *Arrangement[P, C]) isSmallerMin(m1, m2 localMin) bool {
	if m1.index != m2.index {
		return m1.index < m2.index
	}
	psx1, psy1 := a.parameterSpace(a.curve(m1.he), traits.MinEnd)
	psx2, psy2 := a.parameterSpace(a.curve(m2.he), traits.MinEnd)
	return a.isSmallerVertex(m1.he, psx1, psy1, m2.he, psx2, psy2)
}

// removeEdge removes the edge of he1. When both of its halfedges lie on the
// same outer CCB, the chain beyond the target of he1 becomes a hole.
func (a *Arrangement[P, C]) removeEdge(he1 dcel.HalfedgeID, removeSource, removeTarget bool) dcel.FaceID {
	const op = "remove edge"
	d := a.d
	he2 := d.Twin(he1)
	src, tgt := d.Source(he1), d.Target(he1)
	f1, f2 := d.IncidentFace(he1), d.IncidentFace(he2)

	a.notify(newEvent[P, C](RemoveEdge, Before).halfedge(he1))

	var f dcel.FaceID
	switch {
	case d.Next(he1) == he2 && d.Next(he2) == he1:
		f = a.removeSingletonEdge(he1)
	case d.Next(he1) == he2:
		f = a.removeAntenna(he1)
	case d.Next(he2) == he1:
		f = a.removeAntenna(he2)
	case f1 == f2:
		if !a.sameCCB(he1, he2) {
			broken(op, "halfedges %d and %d lie on different boundaries of face %d", he1, he2, f1)
		}
		f = a.removeBridge(he1)
	default:
		f = a.removeBetweenFaces(he1)
	}
	d.DeleteEdge(he1)
	a.notify(newEvent[P, C](RemoveEdge, After))

	a.dropEndpoint(f, src, removeSource)
	a.dropEndpoint(f, tgt, removeTarget)

	a.log.Debug("[aos-remove] edge removed",
		zap.Int("face", int(f)),
		zap.Int("source", int(src)),
		zap.Int("target", int(tgt)))
	return f
}

// removeSingletonEdge drops a hole made of one edge.
func (a *Arrangement[P, C]) removeSingletonEdge(he1 dcel.HalfedgeID) dcel.FaceID {
	d := a.d
	he2 := d.Twin(he1)
	f := d.IncidentFace(he1)
	if !d.OnInnerCCB(he1) {
		broken("remove edge", "isolated edge %d is not a hole", he1)
	}
	ic := d.InnerCCB(he1)

	a.notify(newEvent[P, C](RemoveInnerCCB, Before).face(f).halfedge(he1))
	d.EraseInnerCCB(f, ic)
	d.DeleteInnerCCB(ic)
	a.notify(newEvent[P, C](RemoveInnerCCB, After).face(f))

	d.SetVertexHalfedge(d.Target(he1), dcel.NoHalfedge)
	d.SetVertexHalfedge(d.Target(he2), dcel.NoHalfedge)
	return f
}

// removeAntenna drops an edge whose target is a leaf.
func (a *Arrangement[P, C]) removeAntenna(he dcel.HalfedgeID) dcel.FaceID {
	d := a.d
	tw := d.Twin(he)
	f := d.IncidentFace(he)
	prev, next := d.Prev(he), d.Next(tw)

	a.replaceCCBRep(he, next)
	a.replaceCCBRep(tw, next)
	d.SetNext(prev, next)

	u := d.Source(he)
	if d.VertexHalfedge(u) == tw {
		d.SetVertexHalfedge(u, prev)
	}
	d.SetVertexHalfedge(d.Target(he), dcel.NoHalfedge)
	return f
}

// removeBridge drops an edge whose two sides lie on the same CCB, which
// falls apart into two.
func (a *Arrangement[P, C]) removeBridge(he1 dcel.HalfedgeID) dcel.FaceID {
	d := a.d
	he2 := d.Twin(he1)
	f := d.IncidentFace(he1)
	prev1, next1 := d.Prev(he1), d.Next(he1)
	prev2, next2 := d.Prev(he2), d.Next(he2)

	// The chain from next1 to prev2 is detached from the chain from next2
	// to prev1.
	d.SetNext(prev1, next2)
	d.SetNext(prev2, next1)
	a.fixEndpointHalfedges(he1, prev1, prev2)

	if d.OnInnerCCB(he1) {
		ic := d.InnerCCB(he1)
		a.notify(newEvent[P, C](SplitInnerCCB, Before).face(f).halfedge(he1))
		d.SetInnerCCBHalfedge(ic, next2)
		nic := d.NewInnerCCB()
		d.SetInnerCCBHalfedge(nic, next1)
		d.AddInnerCCB(f, nic)
		for _, h := range d.CCBHalfedges(next1) {
			d.SetInnerCCB(h, nic)
		}
		a.notify(newEvent[P, C](SplitInnerCCB, After).halfedges(next2, next1))
		return f
	}

	oc := d.OuterCCB(he1)
	d.SetOuterCCBHalfedge(oc, next2)
	if !a.topo.HoleCreationAfterEdgeRemoval(he1) {
		a.notify(newEvent[P, C](SplitOuterCCB, Before).face(f).halfedge(he1))
		noc := d.NewOuterCCB()
		d.SetOuterCCBHalfedge(noc, next1)
		d.AddOuterCCB(f, noc)
		for _, h := range d.CCBHalfedges(next1) {
			d.SetOuterCCB(h, noc)
		}
		a.notify(newEvent[P, C](SplitOuterCCB, After).halfedges(next2, next1))
		return f
	}

	a.notify(newEvent[P, C](AddInnerCCB, Before).face(f).halfedge(next1))
	nic := d.NewInnerCCB()
	d.SetInnerCCBHalfedge(nic, next1)
	d.AddInnerCCB(f, nic)
	for _, h := range d.CCBHalfedges(next1) {
		d.SetInnerCCB(h, nic)
	}
	a.notify(newEvent[P, C](AddInnerCCB, After).halfedge(next1))

	if a.selfCheck {
		if ccw, ok := a.loopIsCounterclockwise(next1); ok && ccw {
			broken("self check", "new hole of face %d runs counterclockwise", f)
		}
	}
	return f
}

// removeBetweenFaces drops an edge that separates two faces and merges them.
func (a *Arrangement[P, C]) removeBetweenFaces(he1 dcel.HalfedgeID) dcel.FaceID {
	const op = "remove edge"
	d := a.d
	he2 := d.Twin(he1)
	if d.OnInnerCCB(he1) {
		he1, he2 = he2, he1
	}
	if d.OnInnerCCB(he1) {
		broken(op, "both halfedges of edge %d lie on holes", he1)
	}

	// keep survives, gone is merged into it.
	keep, gone := d.IncidentFace(he2), d.IncidentFace(he1)
	if !d.OnInnerCCB(he2) && d.IsUnbounded(gone) && !d.IsUnbounded(keep) {
		keep, gone = gone, keep
		he1, he2 = he2, he1
	}

	a.notify(newEvent[P, C](MergeFace, Before).faces(keep, gone).halfedge(he1))

	prev1, next1 := d.Prev(he1), d.Next(he1)
	prev2, next2 := d.Prev(he2), d.Next(he2)
	d.SetNext(prev1, next2)
	d.SetNext(prev2, next1)
	a.fixEndpointHalfedges(he1, prev1, prev2)

	// The chain of he1 joins the CCB of he2.
	goneOC := d.OuterCCB(he1)
	if d.OnInnerCCB(he2) {
		ic := d.InnerCCB(he2)
		d.SetInnerCCBHalfedge(ic, next1)
		for _, h := range d.CCBHalfedges(next1) {
			d.SetInnerCCB(h, ic)
		}
	} else {
		oc := d.OuterCCB(he2)
		d.SetOuterCCBHalfedge(oc, next1)
		for _, h := range d.CCBHalfedges(next1) {
			d.SetOuterCCB(h, oc)
		}
	}
	d.EraseOuterCCB(gone, goneOC)
	d.DeleteOuterCCB(goneOC)

	for _, oc := range d.FaceOuterCCBs(gone) {
		a.moveOuterCCB(gone, keep, d.OuterCCBHalfedge(oc))
	}
	for _, ic := range d.FaceInnerCCBs(gone) {
		a.moveInnerCCB(gone, keep, d.InnerCCBHalfedge(ic))
	}
	for _, iv := range d.FaceIsoVertices(gone) {
		a.moveIsolatedVertex(gone, keep, d.IsoVertexOf(iv))
	}
	if d.IsUnbounded(gone) {
		d.SetUnbounded(keep, true)
	}
	d.DeleteFace(gone)

	a.notify(newEvent[P, C](MergeFace, After).face(keep))
	return keep
}

// fixEndpointHalfedges moves the incident halfedge of both ends of he1 off
// the edge that is going away.
func (a *Arrangement[P, C]) fixEndpointHalfedges(he1, prev1, prev2 dcel.HalfedgeID) {
	d := a.d
	he2 := d.Twin(he1)
	if v := d.Target(he2); d.VertexHalfedge(v) == he2 {
		d.SetVertexHalfedge(v, prev1)
	}
	if v := d.Target(he1); d.VertexHalfedge(v) == he1 {
		d.SetVertexHalfedge(v, prev2)
	}
}

// dropEndpoint handles an end of a removed edge: a vertex left without
// edges is deleted or turned into an isolated vertex of f, a vertex at
// infinity is erased when nothing real reaches it anymore.
func (a *Arrangement[P, C]) dropEndpoint(f dcel.FaceID, v dcel.VertexID, remove bool) {
	if !a.HasPoint(v) {
		a.removeVertexIfRedundant(v, f)
		return
	}
	if a.d.VertexHalfedge(v) != dcel.NoHalfedge {
		return
	}
	if remove {
		a.deleteVertex(v)
		return
	}
	a.insertIsolatedVertex(f, v)
}

// removeVertexIfRedundant erases a vertex at infinity that no curve reaches
// anymore, merging the two fictitious edges around it.
func (a *Arrangement[P, C]) removeVertexIfRedundant(v dcel.VertexID, f dcel.FaceID) {
	const op = "remove redundant vertex"
	d := a.d
	if !a.topo.IsRedundant(v) {
		return
	}

	he1 := d.VertexHalfedge(v)
	if he1 == dcel.NoHalfedge {
		a.deleteVertex(v)
		return
	}
	he2 := d.Twin(d.Next(he1))
	if d.Twin(d.Next(he2)) != he1 {
		broken(op, "redundant vertex %d has more than two edges", v)
	}
	if !d.IsFictitious(he1) || !d.IsFictitious(he2) {
		broken(op, "redundant vertex %d still has a curve", v)
	}

	a.notify(newEvent[P, C](MergeFictitiousEdge, Before).halfedges(he1, he2).face(f))
	he := a.topo.EraseRedundantVertex(v)
	a.notify(newEvent[P, C](MergeFictitiousEdge, After).halfedge(he))

	a.deleteVertex(v)
}
