package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/zap"
)

// ModifyVertex replaces the point of v with an equal one.
func (a *Arrangement[P, C]) ModifyVertex(v dcel.VertexID, p P) dcel.VertexID {
	const op = "modify vertex"
	a.enter(op)
	a.checkVertex(op, v)
	old, ok := a.d.Point(v)
	if !ok {
		precondition(op, "vertex %d lies at infinity", v)
	}
	if !a.geom.EqualPoints(old, p) {
		precondition(op, "the new point of vertex %d differs from the old one", v)
	}

	a.notify(newEvent[P, C](ModifyVertex, Before).vertex(v).point(p))
	a.d.SetPoint(v, a.ownPoint(p))
	a.notify(newEvent[P, C](ModifyVertex, After).vertex(v))
	return v
}

// ModifyEdge replaces the curve of e with an equal one.
func (a *Arrangement[P, C]) ModifyEdge(e dcel.HalfedgeID, cv C) dcel.HalfedgeID {
	const op = "modify edge"
	a.enter(op)
	a.checkHalfedge(op, e)
	old, ok := a.d.Curve(e)
	if !ok {
		precondition(op, "halfedge %d is fictitious", e)
	}
	if !a.geom.EqualCurves(old, cv) {
		precondition(op, "the new curve of halfedge %d differs from the old one", e)
	}

	a.notify(newEvent[P, C](ModifyEdge, Before).halfedge(e).curve(cv))
	a.d.SetCurve(e, a.ownCurve(cv))
	a.notify(newEvent[P, C](ModifyEdge, After).halfedge(e))
	return e
}

// SplitEdge splits e at the common end of cv1 and cv2, which together must
// make up the curve of e. It returns the halfedge from the source of e to
// the split vertex.
func (a *Arrangement[P, C]) SplitEdge(e dcel.HalfedgeID, cv1, cv2 C) dcel.HalfedgeID {
	const op = "split edge"
	a.enter(op)
	a.checkHalfedge(op, e)
	if a.d.IsFictitious(e) {
		precondition(op, "halfedge %d is fictitious", e)
	}

	// left is the piece that contains the smaller end of e.
	var p P
	left, right := cv1, cv2
	switch {
	case a.isInteriorEnd(cv1, traits.MaxEnd) && a.isInteriorEnd(cv2, traits.MinEnd) &&
		a.geom.EqualPoints(a.geom.MaxVertex(cv1), a.geom.MinVertex(cv2)):
		p = a.geom.MaxVertex(cv1)
	case a.isInteriorEnd(cv2, traits.MaxEnd) && a.isInteriorEnd(cv1, traits.MinEnd) &&
		a.geom.EqualPoints(a.geom.MaxVertex(cv2), a.geom.MinVertex(cv1)):
		p = a.geom.MaxVertex(cv2)
		left, right = cv2, cv1
	default:
		precondition(op, "the two curves do not share an end")
	}

	he := e
	if a.d.Direction(he) == dcel.RightToLeft {
		he = a.d.Twin(he)
	}
	if !a.areEqual(a.d.Source(he), left, traits.MinEnd) || !a.areEqual(a.d.Target(he), right, traits.MaxEnd) {
		precondition(op, "the two curves do not make up the curve of halfedge %d", e)
	}

	c1, c2 := left, right
	if he != e {
		c1, c2 = right, left
	}

	v := a.createVertex(p)
	a.notify(newEvent[P, C](SplitEdge, Before).halfedge(e).vertex(v).curves(c1, c2))
	a.splitEdge(e, v, c1, c2)
	a.notify(newEvent[P, C](SplitEdge, After).halfedges(e, a.d.Next(e)))

	a.log.Debug("[aos-split] edge split", zap.Int("halfedge", int(e)), zap.Int("vertex", int(v)))
	return e
}

// splitEdge makes he1 end at v and continues it with a new edge carrying c2.
// c1 is the piece at the source of he1.
func (a *Arrangement[P, C]) splitEdge(he1 dcel.HalfedgeID, v dcel.VertexID, c1, c2 C) {
	d := a.d
	he2 := d.Twin(he1)
	w := d.Target(he1)

	next1, prev2 := d.Next(he1), d.Prev(he2)

	he3 := a.newEdge(c2)
	he4 := d.Twin(he3)
	d.SetCurve(he1, a.ownCurve(c1))

	// w is a leaf
	if next1 == he2 {
		next1 = he4
	}
	if prev2 == he1 {
		prev2 = he3
	}

	d.SetTarget(he3, w)
	d.SetTarget(he4, v)
	d.SetTarget(he1, v)
	if d.OnInnerCCB(he1) {
		d.SetInnerCCB(he3, d.InnerCCB(he1))
	} else {
		d.SetOuterCCB(he3, d.OuterCCB(he1))
	}
	if d.OnInnerCCB(he2) {
		d.SetInnerCCB(he4, d.InnerCCB(he2))
	} else {
		d.SetOuterCCB(he4, d.OuterCCB(he2))
	}

	d.SetNext(he1, he3)
	d.SetNext(he3, next1)
	d.SetNext(prev2, he4)
	d.SetNext(he4, he2)
	d.SetDirection(he3, d.Direction(he1))

	d.SetVertexHalfedge(v, he1)
	if d.VertexHalfedge(w) == he1 {
		d.SetVertexHalfedge(w, he3)
	}
}

// MergeEdge merges two edges that meet at a vertex of degree 2 into a
// single edge carrying cv. The returned halfedge has the orientation of e1.
func (a *Arrangement[P, C]) MergeEdge(e1, e2 dcel.HalfedgeID, cv C) dcel.HalfedgeID {
	const op = "merge edge"
	a.enter(op)
	a.checkHalfedge(op, e1)
	a.checkHalfedge(op, e2)
	d := a.d
	if d.IsFictitious(e1) || d.IsFictitious(e2) {
		precondition(op, "cannot merge fictitious halfedges")
	}
	if e1 == e2 || e1 == d.Twin(e2) {
		precondition(op, "halfedges %d and %d belong to the same edge", e1, e2)
	}

	// he1 enters the common vertex, he3 leaves it.
	var he1, he3 dcel.HalfedgeID
	switch {
	case d.Target(e1) == d.Source(e2):
		he1, he3 = e1, e2
	case d.Target(e1) == d.Target(e2):
		he1, he3 = e1, d.Twin(e2)
	case d.Source(e1) == d.Source(e2):
		he1, he3 = d.Twin(e1), e2
	case d.Source(e1) == d.Target(e2):
		he1, he3 = d.Twin(e1), d.Twin(e2)
	default:
		precondition(op, "halfedges %d and %d do not share a vertex", e1, e2)
	}

	v := d.Target(he1)
	u, w := d.Source(he1), d.Target(he3)
	if u == w {
		precondition(op, "the merged edge would be a loop at vertex %d", u)
	}
	if !a.HasPoint(v) {
		precondition(op, "the common vertex %d lies at infinity", v)
	}
	if d.Degree(v) != 2 {
		precondition(op, "the common vertex %d has degree %d", v, d.Degree(v))
	}
	if d.Direction(he1) != d.Direction(he3) {
		precondition(op, "halfedges %d and %d are not x-monotone together", e1, e2)
	}
	uEnd, wEnd := traits.MinEnd, traits.MaxEnd
	if d.Direction(he1) == dcel.RightToLeft {
		uEnd, wEnd = traits.MaxEnd, traits.MinEnd
	}
	if !a.areEqual(u, cv, uEnd) || !a.areEqual(w, cv, wEnd) {
		precondition(op, "the merged curve does not connect vertices %d and %d", u, w)
	}

	a.notify(newEvent[P, C](MergeEdge, Before).halfedges(e1, e2).curve(cv))

	he2, he4 := d.Twin(he1), d.Twin(he3)
	next3, prev4 := d.Next(he3), d.Prev(he4)
	// w is a leaf
	if next3 == he4 {
		next3 = he2
	}
	if prev4 == he3 {
		prev4 = he1
	}

	a.replaceCCBRep(he3, he1)
	a.replaceCCBRep(he4, he2)
	if d.VertexHalfedge(w) == he3 {
		d.SetVertexHalfedge(w, he1)
	}

	d.SetTarget(he1, w)
	d.SetNext(prev4, he2)
	d.SetNext(he1, next3)
	d.SetCurve(he1, a.ownCurve(cv))

	d.DeleteVertex(v)
	d.DeleteEdge(he3)

	res := he1
	if e1 != he1 {
		res = he2
	}
	a.notify(newEvent[P, C](MergeEdge, After).halfedge(res))

	a.log.Debug("[aos-merge] edges merged", zap.Int("halfedge", int(res)), zap.Int("vertex", int(v)))
	return res
}

// replaceCCBRep makes to the representative of the CCB of from if from
// currently is.
func (a *Arrangement[P, C]) replaceCCBRep(from, to dcel.HalfedgeID) {
	d := a.d
	if d.OnInnerCCB(from) {
		if ic := d.InnerCCB(from); d.InnerCCBHalfedge(ic) == from {
			d.SetInnerCCBHalfedge(ic, to)
		}
		return
	}
	if oc := d.OuterCCB(from); d.OuterCCBHalfedge(oc) == from {
		d.SetOuterCCBHalfedge(oc, to)
	}
}

// RemoveIsolatedVertex deletes the isolated vertex v and returns the face
// that contained it.
func (a *Arrangement[P, C]) RemoveIsolatedVertex(v dcel.VertexID) dcel.FaceID {
	const op = "remove isolated vertex"
	a.enter(op)
	a.checkVertex(op, v)
	iv := a.d.VertexIso(v)
	if iv == dcel.NoIsoVertex {
		precondition(op, "vertex %d is not isolated", v)
	}
	f := a.d.IsoFace(iv)

	a.notify(newEvent[P, C](RemoveIsolatedVertex, Before).face(f).vertex(v))
	a.d.EraseIsoVertex(f, iv)
	a.d.DeleteIsoVertex(iv)
	a.notify(newEvent[P, C](RemoveIsolatedVertex, After).face(f))

	a.deleteVertex(v)
	a.log.Debug("[aos-remove] isolated vertex", zap.Int("vertex", int(v)), zap.Int("face", int(f)))
	return f
}

func (a *Arrangement[P, C]) deleteVertex(v dcel.VertexID) {
	a.notify(newEvent[P, C](RemoveVertex, Before).vertex(v))
	a.d.DeleteVertex(v)
	a.notify(newEvent[P, C](RemoveVertex, After))
}
