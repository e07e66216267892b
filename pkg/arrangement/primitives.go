package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/zap"
)

func directionOf(res traits.Comparison) dcel.Direction {
	if res == traits.Smaller {
		return dcel.LeftToRight
	}
	return dcel.RightToLeft
}

func (a *Arrangement[P, C]) newEdge(cv C) dcel.HalfedgeID {
	h := a.d.NewEdge()
	a.d.SetCurve(h, a.ownCurve(cv))
	return h
}

// insertInFaceInterior connects two vertices without incident edges. The
// new edge forms a new hole of f. res compares v1 with v2; the returned
// halfedge is directed from v1 to v2.
func (a *Arrangement[P, C]) insertInFaceInterior(f dcel.FaceID, cv C, res traits.Comparison, v1, v2 dcel.VertexID) dcel.HalfedgeID {
	a.notify(newEvent[P, C](CreateEdge, Before).curve(cv).vertices(v1, v2))

	he1 := a.newEdge(cv)
	he2 := a.d.Twin(he1)
	a.d.SetTarget(he1, v1)
	a.d.SetTarget(he2, v2)
	a.d.SetNext(he1, he2)
	a.d.SetNext(he2, he1)

	ic := a.d.NewInnerCCB()
	a.d.SetInnerCCB(he1, ic)
	a.d.SetInnerCCB(he2, ic)
	a.d.SetVertexHalfedge(v1, he1)
	a.d.SetVertexHalfedge(v2, he2)
	a.d.SetDirection(he2, directionOf(res))

	a.notify(newEvent[P, C](CreateEdge, After).halfedge(he2))

	a.notify(newEvent[P, C](AddInnerCCB, Before).face(f).halfedge(he2))
	a.d.SetInnerCCBHalfedge(ic, he2)
	a.d.AddInnerCCB(f, ic)
	a.notify(newEvent[P, C](AddInnerCCB, After).halfedge(he2))

	a.log.Debug("[aos-insert] edge in face interior", zap.Int("face", int(f)), zap.Int("halfedge", int(he2)))
	return he2
}

// insertFromVertex connects the target of prev with v, which has no
// incident edges. res compares the target of prev with v; the returned
// halfedge is directed towards v.
func (a *Arrangement[P, C]) insertFromVertex(cv C, prev dcel.HalfedgeID, v dcel.VertexID, res traits.Comparison) dcel.HalfedgeID {
	v1 := a.d.Target(prev)
	a.notify(newEvent[P, C](CreateEdge, Before).curve(cv).vertices(v1, v))

	he1 := a.newEdge(cv)
	he2 := a.d.Twin(he1)
	a.d.SetTarget(he1, v1)
	a.d.SetTarget(he2, v)

	if a.d.OnInnerCCB(prev) {
		ic := a.d.InnerCCB(prev)
		a.d.SetInnerCCB(he1, ic)
		a.d.SetInnerCCB(he2, ic)
	} else {
		oc := a.d.OuterCCB(prev)
		a.d.SetOuterCCB(he1, oc)
		a.d.SetOuterCCB(he2, oc)
	}

	a.d.SetVertexHalfedge(v, he2)
	a.d.SetNext(he2, he1)
	a.d.SetNext(he1, a.d.Next(prev))
	a.d.SetNext(prev, he2)
	a.d.SetDirection(he2, directionOf(res))

	a.notify(newEvent[P, C](CreateEdge, After).halfedge(he2))

	a.log.Debug("[aos-insert] edge from vertex", zap.Int("vertex", int(v1)), zap.Int("halfedge", int(he2)))
	return he2
}

// insertAtVertices connects the targets of prev1 and prev2, which must lie
// on the boundary of the same face. res compares the target of prev1 with
// the target of prev2. The returned halfedge is directed towards the target
// of prev2; when a face is created it is the one to the left of it.
func (a *Arrangement[P, C]) insertAtVertices(cv C, prev1, prev2 dcel.HalfedgeID, res traits.Comparison) (dcel.HalfedgeID, bool) {
	const op = "insert at vertices"
	d := a.d

	ic1, ic2 := d.InnerCCB(prev1), d.InnerCCB(prev2)
	oc1, oc2 := d.OuterCCB(prev1), d.OuterCCB(prev2)
	f := d.IncidentFace(prev1)
	if d.IncidentFace(prev2) != f {
		precondition(op, "halfedges %d and %d do not lie on the same face", prev1, prev2)
	}

	split, contained := true, false
	if ic1 != dcel.NoInnerCCB && ic1 == ic2 {
		split, contained = a.topo.FaceSplitAfterEdgeInsertion(prev1, prev2, cv)
	}

	v1, v2 := d.Target(prev1), d.Target(prev2)
	a.notify(newEvent[P, C](CreateEdge, Before).curve(cv).vertices(v1, v2))

	he1 := a.newEdge(cv)
	he2 := d.Twin(he1)
	d.SetTarget(he1, v1)
	d.SetTarget(he2, v2)
	d.SetNext(he1, d.Next(prev1))
	d.SetNext(he2, d.Next(prev2))
	d.SetNext(prev1, he2)
	d.SetNext(prev2, he1)
	d.SetDirection(he2, directionOf(res))

	newFace := false
	switch {
	case (ic1 != dcel.NoInnerCCB || ic2 != dcel.NoInnerCCB) && ic1 != ic2:
		if ic1 != dcel.NoInnerCCB && ic2 != dcel.NoInnerCCB {
			// Two holes become one.
			a.notify(newEvent[P, C](MergeInnerCCB, Before).face(f).halfedges(d.InnerCCBHalfedge(ic1), d.InnerCCBHalfedge(ic2)))
			d.SetInnerCCB(he1, ic1)
			d.SetInnerCCB(he2, ic1)
			for curr := d.Next(he2); curr != he1; curr = d.Next(curr) {
				d.SetInnerCCB(curr, ic1)
			}
			d.EraseInnerCCB(f, ic2)
			d.DeleteInnerCCB(ic2)
			a.notify(newEvent[P, C](MergeInnerCCB, After).halfedge(he1))
			break
		}

		// A hole joins the outer boundary.
		var (
			del         dcel.InnerCCBID
			oc          dcel.OuterCCBID
			first, last dcel.HalfedgeID
		)
		if ic1 != dcel.NoInnerCCB {
			del, oc, first, last = ic1, oc2, d.Next(he1), he2
		} else {
			del, oc, first, last = ic2, oc1, d.Next(he2), he1
		}
		d.SetOuterCCB(he1, oc)
		d.SetOuterCCB(he2, oc)

		a.notify(newEvent[P, C](RemoveInnerCCB, Before).face(f).halfedge(d.InnerCCBHalfedge(del)))
		d.EraseInnerCCB(f, del)
		for curr := first; curr != last; curr = d.Next(curr) {
			d.SetOuterCCB(curr, oc)
		}
		d.DeleteInnerCCB(del)
		a.notify(newEvent[P, C](RemoveInnerCCB, After).face(f))

	case !split:
		// The hole turns into two outer boundaries of the same face.
		d.EraseInnerCCB(f, ic1)
		d.DeleteInnerCCB(ic1)
		for _, h := range []dcel.HalfedgeID{he1, he2} {
			oc := d.NewOuterCCB()
			a.notify(newEvent[P, C](AddOuterCCB, Before).face(f).halfedge(h))
			d.SetOuterCCBHalfedge(oc, h)
			d.AddOuterCCB(f, oc)
			for _, e := range d.CCBHalfedges(h) {
				d.SetOuterCCB(e, oc)
			}
			a.notify(newEvent[P, C](AddOuterCCB, After).halfedge(h))
		}

	case ic1 == ic2 && oc1 == oc2:
		newFace = true
		isHole := false
		a.notify(newEvent[P, C](SplitFace, Before).face(f).halfedge(he1))

		nf := d.NewFace()
		noc := d.NewOuterCCB()
		d.SetOuterCCBHalfedge(noc, he2)
		d.AddOuterCCB(nf, noc)
		for _, e := range d.CCBHalfedges(he2) {
			d.SetOuterCCB(e, noc)
		}

		if ic1 != dcel.NoInnerCCB {
			if contained {
				// The new face lies inside the hole, which keeps he1.
				isHole = true
				d.SetInnerCCB(he1, ic1)
				if d.InnerCCB(d.InnerCCBHalfedge(ic1)) != ic1 {
					d.SetInnerCCBHalfedge(ic1, he1)
				}
			} else {
				foc := d.NewOuterCCB()
				d.SetOuterCCBHalfedge(foc, he1)
				d.AddOuterCCB(f, foc)
				for _, e := range d.CCBHalfedges(he1) {
					d.SetOuterCCB(e, foc)
				}
				d.EraseInnerCCB(f, ic1)
				d.DeleteInnerCCB(ic1)

				for _, oc := range d.FaceOuterCCBs(f) {
					if oc == foc {
						continue
					}
					rep := d.OuterCCBHalfedge(oc)
					if a.topo.BoundariesOfSameFace(rep, he2) {
						a.moveOuterCCB(f, nf, rep)
					}
				}
			}
		} else {
			d.SetOuterCCB(he1, oc1)
			d.SetOuterCCBHalfedge(oc1, he1)
		}

		if !d.IsUnbounded(f) || isHole {
			d.SetUnbounded(nf, false)
		} else {
			nfUnbounded := a.topo.IsUnbounded(nf)
			d.SetUnbounded(nf, nfUnbounded)
			if nfUnbounded {
				d.SetUnbounded(f, a.topo.IsUnbounded(f))
			}
		}

		ev := newEvent[P, C](SplitFace, After).faces(f, nf)
		ev.IsHole = isHole
		a.notify(ev)

	default:
		// Two outer boundaries of the same face become one.
		a.notify(newEvent[P, C](MergeOuterCCB, Before).face(f).halfedges(d.OuterCCBHalfedge(oc1), d.OuterCCBHalfedge(oc2)))
		d.SetOuterCCB(he1, oc1)
		d.SetOuterCCB(he2, oc1)
		for curr := d.Next(he2); curr != he1; curr = d.Next(curr) {
			d.SetOuterCCB(curr, oc1)
		}
		d.EraseOuterCCB(f, oc2)
		d.DeleteOuterCCB(oc2)
		a.notify(newEvent[P, C](MergeOuterCCB, After).halfedge(he1))
	}

	a.notify(newEvent[P, C](CreateEdge, After).halfedge(he2))

	a.log.Debug("[aos-insert] edge at vertices",
		zap.Int("face", int(f)),
		zap.Int("halfedge", int(he2)),
		zap.Bool("new_face", newFace))
	return he2, newFace
}
