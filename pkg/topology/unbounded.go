package topology

import (
	"fmt"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// UnboundedPlanar is the plane with curves that may reach infinity. The
// boundary at infinity is a fictitious rectangle spanned by four corner
// vertices without points. Its outer side is the fictitious face; the
// reference face starts inside it.
type UnboundedPlanar[P, C any] struct {
	geom traits.Geometry[P, C]
	d    *dcel.DCEL[P, C]

	fictitious     dcel.FaceID
	bl, tl, br, tr dcel.VertexID
}

func NewUnboundedPlanar[P, C any](geom traits.Geometry[P, C]) *UnboundedPlanar[P, C] {
	return &UnboundedPlanar[P, C]{
		geom:       geom,
		fictitious: dcel.NoFace,
		bl:         dcel.NoVertex,
		tl:         dcel.NoVertex,
		br:         dcel.NoVertex,
		tr:         dcel.NoVertex,
	}
}

func (t *UnboundedPlanar[P, C]) Attach(d *dcel.DCEL[P, C]) { t.d = d }

func (t *UnboundedPlanar[P, C]) InitDCEL() {
	d := t.d
	d.DeleteAll()

	t.bl, t.tl, t.br, t.tr = d.NewVertex(), d.NewVertex(), d.NewVertex(), d.NewVertex()
	d.SetBoundary(t.bl, traits.LeftBoundary, traits.BottomBoundary)
	d.SetBoundary(t.tl, traits.LeftBoundary, traits.TopBoundary)
	d.SetBoundary(t.br, traits.RightBoundary, traits.BottomBoundary)
	d.SetBoundary(t.tr, traits.RightBoundary, traits.TopBoundary)

	ref := d.NewFace()
	d.SetUnbounded(ref, true)
	t.fictitious = d.NewFace()
	d.SetUnbounded(t.fictitious, true)
	d.SetFictitiousFace(t.fictitious, true)

	// Counterclockwise inner loop BL -> BR -> TR -> TL -> BL.
	bottom, right, top, left := d.NewEdge(), d.NewEdge(), d.NewEdge(), d.NewEdge()
	link := func(h dcel.HalfedgeID, from, to dcel.VertexID, dir dcel.Direction) {
		d.SetTarget(h, to)
		d.SetTarget(d.Twin(h), from)
		d.SetDirection(h, dir)
	}
	link(bottom, t.bl, t.br, dcel.LeftToRight)
	link(right, t.br, t.tr, dcel.LeftToRight)
	link(top, t.tr, t.tl, dcel.RightToLeft)
	link(left, t.tl, t.bl, dcel.RightToLeft)

	d.SetNext(bottom, right)
	d.SetNext(right, top)
	d.SetNext(top, left)
	d.SetNext(left, bottom)

	d.SetNext(d.Twin(bottom), d.Twin(left))
	d.SetNext(d.Twin(left), d.Twin(top))
	d.SetNext(d.Twin(top), d.Twin(right))
	d.SetNext(d.Twin(right), d.Twin(bottom))

	oc := d.NewOuterCCB()
	d.AddOuterCCB(ref, oc)
	d.SetOuterCCBHalfedge(oc, bottom)
	ic := d.NewInnerCCB()
	d.AddInnerCCB(t.fictitious, ic)
	d.SetInnerCCBHalfedge(ic, d.Twin(bottom))
	for _, h := range []dcel.HalfedgeID{bottom, right, top, left} {
		d.SetOuterCCB(h, oc)
		d.SetInnerCCB(d.Twin(h), ic)
	}

	d.SetVertexHalfedge(t.bl, left)
	d.SetVertexHalfedge(t.br, bottom)
	d.SetVertexHalfedge(t.tr, right)
	d.SetVertexHalfedge(t.tl, top)
}

func (t *UnboundedPlanar[P, C]) Clone() Traits[P, C] {
	cp := *t
	cp.d = nil
	return &cp
}

func (t *UnboundedPlanar[P, C]) SideCategory(ps traits.ParameterSpace) traits.SideCategory {
	if ps == traits.Interior {
		return traits.Oblivious
	}
	return traits.Open
}

// FictitiousFace returns the face outside the boundary rectangle.
func (t *UnboundedPlanar[P, C]) FictitiousFace() dcel.FaceID { return t.fictitious }

// ReferenceFace returns the face that touches the bottom-left corner.
func (t *UnboundedPlanar[P, C]) ReferenceFace() dcel.FaceID {
	for _, h := range t.d.IncidentHalfedges(t.bl) {
		if f := t.d.IncidentFace(h); f != t.fictitious {
			return f
		}
	}
	panic("topology: bottom-left corner is not incident to a real face")
}

func (t *UnboundedPlanar[P, C]) isCorner(v dcel.VertexID) bool {
	return v == t.bl || v == t.tl || v == t.br || v == t.tr
}

// sideOf returns the boundary side a fictitious halfedge runs along.
func (t *UnboundedPlanar[P, C]) sideOf(h dcel.HalfedgeID) traits.ParameterSpace {
	sx, sy := t.d.Boundary(t.d.Source(h))
	tx, ty := t.d.Boundary(t.d.Target(h))
	switch {
	case sx == tx && (sx == traits.LeftBoundary || sx == traits.RightBoundary):
		return sx
	case sy == ty && (sy == traits.BottomBoundary || sy == traits.TopBoundary):
		return sy
	}
	panic(fmt.Sprintf("topology: fictitious halfedge %d does not run along a side", h))
}

func onSide(side, psx, psy traits.ParameterSpace) bool {
	switch side {
	case traits.LeftBoundary, traits.RightBoundary:
		return psx == side
	default:
		return psx == traits.Interior && psy == side
	}
}

// compareOnSide locates a curve end against a vertex of the same side: by y
// on the left and right sides, by x on the bottom and top.
func (t *UnboundedPlanar[P, C]) compareOnSide(side traits.ParameterSpace, cv C, end traits.CurveEnd, v dcel.VertexID) traits.Comparison {
	vertical := side == traits.LeftBoundary || side == traits.RightBoundary
	if t.isCorner(v) {
		psx, psy := t.d.Boundary(v)
		if vertical {
			if psy == traits.BottomBoundary {
				return traits.Larger
			}
			return traits.Smaller
		}
		if psx == traits.LeftBoundary {
			return traits.Larger
		}
		return traits.Smaller
	}
	vcv, vend, ok := incidentCurveEnd(t.d, v)
	if !ok {
		panic(fmt.Sprintf("topology: vertex %d at infinity has no curve", v))
	}
	if vertical {
		return t.geom.CompareYNearBoundary(cv, vcv, end)
	}
	return t.geom.CompareXCurveEndsOnBoundary(cv, end, vcv, vend)
}

// PlaceBoundaryVertex scans the fictitious halfedges on the outer CCBs of f
// for the one the curve end lands on.
func (t *UnboundedPlanar[P, C]) PlaceBoundaryVertex(f dcel.FaceID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) dcel.Feature {
	for _, oc := range t.d.FaceOuterCCBs(f) {
		for _, h := range t.d.CCBHalfedges(t.d.OuterCCBHalfedge(oc)) {
			if !t.d.IsFictitious(h) {
				continue
			}
			side := t.sideOf(h)
			if !onSide(side, psx, psy) {
				continue
			}
			s, tg := t.d.Source(h), t.d.Target(h)
			res1 := t.compareOnSide(side, cv, end, s)
			if res1 == traits.Equal {
				return dcel.AtVertex(s)
			}
			res2 := t.compareOnSide(side, cv, end, tg)
			if res2 == traits.Equal {
				return dcel.AtVertex(tg)
			}
			if res1 != res2 {
				return dcel.OnHalfedge(h)
			}
		}
	}
	panic(fmt.Sprintf("topology: %s curve end at (%s, %s) is not on the boundary of face %d", end, psx, psy, f))
}

func (t *UnboundedPlanar[P, C]) NotifyOnBoundaryVertexCreation(dcel.VertexID, C, traits.CurveEnd, traits.ParameterSpace, traits.ParameterSpace) {
}

func (t *UnboundedPlanar[P, C]) SplitFictitiousEdge(h dcel.HalfedgeID, v dcel.VertexID) dcel.HalfedgeID {
	d := t.d
	tg := d.Target(h)
	th := d.Twin(h)

	e1 := d.NewEdge()
	e2 := d.Twin(e1)
	d.SetTarget(e1, tg)
	d.SetTarget(e2, v)
	d.SetDirection(e1, d.Direction(h))

	d.SetNext(e1, d.Next(h))
	d.SetNext(h, e1)
	d.SetTarget(h, v)
	d.SetNext(d.Prev(th), e2)
	d.SetNext(e2, th)

	copyCCB(d, h, e1)
	copyCCB(d, th, e2)

	d.SetVertexHalfedge(v, h)
	if d.VertexHalfedge(tg) == h {
		d.SetVertexHalfedge(tg, e1)
	}
	return h
}

func copyCCB[P, C any](d *dcel.DCEL[P, C], from, to dcel.HalfedgeID) {
	if d.OnInnerCCB(from) {
		d.SetInnerCCB(to, d.InnerCCB(from))
		return
	}
	d.SetOuterCCB(to, d.OuterCCB(from))
}

// LocateAroundBoundaryVertex returns the fictitious halfedge into v that
// bounds a real face. A vertex at infinity carries a single curve end, so any
// other configuration means the end is already present.
func (t *UnboundedPlanar[P, C]) LocateAroundBoundaryVertex(v dcel.VertexID, _ C, end traits.CurveEnd, _, _ traits.ParameterSpace) dcel.HalfedgeID {
	hs := t.d.IncidentHalfedges(v)
	if len(hs) == 2 {
		for _, h := range hs {
			if t.d.IsFictitious(h) && t.d.IncidentFace(h) != t.fictitious {
				return h
			}
		}
	}
	panic(fmt.Sprintf("topology: %s curve end already present at vertex %d", end, v))
}

func (t *UnboundedPlanar[P, C]) AreEqual(v dcel.VertexID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) bool {
	if t.isCorner(v) {
		return false
	}
	if _, ok := t.d.Point(v); ok {
		return false
	}
	vx, vy := t.d.Boundary(v)
	if vx != psx || vy != psy {
		return false
	}
	vcv, vend, ok := incidentCurveEnd(t.d, v)
	if !ok {
		return false
	}
	if psx != traits.Interior {
		return t.geom.CompareYNearBoundary(cv, vcv, end) == traits.Equal
	}
	return t.geom.CompareXCurveEndsOnBoundary(cv, end, vcv, vend) == traits.Equal
}

func (t *UnboundedPlanar[P, C]) IsRedundant(v dcel.VertexID) bool {
	if t.isCorner(v) {
		return false
	}
	if _, ok := t.d.Point(v); ok {
		return false
	}
	_, _, ok := incidentCurveEnd(t.d, v)
	return !ok
}

// EraseRedundantVertex joins the two fictitious edges meeting at v. The
// halfedge into v survives and is stretched to the far vertex.
func (t *UnboundedPlanar[P, C]) EraseRedundantVertex(v dcel.VertexID) dcel.HalfedgeID {
	d := t.d
	h1 := d.VertexHalfedge(v)
	if h1 == dcel.NoHalfedge {
		return dcel.NoHalfedge
	}
	n1 := d.Next(h1)
	h2 := d.Twin(n1)
	th1 := d.Twin(h1)
	tg := d.Target(n1)

	d.SetNext(h1, d.Next(n1))
	d.SetTarget(h1, tg)
	d.SetNext(d.Prev(h2), th1)

	if d.OnInnerCCB(n1) {
		if ic := d.InnerCCB(n1); d.InnerCCBHalfedge(ic) == n1 {
			d.SetInnerCCBHalfedge(ic, h1)
		}
	} else if oc := d.OuterCCB(n1); d.OuterCCBHalfedge(oc) == n1 {
		d.SetOuterCCBHalfedge(oc, h1)
	}
	if d.OnInnerCCB(h2) {
		if ic := d.InnerCCB(h2); d.InnerCCBHalfedge(ic) == h2 {
			d.SetInnerCCBHalfedge(ic, th1)
		}
	} else if oc := d.OuterCCB(h2); d.OuterCCBHalfedge(oc) == h2 {
		d.SetOuterCCBHalfedge(oc, th1)
	}
	if d.VertexHalfedge(tg) == n1 {
		d.SetVertexHalfedge(tg, h1)
	}
	d.DeleteEdge(n1)
	return h1
}

func (t *UnboundedPlanar[P, C]) FaceSplitAfterEdgeInsertion(dcel.HalfedgeID, dcel.HalfedgeID, C) (bool, bool) {
	return true, true
}

func (t *UnboundedPlanar[P, C]) HoleCreationAfterEdgeRemoval(h dcel.HalfedgeID) bool {
	if t.d.OnInnerCCB(h) || t.d.OnInnerCCB(t.d.Twin(h)) {
		return false
	}
	return t.d.OuterCCB(h) == t.d.OuterCCB(t.d.Twin(h))
}

func (t *UnboundedPlanar[P, C]) LetMeDecideTheOuterCCB(traits.Signs, traits.Signs) (bool, bool) {
	return false, true
}

func (t *UnboundedPlanar[P, C]) IsOnNewPerimetricFaceBoundary(dcel.HalfedgeID, dcel.HalfedgeID, C) bool {
	return false
}

func (t *UnboundedPlanar[P, C]) BoundariesOfSameFace(dcel.HalfedgeID, dcel.HalfedgeID) bool {
	return false
}

func (t *UnboundedPlanar[P, C]) IsUnbounded(f dcel.FaceID) bool {
	if f == t.fictitious || t.d.NumFaceOuterCCBs(f) == 0 {
		return true
	}
	for _, oc := range t.d.FaceOuterCCBs(f) {
		for _, h := range t.d.CCBHalfedges(t.d.OuterCCBHalfedge(oc)) {
			if t.d.IsFictitious(h) {
				return true
			}
		}
	}
	return false
}

func (t *UnboundedPlanar[P, C]) IsInFace(f dcel.FaceID, p P, v dcel.VertexID) bool {
	if f == t.fictitious {
		return false
	}
	if t.d.NumFaceOuterCCBs(f) == 0 {
		return true
	}
	return insideOuterCCBs(t.d, t.geom, f, p, v)
}
