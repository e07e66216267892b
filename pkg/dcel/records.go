package dcel

import (
	"slices"

	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// Vertices.

func (d *DCEL[P, C]) NewVertex() VertexID {
	i, v := d.vertices.alloc()
	v.halfedge = NoHalfedge
	v.iso = NoIsoVertex
	return VertexID(i)
}

func (d *DCEL[P, C]) DeleteVertex(v VertexID) { d.vertices.release(int32(v)) }

func (d *DCEL[P, C]) v(v VertexID) *vertex[P] { return d.vertices.get(int32(v)) }

func (d *DCEL[P, C]) Point(v VertexID) (P, bool) {
	rec := d.v(v)
	return rec.point, rec.hasPoint
}

func (d *DCEL[P, C]) SetPoint(v VertexID, p P) {
	rec := d.v(v)
	rec.point, rec.hasPoint = p, true
}

func (d *DCEL[P, C]) ClearPoint(v VertexID) {
	rec := d.v(v)
	var zero P
	rec.point, rec.hasPoint = zero, false
}

func (d *DCEL[P, C]) Boundary(v VertexID) (psx, psy traits.ParameterSpace) {
	rec := d.v(v)
	return rec.psx, rec.psy
}

func (d *DCEL[P, C]) SetBoundary(v VertexID, psx, psy traits.ParameterSpace) {
	rec := d.v(v)
	rec.psx, rec.psy = psx, psy
}

// VertexHalfedge returns some halfedge whose target is v, or NoHalfedge.
func (d *DCEL[P, C]) VertexHalfedge(v VertexID) HalfedgeID { return d.v(v).halfedge }

func (d *DCEL[P, C]) SetVertexHalfedge(v VertexID, h HalfedgeID) {
	rec := d.v(v)
	rec.halfedge = h
	if h != NoHalfedge {
		rec.iso = NoIsoVertex
	}
}

func (d *DCEL[P, C]) VertexIso(v VertexID) IsoVertexID { return d.v(v).iso }

// IncidentHalfedges lists the halfedges whose target is v in clockwise order
// starting at the representative.
func (d *DCEL[P, C]) IncidentHalfedges(v VertexID) []HalfedgeID {
	first := d.v(v).halfedge
	if first == NoHalfedge {
		return nil
	}
	var out []HalfedgeID
	curr := first
	for {
		out = append(out, curr)
		curr = d.Twin(d.Next(curr))
		if curr == first {
			return out
		}
		if len(out) > 2*d.edges.size {
			panic("dcel: broken circulation around a vertex")
		}
	}
}

func (d *DCEL[P, C]) Degree(v VertexID) int { return len(d.IncidentHalfedges(v)) }

// Halfedges.

// NewEdge allocates a twin pair and returns its first halfedge.
func (d *DCEL[P, C]) NewEdge() HalfedgeID {
	i, e := d.edges.alloc()
	for k := range e.he {
		e.he[k] = halfedge{
			next:   NoHalfedge,
			prev:   NoHalfedge,
			target: NoVertex,
			outer:  NoOuterCCB,
			inner:  NoInnerCCB,
		}
	}
	e.he[1].dir = RightToLeft
	return HalfedgeID(2 * i)
}

// DeleteEdge frees the pair h belongs to.
func (d *DCEL[P, C]) DeleteEdge(h HalfedgeID) { d.edges.release(int32(h >> 1)) }

func (d *DCEL[P, C]) h(h HalfedgeID) *halfedge {
	if h < 0 {
		panic("dcel: access to the null halfedge")
	}
	return &d.edges.get(int32(h >> 1)).he[h&1]
}

func (d *DCEL[P, C]) Twin(h HalfedgeID) HalfedgeID { return h ^ 1 }

func (d *DCEL[P, C]) Next(h HalfedgeID) HalfedgeID { return d.h(h).next }
func (d *DCEL[P, C]) Prev(h HalfedgeID) HalfedgeID { return d.h(h).prev }

// SetNext links h to n and n back to h.
func (d *DCEL[P, C]) SetNext(h, n HalfedgeID) {
	d.h(h).next = n
	d.h(n).prev = h
}

func (d *DCEL[P, C]) Target(h HalfedgeID) VertexID       { return d.h(h).target }
func (d *DCEL[P, C]) Source(h HalfedgeID) VertexID       { return d.h(h ^ 1).target }
func (d *DCEL[P, C]) SetTarget(h HalfedgeID, v VertexID) { d.h(h).target = v }

func (d *DCEL[P, C]) Direction(h HalfedgeID) Direction { return d.h(h).dir }

// SetDirection sets the direction of h and the opposite one of its twin.
func (d *DCEL[P, C]) SetDirection(h HalfedgeID, dir Direction) {
	d.h(h).dir = dir
	d.h(h ^ 1).dir = dir.Opposite()
}

func (d *DCEL[P, C]) Curve(h HalfedgeID) (C, bool) {
	e := d.edges.get(int32(h >> 1))
	return e.curve, e.hasCurve
}

func (d *DCEL[P, C]) SetCurve(h HalfedgeID, cv C) {
	e := d.edges.get(int32(h >> 1))
	e.curve, e.hasCurve = cv, true
}

func (d *DCEL[P, C]) IsFictitious(h HalfedgeID) bool { return !d.edges.get(int32(h >> 1)).hasCurve }

func (d *DCEL[P, C]) OnInnerCCB(h HalfedgeID) bool     { return d.h(h).inner != NoInnerCCB }
func (d *DCEL[P, C]) OuterCCB(h HalfedgeID) OuterCCBID { return d.h(h).outer }
func (d *DCEL[P, C]) InnerCCB(h HalfedgeID) InnerCCBID { return d.h(h).inner }

func (d *DCEL[P, C]) SetOuterCCB(h HalfedgeID, oc OuterCCBID) {
	rec := d.h(h)
	rec.outer, rec.inner = oc, NoInnerCCB
}

func (d *DCEL[P, C]) SetInnerCCB(h HalfedgeID, ic InnerCCBID) {
	rec := d.h(h)
	rec.inner, rec.outer = ic, NoOuterCCB
}

// IncidentFace returns the face lying to the left of h.
func (d *DCEL[P, C]) IncidentFace(h HalfedgeID) FaceID {
	rec := d.h(h)
	if rec.inner != NoInnerCCB {
		return d.inners.get(int32(rec.inner)).face
	}
	return d.outers.get(int32(rec.outer)).face
}

// CCBHalfedges lists the boundary chain starting at h.
func (d *DCEL[P, C]) CCBHalfedges(h HalfedgeID) []HalfedgeID {
	var out []HalfedgeID
	curr := h
	for {
		out = append(out, curr)
		curr = d.Next(curr)
		if curr == h {
			return out
		}
		if len(out) > 2*d.edges.size {
			panic("dcel: broken boundary chain")
		}
	}
}

// Faces.

func (d *DCEL[P, C]) NewFace() FaceID {
	i, _ := d.faces.alloc()
	return FaceID(i)
}

func (d *DCEL[P, C]) DeleteFace(f FaceID) { d.faces.release(int32(f)) }

func (d *DCEL[P, C]) f(f FaceID) *face { return d.faces.get(int32(f)) }

func (d *DCEL[P, C]) IsUnbounded(f FaceID) bool          { return d.f(f).unbounded }
func (d *DCEL[P, C]) SetUnbounded(f FaceID, b bool)      { d.f(f).unbounded = b }
func (d *DCEL[P, C]) IsFictitiousFace(f FaceID) bool     { return d.f(f).fictitious }
func (d *DCEL[P, C]) SetFictitiousFace(f FaceID, b bool) { d.f(f).fictitious = b }

func (d *DCEL[P, C]) FaceOuterCCBs(f FaceID) []OuterCCBID { return slices.Clone(d.f(f).outer) }
func (d *DCEL[P, C]) FaceInnerCCBs(f FaceID) []InnerCCBID { return slices.Clone(d.f(f).inner) }
func (d *DCEL[P, C]) FaceIsoVertices(f FaceID) []IsoVertexID {
	return slices.Clone(d.f(f).iso)
}

func (d *DCEL[P, C]) NumFaceOuterCCBs(f FaceID) int { return len(d.f(f).outer) }
func (d *DCEL[P, C]) NumFaceInnerCCBs(f FaceID) int { return len(d.f(f).inner) }

// AddOuterCCB attaches oc to f.
func (d *DCEL[P, C]) AddOuterCCB(f FaceID, oc OuterCCBID) {
	rec := d.f(f)
	rec.outer = append(rec.outer, oc)
	d.outers.get(int32(oc)).face = f
}

func (d *DCEL[P, C]) EraseOuterCCB(f FaceID, oc OuterCCBID) {
	rec := d.f(f)
	rec.outer = eraseID(rec.outer, oc)
}

func (d *DCEL[P, C]) AddInnerCCB(f FaceID, ic InnerCCBID) {
	rec := d.f(f)
	rec.inner = append(rec.inner, ic)
	d.inners.get(int32(ic)).face = f
}

func (d *DCEL[P, C]) EraseInnerCCB(f FaceID, ic InnerCCBID) {
	rec := d.f(f)
	rec.inner = eraseID(rec.inner, ic)
}

func (d *DCEL[P, C]) AddIsoVertex(f FaceID, iv IsoVertexID) {
	rec := d.f(f)
	rec.iso = append(rec.iso, iv)
	d.isos.get(int32(iv)).face = f
}

func (d *DCEL[P, C]) EraseIsoVertex(f FaceID, iv IsoVertexID) {
	rec := d.f(f)
	rec.iso = eraseID(rec.iso, iv)
}

func eraseID[T comparable](ids []T, id T) []T {
	i := slices.Index(ids, id)
	if i < 0 {
		panic("dcel: record is not attached to the face")
	}
	return slices.Delete(ids, i, i+1)
}

// Connected components of the boundary.

func (d *DCEL[P, C]) NewOuterCCB() OuterCCBID {
	i, c := d.outers.alloc()
	c.face, c.halfedge = NoFace, NoHalfedge
	return OuterCCBID(i)
}

func (d *DCEL[P, C]) DeleteOuterCCB(oc OuterCCBID) { d.outers.release(int32(oc)) }

func (d *DCEL[P, C]) OuterCCBFace(oc OuterCCBID) FaceID { return d.outers.get(int32(oc)).face }
func (d *DCEL[P, C]) OuterCCBHalfedge(oc OuterCCBID) HalfedgeID {
	return d.outers.get(int32(oc)).halfedge
}
func (d *DCEL[P, C]) SetOuterCCBHalfedge(oc OuterCCBID, h HalfedgeID) {
	d.outers.get(int32(oc)).halfedge = h
}
func (d *DCEL[P, C]) OuterCCBAlive(oc OuterCCBID) bool { return d.outers.alive(int32(oc)) }

func (d *DCEL[P, C]) NewInnerCCB() InnerCCBID {
	i, c := d.inners.alloc()
	c.face, c.halfedge = NoFace, NoHalfedge
	return InnerCCBID(i)
}

func (d *DCEL[P, C]) DeleteInnerCCB(ic InnerCCBID) { d.inners.release(int32(ic)) }

func (d *DCEL[P, C]) InnerCCBFace(ic InnerCCBID) FaceID { return d.inners.get(int32(ic)).face }
func (d *DCEL[P, C]) InnerCCBHalfedge(ic InnerCCBID) HalfedgeID {
	return d.inners.get(int32(ic)).halfedge
}
func (d *DCEL[P, C]) SetInnerCCBHalfedge(ic InnerCCBID, h HalfedgeID) {
	d.inners.get(int32(ic)).halfedge = h
}
func (d *DCEL[P, C]) InnerCCBAlive(ic InnerCCBID) bool { return d.inners.alive(int32(ic)) }

// Isolated vertices.

// NewIsoVertex creates the isolated-vertex record of v. It still has to be
// attached to a face with AddIsoVertex.
func (d *DCEL[P, C]) NewIsoVertex(v VertexID) IsoVertexID {
	i, iv := d.isos.alloc()
	iv.face, iv.vertex = NoFace, v
	rec := d.v(v)
	rec.iso, rec.halfedge = IsoVertexID(i), NoHalfedge
	return IsoVertexID(i)
}

// DeleteIsoVertex frees the record and unlinks its vertex.
func (d *DCEL[P, C]) DeleteIsoVertex(iv IsoVertexID) {
	rec := d.isos.get(int32(iv))
	if d.vertices.alive(int32(rec.vertex)) && d.v(rec.vertex).iso == iv {
		d.v(rec.vertex).iso = NoIsoVertex
	}
	d.isos.release(int32(iv))
}

func (d *DCEL[P, C]) IsoFace(iv IsoVertexID) FaceID       { return d.isos.get(int32(iv)).face }
func (d *DCEL[P, C]) IsoVertexOf(iv IsoVertexID) VertexID { return d.isos.get(int32(iv)).vertex }
