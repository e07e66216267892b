package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// View is the read-only side of an arrangement.
type View[P, C any] interface {
	Geometry() traits.Geometry[P, C]

	IsEmpty() bool
	NumberOfVertices() int
	NumberOfVerticesAtInfinity() int
	NumberOfIsolatedVertices() int
	NumberOfEdges() int
	NumberOfHalfedges() int
	NumberOfFaces() int
	NumberOfUnboundedFaces() int

	Vertices() []dcel.VertexID
	VerticesAtInfinity() []dcel.VertexID
	Edges() []dcel.HalfedgeID
	Faces() []dcel.FaceID
	UnboundedFace() dcel.FaceID

	Point(v dcel.VertexID) (P, bool)
	HasPoint(v dcel.VertexID) bool
	Boundary(v dcel.VertexID) (psx, psy traits.ParameterSpace)
	IsAtOpenBoundary(v dcel.VertexID) bool
	Degree(v dcel.VertexID) int
	IsIsolated(v dcel.VertexID) bool
	IsolatedVertexFace(v dcel.VertexID) dcel.FaceID
	IncidentHalfedges(v dcel.VertexID) []dcel.HalfedgeID

	Twin(h dcel.HalfedgeID) dcel.HalfedgeID
	Next(h dcel.HalfedgeID) dcel.HalfedgeID
	Prev(h dcel.HalfedgeID) dcel.HalfedgeID
	Source(h dcel.HalfedgeID) dcel.VertexID
	Target(h dcel.HalfedgeID) dcel.VertexID
	Face(h dcel.HalfedgeID) dcel.FaceID
	Curve(h dcel.HalfedgeID) (C, bool)
	Direction(h dcel.HalfedgeID) dcel.Direction
	IsFictitious(h dcel.HalfedgeID) bool
	OnInnerCCB(h dcel.HalfedgeID) bool
	CCB(h dcel.HalfedgeID) []dcel.HalfedgeID

	IsUnbounded(f dcel.FaceID) bool
	IsFictitiousFace(f dcel.FaceID) bool
	OuterCCBs(f dcel.FaceID) []dcel.HalfedgeID
	InnerCCBs(f dcel.FaceID) []dcel.HalfedgeID
	IsolatedVertices(f dcel.FaceID) []dcel.VertexID
}

var _ View[int, int] = (*Arrangement[int, int])(nil)

func (a *Arrangement[P, C]) IsEmpty() bool {
	return a.NumberOfEdges() == 0 && a.NumberOfIsolatedVertices() == 0
}

// NumberOfVertices counts the vertices associated with a point.
func (a *Arrangement[P, C]) NumberOfVertices() int {
	return len(a.Vertices())
}

// NumberOfVerticesAtInfinity counts the point-less vertices that an actual
// curve reaches.
func (a *Arrangement[P, C]) NumberOfVerticesAtInfinity() int {
	return len(a.VerticesAtInfinity())
}

func (a *Arrangement[P, C]) NumberOfIsolatedVertices() int { return a.d.NumIsoVertices() }

func (a *Arrangement[P, C]) NumberOfEdges() int {
	n := 0
	for _, h := range a.d.Edges() {
		if !a.d.IsFictitious(h) {
			n++
		}
	}
	return n
}

func (a *Arrangement[P, C]) NumberOfHalfedges() int { return 2 * a.NumberOfEdges() }

func (a *Arrangement[P, C]) NumberOfFaces() int {
	n := 0
	for _, f := range a.d.Faces() {
		if !a.d.IsFictitiousFace(f) {
			n++
		}
	}
	return n
}

func (a *Arrangement[P, C]) NumberOfUnboundedFaces() int {
	n := 0
	for _, f := range a.d.Faces() {
		if !a.d.IsFictitiousFace(f) && a.d.IsUnbounded(f) {
			n++
		}
	}
	return n
}

func (a *Arrangement[P, C]) Vertices() []dcel.VertexID {
	var out []dcel.VertexID
	for _, v := range a.d.Vertices() {
		if _, ok := a.d.Point(v); ok {
			out = append(out, v)
		}
	}
	return out
}

func (a *Arrangement[P, C]) VerticesAtInfinity() []dcel.VertexID {
	var out []dcel.VertexID
	for _, v := range a.d.Vertices() {
		if _, ok := a.d.Point(v); ok {
			continue
		}
		for _, h := range a.d.IncidentHalfedges(v) {
			if !a.d.IsFictitious(h) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// Edges returns, for every edge, the halfedge directed from left to right.
func (a *Arrangement[P, C]) Edges() []dcel.HalfedgeID {
	var out []dcel.HalfedgeID
	for _, h := range a.d.Edges() {
		if a.d.IsFictitious(h) {
			continue
		}
		if a.d.Direction(h) != dcel.LeftToRight {
			h = a.d.Twin(h)
		}
		out = append(out, h)
	}
	return out
}

func (a *Arrangement[P, C]) Faces() []dcel.FaceID {
	var out []dcel.FaceID
	for _, f := range a.d.Faces() {
		if !a.d.IsFictitiousFace(f) {
			out = append(out, f)
		}
	}
	return out
}

// UnboundedFace returns the face an empty arrangement consists of. Once
// curves reach infinity there may be several unbounded faces; this is the
// one that replaced the original.
func (a *Arrangement[P, C]) UnboundedFace() dcel.FaceID { return a.topo.ReferenceFace() }

func (a *Arrangement[P, C]) Point(v dcel.VertexID) (P, bool) { return a.d.Point(v) }

func (a *Arrangement[P, C]) HasPoint(v dcel.VertexID) bool {
	_, ok := a.d.Point(v)
	return ok
}

func (a *Arrangement[P, C]) Boundary(v dcel.VertexID) (psx, psy traits.ParameterSpace) {
	return a.d.Boundary(v)
}

func (a *Arrangement[P, C]) IsAtOpenBoundary(v dcel.VertexID) bool { return !a.HasPoint(v) }

func (a *Arrangement[P, C]) Degree(v dcel.VertexID) int { return a.d.Degree(v) }

func (a *Arrangement[P, C]) IsIsolated(v dcel.VertexID) bool {
	return a.d.VertexIso(v) != dcel.NoIsoVertex
}

// IsolatedVertexFace returns the face containing the isolated vertex v.
func (a *Arrangement[P, C]) IsolatedVertexFace(v dcel.VertexID) dcel.FaceID {
	iv := a.d.VertexIso(v)
	if iv == dcel.NoIsoVertex {
		return dcel.NoFace
	}
	return a.d.IsoFace(iv)
}

func (a *Arrangement[P, C]) IncidentHalfedges(v dcel.VertexID) []dcel.HalfedgeID {
	return a.d.IncidentHalfedges(v)
}

func (a *Arrangement[P, C]) Twin(h dcel.HalfedgeID) dcel.HalfedgeID     { return a.d.Twin(h) }
func (a *Arrangement[P, C]) Next(h dcel.HalfedgeID) dcel.HalfedgeID     { return a.d.Next(h) }
func (a *Arrangement[P, C]) Prev(h dcel.HalfedgeID) dcel.HalfedgeID     { return a.d.Prev(h) }
func (a *Arrangement[P, C]) Source(h dcel.HalfedgeID) dcel.VertexID     { return a.d.Source(h) }
func (a *Arrangement[P, C]) Target(h dcel.HalfedgeID) dcel.VertexID     { return a.d.Target(h) }
func (a *Arrangement[P, C]) Face(h dcel.HalfedgeID) dcel.FaceID         { return a.d.IncidentFace(h) }
func (a *Arrangement[P, C]) Curve(h dcel.HalfedgeID) (C, bool)          { return a.d.Curve(h) }
func (a *Arrangement[P, C]) Direction(h dcel.HalfedgeID) dcel.Direction { return a.d.Direction(h) }
func (a *Arrangement[P, C]) IsFictitious(h dcel.HalfedgeID) bool        { return a.d.IsFictitious(h) }
func (a *Arrangement[P, C]) OnInnerCCB(h dcel.HalfedgeID) bool          { return a.d.OnInnerCCB(h) }

// CCB lists the boundary chain h lies on, starting at h.
func (a *Arrangement[P, C]) CCB(h dcel.HalfedgeID) []dcel.HalfedgeID { return a.d.CCBHalfedges(h) }

func (a *Arrangement[P, C]) IsUnbounded(f dcel.FaceID) bool      { return a.d.IsUnbounded(f) }
func (a *Arrangement[P, C]) IsFictitiousFace(f dcel.FaceID) bool { return a.d.IsFictitiousFace(f) }

// OuterCCBs returns a representative halfedge of every outer boundary
// component of f.
func (a *Arrangement[P, C]) OuterCCBs(f dcel.FaceID) []dcel.HalfedgeID {
	ids := a.d.FaceOuterCCBs(f)
	out := make([]dcel.HalfedgeID, len(ids))
	for i, oc := range ids {
		out[i] = a.d.OuterCCBHalfedge(oc)
	}
	return out
}

// InnerCCBs returns a representative halfedge of every hole of f.
func (a *Arrangement[P, C]) InnerCCBs(f dcel.FaceID) []dcel.HalfedgeID {
	ids := a.d.FaceInnerCCBs(f)
	out := make([]dcel.HalfedgeID, len(ids))
	for i, ic := range ids {
		out[i] = a.d.InnerCCBHalfedge(ic)
	}
	return out
}

func (a *Arrangement[P, C]) IsolatedVertices(f dcel.FaceID) []dcel.VertexID {
	ids := a.d.FaceIsoVertices(f)
	out := make([]dcel.VertexID, len(ids))
	for i, iv := range ids {
		out[i] = a.d.IsoVertexOf(iv)
	}
	return out
}
