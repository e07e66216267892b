// Package dcel implements the doubly-connected edge list records of a planar
// arrangement. Records are kept in arenas and addressed by typed indices; a
// negative index is the null handle.
package dcel

import (
	"fmt"

	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

type (
	VertexID    int32
	HalfedgeID  int32
	FaceID      int32
	OuterCCBID  int32
	InnerCCBID  int32
	IsoVertexID int32
)

const (
	NoVertex    VertexID    = -1
	NoHalfedge  HalfedgeID  = -1
	NoFace      FaceID      = -1
	NoOuterCCB  OuterCCBID  = -1
	NoInnerCCB  InnerCCBID  = -1
	NoIsoVertex IsoVertexID = -1
)

// Direction of a halfedge relative to the lexicographic order of its curve
// ends.
type Direction int8

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) Opposite() Direction {
	if d == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

func (d Direction) String() string {
	if d == LeftToRight {
		return "L2R"
	}
	return "R2L"
}

type vertex[P any] struct {
	point    P
	hasPoint bool
	psx, psy traits.ParameterSpace
	halfedge HalfedgeID
	iso      IsoVertexID
}

type halfedge struct {
	next, prev HalfedgeID
	target     VertexID
	dir        Direction
	outer      OuterCCBID
	inner      InnerCCBID
}

// edge holds a twin pair. The halfedge ids of edge k are 2k and 2k+1.
type edge[C any] struct {
	he       [2]halfedge
	curve    C
	hasCurve bool
}

type face struct {
	outer      []OuterCCBID
	inner      []InnerCCBID
	iso        []IsoVertexID
	unbounded  bool
	fictitious bool
}

type ccb struct {
	face     FaceID
	halfedge HalfedgeID
}

type isoVertex struct {
	face   FaceID
	vertex VertexID
}

// DCEL owns every record of one arrangement.
type DCEL[P, C any] struct {
	vertices arena[vertex[P]]
	edges    arena[edge[C]]
	faces    arena[face]
	outers   arena[ccb]
	inners   arena[ccb]
	isos     arena[isoVertex]
}

func New[P, C any]() *DCEL[P, C] {
	return &DCEL[P, C]{}
}

// DeleteAll drops every record.
func (d *DCEL[P, C]) DeleteAll() {
	d.vertices.reset()
	d.edges.reset()
	d.faces.reset()
	d.outers.reset()
	d.inners.reset()
	d.isos.reset()
}

// Clone returns a deep copy in which every handle keeps its value.
func (d *DCEL[P, C]) Clone(clonePoint func(P) P, cloneCurve func(C) C) *DCEL[P, C] {
	return &DCEL[P, C]{
		vertices: d.vertices.clone(func(v *vertex[P]) *vertex[P] {
			cp := *v
			if cp.hasPoint && clonePoint != nil {
				cp.point = clonePoint(v.point)
			}
			return &cp
		}),
		edges: d.edges.clone(func(e *edge[C]) *edge[C] {
			cp := *e
			if cp.hasCurve && cloneCurve != nil {
				cp.curve = cloneCurve(e.curve)
			}
			return &cp
		}),
		faces: d.faces.clone(func(f *face) *face {
			return &face{
				outer:      append([]OuterCCBID(nil), f.outer...),
				inner:      append([]InnerCCBID(nil), f.inner...),
				iso:        append([]IsoVertexID(nil), f.iso...),
				unbounded:  f.unbounded,
				fictitious: f.fictitious,
			}
		}),
		outers: d.outers.clone(func(c *ccb) *ccb { cp := *c; return &cp }),
		inners: d.inners.clone(func(c *ccb) *ccb { cp := *c; return &cp }),
		isos:   d.isos.clone(func(iv *isoVertex) *isoVertex { cp := *iv; return &cp }),
	}
}

// Sizes of the record pools, fictitious features included.

func (d *DCEL[P, C]) NumVertices() int    { return d.vertices.size }
func (d *DCEL[P, C]) NumEdges() int       { return d.edges.size }
func (d *DCEL[P, C]) NumHalfedges() int   { return 2 * d.edges.size }
func (d *DCEL[P, C]) NumFaces() int       { return d.faces.size }
func (d *DCEL[P, C]) NumOuterCCBs() int   { return d.outers.size }
func (d *DCEL[P, C]) NumInnerCCBs() int   { return d.inners.size }
func (d *DCEL[P, C]) NumIsoVertices() int { return d.isos.size }

func (d *DCEL[P, C]) Vertices() []VertexID {
	ids := d.vertices.ids()
	out := make([]VertexID, len(ids))
	for i, id := range ids {
		out[i] = VertexID(id)
	}
	return out
}

// Edges returns the first halfedge of every twin pair.
func (d *DCEL[P, C]) Edges() []HalfedgeID {
	ids := d.edges.ids()
	out := make([]HalfedgeID, len(ids))
	for i, id := range ids {
		out[i] = HalfedgeID(2 * id)
	}
	return out
}

func (d *DCEL[P, C]) Halfedges() []HalfedgeID {
	ids := d.edges.ids()
	out := make([]HalfedgeID, 0, 2*len(ids))
	for _, id := range ids {
		out = append(out, HalfedgeID(2*id), HalfedgeID(2*id+1))
	}
	return out
}

func (d *DCEL[P, C]) Faces() []FaceID {
	ids := d.faces.ids()
	out := make([]FaceID, len(ids))
	for i, id := range ids {
		out[i] = FaceID(id)
	}
	return out
}

func (d *DCEL[P, C]) OuterCCBs() []OuterCCBID {
	ids := d.outers.ids()
	out := make([]OuterCCBID, len(ids))
	for i, id := range ids {
		out[i] = OuterCCBID(id)
	}
	return out
}

func (d *DCEL[P, C]) InnerCCBs() []InnerCCBID {
	ids := d.inners.ids()
	out := make([]InnerCCBID, len(ids))
	for i, id := range ids {
		out[i] = InnerCCBID(id)
	}
	return out
}

func (d *DCEL[P, C]) VertexAlive(v VertexID) bool     { return d.vertices.alive(int32(v)) }
func (d *DCEL[P, C]) HalfedgeAlive(h HalfedgeID) bool { return h >= 0 && d.edges.alive(int32(h>>1)) }
func (d *DCEL[P, C]) FaceAlive(f FaceID) bool         { return d.faces.alive(int32(f)) }

func (d *DCEL[P, C]) String() string {
	return fmt.Sprintf("dcel{V=%d E=%d F=%d outer=%d inner=%d iso=%d}",
		d.NumVertices(), d.NumEdges(), d.NumFaces(), d.NumOuterCCBs(), d.NumInnerCCBs(), d.NumIsoVertices())
}
