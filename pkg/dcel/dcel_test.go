package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segment builds a hole made of one edge between two new vertices.
func segment(d *DCEL[int, string], f FaceID, name string) (HalfedgeID, VertexID, VertexID) {
	v1, v2 := d.NewVertex(), d.NewVertex()
	d.SetPoint(v1, 1)
	d.SetPoint(v2, 2)

	h := d.NewEdge()
	d.SetCurve(h, name)
	d.SetTarget(h, v2)
	d.SetTarget(d.Twin(h), v1)
	d.SetNext(h, d.Twin(h))
	d.SetNext(d.Twin(h), h)

	ic := d.NewInnerCCB()
	d.AddInnerCCB(f, ic)
	d.SetInnerCCBHalfedge(ic, h)
	d.SetInnerCCB(h, ic)
	d.SetInnerCCB(d.Twin(h), ic)
	d.SetVertexHalfedge(v2, h)
	d.SetVertexHalfedge(v1, d.Twin(h))
	return h, v1, v2
}

func TestArenaReuse(t *testing.T) {
	d := New[int, string]()
	v0, v1 := d.NewVertex(), d.NewVertex()
	assert.Equal(t, VertexID(0), v0)
	assert.Equal(t, VertexID(1), v1)

	d.DeleteVertex(v0)
	assert.False(t, d.VertexAlive(v0))
	assert.Equal(t, 1, d.NumVertices())
	assert.Equal(t, []VertexID{v1}, d.Vertices())

	assert.Equal(t, v0, d.NewVertex())
	assert.Panics(t, func() { d.Point(VertexID(7)) })
	assert.False(t, d.VertexAlive(NoVertex))
}

func TestHalfedgePair(t *testing.T) {
	d := New[int, string]()
	h := d.NewEdge()
	assert.Equal(t, HalfedgeID(0), h)
	assert.Equal(t, HalfedgeID(1), d.Twin(h))
	assert.Equal(t, h, d.Twin(d.Twin(h)))
	assert.True(t, d.IsFictitious(h))
	assert.Equal(t, LeftToRight, d.Direction(h))
	assert.Equal(t, RightToLeft, d.Direction(d.Twin(h)))

	d.SetDirection(d.Twin(h), LeftToRight)
	assert.Equal(t, RightToLeft, d.Direction(h))

	d.SetCurve(d.Twin(h), "c")
	cv, ok := d.Curve(h)
	require.True(t, ok)
	assert.Equal(t, "c", cv)

	g := d.NewEdge()
	assert.Equal(t, []HalfedgeID{0, 2}, d.Edges())
	assert.Equal(t, []HalfedgeID{0, 1, 2, 3}, d.Halfedges())
	d.DeleteEdge(d.Twin(h))
	assert.False(t, d.HalfedgeAlive(h))
	assert.True(t, d.HalfedgeAlive(d.Twin(g)))
	assert.False(t, d.HalfedgeAlive(NoHalfedge))
}

func TestHoleRecords(t *testing.T) {
	d := New[int, string]()
	f := d.NewFace()
	d.SetUnbounded(f, true)
	h, v1, v2 := segment(d, f, "s")

	assert.Equal(t, h, d.Prev(d.Twin(h)))
	assert.Equal(t, f, d.IncidentFace(h))
	assert.Equal(t, f, d.IncidentFace(d.Twin(h)))
	assert.True(t, d.OnInnerCCB(h))
	assert.Equal(t, NoOuterCCB, d.OuterCCB(h))
	assert.Equal(t, []HalfedgeID{h, d.Twin(h)}, d.CCBHalfedges(h))
	assert.Equal(t, 1, d.Degree(v1))
	assert.Equal(t, []HalfedgeID{h}, d.IncidentHalfedges(v2))
	assert.Equal(t, v1, d.Source(h))
	assert.Equal(t, 1, d.NumFaceInnerCCBs(f))

	oc := d.NewOuterCCB()
	d.SetOuterCCB(h, oc)
	assert.False(t, d.OnInnerCCB(h))
	assert.Equal(t, oc, d.OuterCCB(h))
}

func TestIsolatedVertexRecords(t *testing.T) {
	d := New[int, string]()
	f := d.NewFace()
	v := d.NewVertex()
	iv := d.NewIsoVertex(v)
	d.AddIsoVertex(f, iv)

	assert.Equal(t, iv, d.VertexIso(v))
	assert.Equal(t, f, d.IsoFace(iv))
	assert.Equal(t, v, d.IsoVertexOf(iv))
	assert.Equal(t, []IsoVertexID{iv}, d.FaceIsoVertices(f))

	d.EraseIsoVertex(f, iv)
	assert.Empty(t, d.FaceIsoVertices(f))

	// the first incident halfedge ends the isolation
	d.SetVertexHalfedge(v, d.NewEdge())
	assert.Equal(t, NoIsoVertex, d.VertexIso(v))
}

func TestClone(t *testing.T) {
	d := New[int, string]()
	f := d.NewFace()
	h, v1, _ := segment(d, f, "s")
	d.DeleteVertex(d.NewVertex())

	cp := d.Clone(func(p int) int { return p * 10 }, func(cv string) string { return cv + "'" })
	assert.Equal(t, d.String(), cp.String())

	p, ok := cp.Point(v1)
	require.True(t, ok)
	assert.Equal(t, 10, p)
	cv, _ := cp.Curve(h)
	assert.Equal(t, "s'", cv)
	assert.Equal(t, d.CCBHalfedges(h), cp.CCBHalfedges(h))

	// the copy does not share records
	cp.SetCurve(h, "other")
	cp.EraseInnerCCB(f, cp.InnerCCB(h))
	cv, _ = d.Curve(h)
	assert.Equal(t, "s", cv)
	assert.Equal(t, 1, d.NumFaceInnerCCBs(f))

	// freed slots survive the copy
	assert.Equal(t, d.NewVertex(), cp.NewVertex())

	d.DeleteAll()
	assert.Equal(t, 0, d.NumVertices())
	assert.Equal(t, 1, cp.NumFaces())
}

func TestFeature(t *testing.T) {
	assert.Equal(t, FeatureHalfedge, OnHalfedge(4).Kind)
	assert.Equal(t, NoVertex, OnHalfedge(4).Vertex)
	assert.Equal(t, VertexID(3), AtVertex(3).Vertex)
	assert.Equal(t, NoHalfedge, NoFeature().Halfedge)
}
