package topology

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func newUnbounded() (*UnboundedPlanar[r2.Point, linear.Curve], *dcel.DCEL[r2.Point, linear.Curve]) {
	d := dcel.New[r2.Point, linear.Curve]()
	t := NewUnboundedPlanar[r2.Point, linear.Curve](linear.Traits{})
	t.Attach(d)
	t.InitDCEL()
	return t, d
}

func TestBoundedInit(t *testing.T) {
	d := dcel.New[r2.Point, linear.Curve]()
	topo := NewBoundedPlanar[r2.Point, linear.Curve](linear.Traits{})
	topo.Attach(d)
	topo.InitDCEL()

	require.Equal(t, 1, d.NumFaces())
	f := topo.ReferenceFace()
	assert.True(t, d.IsUnbounded(f))
	assert.True(t, topo.IsUnbounded(f))
	assert.True(t, topo.IsInFace(f, pt(3, 7), dcel.NoVertex))
	assert.Equal(t, traits.Oblivious, topo.SideCategory(traits.LeftBoundary))

	cv := linear.NewRay(pt(0, 0), pt(1, 0))
	assert.Panics(t, func() {
		topo.PlaceBoundaryVertex(f, cv, traits.MaxEnd, traits.RightBoundary, traits.Interior)
	})

	// the cached face is looked up again once it is gone
	g := d.NewFace()
	d.SetUnbounded(g, true)
	d.DeleteFace(f)
	assert.Equal(t, g, topo.ReferenceFace())
}

func TestUnboundedInit(t *testing.T) {
	topo, d := newUnbounded()

	assert.Equal(t, 4, d.NumVertices())
	assert.Equal(t, 4, d.NumEdges())
	assert.Equal(t, 2, d.NumFaces())

	ref, fict := topo.ReferenceFace(), topo.FictitiousFace()
	assert.NotEqual(t, ref, fict)
	assert.True(t, d.IsFictitiousFace(fict))
	assert.False(t, d.IsFictitiousFace(ref))
	assert.True(t, topo.IsUnbounded(ref))

	require.Equal(t, 1, d.NumFaceOuterCCBs(ref))
	outer := d.CCBHalfedges(d.OuterCCBHalfedge(d.FaceOuterCCBs(ref)[0]))
	assert.Len(t, outer, 4)
	for _, h := range outer {
		assert.True(t, d.IsFictitious(h))
		assert.Equal(t, fict, d.IncidentFace(d.Twin(h)))
	}

	assert.True(t, topo.IsInFace(ref, pt(0, 0), dcel.NoVertex))
	assert.True(t, topo.IsInFace(ref, pt(-1e9, 1e9), dcel.NoVertex))
	assert.False(t, topo.IsInFace(fict, pt(0, 0), dcel.NoVertex))

	assert.Equal(t, traits.Open, topo.SideCategory(traits.TopBoundary))
	assert.Equal(t, traits.Oblivious, topo.SideCategory(traits.Interior))
	for _, v := range d.Vertices() {
		assert.False(t, topo.IsRedundant(v))
	}
}

func TestUnboundedPlaceAndSplit(t *testing.T) {
	topo, d := newUnbounded()
	ref := topo.ReferenceFace()
	ray := linear.NewRay(pt(0, 0), pt(1, 1))

	feat := topo.PlaceBoundaryVertex(ref, ray, traits.MaxEnd, traits.RightBoundary, traits.Interior)
	require.Equal(t, dcel.FeatureHalfedge, feat.Kind)
	side := feat.Halfedge
	psx, _ := d.Boundary(d.Target(side))
	assert.Equal(t, traits.RightBoundary, psx)

	v := d.NewVertex()
	d.SetBoundary(v, traits.RightBoundary, traits.Interior)
	h := topo.SplitFictitiousEdge(side, v)
	assert.Equal(t, v, d.Target(h))
	assert.Equal(t, 5, d.NumEdges())
	assert.Len(t, d.CCBHalfedges(h), 5)
	assert.Equal(t, 2, d.Degree(v))

	// no curve reaches v yet
	assert.True(t, topo.IsRedundant(v))
	assert.False(t, topo.AreEqual(v, ray, traits.MaxEnd, traits.RightBoundary, traits.Interior))

	topo.EraseRedundantVertex(v)
	d.DeleteVertex(v)
	assert.Equal(t, 4, d.NumEdges())
	assert.Len(t, d.CCBHalfedges(d.OuterCCBHalfedge(d.FaceOuterCCBs(ref)[0])), 4)
}

func TestUnboundedClone(t *testing.T) {
	topo, d := newUnbounded()
	cp := topo.Clone()
	cp.Attach(d.Clone(nil, nil))

	assert.Equal(t, topo.ReferenceFace(), cp.ReferenceFace())
	assert.True(t, cp.IsUnbounded(topo.FictitiousFace()))
}
