package arrangement

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/topology"
)

func square(t *testing.T) *Arrangement[r2.Point, linear.Curve] {
	t.Helper()
	var geom linear.Traits
	a := New[r2.Point, linear.Curve](geom, topology.NewBoundedPlanar[r2.Point, linear.Curve](geom))
	at := func(x, y float64) dcel.VertexID {
		v, ok := a.LocateVertex(r2.Point{X: x, Y: y})
		require.True(t, ok)
		return v
	}
	seg := func(x1, y1, x2, y2 float64) linear.Curve {
		return linear.NewSegment(r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2})
	}

	a.InsertInFaceInterior(seg(0, 0, 4, 0), a.UnboundedFace())
	a.InsertFromLeftVertex(seg(4, 0, 4, 4), at(4, 0), dcel.NoFace)
	a.InsertFromRightVertex(seg(0, 4, 4, 4), at(4, 4), dcel.NoFace)
	a.InsertAtVertices(seg(0, 0, 0, 4), at(0, 0), at(0, 4), dcel.NoFace)
	a.InsertPoint(r2.Point{X: 10, Y: 10}, a.UnboundedFace())
	a.InsertPoint(r2.Point{X: 12, Y: 12}, a.UnboundedFace())
	require.NoError(t, a.Validate())
	return a
}

func TestValidateCorruptedCopy(t *testing.T) {
	a := square(t)

	dup := a.Clone()
	v, ok := dup.LocateVertex(r2.Point{X: 12, Y: 12})
	require.True(t, ok)
	dup.d.SetPoint(v, r2.Point{X: 10, Y: 10})

	err := dup.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "share a point")
	assert.Equal(t, err.Error(), dup.Validate().Error())
	assert.Len(t, multierr.Errors(dup.Validate()), len(multierr.Errors(err)))
	assert.False(t, dup.IsValid())

	loose := a.Clone()
	v, ok = loose.LocateVertex(r2.Point{X: 0, Y: 0})
	require.True(t, ok)
	loose.d.SetVertexHalfedge(v, dcel.NoHalfedge)
	assert.ErrorContains(t, loose.Validate(), "has neither edges nor an isolated-vertex record")

	// the original is untouched
	assert.NoError(t, a.Validate())
	assert.NoError(t, a.Validate())
}
