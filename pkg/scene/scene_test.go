package scene

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/0x0FACED/go-arrangement/pkg/arrangement"
	"github.com/0x0FACED/go-arrangement/pkg/linear"
)

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func seg(x1, y1, x2, y2 float64) linear.Curve { return linear.NewSegment(pt(x1, y1), pt(x2, y2)) }

func newBuilder(t *testing.T, topology string) *Builder {
	t.Helper()
	b, err := NewBuilder(topology, nil, arrangement.WithSelfCheck())
	require.NoError(t, err)
	return b
}

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(`
name: t
curves:
  - {from: [0, 0], to: [1, 0]}
  - {kind: segment, from: [1, 0], to: [1, 1]}
points: [[3, 3]]
`))
	require.NoError(t, err)
	assert.Equal(t, TopologyBounded, sc.Topology)
	require.Len(t, sc.Curves, 2)
	assert.Equal(t, Point{1, 1}, sc.Curves[1].To)
	assert.Equal(t, []Point{{3, 3}}, sc.Points)

	_, err = Parse([]byte("name: t\ncolour: red\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("topology: torus\n"))
	assert.ErrorIs(t, err, ErrUnknownTopology)
}

func TestValidateReportsAll(t *testing.T) {
	_, err := Load("testdata/broken.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnbounded)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, err, ErrDegenerate)

	sc := &Scene{Topology: TopologyBounded, Curves: []CurveSpec{
		{Kind: "ray", From: Point{0, 0}, To: Point{1, 0}},
		{From: Point{1, 1}, To: Point{1, 1}},
	}}
	assert.Len(t, multierr.Errors(sc.Validate()), 2)

	_, err = Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestBuildHouse(t *testing.T) {
	sc, err := Load("testdata/house.yaml")
	require.NoError(t, err)

	b, err := Build(sc, nil, arrangement.WithSelfCheck())
	require.NoError(t, err)
	a := b.Arrangement()
	require.NoError(t, a.Validate())

	assert.Equal(t, 11, a.NumberOfVertices())
	assert.Equal(t, 10, a.NumberOfEdges())
	assert.Equal(t, 3, a.NumberOfFaces())
	assert.Equal(t, 2, a.NumberOfIsolatedVertices())

	// the floor was split where the door stands on it
	for _, p := range []r2.Point{pt(1, 0), pt(2, 0)} {
		v, ok := a.LocateVertex(p)
		require.True(t, ok)
		assert.Equal(t, 3, a.Degree(v))
	}

	inside, ok := a.LocateVertex(pt(3, 1.5))
	require.True(t, ok)
	assert.Equal(t, a.LocateFace(pt(2, 4)), a.IsolatedVertexFace(inside))
	outside, ok := a.LocateVertex(pt(6, 6))
	require.True(t, ok)
	assert.Equal(t, a.UnboundedFace(), a.IsolatedVertexFace(outside))
	assert.NotEqual(t, a.LocateFace(pt(1.5, 1)), a.LocateFace(pt(3, 1)))
}

func TestBuildSamples(t *testing.T) {
	tts := []struct {
		path                   string
		vertices, edges, faces int
	}{
		{"../../scenes/house.yaml", 15, 15, 5},
		{"../../scenes/simplify.yaml", 3, 3, 2},
		{"../../scenes/rays.yaml", 6, 8, 5},
	}
	for _, tt := range tts {
		t.Run(tt.path, func(t *testing.T) {
			sc, err := Load(tt.path)
			require.NoError(t, err)
			b, err := Build(sc, nil, arrangement.WithSelfCheck())
			require.NoError(t, err)
			a := b.Arrangement()
			require.NoError(t, a.Validate())
			assert.Equal(t, tt.vertices, a.NumberOfVertices())
			assert.Equal(t, tt.edges, a.NumberOfEdges())
			assert.Equal(t, tt.faces, a.NumberOfFaces())
		})
	}
}

func TestInsertCurveRejects(t *testing.T) {
	b := newBuilder(t, TopologyBounded)
	_, err := b.InsertCurve(seg(0, 0, 2, 2))
	require.NoError(t, err)

	_, err = b.InsertCurve(seg(0, 2, 2, 0))
	assert.ErrorIs(t, err, ErrCrossing)
	_, err = b.InsertCurve(seg(1, 1, 3, 3))
	assert.ErrorIs(t, err, ErrCrossing)
	_, err = b.InsertCurve(linear.NewRay(pt(5, 5), pt(6, 6)))
	assert.ErrorIs(t, err, ErrOutOfScope)

	b.InsertPoint(pt(4, 4))
	_, err = b.InsertCurve(seg(3, 3, 5, 5))
	assert.ErrorIs(t, err, ErrCrossing)

	assert.ErrorIs(t, b.RemoveCurve(seg(7, 7, 8, 8)), ErrNotFound)
	assert.Equal(t, 1, b.Arrangement().NumberOfEdges())

	_, err = NewBuilder("sphere", nil)
	assert.ErrorIs(t, err, ErrUnknownTopology)
}

func TestInsertCurveDirection(t *testing.T) {
	b := newBuilder(t, TopologyBounded)
	a := b.Arrangement()
	for _, cv := range []linear.Curve{
		seg(0, 0, 2, 0),
		seg(2, 0, 4, 1),
		seg(-2, 1, 0, 0),
		seg(-2, 1, 4, 1),
	} {
		he, err := b.InsertCurve(cv)
		require.NoError(t, err)
		src, _ := a.Point(a.Source(he))
		assert.Equal(t, cv.Min(), src)
	}
	require.NoError(t, a.Validate())
	assert.Equal(t, 2, a.NumberOfFaces())
}

func TestPointSplitsEdge(t *testing.T) {
	b := newBuilder(t, TopologyBounded)
	a := b.Arrangement()
	_, err := b.InsertCurve(seg(0, 0, 4, 4))
	require.NoError(t, err)

	v := b.InsertPoint(pt(1, 1))
	assert.Equal(t, 2, a.Degree(v))
	assert.Equal(t, 2, a.NumberOfEdges())
	assert.Equal(t, v, b.InsertPoint(pt(1, 1)))

	assert.Equal(t, 1, b.Simplify())
	assert.Equal(t, 1, a.NumberOfEdges())
	require.NoError(t, a.Validate())

	require.NoError(t, b.RemoveCurve(seg(4, 4, 0, 0)))
	assert.True(t, a.IsEmpty())
}

func TestUnboundedBuilder(t *testing.T) {
	b := newBuilder(t, TopologyUnbounded)
	a := b.Arrangement()

	_, err := b.InsertCurve(linear.NewLine(pt(0, 0), pt(1, 1)))
	require.NoError(t, err)
	_, err = b.InsertCurve(linear.NewRay(pt(2, 2), pt(2, 3)))
	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.NumberOfFaces())
	assert.Equal(t, 1, a.NumberOfVertices())
	assert.Equal(t, 3, a.NumberOfVerticesAtInfinity())

	_, err = b.InsertCurve(linear.NewLine(pt(0, 1), pt(1, 0)))
	assert.ErrorIs(t, err, ErrCrossing)

	require.NoError(t, b.RemoveCurve(linear.NewRay(pt(2, 2), pt(2, 7))))
	require.NoError(t, a.Validate())
	assert.Equal(t, 2, a.NumberOfFaces())
	assert.Equal(t, 1, a.NumberOfVertices())
	assert.Equal(t, 2, a.NumberOfEdges())

	assert.Equal(t, 1, b.Simplify())
	require.NoError(t, a.Validate())
	assert.Equal(t, 0, a.NumberOfVertices())
	assert.Equal(t, 1, a.NumberOfEdges())
}

// TestRandomGrid inserts random lattice segments, checking the arrangement
// after every step, and then takes everything apart again.
func TestRandomGrid(t *testing.T) {
	for _, seed := range []int64{0, 1, 2, 3} {
		rnd := rand.New(rand.NewSource(seed))
		b := newBuilder(t, TopologyBounded)
		a := b.Arrangement()

		steps := [][2]float64{{1, 0}, {0, 1}, {1, 1}, {1, -1}, {2, 0}, {0, 2}}
		for i := 0; i < 120; i++ {
			x, y := float64(rnd.Intn(6)), float64(rnd.Intn(6))
			if rnd.Intn(8) == 0 {
				b.InsertPoint(pt(x+0.5, y+0.5))
			} else {
				s := steps[rnd.Intn(len(steps))]
				// crossings and duplicates are refused
				_, _ = b.InsertCurve(seg(x, y, x+s[0], y+s[1]))
			}
			require.NoError(t, a.Validate(), "seed %d step %d", seed, i)
		}
		require.NotZero(t, a.NumberOfEdges())
		b.Simplify()
		require.NoError(t, a.Validate(), "seed %d after simplify", seed)

		for a.NumberOfEdges() > 0 {
			edges := a.Edges()
			a.RemoveEdge(edges[rnd.Intn(len(edges))], rnd.Intn(2) == 0, true)
			require.NoError(t, a.Validate(), "seed %d with %d edges left", seed, len(edges)-1)
		}
		for _, v := range a.Vertices() {
			require.True(t, a.IsIsolated(v))
			a.RemoveIsolatedVertex(v)
		}
		assert.True(t, a.IsEmpty())
		assert.Equal(t, 1, a.NumberOfFaces())
		require.NoError(t, a.Validate())
	}
}
