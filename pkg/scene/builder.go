package scene

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-arrangement/pkg/arrangement"
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/logger"
	"github.com/0x0FACED/go-arrangement/pkg/topology"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

var (
	ErrCrossing   = errors.New("curve crosses the arrangement")
	ErrNotFound   = errors.New("curve not in the arrangement")
	ErrOutOfScope = errors.New("curve does not fit the topology")
)

type Arrangement = arrangement.Arrangement[r2.Point, linear.Curve]

// Builder inserts curves that may touch but never cross the curves already
// present. Ends that fall on an edge split it first.
type Builder struct {
	arr     *Arrangement
	geom    linear.Traits
	bounded bool
	log     *logger.ZapLogger
}

func NewBuilder(topologyName string, log *logger.ZapLogger, opts ...arrangement.Option) (*Builder, error) {
	if log == nil {
		log = logger.NewNop()
	}
	var geom linear.Traits
	var topo topology.Traits[r2.Point, linear.Curve]
	switch topologyName {
	case "", TopologyBounded:
		topo = topology.NewBoundedPlanar[r2.Point, linear.Curve](geom)
	case TopologyUnbounded:
		topo = topology.NewUnboundedPlanar[r2.Point, linear.Curve](geom)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, topologyName)
	}
	opts = append([]arrangement.Option{arrangement.WithLogger(log)}, opts...)
	return &Builder{
		arr:     arrangement.New[r2.Point, linear.Curve](geom, topo, opts...),
		geom:    geom,
		bounded: topologyName != TopologyUnbounded,
		log:     log,
	}, nil
}

func (b *Builder) Arrangement() *Arrangement { return b.arr }

// InsertPoint returns the vertex at p, creating an isolated vertex or
// splitting the edge p lies on when needed.
func (b *Builder) InsertPoint(p r2.Point) dcel.VertexID {
	if v, ok := b.arr.LocateVertex(p); ok {
		return v
	}
	if v, ok := b.splitAt(p); ok {
		return v
	}
	f := b.arr.LocateFace(p)
	v := b.arr.InsertPoint(p, f)
	b.log.Info("[scene] isolated point", zap.Stringer("point", p), zap.Int("face", int(f)))
	return v
}

// splitAt splits the edge whose interior contains p.
func (b *Builder) splitAt(p r2.Point) (dcel.VertexID, bool) {
	e, ok := b.arr.LocateEdge(p)
	if !ok {
		return dcel.NoVertex, false
	}
	cv, _ := b.arr.Curve(e)
	lo, hi := cv.Split(p)
	he := b.arr.SplitEdge(e, lo, hi)
	b.log.Info("[scene] edge split", zap.Stringer("curve", cv), zap.Stringer("at", p))
	return b.arr.Target(he), true
}

// InsertCurve inserts cv and returns its halfedge directed from left to
// right.
func (b *Builder) InsertCurve(cv linear.Curve) (dcel.HalfedgeID, error) {
	if b.bounded && cv.Kind() != linear.Segment {
		return dcel.NoHalfedge, fmt.Errorf("%w: %v", ErrOutOfScope, cv)
	}
	for _, h := range b.arr.Edges() {
		other, _ := b.arr.Curve(h)
		if linear.InteriorMeets(cv, other) {
			return dcel.NoHalfedge, fmt.Errorf("%w: %v meets %v", ErrCrossing, cv, other)
		}
	}
	for _, v := range b.arr.Vertices() {
		p, _ := b.arr.Point(v)
		if cv.Contains(p) && !b.isEnd(cv, p) {
			return dcel.NoHalfedge, fmt.Errorf("%w: %v passes through %v", ErrCrossing, cv, p)
		}
	}

	v1 := b.endVertex(cv, traits.MinEnd)
	v2 := b.endVertex(cv, traits.MaxEnd)

	var he dcel.HalfedgeID
	switch {
	case v1 == dcel.NoVertex && v2 == dcel.NoVertex:
		f := b.arr.LocateFace(b.probe(cv))
		he = b.arr.InsertInFaceInterior(cv, f)
	case v2 == dcel.NoVertex:
		he = b.arr.InsertFromLeftVertex(cv, v1, dcel.NoFace)
	case v1 == dcel.NoVertex:
		he = b.arr.Twin(b.arr.InsertFromRightVertex(cv, v2, dcel.NoFace))
	default:
		he = b.arr.InsertAtVertices(cv, v1, v2, dcel.NoFace)
	}

	b.log.Info("[scene] curve inserted",
		zap.Stringer("curve", cv),
		zap.Int("halfedge", int(he)),
		zap.Int("faces", b.arr.NumberOfFaces()))
	return he, nil
}

func (b *Builder) isEnd(cv linear.Curve, p r2.Point) bool {
	return (cv.HasMin() && cv.Min() == p) || (cv.HasMax() && cv.Max() == p)
}

// endVertex returns the existing vertex at a bounded end of cv, splitting
// an edge if the end lies on one.
func (b *Builder) endVertex(cv linear.Curve, end traits.CurveEnd) dcel.VertexID {
	var p r2.Point
	switch {
	case end == traits.MinEnd && cv.HasMin():
		p = cv.Min()
	case end == traits.MaxEnd && cv.HasMax():
		p = cv.Max()
	default:
		return dcel.NoVertex
	}
	if v, ok := b.arr.LocateVertex(p); ok {
		return v
	}
	if v, ok := b.splitAt(p); ok {
		return v
	}
	return dcel.NoVertex
}

// probe returns a point of cv off every other curve, used to find the face
// cv is inserted into.
func (b *Builder) probe(cv linear.Curve) r2.Point {
	if cv.HasMin() {
		return cv.Min()
	}
	if cv.HasMax() {
		return cv.Max()
	}
	return cv.Min()
}

// RemoveCurve removes the edge carrying cv. Vertices left without edges are
// deleted.
func (b *Builder) RemoveCurve(cv linear.Curve) error {
	for _, h := range b.arr.Edges() {
		other, _ := b.arr.Curve(h)
		if !b.geom.EqualCurves(cv, other) {
			continue
		}
		f := b.arr.RemoveEdge(h, true, true)
		b.log.Info("[scene] curve removed", zap.Stringer("curve", cv), zap.Int("face", int(f)))
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNotFound, cv)
}

// Simplify merges pairs of collinear edges around vertices of degree 2 and
// returns the number of merges.
func (b *Builder) Simplify() int {
	merged := 0
	for changed := true; changed; {
		changed = false
		for _, v := range b.arr.Vertices() {
			if b.arr.Degree(v) != 2 {
				continue
			}
			hs := b.arr.IncidentHalfedges(v)
			c1, _ := b.arr.Curve(hs[0])
			c2, _ := b.arr.Curve(hs[1])
			cv, ok := linear.Merge(c1, c2)
			if !ok {
				continue
			}
			b.arr.MergeEdge(hs[0], b.arr.Twin(hs[1]), cv)
			merged++
			changed = true
			break
		}
	}
	if merged > 0 {
		b.log.Info("[scene] simplified", zap.Int("merges", merged))
	}
	return merged
}

// Build creates the arrangement of sc.
func Build(sc *Scene, log *logger.ZapLogger, opts ...arrangement.Option) (*Builder, error) {
	b, err := NewBuilder(sc.Topology, log, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Apply(sc); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply inserts the curves and points of sc, then removes and simplifies
// as sc asks. It stops at the first curve that cannot be placed.
func (b *Builder) Apply(sc *Scene) error {
	for i, spec := range sc.Curves {
		cv, err := spec.Curve()
		if err != nil {
			return fmt.Errorf("curves[%d]: %w", i, err)
		}
		if _, err := b.InsertCurve(cv); err != nil {
			return fmt.Errorf("curves[%d]: %w", i, err)
		}
	}
	for _, p := range sc.Points {
		b.InsertPoint(p.R2())
	}
	for i, spec := range sc.Remove {
		cv, err := spec.Curve()
		if err != nil {
			return fmt.Errorf("remove[%d]: %w", i, err)
		}
		if err := b.RemoveCurve(cv); err != nil {
			return fmt.Errorf("remove[%d]: %w", i, err)
		}
	}
	if sc.Simplify {
		b.Simplify()
	}
	b.log.Info("[scene] built",
		zap.String("name", sc.Name),
		zap.Int("vertices", b.arr.NumberOfVertices()),
		zap.Int("edges", b.arr.NumberOfEdges()),
		zap.Int("faces", b.arr.NumberOfFaces()))
	return nil
}
