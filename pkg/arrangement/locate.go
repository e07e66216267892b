package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// LocateVertex returns the vertex whose point equals p.
func (a *Arrangement[P, C]) LocateVertex(p P) (dcel.VertexID, bool) {
	for _, v := range a.Vertices() {
		if a.geom.EqualPoints(a.point(v), p) {
			return v, true
		}
	}
	return dcel.NoVertex, false
}

// LocateEdge returns the halfedge, directed from left to right, whose curve
// contains p in its interior.
func (a *Arrangement[P, C]) LocateEdge(p P) (dcel.HalfedgeID, bool) {
	for _, h := range a.Edges() {
		if !a.inXRange(p, h) || a.geom.CompareYAtX(p, a.curve(h)) != traits.Equal {
			continue
		}
		if q, ok := a.d.Point(a.d.Source(h)); ok && a.geom.EqualPoints(p, q) {
			continue
		}
		if q, ok := a.d.Point(a.d.Target(h)); ok && a.geom.EqualPoints(p, q) {
			continue
		}
		return h, true
	}
	return dcel.NoHalfedge, false
}

// inXRange reports whether p lies in the closed x-range of the
// left-to-right halfedge h.
func (a *Arrangement[P, C]) inXRange(p P, h dcel.HalfedgeID) bool {
	cv := a.curve(h)
	src, srcOK := a.d.Point(a.d.Source(h))
	tgt, tgtOK := a.d.Point(a.d.Target(h))
	if a.geom.IsVertical(cv) {
		switch {
		case srcOK:
			return a.geom.CompareX(p, src) == traits.Equal
		case tgtOK:
			return a.geom.CompareX(p, tgt) == traits.Equal
		}
		return a.geom.CompareXOnBoundary(p, cv, traits.MinEnd) == traits.Equal
	}
	if srcOK && a.geom.CompareX(p, src) == traits.Smaller {
		return false
	}
	return !tgtOK || a.geom.CompareX(p, tgt) != traits.Larger
}

// LocateFace returns the face whose interior contains p by testing every
// face. p must not lie on a vertex or an edge. Faces whose outer boundary
// contains p are nested in one another; the innermost one is returned.
func (a *Arrangement[P, C]) LocateFace(p P) dcel.FaceID {
	var candidates []dcel.FaceID
	for _, f := range a.Faces() {
		if a.topo.IsInFace(f, p, dcel.NoVertex) {
			candidates = append(candidates, f)
		}
	}

	best, bestDepth := a.topo.ReferenceFace(), -1
	for _, f := range candidates {
		depth := 0
		for _, oc := range a.d.FaceOuterCCBs(f) {
			v, q, ok := a.pointOnCCB(a.d.OuterCCBHalfedge(oc))
			if !ok {
				continue
			}
			for _, g := range candidates {
				if g != f && a.topo.IsInFace(g, q, v) {
					depth++
				}
			}
			break
		}
		if depth > bestDepth {
			best, bestDepth = f, depth
		}
	}
	return best
}
