package topology

import (
	"fmt"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// incidentCurveEnd returns a real curve incident to v and the end of it that
// lies at v.
func incidentCurveEnd[P, C any](d *dcel.DCEL[P, C], v dcel.VertexID) (C, traits.CurveEnd, bool) {
	for _, h := range d.IncidentHalfedges(v) {
		cv, ok := d.Curve(h)
		if !ok {
			continue
		}
		if d.Direction(h) == dcel.LeftToRight {
			return cv, traits.MaxEnd, true
		}
		return cv, traits.MinEnd, true
	}
	var zero C
	return zero, traits.MinEnd, false
}

// compareXToVertex compares the x-coordinate of p with the x-position of v.
// Vertices at infinity on the bottom or top take the x-limit of their curve.
func compareXToVertex[P, C any](d *dcel.DCEL[P, C], geom traits.Geometry[P, C], p P, v dcel.VertexID) traits.Comparison {
	if pt, ok := d.Point(v); ok {
		return geom.CompareX(p, pt)
	}
	psx, _ := d.Boundary(v)
	switch psx {
	case traits.LeftBoundary:
		return traits.Larger
	case traits.RightBoundary:
		return traits.Smaller
	}
	cv, end, ok := incidentCurveEnd(d, v)
	if !ok {
		panic(fmt.Sprintf("topology: vertex %d at infinity has no curve", v))
	}
	return geom.CompareXOnBoundary(p, cv, end)
}

// insideOuterCCBs shoots a vertical ray upwards from p and counts the
// crossings with the outer CCBs of f. An edge is crossed when p lies in the
// half-open x-range of its end vertices. Fictitious edges count only on the
// top side.
func insideOuterCCBs[P, C any](d *dcel.DCEL[P, C], geom traits.Geometry[P, C], f dcel.FaceID, p P, v dcel.VertexID) bool {
	inside := false
	for _, oc := range d.FaceOuterCCBs(f) {
		for _, h := range d.CCBHalfedges(d.OuterCCBHalfedge(oc)) {
			s, t := d.Source(h), d.Target(h)
			if v != dcel.NoVertex && (s == v || t == v) {
				return false
			}
			left1 := compareXToVertex(d, geom, p, s) != traits.Smaller
			left2 := compareXToVertex(d, geom, p, t) != traits.Smaller
			if left1 == left2 {
				continue
			}
			cv, ok := d.Curve(h)
			if !ok {
				_, psy1 := d.Boundary(s)
				_, psy2 := d.Boundary(t)
				if psy1 == traits.TopBoundary && psy2 == traits.TopBoundary {
					inside = !inside
				}
				continue
			}
			if geom.CompareYAtX(p, cv) == traits.Smaller {
				inside = !inside
			}
		}
	}
	return inside
}
