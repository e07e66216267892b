package arrangement

import (
	"fmt"
	"slices"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/graph/simple"
	graphtopo "gonum.org/v1/gonum/graph/topo"
)

// Validate checks the whole DCEL and returns every violation found, or nil.
// It does not modify the arrangement and may be called from an observer.
func (a *Arrangement[P, C]) Validate() error {
	var err error
	for _, v := range a.d.Vertices() {
		err = multierr.Append(err, a.validateVertex(v))
	}
	for _, h := range a.d.Halfedges() {
		err = multierr.Append(err, a.validateHalfedge(h))
	}
	for _, f := range a.d.Faces() {
		err = multierr.Append(err, a.validateFace(f))
	}
	err = multierr.Append(err, a.validatePoints())
	err = multierr.Append(err, a.validateEuler())
	return err
}

func (a *Arrangement[P, C]) IsValid() bool { return a.Validate() == nil }

// walkLimit bounds every traversal so that a corrupted next pointer cannot
// loop forever.
func (a *Arrangement[P, C]) walkLimit() int { return a.d.NumHalfedges() + 1 }

func (a *Arrangement[P, C]) validateVertex(v dcel.VertexID) error {
	d := a.d
	first := d.VertexHalfedge(v)
	if first == dcel.NoHalfedge {
		iv := d.VertexIso(v)
		switch {
		case iv == dcel.NoIsoVertex:
			return fmt.Errorf("vertex %d has neither edges nor an isolated-vertex record", v)
		case d.IsoVertexOf(iv) != v:
			return fmt.Errorf("isolated-vertex record of vertex %d points to vertex %d", v, d.IsoVertexOf(iv))
		case !a.HasPoint(v):
			return fmt.Errorf("isolated vertex %d has no point", v)
		}
		return nil
	}
	if !d.HalfedgeAlive(first) {
		return fmt.Errorf("vertex %d refers to deleted halfedge %d", v, first)
	}
	if d.VertexIso(v) != dcel.NoIsoVertex {
		return fmt.Errorf("vertex %d has edges and an isolated-vertex record", v)
	}

	var around []dcel.HalfedgeID
	curr := first
	for i, n := 0, a.walkLimit(); i < n; i++ {
		if d.Target(curr) != v {
			return fmt.Errorf("halfedge %d around vertex %d targets vertex %d", curr, v, d.Target(curr))
		}
		around = append(around, curr)
		curr = d.Twin(d.Next(curr))
		if curr == first {
			return a.validateRotation(v, around)
		}
	}
	return fmt.Errorf("the halfedges around vertex %d do not close up", v)
}

// validateRotation checks that the curves around v follow each other in
// clockwise order.
func (a *Arrangement[P, C]) validateRotation(v dcel.VertexID, around []dcel.HalfedgeID) error {
	p, ok := a.d.Point(v)
	if !ok || len(around) < 3 {
		return nil
	}
	for _, h := range around {
		if a.d.IsFictitious(h) {
			return nil
		}
	}
	n := len(around)
	for i := range around {
		h0, h1, h2 := around[i], around[(i+1)%n], around[(i+2)%n]
		between, _, _ := a.geom.IsBetweenCW(
			a.curve(h1), a.d.Direction(h1) == dcel.RightToLeft,
			a.curve(h0), a.d.Direction(h0) == dcel.RightToLeft,
			a.curve(h2), a.d.Direction(h2) == dcel.RightToLeft,
			p)
		if !between {
			return fmt.Errorf("the curves around vertex %d are not in clockwise order at halfedge %d", v, h1)
		}
	}
	return nil
}

func (a *Arrangement[P, C]) validateHalfedge(h dcel.HalfedgeID) error {
	d := a.d
	tw := d.Twin(h)
	var err error
	if d.Twin(tw) != h {
		err = multierr.Append(err, fmt.Errorf("twin of twin of halfedge %d is %d", h, d.Twin(tw)))
	}
	next := d.Next(h)
	if !d.HalfedgeAlive(next) {
		return multierr.Append(err, fmt.Errorf("halfedge %d is followed by deleted halfedge %d", h, next))
	}
	if d.Prev(next) != h {
		err = multierr.Append(err, fmt.Errorf("prev of next of halfedge %d is %d", h, d.Prev(next)))
	}
	if d.Target(d.Prev(h)) != d.Source(h) {
		err = multierr.Append(err, fmt.Errorf("halfedge %d does not start where its predecessor ends", h))
	}
	if d.Direction(h) == d.Direction(tw) {
		err = multierr.Append(err, fmt.Errorf("halfedge %d and its twin have the same direction", h))
	}
	if !d.VertexAlive(d.Target(h)) {
		return multierr.Append(err, fmt.Errorf("halfedge %d targets deleted vertex %d", h, d.Target(h)))
	}

	switch oc, ic := d.OuterCCB(h), d.InnerCCB(h); {
	case (oc == dcel.NoOuterCCB) == (ic == dcel.NoInnerCCB):
		err = multierr.Append(err, fmt.Errorf("halfedge %d must lie on exactly one CCB", h))
	case oc != dcel.NoOuterCCB && !d.OuterCCBAlive(oc):
		err = multierr.Append(err, fmt.Errorf("halfedge %d lies on deleted outer CCB %d", h, oc))
	case ic != dcel.NoInnerCCB && !d.InnerCCBAlive(ic):
		err = multierr.Append(err, fmt.Errorf("halfedge %d lies on deleted inner CCB %d", h, ic))
	}

	return multierr.Append(err, a.validateCurveEnds(h))
}

// validateCurveEnds checks that the curve of h ends at the points of its
// vertices, in the order its direction claims.
func (a *Arrangement[P, C]) validateCurveEnds(h dcel.HalfedgeID) error {
	cv, ok := a.d.Curve(h)
	if !ok {
		return nil
	}
	srcEnd, tgtEnd := traits.MinEnd, traits.MaxEnd
	if a.d.Direction(h) == dcel.RightToLeft {
		srcEnd, tgtEnd = traits.MaxEnd, traits.MinEnd
	}
	for _, c := range []struct {
		v   dcel.VertexID
		end traits.CurveEnd
	}{{a.d.Source(h), srcEnd}, {a.d.Target(h), tgtEnd}} {
		if !a.HasPoint(c.v) {
			continue
		}
		if !a.areEqual(c.v, cv, c.end) {
			return fmt.Errorf("the %s end of the curve of halfedge %d is not at vertex %d", c.end, h, c.v)
		}
	}
	return nil
}

func (a *Arrangement[P, C]) validateFace(f dcel.FaceID) error {
	d := a.d
	var err error
	for _, oc := range d.FaceOuterCCBs(f) {
		if d.OuterCCBFace(oc) != f {
			err = multierr.Append(err, fmt.Errorf("outer CCB %d of face %d points to face %d", oc, f, d.OuterCCBFace(oc)))
		}
		err = multierr.Append(err, a.validateCCB(f, d.OuterCCBHalfedge(oc), func(h dcel.HalfedgeID) bool {
			return d.OuterCCB(h) == oc
		}))
	}
	for _, ic := range d.FaceInnerCCBs(f) {
		if d.InnerCCBFace(ic) != f {
			err = multierr.Append(err, fmt.Errorf("inner CCB %d of face %d points to face %d", ic, f, d.InnerCCBFace(ic)))
		}
		err = multierr.Append(err, a.validateCCB(f, d.InnerCCBHalfedge(ic), func(h dcel.HalfedgeID) bool {
			return d.InnerCCB(h) == ic
		}))
	}
	for _, iv := range d.FaceIsoVertices(f) {
		if d.IsoFace(iv) != f {
			err = multierr.Append(err, fmt.Errorf("isolated vertex %d of face %d points to face %d", d.IsoVertexOf(iv), f, d.IsoFace(iv)))
		}
		if v := d.IsoVertexOf(iv); d.VertexIso(v) != iv {
			err = multierr.Append(err, fmt.Errorf("vertex %d does not refer back to its record in face %d", v, f))
		}
	}
	if !d.IsFictitiousFace(f) && d.IsUnbounded(f) != a.topo.IsUnbounded(f) {
		err = multierr.Append(err, fmt.Errorf("face %d has a stale unbounded flag", f))
	}
	return err
}

// validateCCB walks the chain of rep and checks that every halfedge on it
// refers to the same CCB record.
func (a *Arrangement[P, C]) validateCCB(f dcel.FaceID, rep dcel.HalfedgeID, onCCB func(dcel.HalfedgeID) bool) error {
	if !a.d.HalfedgeAlive(rep) {
		return fmt.Errorf("a CCB of face %d is represented by deleted halfedge %d", f, rep)
	}
	curr := rep
	for i, n := 0, a.walkLimit(); i < n; i++ {
		if !onCCB(curr) {
			return fmt.Errorf("halfedge %d on a CCB of face %d refers to another CCB", curr, f)
		}
		curr = a.d.Next(curr)
		if curr == rep {
			return nil
		}
	}
	return fmt.Errorf("a CCB of face %d does not close up at halfedge %d", f, rep)
}

// validatePoints checks that no two vertices share a point.
func (a *Arrangement[P, C]) validatePoints() error {
	vs := a.Vertices()
	slices.SortFunc(vs, func(v1, v2 dcel.VertexID) int {
		return int(a.geom.CompareXY(a.point(v1), a.point(v2)))
	})
	var err error
	for i := 1; i < len(vs); i++ {
		if a.geom.EqualPoints(a.point(vs[i-1]), a.point(vs[i])) {
			err = multierr.Append(err, fmt.Errorf("vertices %d and %d share a point", vs[i-1], vs[i]))
		}
	}
	return err
}

// validateEuler checks V - E + F = 1 + C over all records, fictitious ones
// included, where C is the number of connected components.
func (a *Arrangement[P, C]) validateEuler() error {
	g := simple.NewUndirectedGraph()
	vs := a.d.Vertices()
	for _, v := range vs {
		g.AddNode(simple.Node(v))
	}
	for _, h := range a.d.Edges() {
		u, w := a.d.Source(h), a.d.Target(h)
		if u == w || g.HasEdgeBetween(int64(u), int64(w)) {
			continue
		}
		if !a.d.VertexAlive(u) || !a.d.VertexAlive(w) {
			return fmt.Errorf("edge %d connects a deleted vertex", h)
		}
		g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(w)})
	}
	components := len(graphtopo.ConnectedComponents(g))

	v, e, f := len(vs), len(a.d.Edges()), len(a.d.Faces())
	if v-e+f != 1+components {
		return fmt.Errorf("euler characteristic: %d vertices, %d edges, %d faces, %d components", v, e, f, components)
	}
	return nil
}
