package topology

import (
	"fmt"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// BoundedPlanar is the plane with bounded curves only. The arrangement has a
// single unbounded face without an outer CCB.
type BoundedPlanar[P, C any] struct {
	geom traits.Geometry[P, C]
	d    *dcel.DCEL[P, C]
	// last known unbounded face, checked lazily
	unbounded dcel.FaceID
}

func NewBoundedPlanar[P, C any](geom traits.Geometry[P, C]) *BoundedPlanar[P, C] {
	return &BoundedPlanar[P, C]{geom: geom, unbounded: dcel.NoFace}
}

func (t *BoundedPlanar[P, C]) Attach(d *dcel.DCEL[P, C]) { t.d = d }

func (t *BoundedPlanar[P, C]) InitDCEL() {
	t.d.DeleteAll()
	t.unbounded = t.d.NewFace()
	t.d.SetUnbounded(t.unbounded, true)
}

func (t *BoundedPlanar[P, C]) Clone() Traits[P, C] {
	return &BoundedPlanar[P, C]{geom: t.geom, unbounded: t.unbounded}
}

func (t *BoundedPlanar[P, C]) SideCategory(traits.ParameterSpace) traits.SideCategory {
	return traits.Oblivious
}

// ReferenceFace returns the unbounded face. Removing an edge may merge it
// into another record, so the cached id is revalidated.
func (t *BoundedPlanar[P, C]) ReferenceFace() dcel.FaceID {
	if t.d.FaceAlive(t.unbounded) && t.d.IsUnbounded(t.unbounded) {
		return t.unbounded
	}
	for _, f := range t.d.Faces() {
		if t.d.IsUnbounded(f) {
			t.unbounded = f
			return f
		}
	}
	panic("topology: bounded planar arrangement lost its unbounded face")
}

func (t *BoundedPlanar[P, C]) PlaceBoundaryVertex(_ dcel.FaceID, _ C, end traits.CurveEnd, psx, psy traits.ParameterSpace) dcel.Feature {
	panic(fmt.Sprintf("topology: bounded planar: %s curve end on the boundary (%s, %s)", end, psx, psy))
}

func (t *BoundedPlanar[P, C]) NotifyOnBoundaryVertexCreation(dcel.VertexID, C, traits.CurveEnd, traits.ParameterSpace, traits.ParameterSpace) {
}

func (t *BoundedPlanar[P, C]) SplitFictitiousEdge(h dcel.HalfedgeID, _ dcel.VertexID) dcel.HalfedgeID {
	panic(fmt.Sprintf("topology: bounded planar has no fictitious edge to split (%d)", h))
}

func (t *BoundedPlanar[P, C]) LocateAroundBoundaryVertex(v dcel.VertexID, _ C, _ traits.CurveEnd, _, _ traits.ParameterSpace) dcel.HalfedgeID {
	panic(fmt.Sprintf("topology: bounded planar has no boundary vertex (%d)", v))
}

func (t *BoundedPlanar[P, C]) AreEqual(dcel.VertexID, C, traits.CurveEnd, traits.ParameterSpace, traits.ParameterSpace) bool {
	return false
}

func (t *BoundedPlanar[P, C]) IsRedundant(dcel.VertexID) bool { return false }

func (t *BoundedPlanar[P, C]) EraseRedundantVertex(v dcel.VertexID) dcel.HalfedgeID {
	panic(fmt.Sprintf("topology: bounded planar vertex %d is never redundant", v))
}

// FaceSplitAfterEdgeInsertion: closing a loop inside a hole always carves
// out a new face nested in the hole's face.
func (t *BoundedPlanar[P, C]) FaceSplitAfterEdgeInsertion(dcel.HalfedgeID, dcel.HalfedgeID, C) (bool, bool) {
	return true, true
}

func (t *BoundedPlanar[P, C]) HoleCreationAfterEdgeRemoval(h dcel.HalfedgeID) bool {
	if t.d.OnInnerCCB(h) || t.d.OnInnerCCB(t.d.Twin(h)) {
		return false
	}
	return t.d.OuterCCB(h) == t.d.OuterCCB(t.d.Twin(h))
}

func (t *BoundedPlanar[P, C]) LetMeDecideTheOuterCCB(traits.Signs, traits.Signs) (bool, bool) {
	return false, true
}

func (t *BoundedPlanar[P, C]) IsOnNewPerimetricFaceBoundary(dcel.HalfedgeID, dcel.HalfedgeID, C) bool {
	return false
}

func (t *BoundedPlanar[P, C]) BoundariesOfSameFace(dcel.HalfedgeID, dcel.HalfedgeID) bool {
	return false
}

func (t *BoundedPlanar[P, C]) IsUnbounded(f dcel.FaceID) bool {
	return t.d.NumFaceOuterCCBs(f) == 0
}

func (t *BoundedPlanar[P, C]) IsInFace(f dcel.FaceID, p P, v dcel.VertexID) bool {
	if t.d.NumFaceOuterCCBs(f) == 0 {
		return true
	}
	return insideOuterCCBs(t.d, t.geom, f, p, v)
}
