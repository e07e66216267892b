// Package topology holds the surface-specific collaborators of the
// arrangement: how the boundary of the parameter space is represented in the
// DCEL and how faces are classified after a split or a removal.
package topology

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

// Traits is consumed by the arrangement for every decision that depends on
// the surface.
type Traits[P, C any] interface {
	// Attach binds the topology to the DCEL it manages. It must be called
	// before InitDCEL and after Clone.
	Attach(d *dcel.DCEL[P, C])

	// InitDCEL resets the attached DCEL to the empty arrangement.
	InitDCEL()

	// Clone returns an unattached copy that refers to the same record ids.
	Clone() Traits[P, C]

	SideCategory(ps traits.ParameterSpace) traits.SideCategory

	// ReferenceFace returns the face an empty arrangement starts with, or the
	// face that took its place.
	ReferenceFace() dcel.FaceID

	PlaceBoundaryVertex(f dcel.FaceID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) dcel.Feature
	NotifyOnBoundaryVertexCreation(v dcel.VertexID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace)

	// SplitFictitiousEdge splits the fictitious h at v and returns the part
	// whose target is v.
	SplitFictitiousEdge(h dcel.HalfedgeID, v dcel.VertexID) dcel.HalfedgeID

	LocateAroundBoundaryVertex(v dcel.VertexID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) dcel.HalfedgeID
	AreEqual(v dcel.VertexID, cv C, end traits.CurveEnd, psx, psy traits.ParameterSpace) bool

	IsRedundant(v dcel.VertexID) bool

	// EraseRedundantVertex merges the two fictitious edges incident to v and
	// returns the surviving halfedge. The caller deletes v.
	EraseRedundantVertex(v dcel.VertexID) dcel.HalfedgeID

	// FaceSplitAfterEdgeInsertion is asked when both predecessors lie on the
	// same inner CCB.
	FaceSplitAfterEdgeInsertion(prev1, prev2 dcel.HalfedgeID, cv C) (split, contained bool)

	HoleCreationAfterEdgeRemoval(h dcel.HalfedgeID) bool

	LetMeDecideTheOuterCCB(signs1, signs2 traits.Signs) (decided, prev1OnOuter bool)
	IsOnNewPerimetricFaceBoundary(prev1, prev2 dcel.HalfedgeID, cv C) bool
	BoundariesOfSameFace(e1, e2 dcel.HalfedgeID) bool

	IsUnbounded(f dcel.FaceID) bool

	// IsInFace reports whether p, the point of v, lies in the interior of the
	// region bounded by the outer CCBs of f.
	IsInFace(f dcel.FaceID, p P, v dcel.VertexID) bool
}
