package dcel

// FeatureKind tags a Feature.
type FeatureKind int8

const (
	FeatureNone FeatureKind = iota
	FeatureHalfedge
	FeatureVertex
)

// Feature is the answer of a boundary placement query: the fictitious
// halfedge a curve end lies on, the existing vertex it coincides with, or
// nothing.
type Feature struct {
	Kind     FeatureKind
	Halfedge HalfedgeID
	Vertex   VertexID
}

func OnHalfedge(h HalfedgeID) Feature {
	return Feature{Kind: FeatureHalfedge, Halfedge: h, Vertex: NoVertex}
}

func AtVertex(v VertexID) Feature {
	return Feature{Kind: FeatureVertex, Halfedge: NoHalfedge, Vertex: v}
}

func NoFeature() Feature {
	return Feature{Kind: FeatureNone, Halfedge: NoHalfedge, Vertex: NoVertex}
}
