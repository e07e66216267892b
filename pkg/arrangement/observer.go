package arrangement

import (
	"fmt"

	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/logger"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
	"go.uber.org/zap"
)

type EventKind int8

const (
	Clear EventKind = iota
	Assign
	CreateVertex
	CreateBoundaryVertex
	CreateEdge
	ModifyVertex
	ModifyEdge
	SplitEdge
	SplitFictitiousEdge
	SplitFace
	SplitOuterCCB
	SplitInnerCCB
	AddOuterCCB
	AddInnerCCB
	AddIsolatedVertex
	MergeEdge
	MergeFictitiousEdge
	MergeFace
	MergeOuterCCB
	MergeInnerCCB
	MoveOuterCCB
	MoveInnerCCB
	MoveIsolatedVertex
	RemoveVertex
	RemoveEdge
	RemoveOuterCCB
	RemoveInnerCCB
	RemoveIsolatedVertex
)

var eventNames = [...]string{
	Clear:                "clear",
	Assign:               "assign",
	CreateVertex:         "create_vertex",
	CreateBoundaryVertex: "create_boundary_vertex",
	CreateEdge:           "create_edge",
	ModifyVertex:         "modify_vertex",
	ModifyEdge:           "modify_edge",
	SplitEdge:            "split_edge",
	SplitFictitiousEdge:  "split_fictitious_edge",
	SplitFace:            "split_face",
	SplitOuterCCB:        "split_outer_ccb",
	SplitInnerCCB:        "split_inner_ccb",
	AddOuterCCB:          "add_outer_ccb",
	AddInnerCCB:          "add_inner_ccb",
	AddIsolatedVertex:    "add_isolated_vertex",
	MergeEdge:            "merge_edge",
	MergeFictitiousEdge:  "merge_fictitious_edge",
	MergeFace:            "merge_face",
	MergeOuterCCB:        "merge_outer_ccb",
	MergeInnerCCB:        "merge_inner_ccb",
	MoveOuterCCB:         "move_outer_ccb",
	MoveInnerCCB:         "move_inner_ccb",
	MoveIsolatedVertex:   "move_isolated_vertex",
	RemoveVertex:         "remove_vertex",
	RemoveEdge:           "remove_edge",
	RemoveOuterCCB:       "remove_outer_ccb",
	RemoveInnerCCB:       "remove_inner_ccb",
	RemoveIsolatedVertex: "remove_isolated_vertex",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int8(k))
}

type Phase int8

const (
	Before Phase = iota
	After
)

func (p Phase) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// Event describes one structural checkpoint. Handles that do not apply to
// the kind are left null. Before-events of a creation carry the geometry
// that is about to be stored.
type Event[P, C any] struct {
	Kind  EventKind
	Phase Phase

	Vertex    dcel.VertexID
	Vertex2   dcel.VertexID
	Halfedge  dcel.HalfedgeID
	Halfedge2 dcel.HalfedgeID
	Face      dcel.FaceID
	Face2     dcel.FaceID

	Point  P
	Curve  C
	Curve2 C

	End      traits.CurveEnd
	PSX, PSY traits.ParameterSpace

	// IsHole is set on the after-event of SplitFace when the new face lies
	// in a hole of the old one.
	IsHole bool
}

func newEvent[P, C any](kind EventKind, phase Phase) Event[P, C] {
	return Event[P, C]{
		Kind:      kind,
		Phase:     phase,
		Vertex:    dcel.NoVertex,
		Vertex2:   dcel.NoVertex,
		Halfedge:  dcel.NoHalfedge,
		Halfedge2: dcel.NoHalfedge,
		Face:      dcel.NoFace,
		Face2:     dcel.NoFace,
	}
}

func (e Event[P, C]) vertex(v dcel.VertexID) Event[P, C]           { e.Vertex = v; return e }
func (e Event[P, C]) vertices(v1, v2 dcel.VertexID) Event[P, C]    { e.Vertex, e.Vertex2 = v1, v2; return e }
func (e Event[P, C]) halfedge(h dcel.HalfedgeID) Event[P, C]       { e.Halfedge = h; return e }
func (e Event[P, C]) halfedges(h1, h2 dcel.HalfedgeID) Event[P, C] { e.Halfedge, e.Halfedge2 = h1, h2; return e }
func (e Event[P, C]) face(f dcel.FaceID) Event[P, C]               { e.Face = f; return e }
func (e Event[P, C]) faces(f1, f2 dcel.FaceID) Event[P, C]         { e.Face, e.Face2 = f1, f2; return e }
func (e Event[P, C]) point(p P) Event[P, C]                        { e.Point = p; return e }
func (e Event[P, C]) curve(cv C) Event[P, C]                       { e.Curve = cv; return e }
func (e Event[P, C]) curves(c1, c2 C) Event[P, C]                  { e.Curve, e.Curve2 = c1, c2; return e }

// Observer listens to structural changes. It gets a read-only view; calling
// a mutator from Notify panics.
type Observer[P, C any] interface {
	Notify(ev Event[P, C], view View[P, C])
}

type ObserverFunc[P, C any] func(ev Event[P, C], view View[P, C])

func (f ObserverFunc[P, C]) Notify(ev Event[P, C], view View[P, C]) { f(ev, view) }

type ObserverID int

type observerEntry[P, C any] struct {
	id  ObserverID
	obs Observer[P, C]
}

// Attach registers o and returns the id to detach it with.
func (a *Arrangement[P, C]) Attach(o Observer[P, C]) ObserverID {
	a.enter("attach")
	a.lastObserver++
	a.observers = append(a.observers, observerEntry[P, C]{id: a.lastObserver, obs: o})
	return a.lastObserver
}

func (a *Arrangement[P, C]) Detach(id ObserverID) bool {
	a.enter("detach")
	for i, e := range a.observers {
		if e.id == id {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return true
		}
	}
	return false
}

// notify calls the observers in attach order for before-events and in
// reverse order for after-events.
func (a *Arrangement[P, C]) notify(ev Event[P, C]) {
	if len(a.observers) == 0 {
		return
	}
	a.notifying++
	defer func() { a.notifying-- }()
	if ev.Phase == Before {
		for _, e := range a.observers {
			e.obs.Notify(ev, a)
		}
		return
	}
	for i := len(a.observers) - 1; i >= 0; i-- {
		a.observers[i].obs.Notify(ev, a)
	}
}

func (a *Arrangement[P, C]) enter(op string) {
	if a.notifying > 0 {
		precondition(op, "called from an observer notification")
	}
}

// Recorder keeps every event it is notified of.
type Recorder[P, C any] struct {
	Events []Event[P, C]
}

func (r *Recorder[P, C]) Notify(ev Event[P, C], _ View[P, C]) {
	r.Events = append(r.Events, ev)
}

// Kinds lists the kinds of the recorded events of one phase.
func (r *Recorder[P, C]) Kinds(phase Phase) []EventKind {
	var out []EventKind
	for _, ev := range r.Events {
		if ev.Phase == phase {
			out = append(out, ev.Kind)
		}
	}
	return out
}

func (r *Recorder[P, C]) Count(kind EventKind, phase Phase) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind && ev.Phase == phase {
			n++
		}
	}
	return n
}

func (r *Recorder[P, C]) Reset() { r.Events = nil }

type loggingObserver[P, C any] struct {
	log *logger.ZapLogger
}

// NewLoggingObserver writes every after-event to log at debug level.
func NewLoggingObserver[P, C any](log *logger.ZapLogger) Observer[P, C] {
	return &loggingObserver[P, C]{log: log}
}

func (o *loggingObserver[P, C]) Notify(ev Event[P, C], view View[P, C]) {
	if ev.Phase != After {
		return
	}
	fields := []zap.Field{zap.Stringer("event", ev.Kind)}
	if ev.Vertex != dcel.NoVertex {
		fields = append(fields, zap.Int("vertex", int(ev.Vertex)))
	}
	if ev.Halfedge != dcel.NoHalfedge {
		fields = append(fields, zap.Int("halfedge", int(ev.Halfedge)))
	}
	if ev.Halfedge2 != dcel.NoHalfedge {
		fields = append(fields, zap.Int("halfedge2", int(ev.Halfedge2)))
	}
	if ev.Face != dcel.NoFace {
		fields = append(fields, zap.Int("face", int(ev.Face)))
	}
	if ev.Face2 != dcel.NoFace {
		fields = append(fields, zap.Int("face2", int(ev.Face2)))
	}
	if ev.Kind == SplitFace {
		fields = append(fields, zap.Bool("hole", ev.IsHole))
	}
	fields = append(fields,
		zap.Int("vertices", view.NumberOfVertices()),
		zap.Int("edges", view.NumberOfEdges()),
		zap.Int("faces", view.NumberOfFaces()),
	)
	o.log.Debug("[aos-event] "+ev.Kind.String(), fields...)
}
