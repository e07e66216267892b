// Package arrangement maintains a planar subdivision induced by x-monotone
// curves in a doubly-connected edge list. Geometry and the surface boundary
// are injected as traits; the arrangement only splices records and decides
// how faces and boundary components are split, merged and relocated.
//
// The arrangement is not safe for concurrent use. Mutators panic with a
// *PreconditionError when the caller breaks their contract.
package arrangement

import (
	"github.com/0x0FACED/go-arrangement/pkg/dcel"
	"github.com/0x0FACED/go-arrangement/pkg/logger"
	"github.com/0x0FACED/go-arrangement/pkg/topology"
	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

type settings struct {
	log       *logger.ZapLogger
	selfCheck bool
}

type Option func(*settings)

func WithLogger(log *logger.ZapLogger) Option {
	return func(s *settings) { s.log = log }
}

// WithSelfCheck verifies every face created inside a hole and every hole
// created by a removal with a full traversal of the loops involved.
func WithSelfCheck() Option {
	return func(s *settings) { s.selfCheck = true }
}

type Arrangement[P, C any] struct {
	geom   traits.Geometry[P, C]
	cloner traits.Cloner[P, C]
	topo   topology.Traits[P, C]
	d      *dcel.DCEL[P, C]

	log       *logger.ZapLogger
	selfCheck bool

	observers    []observerEntry[P, C]
	lastObserver ObserverID
	notifying    int
}

// New returns an empty arrangement on the surface described by topo. The
// topology must not be shared with another arrangement.
func New[P, C any](geom traits.Geometry[P, C], topo topology.Traits[P, C], opts ...Option) *Arrangement[P, C] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}

	a := &Arrangement[P, C]{
		geom:      geom,
		topo:      topo,
		d:         dcel.New[P, C](),
		log:       s.log,
		selfCheck: s.selfCheck,
	}
	if c, ok := geom.(traits.Cloner[P, C]); ok {
		a.cloner = c
	}
	topo.Attach(a.d)
	topo.InitDCEL()
	return a
}

func (a *Arrangement[P, C]) Geometry() traits.Geometry[P, C] { return a.geom }

// Clear removes everything and leaves the arrangement as New returned it.
func (a *Arrangement[P, C]) Clear() {
	a.enter("clear")
	a.notify(newEvent[P, C](Clear, Before))
	a.d.DeleteAll()
	a.topo.InitDCEL()
	a.notify(newEvent[P, C](Clear, After))
}

// Clone returns a deep copy. Handles of a keep their meaning in the copy.
// Observers are not copied.
func (a *Arrangement[P, C]) Clone() *Arrangement[P, C] {
	cp := &Arrangement[P, C]{
		geom:      a.geom,
		cloner:    a.cloner,
		topo:      a.topo.Clone(),
		d:         a.cloneDCEL(),
		log:       a.log,
		selfCheck: a.selfCheck,
	}
	cp.topo.Attach(cp.d)
	return cp
}

// Assign replaces the contents of a with a copy of other. The observers of
// a stay attached.
func (a *Arrangement[P, C]) Assign(other *Arrangement[P, C]) {
	a.enter("assign")
	if other == a {
		return
	}
	a.notify(newEvent[P, C](Assign, Before))
	a.d = other.cloneDCEL()
	a.topo = other.topo.Clone()
	a.topo.Attach(a.d)
	a.notify(newEvent[P, C](Assign, After))
}

func (a *Arrangement[P, C]) cloneDCEL() *dcel.DCEL[P, C] {
	if a.cloner == nil {
		return a.d.Clone(nil, nil)
	}
	return a.d.Clone(a.cloner.ClonePoint, a.cloner.CloneCurve)
}

func (a *Arrangement[P, C]) ownPoint(p P) P {
	if a.cloner != nil {
		return a.cloner.ClonePoint(p)
	}
	return p
}

func (a *Arrangement[P, C]) ownCurve(cv C) C {
	if a.cloner != nil {
		return a.cloner.CloneCurve(cv)
	}
	return cv
}

func (a *Arrangement[P, C]) endPoint(cv C, end traits.CurveEnd) P {
	if end == traits.MinEnd {
		return a.geom.MinVertex(cv)
	}
	return a.geom.MaxVertex(cv)
}

func (a *Arrangement[P, C]) parameterSpace(cv C, end traits.CurveEnd) (psx, psy traits.ParameterSpace) {
	return a.geom.ParameterSpaceInX(cv, end), a.geom.ParameterSpaceInY(cv, end)
}

func (a *Arrangement[P, C]) isOpen(psx, psy traits.ParameterSpace) bool {
	return a.topo.SideCategory(psx) == traits.Open || a.topo.SideCategory(psy) == traits.Open
}

// curve returns the curve of a halfedge that must not be fictitious.
func (a *Arrangement[P, C]) curve(h dcel.HalfedgeID) C {
	cv, ok := a.d.Curve(h)
	if !ok {
		broken("curve", "halfedge %d is fictitious", h)
	}
	return cv
}

func (a *Arrangement[P, C]) point(v dcel.VertexID) P {
	p, ok := a.d.Point(v)
	if !ok {
		broken("point", "vertex %d lies at infinity", v)
	}
	return p
}

func (a *Arrangement[P, C]) checkVertex(op string, v dcel.VertexID) {
	if !a.d.VertexAlive(v) {
		precondition(op, "vertex %d does not exist", v)
	}
}

func (a *Arrangement[P, C]) checkHalfedge(op string, h dcel.HalfedgeID) {
	if !a.d.HalfedgeAlive(h) {
		precondition(op, "halfedge %d does not exist", h)
	}
}

func (a *Arrangement[P, C]) checkFace(op string, f dcel.FaceID) {
	if !a.d.FaceAlive(f) {
		precondition(op, "face %d does not exist", f)
	}
	if a.d.IsFictitiousFace(f) {
		precondition(op, "face %d is fictitious", f)
	}
}
