// Package scene reads arrangement scenes from YAML and builds them
// incrementally through the arrangement API.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/0x0FACED/go-arrangement/pkg/linear"
)

const (
	TopologyBounded   = "bounded"
	TopologyUnbounded = "unbounded"
)

var (
	ErrUnknownTopology = errors.New("unknown topology")
	ErrUnknownKind     = errors.New("unknown curve kind")
	ErrDegenerate      = errors.New("degenerate curve")
	ErrUnbounded       = errors.New("unbounded curve in a bounded scene")
)

// Point is written as [x, y].
type Point [2]float64

func (p Point) R2() r2.Point { return r2.Point{X: p[0], Y: p[1]} }

// CurveSpec describes one curve. A ray starts at From and passes through
// To; a line passes through both.
type CurveSpec struct {
	Kind string `yaml:"kind"`
	From Point  `yaml:"from"`
	To   Point  `yaml:"to"`
}

func (c CurveSpec) Curve() (linear.Curve, error) {
	if c.From == c.To {
		return linear.Curve{}, fmt.Errorf("%w: %s at %v", ErrDegenerate, c.Kind, c.From)
	}
	switch c.Kind {
	case "", "segment":
		return linear.NewSegment(c.From.R2(), c.To.R2()), nil
	case "ray":
		return linear.NewRay(c.From.R2(), c.To.R2()), nil
	case "line":
		return linear.NewLine(c.From.R2(), c.To.R2()), nil
	}
	return linear.Curve{}, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
}

type Scene struct {
	Name     string      `yaml:"name"`
	Topology string      `yaml:"topology"`
	Points   []Point     `yaml:"points"`
	Curves   []CurveSpec `yaml:"curves"`
	// Remove lists curves taken out again once everything is inserted.
	Remove []CurveSpec `yaml:"remove"`
	// Simplify merges collinear edges meeting at vertices of degree 2.
	Simplify bool `yaml:"simplify"`
}

// Parse decodes a scene and validates it.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if sc.Topology == "" {
		sc.Topology = TopologyBounded
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Validate reports every malformed entry at once.
func (sc *Scene) Validate() error {
	var err error
	if sc.Topology != TopologyBounded && sc.Topology != TopologyUnbounded {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownTopology, sc.Topology))
	}
	check := func(section string, specs []CurveSpec) {
		for i, spec := range specs {
			if _, cerr := spec.Curve(); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("%s[%d]: %w", section, i, cerr))
				continue
			}
			if sc.Topology == TopologyBounded && spec.Kind != "" && spec.Kind != "segment" {
				err = multierr.Append(err, fmt.Errorf("%s[%d]: %w: %s", section, i, ErrUnbounded, spec.Kind))
			}
		}
	}
	check("curves", sc.Curves)
	check("remove", sc.Remove)
	return err
}
