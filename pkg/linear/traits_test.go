package linear

import (
	"fmt"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-arrangement/pkg/traits"
)

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func TestConstructors(t *testing.T) {
	s := NewSegment(pt(4, 0), pt(0, 0))
	assert.Equal(t, Segment, s.Kind())
	assert.Equal(t, pt(0, 0), s.Min())
	assert.Equal(t, pt(4, 0), s.Max())

	r := NewRay(pt(2, 2), pt(1, 1))
	assert.Equal(t, Ray, r.Kind())
	assert.False(t, r.HasMin())
	assert.True(t, r.HasMax())
	assert.Equal(t, pt(2, 2), r.Source())
	assert.Equal(t, pt(1, 1), r.Through())

	l := NewLine(pt(0, 1), pt(0, 0))
	assert.Equal(t, Line, l.Kind())
	assert.True(t, l.IsVertical())
	assert.Contains(t, l.String(), "line[")

	assert.Panics(t, func() { NewSegment(pt(1, 1), pt(1, 1)) })
	assert.Panics(t, func() { NewRay(pt(1, 1), pt(1, 1)) })
	assert.Panics(t, func() { NewLine(pt(1, 1), pt(1, 1)) })
}

func TestParameterSpace(t *testing.T) {
	var g Traits
	tts := []struct {
		cv       Curve
		end      traits.CurveEnd
		psx, psy traits.ParameterSpace
	}{
		{NewSegment(pt(0, 0), pt(1, 1)), traits.MinEnd, traits.Interior, traits.Interior},
		{NewRay(pt(0, 0), pt(1, 1)), traits.MaxEnd, traits.RightBoundary, traits.Interior},
		{NewRay(pt(0, 0), pt(-1, 1)), traits.MinEnd, traits.LeftBoundary, traits.Interior},
		{NewRay(pt(0, 0), pt(0, 1)), traits.MaxEnd, traits.Interior, traits.TopBoundary},
		{NewRay(pt(0, 0), pt(0, -1)), traits.MinEnd, traits.Interior, traits.BottomBoundary},
		{NewLine(pt(0, 0), pt(0, 1)), traits.MaxEnd, traits.Interior, traits.TopBoundary},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.cv, " ", tt.end), func(t *testing.T) {
			assert.Equal(t, tt.psx, g.ParameterSpaceInX(tt.cv, tt.end))
			assert.Equal(t, tt.psy, g.ParameterSpaceInY(tt.cv, tt.end))
		})
	}
}

func TestSplitMerge(t *testing.T) {
	s := NewSegment(pt(0, 0), pt(4, 2))
	lo, hi := s.Split(pt(2, 1))
	assert.Equal(t, NewSegment(pt(0, 0), pt(2, 1)), lo)
	assert.Equal(t, NewSegment(pt(2, 1), pt(4, 2)), hi)

	m, ok := Merge(hi, lo)
	require.True(t, ok)
	assert.Equal(t, s, m)

	r := NewRay(pt(0, 0), pt(1, 0))
	lo, hi = r.Split(pt(3, 0))
	assert.Equal(t, Segment, lo.Kind())
	assert.Equal(t, Ray, hi.Kind())
	assert.Equal(t, pt(3, 0), hi.Source())
	m, ok = Merge(lo, hi)
	require.True(t, ok)
	assert.Equal(t, Ray, m.Kind())
	assert.Equal(t, pt(0, 0), m.Source())

	l := NewLine(pt(0, 0), pt(1, 1))
	lo, hi = l.Split(pt(5, 5))
	assert.False(t, lo.HasMin())
	assert.True(t, lo.HasMax())
	assert.True(t, l.Contains(lo.Min()))
	assert.True(t, l.Contains(hi.Max()))

	_, ok = Merge(NewSegment(pt(0, 0), pt(1, 0)), NewSegment(pt(1, 0), pt(2, 1)))
	assert.False(t, ok)
	_, ok = Merge(NewSegment(pt(0, 0), pt(1, 0)), NewSegment(pt(2, 0), pt(3, 0)))
	assert.False(t, ok)

	assert.Panics(t, func() { s.Split(pt(0, 0)) })
	assert.Panics(t, func() { s.Split(pt(1, 1)) })
}

func TestInteriorMeets(t *testing.T) {
	tts := []struct {
		name     string
		c, other Curve
		meets    bool
	}{
		{"cross", NewSegment(pt(0, 0), pt(2, 2)), NewSegment(pt(0, 2), pt(2, 0)), true},
		{"shared end", NewSegment(pt(0, 0), pt(2, 2)), NewSegment(pt(2, 2), pt(4, 0)), false},
		{"end on other", NewSegment(pt(1, 0), pt(1, 1)), NewSegment(pt(0, 0), pt(2, 0)), false},
		{"other end inside", NewSegment(pt(0, 0), pt(2, 0)), NewSegment(pt(1, 0), pt(1, 1)), true},
		{"apart", NewSegment(pt(0, 0), pt(1, 0)), NewSegment(pt(0, 1), pt(1, 1)), false},
		{"collinear touch", NewSegment(pt(0, 0), pt(1, 0)), NewSegment(pt(1, 0), pt(2, 0)), false},
		{"collinear overlap", NewSegment(pt(0, 0), pt(2, 0)), NewSegment(pt(1, 0), pt(3, 0)), true},
		{"ray hits segment", NewRay(pt(0, 0), pt(1, 0)), NewSegment(pt(5, -1), pt(5, 1)), true},
		{"ray misses segment", NewRay(pt(0, 0), pt(-1, 0)), NewSegment(pt(5, -1), pt(5, 1)), false},
		{"lines", NewLine(pt(0, 0), pt(1, 0)), NewLine(pt(0, 0), pt(0, 1)), true},
		{"parallel lines", NewLine(pt(0, 0), pt(1, 0)), NewLine(pt(0, 1), pt(1, 1)), false},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.meets, InteriorMeets(tt.c, tt.other))
		})
	}
}

func TestCompareYAtX(t *testing.T) {
	var g Traits
	s := NewSegment(pt(0, 0), pt(4, 4))
	assert.Equal(t, traits.Larger, g.CompareYAtX(pt(1, 2), s))
	assert.Equal(t, traits.Smaller, g.CompareYAtX(pt(3, 2), s))
	assert.Equal(t, traits.Equal, g.CompareYAtX(pt(2, 2), s))

	v := NewSegment(pt(1, 0), pt(1, 2))
	assert.Equal(t, traits.Smaller, g.CompareYAtX(pt(1, -1), v))
	assert.Equal(t, traits.Equal, g.CompareYAtX(pt(1, 1), v))
	assert.Equal(t, traits.Larger, g.CompareYAtX(pt(1, 3), v))

	flat, steep := NewSegment(pt(0, 0), pt(2, 1)), NewSegment(pt(0, 0), pt(1, 2))
	assert.Equal(t, traits.Smaller, g.CompareYAtXRight(flat, steep, pt(0, 0)))
	assert.Equal(t, traits.Larger, g.CompareYAtXRight(v, steep, pt(1, 0)))
}

func TestIsBetweenCW(t *testing.T) {
	var g Traits
	o := pt(0, 0)
	east := NewSegment(o, pt(1, 0))  // leaves o to the right
	north := NewSegment(o, pt(0, 1)) // vertical, leaves o upwards
	west := NewSegment(pt(-1, 0), o) // leaves o to the left
	south := NewSegment(pt(0, -1), o)

	// clockwise from north: east, south, west
	between, eq1, eq2 := g.IsBetweenCW(east, true, north, true, south, false, o)
	assert.True(t, between)
	assert.False(t, eq1)
	assert.False(t, eq2)

	between, _, _ = g.IsBetweenCW(west, false, north, true, south, false, o)
	assert.False(t, between)

	between, _, _ = g.IsBetweenCW(west, false, east, true, east, true, o)
	assert.True(t, between)

	_, eq1, _ = g.IsBetweenCW(NewSegment(o, pt(2, 0)), true, east, true, south, false, o)
	assert.True(t, eq1)
}

func TestCompareNearBoundary(t *testing.T) {
	var g Traits
	flat := NewLine(pt(0, 0), pt(1, 0))
	up := NewLine(pt(0, 0), pt(1, 1))
	above := NewLine(pt(0, 1), pt(1, 1))

	assert.Equal(t, traits.Larger, g.CompareYNearBoundary(up, flat, traits.MaxEnd))
	assert.Equal(t, traits.Smaller, g.CompareYNearBoundary(up, flat, traits.MinEnd))
	assert.Equal(t, traits.Larger, g.CompareYNearBoundary(above, flat, traits.MaxEnd))
	assert.Equal(t, traits.Larger, g.CompareYNearBoundary(above, flat, traits.MinEnd))
	assert.Equal(t, traits.Equal, g.CompareYNearBoundary(flat, flat, traits.MinEnd))

	v1, v2 := NewRay(pt(1, 0), pt(1, 1)), NewRay(pt(2, 5), pt(2, 6))
	assert.Equal(t, traits.Smaller, g.CompareXCurveEndsOnBoundary(v1, traits.MaxEnd, v2, traits.MaxEnd))
	assert.Equal(t, traits.Larger, g.CompareXOnBoundary(pt(3, 0), v2, traits.MaxEnd))
}

func TestEqualCurves(t *testing.T) {
	var g Traits
	assert.True(t, g.EqualCurves(NewSegment(pt(0, 0), pt(1, 1)), NewSegment(pt(1, 1), pt(0, 0))))
	assert.True(t, g.EqualCurves(NewLine(pt(0, 0), pt(1, 1)), NewLine(pt(2, 2), pt(5, 5))))
	assert.True(t, g.EqualCurves(NewRay(pt(0, 0), pt(1, 1)), NewRay(pt(0, 0), pt(3, 3))))
	assert.False(t, g.EqualCurves(NewRay(pt(0, 0), pt(1, 1)), NewLine(pt(0, 0), pt(1, 1))))
	assert.False(t, g.EqualCurves(NewLine(pt(0, 0), pt(1, 1)), NewLine(pt(0, 1), pt(1, 2))))
}
