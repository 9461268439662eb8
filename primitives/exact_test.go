package primitives

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
)

func TestExact_Orientation(t *testing.T) {
	e := NewExact()

	p := point.New(0.0, 0.0)
	q := point.New(1.0, 1.0)

	assert.Equal(t, types.OrientationCollinear, e.Orientation(p, q, point.New(2.0, 2.0)))
	assert.Equal(t, types.OrientationCounterClockwise, e.Orientation(p, q, point.New(0.0, 1.0)))
	assert.Equal(t, types.OrientationClockwise, e.Orientation(p, q, point.New(1.0, 0.0)))
}

func TestExact_Intersect_CrossingPoint(t *testing.T) {
	e := NewExact()
	s1 := segment.New(point.New(0.0, 0.0), point.New(4.0, 4.0))
	s2 := segment.New(point.New(0.0, 4.0), point.New(4.0, 0.0))

	result := e.Intersect(s1, s2)

	assert.Equal(t, IntersectionPoint, result.Kind)
	assert.Equal(t, 2.0, result.Point.X())
	assert.Equal(t, 2.0, result.Point.Y())
}

func TestExact_Intersect_Disjoint(t *testing.T) {
	e := NewExact()
	s1 := segment.New(point.New(0.0, 0.0), point.New(1.0, 1.0))
	s2 := segment.New(point.New(5.0, 5.0), point.New(6.0, 6.0))

	assert.Equal(t, IntersectionNone, e.Intersect(s1, s2).Kind)
}

func TestExact_Orientation_NearDegenerateCase(t *testing.T) {
	// A configuration close enough to collinear that an epsilon test
	// could go either way, but Exact must always agree with the true
	// sign of the cross product.
	e := NewExact()
	p := point.New(0.0, 0.0)
	q := point.New(1e9, 1.0)
	r := point.New(2e9, 2.0000000001)

	got := e.Orientation(p, q, r)
	assert.NotEqual(t, types.OrientationCollinear, got)
}
