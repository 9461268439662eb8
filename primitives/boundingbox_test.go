package primitives

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	bb := Of(point.New(1.0, 5.0), point.New(-2.0, 3.0), point.New(4.0, -1.0))
	assert.Equal(t, BoundingBox{MinX: -2, MinY: -1, MaxX: 4, MaxY: 5}, bb)
}

func TestBoundingBox_Disjoint(t *testing.T) {
	a := BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := BoundingBox{MinX: 3, MinY: 3, MaxX: 5, MaxY: 5}
	c := BoundingBox{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}

	assert.True(t, a.Disjoint(b))
	assert.True(t, b.Disjoint(a))
	assert.False(t, a.Disjoint(c))
}

func TestBoundingBox_Union(t *testing.T) {
	a := BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := BoundingBox{MinX: -1, MinY: 1, MaxX: 1, MaxY: 4}

	assert.Equal(t, BoundingBox{MinX: -1, MinY: 0, MaxX: 2, MaxY: 4}, a.Union(b))
}
