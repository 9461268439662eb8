package sweep

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/primitives"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareEdges(x1, y1, x2, y2 float64) []segment.Segment[float64] {
	p1 := point.New(x1, y1)
	p2 := point.New(x2, y1)
	p3 := point.New(x2, y2)
	p4 := point.New(x1, y2)
	return []segment.Segment[float64]{
		segment.New(p1, p2),
		segment.New(p2, p3),
		segment.New(p3, p4),
		segment.New(p4, p1),
	}
}

func TestRun_MalformedInput_SameOperandOverlap(t *testing.T) {
	provider := primitives.NewFast(1e-9)

	edge := segment.New(point.New(0.0, 0.0), point.New(4.0, 0.0))
	duplicate := segment.New(point.New(0.0, 0.0), point.New(4.0, 0.0))

	_, err := Run([]segment.Segment[float64]{edge, duplicate}, nil, types.OperationUnion, provider)

	require.Error(t, err)
	var malformed *MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestRun_DisjointSquares_IntersectionEmpty(t *testing.T) {
	provider := primitives.NewFast(1e-9)

	a := squareEdges(0, 0, 1, 1)
	b := squareEdges(10, 10, 11, 11)

	log, err := Run(a, b, types.OperationIntersection, provider)
	require.NoError(t, err)

	contours := BuildContours(log)
	assert.Empty(t, contours)
}

func TestRun_OverlappingSquares_UnionProducesContour(t *testing.T) {
	provider := primitives.NewFast(1e-9)

	a := squareEdges(0, 0, 2, 2)
	b := squareEdges(1, 1, 3, 3)

	log, err := Run(a, b, types.OperationUnion, provider)
	require.NoError(t, err)

	contours := BuildContours(log)
	require.NotEmpty(t, contours)
	for _, c := range contours {
		assert.GreaterOrEqual(t, len(c.Points), 3)
	}
}
