package sweep

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
)

// resultLog builds a minimal Log containing a single in-result edge
// between a and b, in the pop order Run would produce (left then right).
func resultLog(a *arena, p1, p2 point.Point[float64]) *Log {
	left := a.newEdge(p1, p2, types.OperandSubject)
	left.inResult = true
	return &Log{events: []*event{left, left.partner}}
}

func TestResultEdges_ReturnsEveryInResultEdge(t *testing.T) {
	arena := newArena()
	log := resultLog(arena, point.New(0.0, 0.0), point.New(1.0, 1.0))

	edges := ResultEdges(log)
	assert.Len(t, edges, 1)
	assert.True(t, edges[0].Upper().Eq(point.New(1.0, 1.0)))
	assert.True(t, edges[0].Lower().Eq(point.New(0.0, 0.0)))
}

func TestClassify_DanglingEdgeIsSegment(t *testing.T) {
	arena := newArena()
	log := resultLog(arena, point.New(2.0, 0.0), point.New(2.0, 2.0))

	points, segs, contours := Classify(log)
	assert.Empty(t, points)
	assert.Empty(t, contours)
	assert.Len(t, segs, 1)
}

func TestClassify_ZeroWidthEdgeIsPoint(t *testing.T) {
	arena := newArena()
	log := resultLog(arena, point.New(2.0, 2.0), point.New(2.0, 2.0))

	points, segs, contours := Classify(log)
	assert.Empty(t, segs)
	assert.Empty(t, contours)
	assert.Len(t, points, 1)
	assert.True(t, points[0].Eq(point.New(2.0, 2.0)))
}
