package sweep

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
)

func TestEventLess_OrdersByXThenY(t *testing.T) {
	a := newArena()
	e1 := a.newEdge(point.New(0.0, 5.0), point.New(1.0, 5.0), types.OperandSubject)
	e2 := a.newEdge(point.New(2.0, 1.0), point.New(3.0, 1.0), types.OperandSubject)

	assert.True(t, eventLess(e1, e2))
	assert.False(t, eventLess(e2, e1))
}

func TestEventLess_RightBeforeLeftAtSamePoint(t *testing.T) {
	a := newArena()
	left := a.newEdge(point.New(1.0, 1.0), point.New(2.0, 2.0), types.OperandSubject)
	right := a.newEdge(point.New(0.0, 0.0), point.New(1.0, 1.0), types.OperandSubject)

	// right.partner is the right event at (1,1); left is the left event at (1,1).
	assert.True(t, eventLess(right.partner, left))
}

func TestEventQueue_PopsInOrder(t *testing.T) {
	a := newArena()
	q := newEventQueue()

	e1 := a.newEdge(point.New(5.0, 5.0), point.New(6.0, 6.0), types.OperandSubject)
	e2 := a.newEdge(point.New(0.0, 0.0), point.New(1.0, 1.0), types.OperandSubject)
	e3 := a.newEdge(point.New(2.0, 2.0), point.New(3.0, 3.0), types.OperandSubject)

	for _, e := range []*event{e1, e2, e3} {
		q.push(e)
		q.push(e.partner)
	}

	var xs []float64
	for !q.empty() {
		xs = append(xs, q.pop().point.X())
	}

	assert.True(t, len(xs) == 6)
	for i := 1; i < len(xs); i++ {
		assert.LessOrEqual(t, xs[i-1], xs[i])
	}
}
