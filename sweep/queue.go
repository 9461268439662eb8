package sweep

import (
	"github.com/google/btree"
	"github.com/mikenye/polyclip/types"
)

// eventQueue is the sweep's priority queue of pending events, ordered by
// the order in which they must be processed. It wraps a
// [btree.BTreeG], the same structure the teacher's segment-intersection
// sweep uses for its own event queue, reordered here to the
// five-rule comparator a Boolean-operation sweep needs instead of the
// teacher's simpler two-rule order.
type eventQueue struct {
	tree *btree.BTreeG[*event]
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: btree.NewG[*event](32, eventLess)}
}

// push inserts e into the queue. Zero-length (degenerate) edges are the
// caller's responsibility to filter before calling push; the queue
// itself does not special-case them.
func (q *eventQueue) push(e *event) {
	q.tree.ReplaceOrInsert(e)
}

// pop removes and returns the next event to process, or nil if the queue
// is empty.
func (q *eventQueue) pop() *event {
	e, ok := q.tree.DeleteMin()
	if !ok {
		return nil
	}
	return e
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}

// eventLess implements the sweep's event-processing order:
//
//  1. Lower x before higher x.
//  2. At equal x, lower y before higher y.
//  3. At the same point, a right event is processed before a left event
//     (so an edge ending at p is removed from the status before any edge
//     starting at p is inserted).
//  4. At the same point with the same left/right-ness, of two collinear
//     edges, the one whose other endpoint is lower (closer to the sweep
//     line, i.e. the shorter one when both are left events) is processed
//     first.
//  5. Remaining ties are broken by operand, subject before clip, so that
//     classification in [classify] has a stable, deterministic order to
//     rely on.
func eventLess(p, q *event) bool {
	if p.point.X() != q.point.X() {
		return p.point.X() < q.point.X()
	}
	if p.point.Y() != q.point.Y() {
		return p.point.Y() < q.point.Y()
	}
	if p.isLeft != q.isLeft {
		return !p.isLeft
	}
	if same, other := isCollinear(p, q); same && !p.partner.point.Eq(q.partner.point) {
		return other
	}
	if p.operand != q.operand {
		return p.operand == types.OperandSubject
	}
	return p.id < q.id
}

// isCollinear reports whether p and q's edges are collinear through this
// shared event point, and if so, whether p should sort before q under
// rule 4 (the edge whose partner point is smaller in x, then y, goes
// first).
func isCollinear(p, q *event) (collinear, pFirst bool) {
	po, qo := p.partner.point, q.partner.point
	// Cross product of the two edges' direction vectors, both anchored
	// at the shared point: zero means collinear.
	dx1, dy1 := po.X()-p.point.X(), po.Y()-p.point.Y()
	dx2, dy2 := qo.X()-q.point.X(), qo.Y()-q.point.Y()
	cross := dx1*dy2 - dy1*dx2
	if cross != 0 {
		return false, false
	}

	// Collinear: whichever partner point is smaller (in x then y) sorts
	// first; for two left events that is the one nearer the shared point.
	if po.X() != qo.X() {
		return true, po.X() < qo.X()
	}
	return true, po.Y() < qo.Y()
}
