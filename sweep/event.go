package sweep

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
)

// event is one endpoint of one input edge, paired with its partner event
// at the edge's other endpoint. An edge is modelled as two events rather
// than one struct so that subdivision (splitting an edge where it is
// crossed) only ever needs to relink a partner pointer, never rewrite a
// shared owner.
type event struct {
	id int

	point   point.Point[float64]
	isLeft  bool
	partner *event

	operand types.Operand

	// Populated by classify once this edge's position in the sweep-line
	// status is known.
	edgeKind   types.EdgeKind
	inOut      bool
	otherInOut bool

	// belowInResult links to the nearest distinct-from-this-edge result
	// edge below this one in the status at the moment this edge was
	// inserted. It is how hole nesting is recovered during contour
	// reconstruction: a contour whose edges all point to the same
	// belowInResult target nest inside that target's contour.
	belowInResult *event
	inResult      bool

	// Reconstruction scratch state, set by BuildContours.
	position    int // index into the reconstruction's filtered event list
	resultInOut bool
	contourID   int
	processed   bool
}

// left returns the left endpoint of e's edge, regardless of which of the
// pair e is.
func (e *event) left() *event {
	if e.isLeft {
		return e
	}
	return e.partner
}

// right returns the right endpoint of e's edge, regardless of which of
// the pair e is.
func (e *event) right() *event {
	if e.isLeft {
		return e.partner
	}
	return e
}

// arena owns every event created during one sweep run, keyed by creation
// order. Events are never freed individually; the whole arena is dropped
// when the run completes.
type arena struct {
	events []*event
}

func newArena() *arena {
	return &arena{}
}

// newEdge creates a left/right event pair for a single input edge and
// returns the left event.
func (a *arena) newEdge(p1, p2 point.Point[float64], operand types.Operand) *event {
	isP1Left := point.Less(p1, p2)

	left := &event{id: len(a.events), point: p1, isLeft: isP1Left, operand: operand}
	a.events = append(a.events, left)
	right := &event{id: len(a.events), point: p2, isLeft: !isP1Left, operand: operand}
	a.events = append(a.events, right)

	if !isP1Left {
		left, right = right, left
	}
	left.partner = right
	right.partner = left
	return left
}

// divide splits the edge owned by e at p, producing two new edges:
// [e.left, p] and [p, e.right]. It returns the left event of each new
// edge. The original pair e/e.partner is left untouched; callers remove
// it from the queue and status and substitute the two returned edges.
func (a *arena) divide(e *event, p point.Point[float64]) (left1, left2 *event) {
	original := e.left()
	originalRight := e.right()

	left1 = a.newEdge(original.point, p, original.operand)
	left2 = a.newEdge(p, originalRight.point, original.operand)
	return left1, left2
}
