package sweep

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/primitives"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// subdivisionResult reports what possibleIntersection did, so the driver
// knows whether adjacency around e1/e2 needs rechecking.
type subdivisionResult struct {
	changed bool // e1 and/or e2 were split; their old queue entries are now stale
}

// possibleIntersection implements §4.5: given two left events currently
// adjacent in the status, determine how their edges relate and subdivide
// as needed. Grounded on the teacher's findNewEvent (duplicate
// suppression against the queue), generalised from "record an
// intersection" to "subdivide and classify".
func possibleIntersection(e1, e2 *event, provider primitives.Provider, a *arena, q *eventQueue) (subdivisionResult, error) {
	s1 := edgeSegment(e1)
	s2 := edgeSegment(e2)

	result := provider.Intersect(s1, s2)

	switch result.Kind {
	case primitives.IntersectionNone:
		return subdivisionResult{}, nil

	case primitives.IntersectionPoint:
		p := result.Point
		// Shared endpoint only: handled by event order naturally.
		if p.Eq(e1.left().point) || p.Eq(e1.right().point) ||
			p.Eq(e2.left().point) || p.Eq(e2.right().point) {
			return subdivisionResult{}, nil
		}

		changed := false
		if splitEdge(e1, p, a, q) {
			changed = true
		}
		if splitEdge(e2, p, a, q) {
			changed = true
		}
		return subdivisionResult{changed: changed}, nil

	case primitives.IntersectionOverlap:
		if e1.operand == e2.operand {
			return subdivisionResult{}, &MalformedInputError{A: e1.point, B: e2.point}
		}
		return handleOverlap(e1, e2, result, a, q)

	default:
		return subdivisionResult{}, &NumericInconsistencyError{Detail: "unrecognised intersection kind"}
	}
}

// edgeSegment builds the float64 segment an event's edge currently
// represents, for handing to the primitive provider.
func edgeSegment(e *event) segment.Segment[float64] {
	return segment.New(e.left().point, e.right().point)
}

// splitEdge divides e's edge at p, provided p lies strictly inside it,
// and pushes the two replacement edges' events into the queue. Reports
// whether a split actually happened.
func splitEdge(e *event, p point.Point[float64], a *arena, q *eventQueue) bool {
	l, r := e.left().point, e.right().point
	if p.Eq(l) || p.Eq(r) {
		return false
	}
	left1, left2 := a.divide(e.left(), p)
	pushEdge(q, left1)
	pushEdge(q, left2)
	return true
}

func pushEdge(q *eventQueue, left *event) {
	q.push(left)
	q.push(left.partner)
}

// handleOverlap implements the collinear-overlap branch of §4.5: after
// trimming both edges to their common overlapping subsegment, e1 is
// marked non-contributing (its contribution is absorbed by e2), and e2's
// transition classification depends on whether e1 and e2 agree on
// in_out at the point they became adjacent.
func handleOverlap(e1, e2 *event, result primitives.IntersectionResult, a *arena, q *eventQueue) (subdivisionResult, error) {
	overlap := result.Overlap
	changed := false

	if trimToOverlap(e1, overlap, a, q) {
		changed = true
	}
	if trimToOverlap(e2, overlap, a, q) {
		changed = true
	}

	e1.edgeKind = types.EdgeNonContributing
	if e1.inOut == e2.inOut {
		e2.edgeKind = types.EdgeSameTransition
	} else {
		e2.edgeKind = types.EdgeDifferentTransition
	}

	return subdivisionResult{changed: changed}, nil
}

// trimToOverlap splits e's edge at whichever of overlap's endpoints fall
// strictly inside it, so that after trimming, e's edge spans exactly the
// overlapping region.
func trimToOverlap(e *event, overlap segment.Segment[float64], a *arena, q *eventQueue) bool {
	changed := false
	for _, boundary := range [...]point.Point[float64]{overlap.Upper(), overlap.Lower()} {
		if splitEdge(e, boundary, a, q) {
			changed = true
		}
	}
	return changed
}
