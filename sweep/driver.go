package sweep

import (
	"math"

	"github.com/mikenye/polyclip/primitives"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// Log is the sequential record of every event popped during a sweep,
// in pop order. Contour reconstruction (BuildContours) consumes it.
type Log struct {
	events []*event
}

// Run executes the Martínez–Rueda–Feito sweep over subject and clip,
// computing op, and returns the event log for contour reconstruction.
//
// Grounded on GregoryKogan-benott.CountIntersections' overall loop shape
// (pop event, update status, query neighbours, push new events),
// extended with the left/right split and early-exit bounds of §4.7.
func Run(subject, clip []segment.Segment[float64], op types.Operation, provider primitives.Provider) (*Log, error) {
	a := newArena()
	q := newEventQueue()

	for _, s := range subject {
		pushSegment(a, q, s, types.OperandSubject)
	}
	for _, s := range clip {
		pushSegment(a, q, s, types.OperandClip)
	}

	minMaxX := math.Min(maxX(subject), maxX(clip))
	leftMaxX := maxX(subject)

	st := newStatus()
	var log Log

	for !q.empty() {
		e := q.pop()
		if e == nil {
			break
		}

		if op == types.OperationIntersection && e.point.X() > minMaxX {
			break
		}
		if op == types.OperationDifference && e.point.X() > leftMaxX {
			break
		}

		debugf("pop event %s isLeft=%v operand=%s", e.point, e.isLeft, e.operand)

		if e.isLeft {
			if err := handleLeft(e, st, a, q, provider, op); err != nil {
				return nil, err
			}
		} else {
			if err := handleRight(e, st, a, q, provider, op); err != nil {
				return nil, err
			}
		}

		log.events = append(log.events, e)
	}

	return &log, nil
}

func pushSegment(a *arena, q *eventQueue, s segment.Segment[float64], operand types.Operand) {
	if s.IsDegenerate() {
		return // contributes no edge
	}
	left := a.newEdge(s.Upper(), s.Lower(), operand)
	q.push(left)
	q.push(left.partner)
}

func maxX(segs []segment.Segment[float64]) float64 {
	if len(segs) == 0 {
		return math.Inf(-1)
	}
	m := math.Inf(-1)
	for _, s := range segs {
		m = math.Max(m, math.Max(s.Upper().X(), s.Lower().X()))
	}
	return m
}

func handleLeft(e *event, st *status, a *arena, q *eventQueue, provider primitives.Provider, op types.Operation) error {
	st.setSweepX(e.point.X())
	st.insert(e)

	below := st.below(e)
	above := st.above(e)

	classify(e, below, op)

	if above != nil {
		r, err := possibleIntersection(e, above, provider, a, q)
		if err != nil {
			return err
		}
		if r.changed {
			below2 := st.below(e)
			classify(e, below2, op)
		}
	}

	if below != nil {
		belowOfBelow := st.below(below)
		r, err := possibleIntersection(below, e, provider, a, q)
		if err != nil {
			return err
		}
		if r.changed {
			classify(below, belowOfBelow, op)
		}
	}

	return nil
}

func handleRight(e *event, st *status, a *arena, q *eventQueue, provider primitives.Provider, op types.Operation) error {
	partner := e.partner

	st.setSweepX(e.point.X())

	above := st.above(partner)
	below := st.below(partner)

	st.remove(partner)

	if above != nil && below != nil {
		_, err := possibleIntersection(below, above, provider, a, q)
		if err != nil {
			return err
		}
	}

	return nil
}
