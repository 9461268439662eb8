package sweep

import "github.com/mikenye/polyclip/point"

// Contour is a single closed boundary, as produced by BuildContours:
// either an outer (counter-clockwise) or a hole (clockwise) of some
// outer.
type Contour struct {
	Points []point.Point[float64]
	Hole   bool

	// ParentIndex is the index, within the slice BuildContours returns,
	// of the outer contour this hole belongs to. -1 for an outer
	// contour.
	ParentIndex int
}

// contourMeta tracks the nesting relationship discovered for one
// contour id during the walk, per §4.8 step 4.
type contourMeta struct {
	hole     bool
	parentID int // index into the contours slice this hole belongs to; -1 for an outer
	depth    int
}

// resultGroup is one position-linked walk's output: the vertex loop it
// traced and the hole-nesting metadata resolved for it, before any
// decision about whether it represents a polygon, a dangling segment,
// or an isolated point.
type resultGroup struct {
	points []point.Point[float64]
	meta   contourMeta
}

// walkResultGroups filters log to the events that survived into the
// result, follows partner links to rebuild every closed or dangling
// vertex loop, and resolves hole nesting via below_in_result, per §4.8.
//
// Grounded on the teacher's polytree.go for output vertex-list hygiene
// (collinear-run collapsing, ≥3-distinct-point discarding); the
// traversal and nesting rule themselves are new, since polytree.go nests
// holes through its own sibling/child tree built by entry/exit
// traversal, not through below_in_result back-pointers.
func walkResultGroups(log *Log) []resultGroup {
	events := filterResultEvents(log)
	for i, e := range events {
		e.position = i
	}
	// Link each event's position to the array index of its partner, so
	// the walk below can "jump to the other end" by array index alone,
	// matching the position-link scheme of §4.8 step 1.
	for _, e := range events {
		if !e.isLeft {
			e.position, e.partner.position = e.partner.position, e.position
		}
	}

	var groups []resultGroup

	for _, e0 := range events {
		if e0.processed {
			continue
		}

		contourID := len(groups)
		points := walkContour(events, e0, contourID)
		if len(points) > 1 && points[len(points)-1].Eq(points[0]) {
			points = points[:len(points)-1]
		}

		meta := contourMeta{parentID: -1}
		if e0.belowInResult == nil {
			meta.depth = 0
		} else {
			b := e0.belowInResult
			bMeta := groups[b.contourID].meta
			switch {
			case !b.resultInOut:
				meta.hole = true
				meta.parentID = b.contourID
				meta.depth = bMeta.depth + 1
			case bMeta.hole:
				meta.hole = true
				meta.parentID = bMeta.parentID
				meta.depth = bMeta.depth
			default:
				meta.depth = 0
			}
		}

		if meta.depth%2 == 1 {
			reverse(points)
		}

		groups = append(groups, resultGroup{points: points, meta: meta})
	}

	return groups
}

// BuildContours walks log per §4.8 and returns every group that closes
// into a polygon boundary of at least three distinct vertices. Groups
// that only ever traced an isolated point or a dangling segment (see
// [Classify]) are not contours and are omitted here.
func BuildContours(log *Log) []Contour {
	return contoursFromGroups(walkResultGroups(log))
}

// indexedContour pairs a candidate Contour with the group id (the
// contourID assigned during the walk) it was built from, so ParentIndex
// references can be remapped correctly after degenerate and non-polygon
// groups are dropped.
type indexedContour struct {
	id int
	c  Contour
}

// contoursFromGroups converts every group into a Contour, then discards
// ones with fewer than three distinct vertices and remaps the survivors'
// ParentIndex fields onto their new positions. A hole whose outer was
// itself discarded is dropped along with it.
func contoursFromGroups(groups []resultGroup) []Contour {
	candidates := make([]indexedContour, 0, len(groups))
	for id, g := range groups {
		candidates = append(candidates, indexedContour{
			id: id,
			c: Contour{
				Points:      collapseCollinear(g.points),
				Hole:        g.meta.hole,
				ParentIndex: g.meta.parentID,
			},
		})
	}

	oldToNew := make(map[int]int, len(candidates))
	var kept []indexedContour
	for _, ic := range candidates {
		if len(ic.c.Points) < 3 {
			continue
		}
		oldToNew[ic.id] = len(kept)
		kept = append(kept, ic)
	}

	out := make([]Contour, 0, len(kept))
	for _, ic := range kept {
		c := ic.c
		if c.ParentIndex != -1 {
			newParent, ok := oldToNew[c.ParentIndex]
			if !ok {
				continue
			}
			c.ParentIndex = newParent
		}
		out = append(out, c)
	}
	return out
}

// filterResultEvents returns every event that survived into the result
// (a left event with in_result set, or a right event whose partner is
// in_result), sorted in event-processing order (the order they were
// popped, which is already how log is ordered).
func filterResultEvents(log *Log) []*event {
	var out []*event
	for _, e := range log.events {
		if e.isLeft && e.inResult {
			out = append(out, e)
		} else if !e.isLeft && e.partner.inResult {
			out = append(out, e)
		}
	}
	return out
}

// walkContour follows position links starting at e0 until the walk
// returns to e0's point, recording each vertex visited and stamping
// contourID/resultInOut along the way.
func walkContour(events []*event, e0 *event, contourID int) []point.Point[float64] {
	points := []point.Point[float64]{e0.point}

	cur := e0
	cur.processed = true
	cur.contourID = contourID
	cur.resultInOut = !cur.isLeft

	for {
		other := events[cur.position]
		other.processed = true
		other.contourID = contourID
		other.resultInOut = !other.isLeft
		points = append(points, other.point)

		if other.point.Eq(e0.point) {
			break
		}

		next := findUnprocessedAtPoint(events, other)
		if next == nil {
			break
		}
		next.processed = true
		next.contourID = contourID
		next.resultInOut = !next.isLeft
		cur = next
	}

	return points
}

// findUnprocessedAtPoint scans outward from other's position for another
// unprocessed event sharing other's point, forward first then backward,
// matching §4.8 step 2.
func findUnprocessedAtPoint(events []*event, other *event) *event {
	// other.position was swapped to point at its partner; the partner's
	// position holds other's own index in events.
	at := other.partner.position
	for i := at + 1; i < len(events) && events[i].point.Eq(other.point); i++ {
		if !events[i].processed {
			return events[i]
		}
	}
	for i := at - 1; i >= 0 && events[i].point.Eq(other.point); i-- {
		if !events[i].processed {
			return events[i]
		}
	}
	return nil
}

func reverse(points []point.Point[float64]) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// collapseCollinear drops the middle point of every run of three
// consecutive collinear vertices.
func collapseCollinear(points []point.Point[float64]) []point.Point[float64] {
	if len(points) < 3 {
		return points
	}
	out := make([]point.Point[float64], 0, len(points))
	n := len(points)
	for i := 0; i < n; i++ {
		prev := points[(i-1+n)%n]
		cur := points[i]
		next := points[(i+1)%n]
		if collinear(prev, cur, next) {
			continue
		}
		out = append(out, cur)
	}
	if len(out) == 0 {
		return points
	}
	return out
}

func collinear(a, b, c point.Point[float64]) bool {
	return b.Sub(a).CrossProduct(c.Sub(a)) == 0
}

