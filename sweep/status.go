package sweep

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// status is the sweep-line status structure: the set of edges currently
// crossing the sweep line, ordered vertically (below to above) at the
// sweep's current x-position.
//
// Grounded on GregoryKogan-benott's sweepLineComparator (a comparator
// closed over the sweep's current x, recomputing each edge's y there).
// Neighbours are found by walking the exported Left/Right/Parent
// pointers of gods' *rbt.Node (see predecessor and successor), as
// benott does.
type status struct {
	tree       *rbt.Tree
	comparator *statusComparator
}

type statusComparator struct {
	currentX float64
}

func newStatus() *status {
	c := &statusComparator{}
	return &status{tree: rbt.NewWith(c.compare), comparator: c}
}

// setSweepX must be called before any insert/remove/neighbour query at a
// new event point, so that edges compare at the correct x.
func (s *status) setSweepX(x float64) {
	s.comparator.currentX = x
}

func (s *status) insert(e *event) {
	s.tree.Put(e, true)
}

func (s *status) remove(e *event) {
	s.tree.Remove(e)
}

// above returns the edge immediately above e in the status, or nil.
func (s *status) above(e *event) *event {
	node := s.tree.GetNode(e)
	if node == nil {
		return nil
	}
	if succ := successor(node); succ != nil {
		return succ.Key.(*event)
	}
	return nil
}

// below returns the edge immediately below e in the status, or nil.
func (s *status) below(e *event) *event {
	node := s.tree.GetNode(e)
	if node == nil {
		return nil
	}
	if pred := predecessor(node); pred != nil {
		return pred.Key.(*event)
	}
	return nil
}

func predecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	curr, parent := node, node.Parent
	for parent != nil && curr == parent.Left {
		curr = parent
		parent = parent.Parent
	}
	return parent
}

func successor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	curr, parent := node, node.Parent
	for parent != nil && curr == parent.Right {
		curr = parent
		parent = parent.Parent
	}
	return parent
}

// yAt returns e's edge's y-coordinate at x, via linear interpolation.
// Vertical edges return their lower y so that a vertical edge always
// compares as if it were infinitesimally past its own x.
func yAt(e *event, x float64) float64 {
	l, r := e.left().point, e.right().point
	if l.X() == r.X() {
		return math.Min(l.Y(), r.Y())
	}
	if x <= l.X() {
		return l.Y()
	}
	if x >= r.X() {
		return r.Y()
	}
	return l.Y() + (x-l.X())*(r.Y()-l.Y())/(r.X()-l.X())
}

// compare orders two edges by their y-coordinate at the comparator's
// current sweep x, falling back to slope then arena id to keep the
// ordering a strict total order (required for a red-black tree key).
func (c *statusComparator) compare(a, b any) int {
	ea, eb := a.(*event), b.(*event)
	if ea == eb {
		return 0
	}

	ya, yb := yAt(ea, c.currentX), yAt(eb, c.currentX)
	if ya != yb {
		if ya < yb {
			return -1
		}
		return 1
	}

	sa, sb := slope(ea), slope(eb)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}

	if ea.id != eb.id {
		if ea.id < eb.id {
			return -1
		}
		return 1
	}
	return 0
}

func slope(e *event) float64 {
	l, r := e.left().point, e.right().point
	if l.X() == r.X() {
		return math.Inf(1)
	}
	return (r.Y() - l.Y()) / (r.X() - l.X())
}
