// Package primitives defines the external-collaborator contract the sweep
// engine relies on for its two fundamental geometric predicates:
// three-point orientation and segment-segment intersection.
//
// The sweep engine (package sweep) never evaluates these predicates
// itself; it calls through a [Provider]. This keeps the choice of
// coordinate backend (epsilon-tolerant float64, or exact rational) a
// single decision made once at the façade boundary rather than a type
// parameter threaded through every sweep data structure.
package primitives

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// Provider supplies the geometric predicates the sweep engine is built
// on. Implementations decide how to trade off speed against exactness;
// the engine itself is agnostic to that choice.
type Provider interface {
	// Orientation determines whether (a, b, c) form a clockwise turn, a
	// counterclockwise turn, or are collinear.
	Orientation(a, b, c point.Point[float64]) types.Orientation

	// Intersect determines how two segments relate: disjoint, crossing
	// at a point, or collinear-overlapping.
	Intersect(s1, s2 segment.Segment[float64]) IntersectionResult
}
