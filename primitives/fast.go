package primitives

import (
	"math"

	"github.com/mikenye/polyclip/numeric"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// Fast is the epsilon-tolerant float64 [Provider]. It is the backend used
// when accurate mode is turned off ([Exact] is the default): fast, and
// accurate enough for inputs whose coordinates are not adversarially
// close together.
type Fast struct {
	// Epsilon is the tolerance used to treat a near-zero cross product as
	// exactly zero (collinear), and a near-zero determinant as exactly
	// zero (parallel). Zero disables tolerance entirely.
	Epsilon float64
}

// NewFast constructs a [Fast] provider with the given epsilon.
func NewFast(epsilon float64) *Fast {
	return &Fast{Epsilon: epsilon}
}

// Orientation implements [Provider]. Grounded on the adaptive-epsilon
// cross-product test the teacher's point package uses: the tolerance is
// scaled by the lengths of the two rays so that orientation judgements
// remain stable regardless of how far p is from q and r.
func (f *Fast) Orientation(p, q, r point.Point[float64]) types.Orientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))

	adaptiveEpsilon := f.Epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))
	if math.Abs(val) <= adaptiveEpsilon {
		return types.OrientationCollinear
	}
	if val > 0 {
		return types.OrientationCounterClockwise
	}
	return types.OrientationClockwise
}

// Intersect implements [Provider] via the parametric-form cross-product
// solve, including the collinear-overlap branch.
func (f *Fast) Intersect(s1, s2 segment.Segment[float64]) IntersectionResult {
	a, b := s1.Upper(), s1.Lower()
	c, d := s2.Upper(), s2.Lower()

	dir1 := b.Sub(a)
	dir2 := d.Sub(c)

	denominator := dir1.CrossProduct(dir2)

	if numeric.FloatEquals(denominator, 0, f.Epsilon) {
		ac := c.Sub(a)
		if !numeric.FloatEquals(ac.CrossProduct(dir1), 0, f.Epsilon) {
			return IntersectionResult{Kind: IntersectionNone}
		}

		denom := dir1.DotProduct(dir1)
		if denom == 0 {
			// s1 is degenerate; intersect as a single point if it lies on s2.
			if onSegment(a, s2, f.Epsilon) {
				return IntersectionResult{Kind: IntersectionPoint, Point: a}
			}
			return IntersectionResult{Kind: IntersectionNone}
		}

		tStart := c.Sub(a).DotProduct(dir1) / denom
		tEnd := d.Sub(a).DotProduct(dir1) / denom
		if tStart > tEnd {
			tStart, tEnd = tEnd, tStart
		}

		overlapStart := math.Max(0, tStart)
		overlapEnd := math.Min(1, tEnd)
		if overlapStart > overlapEnd {
			return IntersectionResult{Kind: IntersectionNone}
		}

		p1 := point.New(
			numeric.SnapToEpsilon(a.X()+overlapStart*dir1.X(), f.Epsilon),
			numeric.SnapToEpsilon(a.Y()+overlapStart*dir1.Y(), f.Epsilon),
		)
		p2 := point.New(
			numeric.SnapToEpsilon(a.X()+overlapEnd*dir1.X(), f.Epsilon),
			numeric.SnapToEpsilon(a.Y()+overlapEnd*dir1.Y(), f.Epsilon),
		)

		if p1.Eq(p2) {
			return IntersectionResult{Kind: IntersectionPoint, Point: p1}
		}
		return IntersectionResult{Kind: IntersectionOverlap, Overlap: segment.New(p1, p2)}
	}

	ac := c.Sub(a)
	t := ac.CrossProduct(dir2) / denominator
	u := ac.CrossProduct(dir1) / denominator

	if t < -f.Epsilon || t > 1+f.Epsilon || u < -f.Epsilon || u > 1+f.Epsilon {
		return IntersectionResult{Kind: IntersectionNone}
	}

	intersection := point.New(
		numeric.SnapToEpsilon(a.X()+t*dir1.X(), f.Epsilon),
		numeric.SnapToEpsilon(a.Y()+t*dir1.Y(), f.Epsilon),
	)
	return IntersectionResult{Kind: IntersectionPoint, Point: intersection}
}

func onSegment(p point.Point[float64], s segment.Segment[float64], epsilon float64) bool {
	a, b := s.Upper(), s.Lower()
	cross := b.Sub(a).CrossProduct(p.Sub(a))
	if !numeric.FloatEquals(cross, 0, epsilon) {
		return false
	}
	dot := p.Sub(a).DotProduct(b.Sub(a))
	if dot < 0 {
		return false
	}
	lenSq := b.Sub(a).DotProduct(b.Sub(a))
	return dot <= lenSq
}
