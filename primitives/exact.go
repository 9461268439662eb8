package primitives

import (
	"github.com/mikenye/polyclip/numeric"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// Exact is the [Provider] backing the module's "accurate" coordinate
// mode. It promotes every coordinate to a [numeric.Rational] before
// evaluating a predicate, so the result is never subject to
// floating-point rounding, and converts back to float64 only at the end.
// This is strictly slower than [Fast] but never misclassifies a
// near-degenerate configuration.
type Exact struct{}

// NewExact constructs an [Exact] provider.
func NewExact() *Exact {
	return &Exact{}
}

type ratPoint struct {
	x, y numeric.Rational
}

func toRatPoint(p point.Point[float64]) ratPoint {
	return ratPoint{x: numeric.RationalFromFloat64(p.X()), y: numeric.RationalFromFloat64(p.Y())}
}

func (p ratPoint) sub(q ratPoint) ratPoint {
	return ratPoint{x: p.x.Sub(q.x), y: p.y.Sub(q.y)}
}

func (p ratPoint) cross(q ratPoint) numeric.Rational {
	return p.x.Mul(q.y).Sub(p.y.Mul(q.x))
}

func (p ratPoint) dot(q ratPoint) numeric.Rational {
	return p.x.Mul(q.x).Add(p.y.Mul(q.y))
}

func (p ratPoint) asFloat() point.Point[float64] {
	return point.New(p.x.Float64(), p.y.Float64())
}

// Orientation implements [Provider] with exact rational arithmetic: the
// sign of the cross product is computed without any rounding, so the
// result is never ambiguous the way an epsilon comparison can be.
func (e *Exact) Orientation(p, q, r point.Point[float64]) types.Orientation {
	rp, rq, rr := toRatPoint(p), toRatPoint(q), toRatPoint(r)
	val := rq.sub(rp).cross(rr.sub(rp))

	switch val.Sign() {
	case 0:
		return types.OrientationCollinear
	case 1:
		return types.OrientationCounterClockwise
	default:
		return types.OrientationClockwise
	}
}

// Intersect implements [Provider] with exact rational arithmetic.
func (e *Exact) Intersect(s1, s2 segment.Segment[float64]) IntersectionResult {
	a, b := toRatPoint(s1.Upper()), toRatPoint(s1.Lower())
	c, d := toRatPoint(s2.Upper()), toRatPoint(s2.Lower())

	dir1 := b.sub(a)
	dir2 := d.sub(c)

	denominator := dir1.cross(dir2)

	if denominator.Sign() == 0 {
		ac := c.sub(a)
		if ac.cross(dir1).Sign() != 0 {
			return IntersectionResult{Kind: IntersectionNone}
		}

		lenSq := dir1.dot(dir1)
		if lenSq.Sign() == 0 {
			if onSegmentExact(a, s2) {
				return IntersectionResult{Kind: IntersectionPoint, Point: a.asFloat()}
			}
			return IntersectionResult{Kind: IntersectionNone}
		}

		tStart := c.sub(a).dot(dir1)
		tEnd := d.sub(a).dot(dir1)
		if tStart.Cmp(tEnd) > 0 {
			tStart, tEnd = tEnd, tStart
		}

		zero := numeric.RationalFromFloat64(0)
		one := lenSq
		overlapStart := tStart
		if overlapStart.Cmp(zero) < 0 {
			overlapStart = zero
		}
		overlapEnd := tEnd
		if overlapEnd.Cmp(one) > 0 {
			overlapEnd = one
		}
		if overlapStart.Cmp(overlapEnd) > 0 {
			return IntersectionResult{Kind: IntersectionNone}
		}

		p1 := pointAtParam(a, dir1, overlapStart, lenSq)
		p2 := pointAtParam(a, dir1, overlapEnd, lenSq)

		fp1, fp2 := p1.asFloat(), p2.asFloat()
		if fp1.Eq(fp2) {
			return IntersectionResult{Kind: IntersectionPoint, Point: fp1}
		}
		return IntersectionResult{Kind: IntersectionOverlap, Overlap: segment.New(fp1, fp2)}
	}

	ac := c.sub(a)
	t := ac.cross(dir2)
	u := ac.cross(dir1)

	zero := numeric.RationalFromFloat64(0)
	den := denominator
	if den.Sign() < 0 {
		t, u, den = zero.Sub(t), zero.Sub(u), zero.Sub(den)
	}
	if t.Sign() < 0 || t.Cmp(den) > 0 || u.Sign() < 0 || u.Cmp(den) > 0 {
		return IntersectionResult{Kind: IntersectionNone}
	}

	intersection := pointAtParam(a, dir1, t, den)
	return IntersectionResult{Kind: IntersectionPoint, Point: intersection.asFloat()}
}

// pointAtParam returns a + (numerator/denominator) * dir, computed in
// exact rationals throughout.
func pointAtParam(a, dir ratPoint, numerator, denominator numeric.Rational) ratPoint {
	frac := numerator.Quo(denominator)
	return ratPoint{x: a.x.Add(dir.x.Mul(frac)), y: a.y.Add(dir.y.Mul(frac))}
}

func onSegmentExact(p ratPoint, s segment.Segment[float64]) bool {
	a, b := toRatPoint(s.Upper()), toRatPoint(s.Lower())
	dir := b.sub(a)
	if dir.cross(p.sub(a)).Sign() != 0 {
		return false
	}
	dot := p.sub(a).dot(dir)
	if dot.Sign() < 0 {
		return false
	}
	lenSq := dir.dot(dir)
	return dot.Cmp(lenSq) <= 0
}
