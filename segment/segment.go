// Package segment defines the Segment type used throughout this module to
// represent a single straight edge between two endpoints, along with the
// low-level geometric queries the sweep engine's primitive providers build
// on.
package segment

import (
	"fmt"

	"github.com/mikenye/polyclip/numeric"
	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
)

// Segment represents a finite straight segment between two endpoints.
//
// A Segment is unordered as a set of points but stores its endpoints in a
// canonical order (upper first, by descending y then ascending x) so that
// two segments built from the same pair of points in either order compare
// equal and hash identically.
type Segment[T types.SignedNumber] struct {
	upper point.Point[T]
	lower point.Point[T]
}

// New constructs a Segment from two endpoints, reordering them into the
// package's canonical upper/lower order.
func New[T types.SignedNumber](a, b point.Point[T]) Segment[T] {
	if b.Y() > a.Y() || (b.Y() == a.Y() && b.X() < a.X()) {
		a, b = b, a
	}
	return Segment[T]{upper: a, lower: b}
}

// Upper returns the segment's canonical upper endpoint.
func (s Segment[T]) Upper() point.Point[T] { return s.upper }

// Lower returns the segment's canonical lower endpoint.
func (s Segment[T]) Lower() point.Point[T] { return s.lower }

// IsDegenerate reports whether the segment's two endpoints coincide, i.e.
// it has collapsed to a single point.
func (s Segment[T]) IsDegenerate() bool {
	return s.upper.Eq(s.lower)
}

// AsFloat64 converts s's endpoints to float64, the coordinate kind the
// sweep engine operates on internally.
func (s Segment[T]) AsFloat64() Segment[float64] {
	return Segment[float64]{upper: s.upper.AsFloat64(), lower: s.lower.AsFloat64()}
}

// Eq reports whether s and other have the same endpoints, optionally
// within an epsilon tolerance.
//
//   - By default, performs an exact equality check.
//   - With [options.WithEpsilon], coordinates within the given tolerance
//     are considered equal.
func (s Segment[T]) Eq(other Segment[T], opts ...options.GeometryOptionsFunc) bool {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if o.Epsilon == 0 {
		return s.upper.Eq(other.upper) && s.lower.Eq(other.lower)
	}
	fs, fo := s.AsFloat64(), other.AsFloat64()
	return numeric.FloatEquals(fs.upper.X(), fo.upper.X(), o.Epsilon) &&
		numeric.FloatEquals(fs.upper.Y(), fo.upper.Y(), o.Epsilon) &&
		numeric.FloatEquals(fs.lower.X(), fo.lower.X(), o.Epsilon) &&
		numeric.FloatEquals(fs.lower.Y(), fo.lower.Y(), o.Epsilon)
}

// String implements [fmt.Stringer].
func (s Segment[T]) String() string {
	return fmt.Sprintf("%s-%s", s.upper, s.lower)
}
