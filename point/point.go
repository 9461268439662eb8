// Package point defines the Point type shared by every package in this
// module: the sweep engine, its primitive providers, and the polygon
// façade all operate on points of a single generic shape.
package point

import (
	"fmt"
	"math"

	"github.com/mikenye/polyclip/types"
)

// Point represents a point in two-dimensional space with x and y
// coordinates of a generic numeric type T.
//
// Type Parameter:
//   - T: The numeric type for the coordinates, constrained to signed
//     number types by [types.SignedNumber].
type Point[T types.SignedNumber] struct {
	x T
	y T
}

// New constructs a [Point] from its x and y coordinates.
func New[T types.SignedNumber](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point[T]) X() T { return p.x }

// Y returns the point's y-coordinate.
func (p Point[T]) Y() T { return p.y }

// Add returns a new Point representing the sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns a new Point representing p minus q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{x: p.x - q.x, y: p.y - q.y}
}

// CrossProduct returns the 2D cross product (the z-component of the 3D
// cross product) of the vectors from the origin to p and to q.
func (p Point[T]) CrossProduct(q Point[T]) T {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of the vectors from the origin to p
// and to q.
func (p Point[T]) DotProduct(q Point[T]) T {
	return p.x*q.x + p.y*q.y
}

// Eq reports whether p and q have identical coordinates.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.x == q.x && p.y == q.y
}

// AsFloat64 converts p's coordinates to float64, the coordinate kind the
// sweep engine operates on internally regardless of the public type
// parameter.
func (p Point[T]) AsFloat64() Point[float64] {
	return Point[float64]{x: float64(p.x), y: float64(p.y)}
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point[T]) DistanceToPoint(q Point[T]) float64 {
	fp, fq := p.AsFloat64(), q.AsFloat64()
	dx, dy := fp.x-fq.x, fp.y-fq.y
	return math.Sqrt(dx*dx + dy*dy)
}

// String implements [fmt.Stringer].
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// Less reports whether p sorts strictly before q under the module's
// canonical point order: ascending x, then ascending y. This is the
// ordering the event queue and the choice of each edge's left endpoint
// build on.
func Less[T types.SignedNumber](p, q Point[T]) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}
