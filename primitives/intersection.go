package primitives

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
)

// IntersectionKind classifies the result of intersecting two segments.
type IntersectionKind uint8

// Valid values for IntersectionKind.
const (
	// IntersectionNone indicates the segments do not intersect.
	IntersectionNone IntersectionKind = iota

	// IntersectionPoint indicates the segments cross, or touch, at a
	// single point.
	IntersectionPoint

	// IntersectionOverlap indicates the segments are collinear and share
	// a sub-segment.
	IntersectionOverlap
)

// IntersectionResult reports how two segments relate.
type IntersectionResult struct {
	Kind    IntersectionKind
	Point   point.Point[float64]
	Overlap segment.Segment[float64]
}
