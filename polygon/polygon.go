// Package polygon is the engine façade (C9): bounding-box trivial cases,
// rational promotion, and dispatch into the sweep package. Everything in
// this package is a thin adapter; the sweep engine itself lives in
// package sweep.
package polygon

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
)

// Contour is a single closed boundary: an ordered, implicitly-closed
// sequence of vertices.
type Contour[T types.SignedNumber] struct {
	Points []point.Point[T]
}

// Polygon is an outer contour plus zero or more hole contours nested
// directly inside it.
type Polygon[T types.SignedNumber] struct {
	Outer Contour[T]
	Holes []Contour[T]
}

// MultiPolygon is an ordered collection of polygons, the top-level
// result shape of a Boolean operation between two multipolygons.
type MultiPolygon[T types.SignedNumber] []Polygon[T]
