package primitives

import "github.com/mikenye/polyclip/point"

// BoundingBox is an axis-aligned rectangle, used by the engine façade's
// trivial-rejection shortcut: two operands whose bounding boxes are
// disjoint can never intersect, so the sweep engine need not run at all
// for an intersection-style operation over them.
//
// Adapted from the teacher's Rectangle relationship queries, trimmed to
// the one predicate the façade needs.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Of computes the bounding box enclosing every given point. Of with no
// points returns the zero value.
func Of(points ...point.Point[float64]) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		MinX: points[0].X(), MaxX: points[0].X(),
		MinY: points[0].Y(), MaxY: points[0].Y(),
	}
	for _, p := range points[1:] {
		bb.MinX = min(bb.MinX, p.X())
		bb.MaxX = max(bb.MaxX, p.X())
		bb.MinY = min(bb.MinY, p.Y())
		bb.MaxY = max(bb.MaxY, p.Y())
	}
	return bb
}

// Union returns the smallest bounding box enclosing both a and b.
func (a BoundingBox) Union(b BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: min(a.MinX, b.MinX),
		MinY: min(a.MinY, b.MinY),
		MaxX: max(a.MaxX, b.MaxX),
		MaxY: max(a.MaxY, b.MaxY),
	}
}

// Disjoint reports whether a and b share no point at all, including
// their boundaries.
func (a BoundingBox) Disjoint(b BoundingBox) bool {
	return a.MaxX < b.MinX || b.MaxX < a.MinX || a.MaxY < b.MinY || b.MaxY < a.MinY
}
