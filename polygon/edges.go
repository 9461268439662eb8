package polygon

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/types"
)

// edges decomposes a contour into its boundary edges as float64
// segments, the coordinate kind the sweep engine operates on.
func (c Contour[T]) edges() []segment.Segment[float64] {
	n := len(c.Points)
	if n < 2 {
		return nil
	}
	out := make([]segment.Segment[float64], 0, n)
	for i := 0; i < n; i++ {
		a := c.Points[i].AsFloat64()
		b := c.Points[(i+1)%n].AsFloat64()
		out = append(out, segment.New(a, b))
	}
	return out
}

// edges decomposes every contour of the polygon (outer and holes) into
// boundary edges.
func (p Polygon[T]) edges() []segment.Segment[float64] {
	out := p.Outer.edges()
	for _, h := range p.Holes {
		out = append(out, h.edges()...)
	}
	return out
}

// edges decomposes every polygon in the multipolygon into boundary
// edges.
func (m MultiPolygon[T]) edges() []segment.Segment[float64] {
	var out []segment.Segment[float64]
	for _, p := range m {
		out = append(out, p.edges()...)
	}
	return out
}

// points returns every vertex of the multipolygon, converted to
// float64, for use by the bounding-box shortcut.
func (m MultiPolygon[T]) points() []point.Point[float64] {
	var out []point.Point[float64]
	for _, p := range m {
		for _, pt := range p.Outer.Points {
			out = append(out, pt.AsFloat64())
		}
		for _, h := range p.Holes {
			for _, pt := range h.Points {
				out = append(out, pt.AsFloat64())
			}
		}
	}
	return out
}

func contourFromFloat[T types.SignedNumber](pts []point.Point[float64]) Contour[T] {
	out := make([]point.Point[T], len(pts))
	for i, p := range pts {
		out[i] = point.New(T(p.X()), T(p.Y()))
	}
	return Contour[T]{Points: out}
}
