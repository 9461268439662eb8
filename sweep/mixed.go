package sweep

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
)

// Classify partitions every result group traced from log into isolated
// points, dangling segments, and closed polygon boundaries, per
// SPEC_FULL.md's mixed-output rules:
//
//   - a group that collapses to a single vertex (an in-result edge whose
//     two endpoints coincide) is an isolated point;
//   - a group of exactly two distinct vertices that never closes back on
//     itself is a dangling segment;
//   - everything else that closes into at least three distinct vertices
//     is a polygon contour, exactly as [BuildContours] reports it.
func Classify(log *Log) ([]point.Point[float64], []segment.Segment[float64], []Contour) {
	groups := walkResultGroups(log)

	var points []point.Point[float64]
	var segs []segment.Segment[float64]

	for _, g := range groups {
		switch len(g.points) {
		case 1:
			points = append(points, g.points[0])
		case 2:
			segs = append(segs, segment.New(g.points[0], g.points[1]))
		}
	}

	return points, segs, contoursFromGroups(groups)
}

// ResultEdges returns every edge that survived into the result as a raw
// segment, without any attempt at contour reconstruction. This is the
// multisegment adapter's view of a Boolean operation's result: a set of
// segments need not close into anything.
func ResultEdges(log *Log) []segment.Segment[float64] {
	var out []segment.Segment[float64]
	for _, e := range log.events {
		if e.isLeft && e.inResult {
			out = append(out, edgeSegment(e))
		}
	}
	return out
}
