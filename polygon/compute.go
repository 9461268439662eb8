package polygon

import (
	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/primitives"
	"github.com/mikenye/polyclip/segment"
	"github.com/mikenye/polyclip/sweep"
	"github.com/mikenye/polyclip/types"
)

// Compute runs a Boolean set operation between two multipolygons,
// implementing spec.md §6: empty-operand and bounding-box-disjoint
// shortcuts before ever engaging the sweep engine, then dispatch into
// [sweep.Run] and [sweep.BuildContours] for everything else.
func Compute[T types.SignedNumber](op types.Operation, left, right MultiPolygon[T], opts ...options.GeometryOptionsFunc) (MultiPolygon[T], error) {
	if shortcut, ok := emptyOperandShortcut(op, left, right); ok {
		return shortcut, nil
	}

	leftPts, rightPts := left.points(), right.points()
	if len(leftPts) > 0 && len(rightPts) > 0 {
		lb := primitives.Of(leftPts...)
		rb := primitives.Of(rightPts...)
		if lb.Disjoint(rb) {
			return disjointShortcut(op, left, right), nil
		}
	}

	provider := selectProvider(options.ApplyGeometryOptions(options.GeometryOptions{Accurate: true}, opts...))

	log, err := sweep.Run(left.edges(), right.edges(), op, provider)
	if err != nil {
		return nil, err
	}

	return regroup[T](sweep.BuildContours(log)), nil
}

// selectProvider picks the Fast or Exact primitives backend according
// to cfg.Accurate, the single decision point spec.md §6 calls for.
func selectProvider(cfg options.GeometryOptions) primitives.Provider {
	if cfg.Accurate {
		return primitives.NewExact()
	}
	return primitives.NewFast(cfg.Epsilon)
}

// emptyOperandShortcut implements the empty-operand rules of spec.md §6.
func emptyOperandShortcut[T types.SignedNumber](op types.Operation, left, right MultiPolygon[T]) (MultiPolygon[T], bool) {
	leftEmpty, rightEmpty := len(left) == 0, len(right) == 0
	if !leftEmpty && !rightEmpty {
		return nil, false
	}

	switch op {
	case types.OperationIntersection:
		return nil, true
	case types.OperationDifference:
		if leftEmpty {
			return nil, true
		}
		return left, true
	case types.OperationUnion, types.OperationXor:
		if leftEmpty {
			return right, true
		}
		return left, true
	default:
		return nil, true
	}
}

// disjointShortcut implements "bounding-box disjoint shortcut: same
// results as the empty rules" from spec.md §6, applied when both
// operands are non-empty but their bounding boxes never overlap.
func disjointShortcut[T types.SignedNumber](op types.Operation, left, right MultiPolygon[T]) MultiPolygon[T] {
	switch op {
	case types.OperationIntersection:
		return nil
	case types.OperationDifference:
		return left
	default: // union, xor
		out := make(MultiPolygon[T], 0, len(left)+len(right))
		out = append(out, left...)
		out = append(out, right...)
		return out
	}
}

// regroup reassembles the sweep engine's flat contour list into
// Polygon[T] values, using each hole's ParentIndex to find the outer
// it nests inside.
func regroup[T types.SignedNumber](contours []sweep.Contour) MultiPolygon[T] {
	outerIndex := make(map[int]int, len(contours))
	var out MultiPolygon[T]

	for i, c := range contours {
		if c.Hole {
			continue
		}
		outerIndex[i] = len(out)
		out = append(out, Polygon[T]{Outer: contourFromFloat[T](c.Points)})
	}

	for i, c := range contours {
		if !c.Hole {
			continue
		}
		owner, ok := outerIndex[c.ParentIndex]
		if !ok {
			continue
		}
		out[owner].Holes = append(out[owner].Holes, contourFromFloat[T](c.Points))
	}

	return out
}

// ComputeSegments runs a Boolean set operation over two collections of
// line segments (the multisegment adapter spec.md §6 calls for),
// returning the result as raw edges rather than reconstructed contours,
// since a set of segments does not, in general, close into polygons.
func ComputeSegments(op types.Operation, left, right []segment.Segment[float64], opts ...options.GeometryOptionsFunc) ([]segment.Segment[float64], error) {
	provider := selectProvider(options.ApplyGeometryOptions(options.GeometryOptions{Accurate: true}, opts...))

	log, err := sweep.Run(left, right, op, provider)
	if err != nil {
		return nil, err
	}

	return sweep.ResultEdges(log), nil
}

// MixedResult is the output of [ComputeMixed]: the "complete
// intersection" classification of a Boolean operation's result into
// isolated points, dangling segments, and closed polygon boundaries,
// per the rules in SPEC_FULL.md's mixed-output resolution.
type MixedResult[T types.SignedNumber] struct {
	Points   []point.Point[T]
	Segments []segment.Segment[T]
	Polygons MultiPolygon[T]
}

// ComputeMixed runs a Boolean set operation and classifies every
// surviving piece of the result into a point, a segment, or a polygon
// component, rather than assuming the result is always a clean set of
// closed contours.
func ComputeMixed[T types.SignedNumber](op types.Operation, left, right MultiPolygon[T], opts ...options.GeometryOptionsFunc) (MixedResult[T], error) {
	provider := selectProvider(options.ApplyGeometryOptions(options.GeometryOptions{Accurate: true}, opts...))

	log, err := sweep.Run(left.edges(), right.edges(), op, provider)
	if err != nil {
		return MixedResult[T]{}, err
	}

	points, segs, contours := sweep.Classify(log)

	var result MixedResult[T]
	for _, p := range points {
		result.Points = append(result.Points, point.New(T(p.X()), T(p.Y())))
	}
	for _, s := range segs {
		result.Segments = append(result.Segments, segment.New(point.New(T(s.Upper().X()), T(s.Upper().Y())), point.New(T(s.Lower().X()), T(s.Lower().Y()))))
	}
	result.Polygons = regroup[T](contours)

	return result, nil
}
