package types

import "fmt"

// Orientation represents the relative orientation of three points in a
// two-dimensional plane: whether they are collinear, or form a clockwise
// or counterclockwise turn. It is the basic predicate the sweep engine's
// pluggable primitive providers are built around.
type Orientation uint8

// Valid values for Orientation.
const (
	// OrientationCollinear indicates that the points lie on a single
	// straight line.
	OrientationCollinear Orientation = iota

	// OrientationClockwise indicates that the points are arranged in a
	// clockwise turn.
	OrientationClockwise

	// OrientationCounterClockwise indicates that the points are arranged
	// in a counterclockwise turn.
	OrientationCounterClockwise
)

// String converts an [Orientation] constant into its string representation.
//
// Panics:
//   - If the [Orientation] value is not one of the defined constants.
func (o Orientation) String() string {
	switch o {
	case OrientationCollinear:
		return "OrientationCollinear"
	case OrientationClockwise:
		return "OrientationClockwise"
	case OrientationCounterClockwise:
		return "OrientationCounterClockwise"
	default:
		panic(fmt.Errorf("unsupported Orientation: %d", o))
	}
}
