package sweep

import (
	"fmt"

	"github.com/mikenye/polyclip/point"
)

// MalformedInputError reports that an operand contains two edges that
// exactly overlap and belong to the same operand, which would make
// winding computation ambiguous (the overlap could not have arisen from
// a simple polygon's own boundary).
type MalformedInputError struct {
	A, B point.Point[float64]
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("sweep: malformed input: coincident same-operand edges through %s and %s", e.A, e.B)
}

// NumericInconsistencyError reports that the primitive provider returned
// an intersection result the sweep cannot interpret (an unrecognised
// intersection kind). It is the only case that returns it: event order
// and status membership are not checked during the run.
type NumericInconsistencyError struct {
	Detail string
}

func (e *NumericInconsistencyError) Error() string {
	return fmt.Sprintf("sweep: numeric inconsistency: %s", e.Detail)
}

// EmptyInputError reports that an operation was given zero edges for
// both operands.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "sweep: empty input"
}
