package sweep

import "github.com/mikenye/polyclip/types"

// classify sets e's in_out/other_in_out/below_in_result/in_result fields
// from its predecessor below in the status, implementing §4.6 of the
// winding and result classifier. e must already have been inserted into
// the status.
//
// Grounded directly on the specification; no teacher analogue exists,
// since the teacher's own Boolean-operation code (polytree.go) uses an
// entry/exit ray-marking scheme rather than Martínez–Rueda winding
// propagation.
func classify(e *event, below *event, op types.Operation) {
	switch {
	case below == nil:
		e.inOut = false
		e.otherInOut = true
	case below.operand == e.operand:
		e.inOut = !below.inOut
		e.otherInOut = below.otherInOut
	default:
		e.inOut = !below.otherInOut
		if isVertical(below) {
			e.otherInOut = !below.inOut
		} else {
			e.otherInOut = below.inOut
		}
	}

	if below != nil && below.inResult && !isVertical(below) {
		e.belowInResult = below
	} else if below != nil {
		e.belowInResult = below.belowInResult
	} else {
		e.belowInResult = nil
	}

	e.inResult = resultMembership(e, op)
}

func isVertical(e *event) bool {
	return e.left().point.X() == e.right().point.X()
}

// resultMembership implements the edge_kind × operation × from_subject ×
// other_in_out truth table of §4.6.
func resultMembership(e *event, op types.Operation) bool {
	switch e.edgeKind {
	case types.EdgeNonContributing:
		return false

	case types.EdgeSameTransition:
		return op == types.OperationIntersection || op == types.OperationUnion

	case types.EdgeDifferentTransition:
		return op == types.OperationDifference

	default: // types.EdgeNormal
		switch op {
		case types.OperationIntersection:
			return !e.otherInOut
		case types.OperationUnion:
			return e.otherInOut
		case types.OperationDifference:
			return (e.operand == types.OperandSubject) == e.otherInOut
		case types.OperationXor:
			return true
		default:
			return false
		}
	}
}
