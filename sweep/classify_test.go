package sweep

import (
	"testing"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
)

func newLeftEvent(a *arena, x1, y1, x2, y2 float64, operand types.Operand) *event {
	return a.newEdge(point.New(x1, y1), point.New(x2, y2), operand)
}

func TestClassify_NoBelow(t *testing.T) {
	a := newArena()
	e := newLeftEvent(a, 0, 0, 1, 1, types.OperandSubject)

	classify(e, nil, types.OperationUnion)

	assert.False(t, e.inOut)
	assert.True(t, e.otherInOut)
	assert.Nil(t, e.belowInResult)
}

func TestClassify_SameOperandBelow(t *testing.T) {
	a := newArena()
	below := newLeftEvent(a, 0, 0, 1, 1, types.OperandSubject)
	below.inOut = true
	below.otherInOut = false

	e := newLeftEvent(a, 0, 2, 1, 3, types.OperandSubject)
	classify(e, below, types.OperationUnion)

	assert.Equal(t, !below.inOut, e.inOut)
	assert.Equal(t, below.otherInOut, e.otherInOut)
}

func TestClassify_DifferentOperandBelow(t *testing.T) {
	a := newArena()
	below := newLeftEvent(a, 0, 0, 1, 2, types.OperandSubject) // not vertical
	below.inOut = true
	below.otherInOut = false

	e := newLeftEvent(a, 0, 2, 1, 3, types.OperandClip)
	classify(e, below, types.OperationUnion)

	assert.Equal(t, !below.otherInOut, e.inOut)
	assert.Equal(t, below.inOut, e.otherInOut)
}

func TestResultMembership_Table(t *testing.T) {
	a := newArena()

	tests := []struct {
		name       string
		edgeKind   types.EdgeKind
		op         types.Operation
		operand    types.Operand
		otherInOut bool
		expected   bool
	}{
		{"normal intersection in", types.EdgeNormal, types.OperationIntersection, types.OperandSubject, false, true},
		{"normal intersection out", types.EdgeNormal, types.OperationIntersection, types.OperandSubject, true, false},
		{"normal union", types.EdgeNormal, types.OperationUnion, types.OperandSubject, true, true},
		{"normal xor always true", types.EdgeNormal, types.OperationXor, types.OperandSubject, false, true},
		{"same transition intersection", types.EdgeSameTransition, types.OperationIntersection, types.OperandSubject, false, true},
		{"same transition xor", types.EdgeSameTransition, types.OperationXor, types.OperandSubject, false, false},
		{"different transition difference", types.EdgeDifferentTransition, types.OperationDifference, types.OperandSubject, false, true},
		{"different transition union", types.EdgeDifferentTransition, types.OperationUnion, types.OperandSubject, false, false},
		{"non contributing always false", types.EdgeNonContributing, types.OperationUnion, types.OperandSubject, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newLeftEvent(a, 0, 0, 1, 1, tc.operand)
			e.edgeKind = tc.edgeKind
			e.otherInOut = tc.otherInOut
			assert.Equal(t, tc.expected, resultMembership(e, tc.op))
		})
	}
}
