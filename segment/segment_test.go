package segment

import (
	"testing"

	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestNew_CanonicalOrder(t *testing.T) {
	a := point.New(0.0, 0.0)
	b := point.New(4.0, 5.0)

	s1 := New(a, b)
	s2 := New(b, a)

	assert.Equal(t, s1.Upper(), s2.Upper())
	assert.Equal(t, s1.Lower(), s2.Lower())
	assert.Equal(t, b, s1.Upper())
	assert.Equal(t, a, s1.Lower())
}

func TestSegment_IsDegenerate(t *testing.T) {
	p := point.New(1.0, 1.0)
	assert.True(t, New(p, p).IsDegenerate())
	assert.False(t, New(p, point.New(2.0, 2.0)).IsDegenerate())
}

func TestSegment_Eq(t *testing.T) {
	s1 := New(point.New(1.0, 1.0), point.New(4.0, 5.0))
	s2 := New(point.New(1.0000001, 1.0000001), point.New(4.0000001, 5.0000001))

	assert.False(t, s1.Eq(s2))
	assert.True(t, s1.Eq(s2, options.WithEpsilon(1e-6)))
}

func TestSegment_String(t *testing.T) {
	s := New(point.New(1, 1), point.New(4, 5))
	assert.Equal(t, "(4,5)-(1,1)", s.String())
}
