package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRational_RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.5, 3.25, -7.125} {
		r := RationalFromFloat64(f)
		assert.Equal(t, f, r.Float64())
	}
}

func TestRational_Arithmetic(t *testing.T) {
	a := RationalFromFloat64(1.5)
	b := RationalFromFloat64(2.0)

	assert.Equal(t, 3.5, a.Add(b).Float64())
	assert.Equal(t, -0.5, a.Sub(b).Float64())
	assert.Equal(t, 3.0, a.Mul(b).Float64())
}

func TestRational_SignAndCmp(t *testing.T) {
	neg := RationalFromFloat64(-1)
	zero := RationalFromFloat64(0)
	pos := RationalFromFloat64(1)

	assert.Equal(t, -1, neg.Sign())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, 1, pos.Sign())

	assert.Equal(t, -1, neg.Cmp(pos))
	assert.Equal(t, 1, pos.Cmp(neg))
	assert.Equal(t, 0, pos.Cmp(pos))
}
