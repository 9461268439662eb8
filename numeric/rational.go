package numeric

import "math/big"

// Rational is an exact rational number, used by the accurate coordinate
// backend to eliminate epsilon-driven misclassification in the sweep
// engine's predicates. There is no general-purpose rational-geometry
// library in this module's ecosystem, so [math/big.Rat] is used directly;
// Rational exists only to adapt it to the float64 boundary the rest of
// the engine works in.
type Rational struct {
	v *big.Rat
}

// RationalFromFloat64 promotes an exact-representable float64 to a
// Rational. Since float64 is itself a binary fraction, this conversion is
// always exact; no information is lost.
func RationalFromFloat64(f float64) Rational {
	return Rational{v: new(big.Rat).SetFloat64(f)}
}

// Float64 converts r back to the nearest representable float64.
func (r Rational) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.v, s.v)}
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.v, s.v)}
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.v, s.v)}
}

// Quo returns r / s exactly. Panics if s is zero, matching big.Rat's own
// behavior.
func (r Rational) Quo(s Rational) Rational {
	return Rational{v: new(big.Rat).Quo(r.v, s.v)}
}

// Sign returns -1, 0, or 1 depending on whether r is negative, zero, or
// positive.
func (r Rational) Sign() int {
	return r.v.Sign()
}

// Cmp compares r and s, returning -1, 0, or 1 as r is less than, equal
// to, or greater than s.
func (r Rational) Cmp(s Rational) int {
	return r.v.Cmp(s.v)
}
