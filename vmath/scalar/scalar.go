// Package scalar holds the numeric constraints shared by the vmath, ray and
// intersect packages.
package scalar

import "golang.org/x/exp/constraints"

// Number is any type with ordered-field arithmetic.  Rays and triangles are
// parameterized over it.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the narrower capability needed for normalization and
// intersection.
type Float interface {
	constraints.Float
}

// DefaultEpsilon is the tolerance ApproxEq uses for every float type.
const DefaultEpsilon = 1.0e-5

// Epsilon is DefaultEpsilon converted to S.
func Epsilon[S Float]() S {
	return S(DefaultEpsilon)
}

// Abs is the magnitude of a.  For signed integers the minimum value overflows.
func Abs[S Number](a S) S {
	if a < 0 {
		return -a
	}
	return a
}

// ApproxEq reports whether a and b differ by strictly less than
// DefaultEpsilon.
func ApproxEq[S Float](a, b S) bool {
	return ApproxEqEps(a, b, Epsilon[S]())
}

// ApproxEqEps reports whether |a-b| < eps.  The comparison is strict, so a
// difference of exactly eps is not equal.
func ApproxEqEps[S Float](a, b, eps S) bool {
	return Abs(a-b) < eps
}
