// Package vec3 provides three-component vectors and points over any
// scalar.Number.
//
// T is a displacement and Point is a position.  The free functions follow
// the XxYY naming of the operand kinds (V vector, P point, S scalar); the
// methods forward to them so that T and Point satisfy the constraints in the
// ray and intersect packages.
package vec3

import (
	"math"

	"row-major/tricast/vmath/scalar"
)

type T[S scalar.Number] [3]S

type Point[S scalar.Number] [3]S

func (v T[S]) X() S { return v[0] }
func (v T[S]) Y() S { return v[1] }
func (v T[S]) Z() S { return v[2] }

func (p Point[S]) X() S { return p[0] }
func (p Point[S]) Y() S { return p[1] }
func (p Point[S]) Z() S { return p[2] }

// Norm is computed in float64 regardless of S.
func (v T[S]) Norm() float64 {
	return math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2]))
}

// Normalize divides by Norm.  The zero vector yields NaN components for
// float scalars; nothing is guarded.  Only meaningful for float S.
func Normalize[S scalar.Number](v T[S]) T[S] {
	l := v.Norm()
	return T[S]{
		S(float64(v[0]) / l),
		S(float64(v[1]) / l),
		S(float64(v[2]) / l),
	}
}

func AddVV[S scalar.Number](a, b T[S]) T[S] {
	return T[S]{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

func SubVV[S scalar.Number](a, b T[S]) T[S] {
	return T[S]{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

func AddPV[S scalar.Number](a Point[S], b T[S]) Point[S] {
	return Point[S]{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

// SubPP returns the displacement from b to a.
func SubPP[S scalar.Number](a, b Point[S]) T[S] {
	return T[S]{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

func MulVS[S scalar.Number](a T[S], b S) T[S] {
	return T[S]{
		a[0] * b,
		a[1] * b,
		a[2] * b,
	}
}

func IProd[S scalar.Number](a, b T[S]) S {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func CProd[S scalar.Number](a, b T[S]) T[S] {
	return T[S]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v T[S]) Add(o T[S]) T[S]   { return AddVV(v, o) }
func (v T[S]) Sub(o T[S]) T[S]   { return SubVV(v, o) }
func (v T[S]) Mul(s S) T[S]      { return MulVS(v, s) }
func (v T[S]) Dot(o T[S]) S      { return IProd(v, o) }
func (v T[S]) Cross(o T[S]) T[S] { return CProd(v, o) }
func (v T[S]) Normalize() T[S]   { return Normalize(v) }

func (p Point[S]) Add(v T[S]) Point[S] { return AddPV(p, v) }
func (p Point[S]) Sub(o Point[S]) T[S] { return SubPP(p, o) }

// ApproxEqual compares componentwise with scalar.ApproxEq.
func ApproxEqual[S scalar.Float](a, b Point[S]) bool {
	return scalar.ApproxEq(a[0], b[0]) && scalar.ApproxEq(a[1], b[1]) && scalar.ApproxEq(a[2], b[2])
}
