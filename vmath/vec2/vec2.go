package vec2

import (
	"math"

	"row-major/tricast/vmath/scalar"
)

type T[S scalar.Number] [2]S

type Point[S scalar.Number] [2]S

func (v T[S]) X() S { return v[0] }
func (v T[S]) Y() S { return v[1] }

func (p Point[S]) X() S { return p[0] }
func (p Point[S]) Y() S { return p[1] }

func (v T[S]) Norm() float64 {
	return math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]))
}

func (v T[S]) Add(o T[S]) T[S] { return T[S]{v[0] + o[0], v[1] + o[1]} }
func (v T[S]) Sub(o T[S]) T[S] { return T[S]{v[0] - o[0], v[1] - o[1]} }
func (v T[S]) Mul(s S) T[S]    { return T[S]{v[0] * s, v[1] * s} }
func (v T[S]) Dot(o T[S]) S    { return v[0]*o[0] + v[1]*o[1] }

func (v T[S]) Normalize() T[S] {
	l := v.Norm()
	return T[S]{S(float64(v[0]) / l), S(float64(v[1]) / l)}
}

func (p Point[S]) Add(v T[S]) Point[S] { return Point[S]{p[0] + v[0], p[1] + v[1]} }
func (p Point[S]) Sub(o Point[S]) T[S] { return T[S]{p[0] - o[0], p[1] - o[1]} }
