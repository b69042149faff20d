// Package ray implements parametric rays over any point/vector pair that
// satisfies Point and Vector.
package ray

import (
	"math"

	"row-major/tricast/vmath/scalar"
	"row-major/tricast/vmath/vec2"
	"row-major/tricast/vmath/vec3"
)

// Vector is the displacement half of the vector algebra a Ray needs.
type Vector[S scalar.Number, V any] interface {
	Add(V) V
	Sub(V) V
	Mul(S) V
	Dot(V) S
}

// Point is the position half: point + vector is a point, point - point is a
// vector.  Libraries that don't distinguish the two (mgl32.Vec3) satisfy
// both with P == V.
type Point[S scalar.Number, P, V any] interface {
	Add(V) P
	Sub(P) V
}

type Normalizer[V any] interface {
	Normalize() V
}

// Ray is the line Origin + t*Direction.  Direction need not be unit length,
// and may be zero.
type Ray[S scalar.Number, P Point[S, P, V], V Vector[S, V]] struct {
	Origin    P `yaml:"origin"`
	Direction V `yaml:"direction"`
}

type Ray2[S scalar.Number] = Ray[S, vec2.Point[S], vec2.T[S]]
type Ray3[S scalar.Number] = Ray[S, vec3.Point[S], vec3.T[S]]

func New[S scalar.Number, P Point[S, P, V], V Vector[S, V]](origin P, direction V) Ray[S, P, V] {
	return Ray[S, P, V]{
		Origin:    origin,
		Direction: direction,
	}
}

// FromPoints returns the ray starting at p1 whose direction is the full
// displacement p2 - p1, so that At(1) == p2.
func FromPoints[S scalar.Number, P Point[S, P, V], V Vector[S, V]](p1, p2 P) Ray[S, P, V] {
	return New[S, P, V](p1, p2.Sub(p1))
}

func New3[S scalar.Number](origin vec3.Point[S], direction vec3.T[S]) Ray3[S] {
	return New[S](origin, direction)
}

func FromPoints3[S scalar.Number](p1, p2 vec3.Point[S]) Ray3[S] {
	return FromPoints[S, vec3.Point[S], vec3.T[S]](p1, p2)
}

func New2[S scalar.Number](origin vec2.Point[S], direction vec2.T[S]) Ray2[S] {
	return New[S](origin, direction)
}

func FromPoints2[S scalar.Number](p1, p2 vec2.Point[S]) Ray2[S] {
	return FromPoints[S, vec2.Point[S], vec2.T[S]](p1, p2)
}

// At evaluates the ray at t.  Negative t lies behind the origin.
func (r Ray[S, P, V]) At(t S) P {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Normalize returns a ray with the same origin and a unit direction.  A zero
// direction is passed to the vector's Normalize unchecked.
func Normalize[S scalar.Float, P Point[S, P, V], V interface {
	Vector[S, V]
	Normalizer[V]
}](r Ray[S, P, V]) Ray[S, P, V] {
	return Ray[S, P, V]{
		Origin:    r.Origin,
		Direction: r.Direction.Normalize(),
	}
}

// Span is a closed interval of ray parameters.
type Span[S scalar.Number] struct {
	Lo S `yaml:"lo"`
	Hi S `yaml:"hi"`
}

// Line covers the whole ray, both directions.
func Line[S scalar.Float]() Span[S] {
	return Span[S]{S(math.Inf(-1)), S(math.Inf(1))}
}

// Forward covers t >= 0, the half-line in front of the origin.
func Forward[S scalar.Float]() Span[S] {
	return Span[S]{0, S(math.Inf(1))}
}

func (s Span[S]) Contains(t S) bool {
	return s.Lo <= t && t <= s.Hi
}

// Segment restricts a ray to the parameters in Span.
type Segment[S scalar.Number, P Point[S, P, V], V Vector[S, V]] struct {
	Ray  Ray[S, P, V]
	Span Span[S]
}
