package geometry

import (
	"row-major/tricast/vmath/scalar"
	"row-major/tricast/vmath/vec3"
)

// Triangle is three points in a fixed order.  The order fixes the winding
// seen by the intersection test; it changes the sign of intermediate
// quantities but not the outcome.  Collinear points are allowed.
type Triangle[P any] struct {
	P0 P `yaml:"p0"`
	P1 P `yaml:"p1"`
	P2 P `yaml:"p2"`
}

type Triangle3[S scalar.Number] = Triangle[vec3.Point[S]]

func NewTriangle[P any](p0, p1, p2 P) Triangle[P] {
	return Triangle[P]{P0: p0, P1: p1, P2: p2}
}

func (t Triangle[P]) Vertices() [3]P {
	return [3]P{t.P0, t.P1, t.P2}
}

// Reversed returns the same triangle with the opposite winding.
func (t Triangle[P]) Reversed() Triangle[P] {
	return Triangle[P]{P0: t.P0, P1: t.P2, P2: t.P1}
}
