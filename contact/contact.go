package contact

import "row-major/tricast/vmath/scalar"

// Contact describes where a ray meets a triangle.
//
// T is the ray parameter of the hit.  U and V are the weights of the second
// and third vertices; the hit point is P0 + U*(P1-P0) + V*(P2-P0).
type Contact[S scalar.Number, P any] struct {
	T S
	U S
	V S
	P P
}

// Barycentric returns the weights of P0, P1 and P2, in that order.
func (c Contact[S, P]) Barycentric() (w0, w1, w2 S) {
	return 1 - c.U - c.V, c.U, c.V
}
