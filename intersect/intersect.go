// Package intersect tests rays against triangles with the Möller–Trumbore
// algorithm.
//
// The test treats the ray as a full line: hits behind the origin (t < 0) are
// reported.  Use SegmentTriangle with ray.Forward for a half-line cast.
package intersect

import (
	"row-major/tricast/contact"
	"row-major/tricast/geometry"
	"row-major/tricast/ray"
	"row-major/tricast/vmath/scalar"
)

// Vector3 is ray.Vector plus the cross product, which only exists in three
// dimensions.
type Vector3[S scalar.Number, V any] interface {
	ray.Vector[S, V]
	Cross(V) V
}

// Tolerance bounds the determinant test.  When |det| < Epsilon the ray is
// treated as parallel to the triangle's plane (or the triangle as
// degenerate) and no hit is reported.  Larger values reject more
// near-tangent hits; smaller values let more rounding noise through.
type Tolerance[S scalar.Float] struct {
	Epsilon S
}

func DefaultTolerance[S scalar.Float]() Tolerance[S] {
	return Tolerance[S]{Epsilon: scalar.Epsilon[S]()}
}

// RayTriangle returns the point where the line through r meets tri, using
// DefaultTolerance.
func RayTriangle[S scalar.Float, P ray.Point[S, P, V], V Vector3[S, V]](r *ray.Ray[S, P, V], tri *geometry.Triangle[P]) (P, bool) {
	return RayTriangleTol(r, tri, DefaultTolerance[S]())
}

// RayTriangleValue is RayTriangle for callers holding values.
func RayTriangleValue[S scalar.Float, P ray.Point[S, P, V], V Vector3[S, V]](r ray.Ray[S, P, V], tri geometry.Triangle[P]) (P, bool) {
	return RayTriangle(&r, &tri)
}

func RayTriangleTol[S scalar.Float, P ray.Point[S, P, V], V Vector3[S, V]](r *ray.Ray[S, P, V], tri *geometry.Triangle[P], tol Tolerance[S]) (P, bool) {
	c, ok := Contact(r, tri, tol)
	return c.P, ok
}

// Contact is RayTriangleTol with the ray parameter and barycentric
// coordinates of the hit.
//
// Edges and vertices count as inside.  The range checks are written so that
// NaN coordinates reject.
func Contact[S scalar.Float, P ray.Point[S, P, V], V Vector3[S, V]](r *ray.Ray[S, P, V], tri *geometry.Triangle[P], tol Tolerance[S]) (contact.Contact[S, P], bool) {
	var miss contact.Contact[S, P]

	edge1 := tri.P1.Sub(tri.P0)
	edge2 := tri.P2.Sub(tri.P0)

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if scalar.ApproxEqEps(det, 0, tol.Epsilon) {
		return miss, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(tri.P0)
	u := tvec.Dot(pvec) * invDet
	if !(u >= 0 && u <= 1) {
		return miss, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if !(v >= 0 && u+v <= 1) {
		return miss, false
	}

	t := edge2.Dot(qvec) * invDet
	return contact.Contact[S, P]{
		T: t,
		U: u,
		V: v,
		P: r.At(t),
	}, true
}

// SegmentTriangle is Contact restricted to hits whose ray parameter lies in
// seg.Span.
func SegmentTriangle[S scalar.Float, P ray.Point[S, P, V], V Vector3[S, V]](seg *ray.Segment[S, P, V], tri *geometry.Triangle[P], tol Tolerance[S]) (contact.Contact[S, P], bool) {
	c, ok := Contact(&seg.Ray, tri, tol)
	if !ok || !seg.Span.Contains(c.T) {
		return contact.Contact[S, P]{}, false
	}
	return c, true
}
