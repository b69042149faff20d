package ray

import (
	"fmt"
	"strings"

	"row-major/tricast/vmath/scalar"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q, want one of x, y, z", s)
}

// Coords3 exposes the components of a three-dimensional point or vector.
type Coords3[S scalar.Number] interface {
	X() S
	Y() S
	Z() S
}

func coord[S scalar.Number](c Coords3[S], axis Axis) S {
	switch axis {
	case AxisX:
		return c.X()
	case AxisY:
		return c.Y()
	case AxisZ:
		return c.Z()
	}
	panic(fmt.Sprintf("ray: invalid axis %d", int(axis)))
}

// AxisAt is the coordinate of r.At(t) along axis.
func AxisAt[S scalar.Number, P interface {
	Point[S, P, V]
	Coords3[S]
}, V interface {
	Vector[S, V]
	Coords3[S]
}](r Ray[S, P, V], axis Axis, t S) S {
	return coord[S](r.Direction, axis)*t + coord[S](r.Origin, axis)
}

// AxisParameterWhere solves for the t at which the ray's coordinate along
// axis equals value.  It reports false when the direction has no component
// along axis, since the coordinate is then constant.
func AxisParameterWhere[S scalar.Number, P interface {
	Point[S, P, V]
	Coords3[S]
}, V interface {
	Vector[S, V]
	Coords3[S]
}](r Ray[S, P, V], axis Axis, value S) (S, bool) {
	d := coord[S](r.Direction, axis)
	if d == 0 {
		return 0, false
	}
	return (value - coord[S](r.Origin, axis)) / d, true
}
