package vec3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCProd(t *testing.T) {
	x := T[float64]{1, 0, 0}
	y := T[float64]{0, 1, 0}
	z := T[float64]{0, 0, 1}

	if got := CProd(x, y); got != z {
		t.Errorf("Bad x cross y; got %v, want %v", got, z)
	}
	if got := CProd(y, z); got != x {
		t.Errorf("Bad y cross z; got %v, want %v", got, x)
	}
	if got := CProd(z, x); got != y {
		t.Errorf("Bad z cross x; got %v, want %v", got, y)
	}

	want := T[float64]{0, 0, -1}
	if got := y.Cross(x); got != want {
		t.Errorf("Bad y cross x; got %v, want %v", got, want)
	}
}

func TestCProdIsOrthogonal(t *testing.T) {
	a := T[float64]{0.3, -1.2, 2.5}
	b := T[float64]{-0.7, 0.4, 1.1}
	c := CProd(a, b)

	if d := IProd(a, c); math.Abs(d) > 1e-12 {
		t.Errorf("Cross product not orthogonal to first operand; dot = %v", d)
	}
	if d := IProd(b, c); math.Abs(d) > 1e-12 {
		t.Errorf("Cross product not orthogonal to second operand; dot = %v", d)
	}
}

func TestIProd(t *testing.T) {
	if got := IProd(T[int]{1, 2, 3}, T[int]{4, -5, 6}); got != 12 {
		t.Errorf("Bad IProd; got %v, want 12", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point[float64]{1, 2, 3}
	q := Point[float64]{4, 6, 8}

	d := q.Sub(p)
	if want := (T[float64]{3, 4, 5}); d != want {
		t.Errorf("Bad q - p; got %v, want %v", d, want)
	}

	if got := p.Add(d); got != q {
		t.Errorf("Bad p + (q - p); got %v, want %v", got, q)
	}

	if got := p.Add(d.Mul(0.5)); got != (Point[float64]{2.5, 4, 5.5}) {
		t.Errorf("Bad midpoint; got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(T[float64]{3, 0, 4})
	want := T[float64]{0.6, 0, 0.8}
	if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Bad normalized vector; diff (-got +want)\n%s", diff)
	}

	if n := (T[float32]{-2, 7, 1}).Normalize().Norm(); math.Abs(n-1) > 1e-6 {
		t.Errorf("Normalized float32 vector has norm %v", n)
	}
}

func TestNormalizeZero(t *testing.T) {
	got := Normalize(T[float64]{})
	for i, c := range got {
		if !math.IsNaN(c) {
			t.Errorf("Component %d of normalized zero vector is %v, want NaN", i, c)
		}
	}
}

func TestAccessors(t *testing.T) {
	v := T[int]{7, 8, 9}
	if v.X() != 7 || v.Y() != 8 || v.Z() != 9 {
		t.Errorf("Bad accessors for %v", v)
	}
	p := Point[int]{-1, -2, -3}
	if p.X() != -1 || p.Y() != -2 || p.Z() != -3 {
		t.Errorf("Bad accessors for %v", p)
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(Point[float64]{1, 2, 3}, Point[float64]{1 + 1e-7, 2, 3 - 1e-7}) {
		t.Errorf("Nearly equal points compared unequal")
	}
	if ApproxEqual(Point[float64]{1, 2, 3}, Point[float64]{1, 2.1, 3}) {
		t.Errorf("Distinct points compared equal")
	}
}
