package contact

import "testing"

func TestBarycentric(t *testing.T) {
	c := Contact[float64, [3]float64]{T: 2, U: 0.25, V: 0.5}

	w0, w1, w2 := c.Barycentric()
	if w0 != 0.25 || w1 != 0.25 || w2 != 0.5 {
		t.Errorf("Bad barycentric weights; got (%v, %v, %v), want (0.25, 0.25, 0.5)", w0, w1, w2)
	}
	if sum := w0 + w1 + w2; sum != 1 {
		t.Errorf("Weights don't sum to one; got %v", sum)
	}
}
