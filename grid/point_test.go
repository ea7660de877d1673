package grid

import "testing"

// TestRotations checks that Right/Left cycle through the compass and undo each other.
func TestRotations(t *testing.T) {
	order := []Point{East, South, West, North}
	for i, d := range order {
		next := order[(i+1)%len(order)]
		if got := d.Right(); got != next {
			t.Errorf("%v.Right() = %v; want %v", d, got, next)
		}
		if got := next.Left(); got != d {
			t.Errorf("%v.Left() = %v; want %v", next, got, d)
		}
		if got := d.Right().Right(); got != d.Neg() {
			t.Errorf("%v turned twice = %v; want %v", d, got, d.Neg())
		}
	}
}

func TestArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -2}
	q := Point{X: -1, Y: 5}
	if got := p.Add(q); got != (Point{X: 2, Y: 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != (Point{X: 4, Y: -7}) {
		t.Errorf("Sub = %v", got)
	}
	if got := East.Scale(3); got != (Point{X: 3, Y: 0}) {
		t.Errorf("Scale = %v", got)
	}
	if got := p.Manhattan(q); got != 11 {
		t.Errorf("Manhattan = %d; want 11", got)
	}
	if got := p.Chebyshev(q); got != 7 {
		t.Errorf("Chebyshev = %d; want 7", got)
	}
	if got := p.String(); got != "3,-2" {
		t.Errorf("String = %q", got)
	}
}

func TestAbsSign(t *testing.T) {
	cases := []struct{ in, abs, sign int }{
		{-4, 4, -1},
		{0, 0, 0},
		{9, 9, 1},
	}
	for _, tc := range cases {
		if got := Abs(tc.in); got != tc.abs {
			t.Errorf("Abs(%d) = %d; want %d", tc.in, got, tc.abs)
		}
		if got := Sign(tc.in); got != tc.sign {
			t.Errorf("Sign(%d) = %d; want %d", tc.in, got, tc.sign)
		}
	}
	if got := Abs(int64(-7)); got != 7 {
		t.Errorf("Abs[int64] = %d", got)
	}
}
