package monoid

import (
	"testing"
)

func TestNumeric(t *testing.T) {
	if Sum(3, 4) != 7 {
		t.Errorf("expected 3+4 = 7, is %d", Sum(3, 4))
	}
	if Product(3, 4) != 12 {
		t.Errorf("expected 3*4 = 12, is %d", Product(3, 4))
	}
	if Min(3.5, -1.0) != -1.0 {
		t.Errorf("expected min = -1, is %g", Min(3.5, -1.0))
	}
	if Max("abc", "abd") != "abd" {
		t.Errorf("expected max = 'abd', is %q", Max("abc", "abd"))
	}
}

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, gcd int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{0, 5, 5},
		{5, 0, 5},
		{-4, 6, 2},
		{7, 13, 1},
		{0, 0, 0},
	}
	for _, c := range cases {
		if g := GCD(c.a, c.b); g != c.gcd {
			t.Errorf("GCD(%d, %d) = %d, expected %d", c.a, c.b, g, c.gcd)
		}
	}
	if g := GCD(uint8(48), uint8(36)); g != 12 {
		t.Errorf("GCD(48, 36) = %d, expected 12", g)
	}
}

func TestFirstLast(t *testing.T) {
	if First("a", "b") != "a" || Last("a", "b") != "b" {
		t.Errorf("First/Last do not select operands as expected")
	}
}

func TestAffineCompose(t *testing.T) {
	f := Affine[int]{Scale: 2, Shift: 1} // 2x+1
	g := Affine[int]{Scale: 3, Shift: 5} // 3x+5
	fg := Compose(f, g)
	gf := Compose(g, f)
	for x := -3; x <= 3; x++ {
		if fg.Apply(x) != g.Apply(f.Apply(x)) {
			t.Errorf("Compose(f,g)(%d) = %d, expected %d", x, fg.Apply(x), g.Apply(f.Apply(x)))
		}
	}
	if fg == gf {
		t.Errorf("expected composition to be non-commutative for %v and %v", f, g)
	}
	id := Identity[int]()
	if Compose(id, f) != f || Compose(f, id) != f {
		t.Errorf("identity is not neutral")
	}
}

func TestAffineAssociative(t *testing.T) {
	maps := []Affine[int]{{2, 1}, {-1, 4}, {3, 0}, {1, -7}}
	for _, a := range maps {
		for _, b := range maps {
			for _, c := range maps {
				l := Compose(Compose(a, b), c)
				r := Compose(a, Compose(b, c))
				if l != r {
					t.Fatalf("Compose not associative for %v, %v, %v: %v != %v", a, b, c, l, r)
				}
			}
		}
	}
}
