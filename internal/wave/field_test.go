package wave

import (
	"math"
	"testing"
)

func TestField_ZeroStaysZero(t *testing.T) {
	f := NewField(9, 7, DefaultField)
	for i := 0; i < 50; i++ {
		f.Step()
	}
	for x := 0; x < f.Nx; x++ {
		for z := 0; z < f.Nz; z++ {
			if v := f.Value(x, z); v != 0 {
				t.Fatalf("(%d,%d) = %g in a field with no input", x, z, v)
			}
		}
	}
	if f.Steps() != 50 {
		t.Fatalf("steps = %d", f.Steps())
	}
}

func TestField_EdgesStayZero(t *testing.T) {
	f := NewField(12, 8, DefaultField)
	f.Pulse(0, 0, 3, 2)
	f.Pulse(6, 4, 3, 1.5)
	for i := 0; i < 80; i++ {
		f.Step()
		for x := 0; x < f.Nx; x++ {
			for z := 0; z < f.Nz; z++ {
				if f.edge(x, z) && f.Value(x, z) != 0 {
					t.Fatalf("step %d: edge (%d,%d) = %g", i, x, z, f.Value(x, z))
				}
			}
		}
	}
}

func TestField_CenteredPulseSymmetric(t *testing.T) {
	const n = 9
	f := NewField(n, n, DefaultField)
	f.Pulse(4, 4, 2, 1)
	for i := 0; i < 40; i++ {
		f.Step()
	}
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			v := f.Value(x, z)
			for _, m := range []float64{f.Value(n-1-x, z), f.Value(x, n-1-z), f.Value(z, x)} {
				if math.Abs(v-m) > 1e-12 {
					t.Fatalf("(%d,%d) = %.15g, mirror %.15g", x, z, v, m)
				}
			}
		}
	}
}

func TestField_SingleStep(t *testing.T) {
	f := NewField(5, 5, DefaultField)
	f.u[f.idx(2, 2)] = 1
	f.Step()
	// r^2 = (2*0.05/1)^2 = 0.01
	if v := f.Value(2, 2); math.Abs(v-1.96) > 1e-12 {
		t.Fatalf("center %g, want 1.96", v)
	}
	if v := f.Value(1, 2); math.Abs(v-0.01) > 1e-12 {
		t.Fatalf("neighbor %g, want 0.01", v)
	}
	if v := f.Value(1, 1); v != 0 {
		t.Fatalf("diagonal %g, want 0", v)
	}
}

func TestField_AtOutside(t *testing.T) {
	f := NewField(3, 3, DefaultField)
	f.Pulse(1, 1, 1, 1)
	if f.At(1.2, 0.9, 100) != f.Value(1, 1) {
		t.Fatal("At should sample the nearest cell")
	}
	if f.At(-4, 1, 0) != 0 || f.At(1, 3, 0) != 0 {
		t.Fatal("outside the grid must read zero")
	}
	if NewField(-2, 4, DefaultField).At(0, 0, 0) != 0 {
		t.Fatal("empty field must read zero")
	}
}
