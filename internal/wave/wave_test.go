package wave

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestHeight_ZeroAtOrigin(t *testing.T) {
	for _, amp := range []float64{0, 1, 2, -3.5} {
		for _, k := range []float64{0.1, 0.25, 4} {
			for _, omega := range []float64{0.5, 1.2, 10} {
				if h := Height(amp, k, omega, 0, 0, 0); math.Abs(h) > eps {
					t.Fatalf("Height(%g,%g,%g,0,0,0) = %g", amp, k, omega, h)
				}
			}
		}
	}
}

func TestHeight_PeriodicInTime(t *testing.T) {
	p := Default
	for _, col := range [][2]float64{{0, 0}, {3, 5}, {15, 7}} {
		for _, t0 := range []float64{0, 0.37, 12.5} {
			a := p.At(col[0], col[1], t0)
			b := p.At(col[0], col[1], t0+p.Period())
			if math.Abs(a-b) > 1e-9 {
				t.Fatalf("col %v t=%g: %g vs %g", col, t0, a, b)
			}
		}
	}
}

func TestHeight_Bounded(t *testing.T) {
	p := Default
	for x := 0.0; x < 16; x++ {
		for z := 0.0; z < 8; z++ {
			if h := p.At(x, z, 1.3); math.Abs(h) > 2*p.Amp+eps {
				t.Fatalf("(%g,%g) = %g exceeds 2*amp", x, z, h)
			}
		}
	}
}

func TestHeight_Known(t *testing.T) {
	// quarter wave along x, z at zero
	got := Height(2, 0.25, 1.2, 2*math.Pi, 0, 0)
	if math.Abs(got-2) > eps {
		t.Fatalf("got %g, want 2", got)
	}
}

func TestSurface_NoTurbulenceIsPlainWave(t *testing.T) {
	s := NewSurface(Default, Turbulence{})
	for _, c := range [][3]float64{{0, 0, 0}, {4, 2, 1.5}, {11, 7, 30}} {
		if s.At(c[0], c[1], c[2]) != Default.At(c[0], c[1], c[2]) {
			t.Fatalf("surface differs at %v", c)
		}
	}
}

func TestSurface_TurbulenceDeterministic(t *testing.T) {
	turb := Turbulence{Amp: 0.8, Scale: 0.15, Speed: 0.5, Seed: 42}
	a := NewSurface(Default, turb)
	b := NewSurface(Default, turb)
	diff := false
	for x := 0.0; x < 8; x++ {
		ha, hb := a.At(x, 3, 2), b.At(x, 3, 2)
		if ha != hb {
			t.Fatalf("same seed, different height at x=%g: %g %g", x, ha, hb)
		}
		if math.Abs(ha-Default.At(x, 3, 2)) > eps {
			diff = true
		}
		if math.Abs(ha-Default.At(x, 3, 2)) > turb.Amp*1.05 {
			t.Fatalf("noise exceeds amplitude at x=%g", x)
		}
	}
	if !diff {
		t.Fatal("turbulence had no effect")
	}
}
