package grid

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNew_TwoCubes(t *testing.T) {
	l := New(Dims{2, 1, 1}, 2)
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
	want := []mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}}
	for i, c := range l.Cubes() {
		if !c.Position.ApproxEqual(want[i]) {
			t.Errorf("cube %d at %v, want %v", i, c.Position, want[i])
		}
	}
}

func TestNew_ClosedForm(t *testing.T) {
	for _, d := range []Dims{{1, 1, 1}, {3, 2, 5}, {16, 8, 8}, {4, 7, 1}} {
		for _, s := range []float32{0.5, 1, 1.7} {
			l := New(d, s)
			if l.Len() != d.X*d.Y*d.Z {
				t.Fatalf("%v: len = %d", d, l.Len())
			}
			cubes := l.Cubes()
			gx := float32(d.X-1) * s
			gy := float32(d.Y-1) * s
			gz := float32(d.Z-1) * s
			for x := 0; x < d.X; x++ {
				for y := 0; y < d.Y; y++ {
					for z := 0; z < d.Z; z++ {
						p := cubes[x*(d.Y*d.Z)+y*d.Z+z].Position
						if !near(p[0], float32(x)*s-gx/2) || !near(p[1], float32(y)*s-gy/2) || !near(p[2], float32(z)*s-gz/2) {
							t.Fatalf("%v s=%g (%d,%d,%d): got %v", d, s, x, y, z, p)
						}
					}
				}
			}
		}
	}
}

func TestNew_Centered(t *testing.T) {
	l := New(Dims{16, 8, 8}, 1.7)
	var sum mgl32.Vec3
	for _, c := range l.Cubes() {
		sum = sum.Add(c.Position)
	}
	if sum.Len() > 1e-2 {
		t.Fatalf("centroid drift %v", sum)
	}
}

func TestNew_NonPositive(t *testing.T) {
	for _, d := range []Dims{{0, 1, 1}, {2, -1, 3}, {1, 1, 0}} {
		if n := New(d, 1).Len(); n != 0 {
			t.Errorf("%v: len = %d, want 0", d, n)
		}
	}
}

func TestAt(t *testing.T) {
	l := New(Dims{3, 4, 5}, 1)
	c, ok := l.At(2, 3, 4)
	if !ok {
		t.Fatal("expected (2,3,4) inside")
	}
	if c != l.Cubes()[l.Len()-1] {
		t.Fatalf("last cell mismatch: %v", c)
	}
	if l.Index(1, 2, 3) != 1*20+2*5+3 {
		t.Fatalf("index = %d", l.Index(1, 2, 3))
	}
	for _, p := range [][3]int{{-1, 0, 0}, {3, 0, 0}, {0, 4, 0}, {0, 0, 5}} {
		if _, ok := l.At(p[0], p[1], p[2]); ok {
			t.Errorf("%v should be outside", p)
		}
	}
}
