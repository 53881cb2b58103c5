package grid

import "github.com/go-gl/mathgl/mgl32"

// Dims is the number of cubes along each axis of a lattice.
type Dims struct {
	X, Y, Z int
}

// Count is X*Y*Z, or 0 when any axis is non-positive.
func (d Dims) Count() int {
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return 0
	}
	return d.X * d.Y * d.Z
}

// Cube is one lattice cell.
type Cube struct {
	Position mgl32.Vec3
}

// Lattice is the flattened X*Y*Z grid of cubes, centered on the origin.
// It is never modified after New returns.
type Lattice struct {
	Dims    Dims
	Spacing float32
	cubes   []Cube
}

// New lays out the lattice x-outer, y-middle, z-inner so that cell (x,y,z)
// lives at x*(Y*Z) + y*Z + z.
func New(dims Dims, spacing float32) *Lattice {
	l := &Lattice{Dims: dims, Spacing: spacing}
	n := dims.Count()
	if n == 0 {
		return l
	}
	l.cubes = make([]Cube, 0, n)

	sizeX := float32(dims.X-1) * spacing
	sizeY := float32(dims.Y-1) * spacing
	sizeZ := float32(dims.Z-1) * spacing
	for x := 0; x < dims.X; x++ {
		for y := 0; y < dims.Y; y++ {
			for z := 0; z < dims.Z; z++ {
				l.cubes = append(l.cubes, Cube{Position: mgl32.Vec3{
					float32(x)*spacing - sizeX/2,
					float32(y)*spacing - sizeY/2,
					float32(z)*spacing - sizeZ/2,
				}})
			}
		}
	}
	return l
}

func (l *Lattice) Len() int { return len(l.cubes) }

// Index flattens (x,y,z). It does not check bounds.
func (l *Lattice) Index(x, y, z int) int {
	return x*(l.Dims.Y*l.Dims.Z) + y*l.Dims.Z + z
}

func (l *Lattice) Contains(x, y, z int) bool {
	return x >= 0 && x < l.Dims.X &&
		y >= 0 && y < l.Dims.Y &&
		z >= 0 && z < l.Dims.Z
}

// At returns the cube at (x,y,z); ok is false outside the lattice.
func (l *Lattice) At(x, y, z int) (c Cube, ok bool) {
	if !l.Contains(x, y, z) {
		return Cube{}, false
	}
	return l.cubes[l.Index(x, y, z)], true
}

// Cubes returns a copy of the flattened cells.
func (l *Lattice) Cubes() []Cube {
	out := make([]Cube, len(l.cubes))
	copy(out, l.cubes)
	return out
}
