package wave

import "math"

// Source is anything the driver can sample a column height from.
type Source interface {
	At(x, z, t float64) float64
}

// FieldParams configures the finite-difference wave equation solver.
type FieldParams struct {
	C  float64 // wave speed
	Dt float64 // time step per Step
	Dx float64 // cell size along x and z
}

var DefaultField = FieldParams{C: 2, Dt: 0.05, Dx: 1}

// Field is a displacement grid stepped with the explicit 5-point scheme
// u' = 2u - u_prev + (c*dt)^2 * laplacian(u). Edge cells are held at zero.
type Field struct {
	FieldParams
	Nx, Nz int

	u, prev, next []float64
	steps         int
}

func NewField(nx, nz int, p FieldParams) *Field {
	if nx < 0 {
		nx = 0
	}
	if nz < 0 {
		nz = 0
	}
	n := nx * nz
	return &Field{
		FieldParams: p,
		Nx:          nx,
		Nz:          nz,
		u:           make([]float64, n),
		prev:        make([]float64, n),
		next:        make([]float64, n),
	}
}

func (f *Field) idx(x, z int) int { return x*f.Nz + z }

func (f *Field) edge(x, z int) bool {
	return x == 0 || z == 0 || x == f.Nx-1 || z == f.Nz-1
}

// Value is the displacement of cell (x,z), zero outside the grid.
func (f *Field) Value(x, z int) float64 {
	if x < 0 || z < 0 || x >= f.Nx || z >= f.Nz {
		return 0
	}
	return f.u[f.idx(x, z)]
}

// At samples the nearest cell. t is ignored: the field only moves on Step.
func (f *Field) At(x, z, t float64) float64 {
	return f.Value(int(math.Round(x)), int(math.Round(z)))
}

func (f *Field) Steps() int { return f.steps }

// Pulse adds a Gaussian bump centered on (cx,cz) in cell units.
func (f *Field) Pulse(cx, cz, amp, width float64) {
	for x := 0; x < f.Nx; x++ {
		for z := 0; z < f.Nz; z++ {
			if f.edge(x, z) {
				continue
			}
			dx, dz := float64(x)-cx, float64(z)-cz
			f.u[f.idx(x, z)] += amp * math.Exp(-(dx*dx+dz*dz)/(2*width*width))
		}
	}
}

// Step advances the field by Dt.
func (f *Field) Step() {
	r2 := (f.C * f.Dt / f.Dx) * (f.C * f.Dt / f.Dx)
	for x := 1; x < f.Nx-1; x++ {
		for z := 1; z < f.Nz-1; z++ {
			i := f.idx(x, z)
			lap := f.u[f.idx(x+1, z)] + f.u[f.idx(x-1, z)] +
				f.u[f.idx(x, z+1)] + f.u[f.idx(x, z-1)] - 4*f.u[i]
			f.next[i] = 2*f.u[i] - f.prev[i] + r2*lap
		}
	}
	f.prev, f.u, f.next = f.u, f.next, f.prev
	f.steps++
}
