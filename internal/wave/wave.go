// Package wave holds the height functions that pick which layer of the
// lattice is visible.
package wave

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Height is two crossing sine waves, one along x and one along z, both
// travelling with angular frequency omega.
func Height(amp, k, omega, x, z, t float64) float64 {
	return amp*math.Sin(k*x-omega*t) + amp*math.Sin(k*z-omega*t)
}

type Params struct {
	Amp   float64
	K     float64 // wave number
	Omega float64 // angular frequency
}

var Default = Params{Amp: 2, K: 0.25, Omega: 1.2}

func (p Params) At(x, z, t float64) float64 {
	return Height(p.Amp, p.K, p.Omega, x, z, t)
}

// Period is how long the surface takes to repeat at a fixed column.
func (p Params) Period() float64 {
	return 2 * math.Pi / p.Omega
}

// Turbulence adds simplex noise on top of the sine surface. A zero Amp
// disables it.
type Turbulence struct {
	Amp   float64
	Scale float64 // spatial frequency in lattice cells
	Speed float64 // how fast the noise field drifts in time
	Seed  int64
}

// Surface is the height field sampled by the frame driver.
type Surface struct {
	Params
	Turbulence Turbulence

	noise opensimplex.Noise
}

func NewSurface(p Params, turb Turbulence) *Surface {
	s := &Surface{Params: p, Turbulence: turb}
	if turb.Amp != 0 {
		s.noise = opensimplex.New(turb.Seed)
	}
	return s
}

func (s *Surface) At(x, z, t float64) float64 {
	h := s.Params.At(x, z, t)
	if s.noise == nil {
		return h
	}
	tb := s.Turbulence
	return h + tb.Amp*s.noise.Eval3(x*tb.Scale, z*tb.Scale, t*tb.Speed)
}
