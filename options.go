package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cowsed/Random/CubeWave/internal/driver"
	"github.com/cowsed/Random/CubeWave/internal/grid"
	"github.com/cowsed/Random/CubeWave/internal/wave"
)

type options struct {
	nx, ny, nz int
	spacing    float32

	amp, k, omega float64

	turbulence      float64
	turbulenceScale float64
	turbulenceSpeed float64
	seed            int64

	surface     string
	fieldSpeed  float64
	fieldDt     float64
	splashFrame int
	splashEvery int
	splashAmp   float64
	splashWidth float64

	fps               int
	timeBasedRotation bool
	font              string
	cpuProfile        string
	memProfile        string
}

func newOptions() *options {
	return &options{fps: 60}
}

// bind registers the flags shared by the window and the export command.
func (o *options) bind(fs *pflag.FlagSet) {
	def := driver.DefaultConfig()
	fs.IntVar(&o.nx, "nx", def.Dims.X, "cubes along x")
	fs.IntVar(&o.ny, "ny", def.Dims.Y, "cubes along y (layers)")
	fs.IntVar(&o.nz, "nz", def.Dims.Z, "cubes along z")
	fs.Float32Var(&o.spacing, "spacing", def.Spacing, "distance between cube centers")
	fs.Float64Var(&o.amp, "amp", def.Wave.Amp, "wave amplitude in layers")
	fs.Float64Var(&o.k, "k", def.Wave.K, "wave number")
	fs.Float64Var(&o.omega, "omega", def.Wave.Omega, "angular frequency")
	fs.Float64Var(&o.turbulence, "turbulence", 0, "simplex noise amplitude added to the wave (0: off)")
	fs.Float64Var(&o.turbulenceScale, "turbulence-scale", 0.15, "spatial frequency of the noise")
	fs.Float64Var(&o.turbulenceSpeed, "turbulence-speed", 0.5, "time drift of the noise")
	fs.Int64Var(&o.seed, "seed", 0, "noise seed")
	fs.StringVar(&o.surface, "surface", string(def.Surface), "height source: sine or fdm (finite-difference wave field)")
	fs.Float64Var(&o.fieldSpeed, "fdm-speed", def.Field.C, "fdm wave speed in cells per second")
	fs.Float64Var(&o.fieldDt, "fdm-dt", def.Field.Dt, "fdm time step per frame")
	fs.IntVar(&o.splashFrame, "splash-frame", def.Splash.Frame, "fdm step the splash lands on")
	fs.IntVar(&o.splashEvery, "splash-every", def.Splash.Every, "repeat the splash every N steps (0: once)")
	fs.Float64Var(&o.splashAmp, "splash-amp", def.Splash.Amp, "splash height in layers")
	fs.Float64Var(&o.splashWidth, "splash-width", def.Splash.Width, "splash width in cells")
}

// validate rejects lattices and surfaces nothing can be drawn from.
func (o *options) validate() error {
	if o.nx <= 0 || o.ny <= 0 || o.nz <= 0 {
		return fmt.Errorf("lattice %dx%dx%d: counts must be positive", o.nx, o.ny, o.nz)
	}
	if o.spacing <= 0 {
		return fmt.Errorf("spacing %g: must be positive", o.spacing)
	}
	switch driver.SurfaceKind(o.surface) {
	case driver.SineSurface:
	case driver.FieldSurface:
		if o.splashWidth <= 0 {
			return fmt.Errorf("splash width %g: must be positive", o.splashWidth)
		}
		// explicit scheme is unstable past c*dt/dx = 1/sqrt(2)
		if r := o.fieldSpeed * o.fieldDt / wave.DefaultField.Dx; r*r > 0.5 {
			return fmt.Errorf("fdm speed %g with dt %g is unstable", o.fieldSpeed, o.fieldDt)
		}
	default:
		return fmt.Errorf("unknown surface %q (want sine or fdm)", o.surface)
	}
	return nil
}

func (o *options) config() driver.Config {
	return driver.Config{
		Dims:    grid.Dims{X: o.nx, Y: o.ny, Z: o.nz},
		Spacing: o.spacing,
		Wave:    wave.Params{Amp: o.amp, K: o.k, Omega: o.omega},
		Turbulence: wave.Turbulence{
			Amp:   o.turbulence,
			Scale: o.turbulenceScale,
			Speed: o.turbulenceSpeed,
			Seed:  o.seed,
		},
		Surface: driver.SurfaceKind(o.surface),
		Field:   wave.FieldParams{C: o.fieldSpeed, Dt: o.fieldDt, Dx: wave.DefaultField.Dx},
		Splash: driver.Splash{
			Frame: o.splashFrame,
			Every: o.splashEvery,
			Amp:   o.splashAmp,
			Width: o.splashWidth,
		},
		TimeBasedRotation: o.timeBasedRotation,
	}
}
