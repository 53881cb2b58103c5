// Package driver advances the cube wave one frame at a time.
package driver

import (
	"math"
	"time"

	"github.com/cowsed/Random/CubeWave/internal/grid"
	"github.com/cowsed/Random/CubeWave/internal/gfx"
	"github.com/cowsed/Random/CubeWave/internal/wave"
)

// State is the lifecycle of the render loop. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

const (
	// Lift keeps a zero wave from landing exactly on a layer boundary.
	Lift = 0.01

	FrameStep     = 1.0 / 60
	RotationStep  = 0.001 // degrees per frame
	nominalFrames = 60.0
)

// CubeColor is the fill of every visible cube.
var CubeColor = gfx.RGB8(28, 181, 237)

// SurfaceKind picks the height source.
type SurfaceKind string

const (
	SineSurface  SurfaceKind = "sine"
	FieldSurface SurfaceKind = "fdm"
)

// Splash is the Gaussian pulse dropped into a field surface.
type Splash struct {
	Frame int     // field step the pulse lands on
	Every int     // repeat interval in steps, 0 for once
	Amp   float64 // in layers
	Width float64 // in cells
}

type Config struct {
	Dims    grid.Dims
	Spacing float32

	Wave       wave.Params
	Turbulence wave.Turbulence

	Surface SurfaceKind
	Field   wave.FieldParams
	Splash  Splash

	// TimeBasedRotation scales the per-frame rotation step by elapsed real
	// time so the spin speed no longer depends on the frame rate.
	TimeBasedRotation bool
}

func DefaultConfig() Config {
	return Config{
		Dims:    grid.Dims{X: 16, Y: 8, Z: 8},
		Spacing: 1.7,
		Wave:    wave.Default,
		Surface: SineSurface,
		Field:   wave.DefaultField,
		Splash:  Splash{Frame: 30, Amp: 3, Width: 1.5},
	}
}

type Stats struct {
	Frames  int
	Time    float64
	Angle   float64
	Visible int
}

type Driver struct {
	cfg     Config
	lattice *grid.Lattice
	source  wave.Source
	field   *wave.Field

	state   State
	t       float64
	angle   float64
	frames  int
	visible int
}

func New(cfg Config) *Driver {
	d := &Driver{
		cfg:     cfg,
		lattice: grid.New(cfg.Dims, cfg.Spacing),
	}
	if cfg.Surface == FieldSurface {
		d.field = wave.NewField(cfg.Dims.X, cfg.Dims.Z, cfg.Field)
		d.source = d.field
	} else {
		d.source = wave.NewSurface(cfg.Wave, cfg.Turbulence)
	}
	return d
}

func (d *Driver) Lattice() *grid.Lattice { return d.lattice }
func (d *Driver) State() State           { return d.state }
func (d *Driver) Running() bool          { return d.state == Running }
func (d *Driver) Time() float64          { return d.t }
func (d *Driver) Angle() float64         { return d.angle }

// Quit stops the loop at the next iteration boundary.
func (d *Driver) Quit() { d.state = Stopped }

// SetTime jumps the simulation clock, used for snapshots.
func (d *Driver) SetTime(t float64) { d.t = t }

// ActiveLayer turns a column height into a layer index, clamped at zero.
// There is no upper clamp; callers skip layers past the top.
func ActiveLayer(h float64) int {
	l := int(math.Floor(h))
	if l < 0 {
		return 0
	}
	return l
}

// Layer is the active layer of column (x,z) at the current time.
func (d *Driver) Layer(x, z int) int {
	h := d.source.At(float64(x), float64(z), d.t)
	h += float64(d.cfg.Dims.Y/2) + Lift
	return ActiveLayer(h)
}

// Visible returns the cube shown in every column whose layer falls inside
// the lattice, in x-outer z-inner order.
func (d *Driver) Visible() []grid.Cube {
	if d.lattice.Len() == 0 {
		return nil
	}
	dims := d.lattice.Dims
	out := make([]grid.Cube, 0, d.lattice.Len()/dims.Y)
	for x := 0; x < dims.X; x++ {
		for z := 0; z < dims.Z; z++ {
			if c, ok := d.lattice.At(x, d.Layer(x, z), z); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// Frame clears the target, places the camera and draws the visible cubes.
func (d *Driver) Frame(p gfx.Pipeline, cam gfx.Camera) {
	p.Clear()
	cam.Angle = d.angle
	cam.Look(p)

	visible := d.Visible()
	for _, c := range visible {
		gfx.DrawCube(p, c.Position, CubeColor)
	}
	d.visible = len(visible)
	d.frames++
}

// Advance steps the clock one frame. elapsed is only read when rotation is
// time based.
func (d *Driver) Advance(elapsed time.Duration) {
	d.t += FrameStep
	if d.field != nil {
		d.splash()
		d.field.Step()
	}
	if d.cfg.TimeBasedRotation {
		d.angle += RotationStep * elapsed.Seconds() * nominalFrames
		return
	}
	d.angle += RotationStep
}

func (d *Driver) Stats() Stats {
	return Stats{Frames: d.frames, Time: d.t, Angle: d.angle, Visible: d.visible}
}

// splash drops the configured pulse onto the middle of the field when its
// step comes up.
func (d *Driver) splash() {
	sp := d.cfg.Splash
	n := d.field.Steps()
	due := n == sp.Frame || (sp.Every > 0 && n > sp.Frame && (n-sp.Frame)%sp.Every == 0)
	if !due {
		return
	}
	cx := float64(d.field.Nx-1) / 2
	cz := float64(d.field.Nz-1) / 2
	d.field.Pulse(cx, cz, sp.Amp, sp.Width)
}
