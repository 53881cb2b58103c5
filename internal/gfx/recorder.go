package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Recorder is a Pipeline that only tracks state. It starts in the GL
// defaults: blending off, depth writes on, model-view selected.
type Recorder struct {
	Enabled    map[Capability]bool
	DepthWrite bool
	Mode       MatrixMode
	Depth      map[MatrixMode]int

	// Per Begin/End batch.
	Batches   int
	Vertices  int
	Origins   []mgl32.Vec3 // translation in effect at each Begin
	Colors    [][4]float32 // color in effect at each Begin
	Clears    int
	Rotations []float32

	// Faults lists calls that real GL would reject.
	Faults []string

	inBegin bool
	color   [4]float32
	offset  []mgl32.Vec3
}

func NewRecorder() *Recorder {
	return &Recorder{
		Enabled:    map[Capability]bool{},
		DepthWrite: true,
		Depth:      map[MatrixMode]int{},
		offset:     []mgl32.Vec3{{}},
	}
}

func (r *Recorder) fault(format string, args ...interface{}) {
	r.Faults = append(r.Faults, fmt.Sprintf(format, args...))
}

func (r *Recorder) Enable(c Capability)  { r.Enabled[c] = true }
func (r *Recorder) Disable(c Capability) { r.Enabled[c] = false }

func (r *Recorder) BlendFunc(src, dst BlendFactor) {
	if src != SrcAlpha || dst != OneMinusSrcAlpha {
		r.fault("unexpected blend func %d,%d", src, dst)
	}
}

func (r *Recorder) DepthMask(write bool) { r.DepthWrite = write }

func (r *Recorder) MatrixMode(m MatrixMode) { r.Mode = m }

func (r *Recorder) LoadMatrix(*[16]float64) { r.top(mgl32.Vec3{}) }
func (r *Recorder) LoadIdentity()           { r.top(mgl32.Vec3{}) }

func (r *Recorder) top(v mgl32.Vec3) {
	if r.Mode == ModelView {
		r.offset[len(r.offset)-1] = v
	}
}

func (r *Recorder) PushMatrix() {
	r.Depth[r.Mode]++
	if r.Mode == ModelView {
		r.offset = append(r.offset, r.offset[len(r.offset)-1])
	}
}

func (r *Recorder) PopMatrix() {
	if r.Depth[r.Mode] == 0 {
		r.fault("matrix stack underflow")
		return
	}
	r.Depth[r.Mode]--
	if r.Mode == ModelView {
		r.offset = r.offset[:len(r.offset)-1]
	}
}

// Translate only accumulates offsets; rotations are recorded but not applied.
func (r *Recorder) Translate(x, y, z float32) {
	if r.Mode == ModelView {
		i := len(r.offset) - 1
		r.offset[i] = r.offset[i].Add(mgl32.Vec3{x, y, z})
	}
}

func (r *Recorder) Rotate(angleDeg, x, y, z float32) {
	r.Rotations = append(r.Rotations, angleDeg)
}

func (r *Recorder) Color4(cr, cg, cb, ca float32) { r.color = [4]float32{cr, cg, cb, ca} }

func (r *Recorder) Begin(Primitive) {
	if r.inBegin {
		r.fault("nested Begin")
	}
	r.inBegin = true
	r.Batches++
	r.Origins = append(r.Origins, r.offset[len(r.offset)-1])
	r.Colors = append(r.Colors, r.color)
}

func (r *Recorder) Vertex3(x, y, z float32) {
	if !r.inBegin {
		r.fault("vertex outside Begin/End")
	}
	r.Vertices++
}

func (r *Recorder) End() {
	if !r.inBegin {
		r.fault("End without Begin")
	}
	r.inBegin = false
}

func (r *Recorder) Clear() {
	if r.inBegin {
		r.fault("Clear inside Begin/End")
	}
	r.Clears++
}
