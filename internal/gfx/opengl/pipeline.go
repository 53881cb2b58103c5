package opengl

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/cowsed/Random/CubeWave/internal/gfx"
)

// Pipeline forwards gfx calls to the current GL context.
type Pipeline struct{}

var capabilities = map[gfx.Capability]uint32{
	gfx.Blend:     gl.BLEND,
	gfx.DepthTest: gl.DEPTH_TEST,
	gfx.Texture2D: gl.TEXTURE_2D,
}

var blendFactors = map[gfx.BlendFactor]uint32{
	gfx.SrcAlpha:         gl.SRC_ALPHA,
	gfx.OneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
}

var matrixModes = map[gfx.MatrixMode]uint32{
	gfx.ModelView:  gl.MODELVIEW,
	gfx.Projection: gl.PROJECTION,
}

func (Pipeline) Enable(c gfx.Capability)  { gl.Enable(capabilities[c]) }
func (Pipeline) Disable(c gfx.Capability) { gl.Disable(capabilities[c]) }

func (Pipeline) BlendFunc(src, dst gfx.BlendFactor) {
	gl.BlendFunc(blendFactors[src], blendFactors[dst])
}

func (Pipeline) DepthMask(write bool) { gl.DepthMask(write) }

func (Pipeline) MatrixMode(m gfx.MatrixMode) { gl.MatrixMode(matrixModes[m]) }
func (Pipeline) LoadMatrix(m *[16]float64)   { gl.LoadMatrixd(&m[0]) }
func (Pipeline) LoadIdentity()               { gl.LoadIdentity() }
func (Pipeline) PushMatrix()                 { gl.PushMatrix() }
func (Pipeline) PopMatrix()                  { gl.PopMatrix() }
func (Pipeline) Translate(x, y, z float32)   { gl.Translatef(x, y, z) }

func (Pipeline) Rotate(angleDeg, x, y, z float32) { gl.Rotatef(angleDeg, x, y, z) }

func (Pipeline) Color4(r, g, b, a float32) { gl.Color4f(r, g, b, a) }
func (Pipeline) Begin(gfx.Primitive)       { gl.Begin(gl.QUADS) }
func (Pipeline) Vertex3(x, y, z float32)   { gl.Vertex3f(x, y, z) }
func (Pipeline) End()                      { gl.End() }

func (Pipeline) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }
