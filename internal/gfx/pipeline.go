// Package gfx draws the scene through a small fixed-function Pipeline so the
// drawing order and state bracketing can be checked without a GL context.
package gfx

// Capability is a toggle passed to Enable/Disable.
type Capability int

const (
	Blend Capability = iota
	DepthTest
	Texture2D
)

// BlendFactor is a source or destination blend factor.
type BlendFactor int

const (
	SrcAlpha BlendFactor = iota
	OneMinusSrcAlpha
)

// Primitive is the mode given to Begin.
type Primitive int

const (
	Quads Primitive = iota
)

// MatrixMode selects the matrix stack the matrix calls act on.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// Pipeline is the subset of fixed-function GL the renderer needs.
type Pipeline interface {
	Enable(c Capability)
	Disable(c Capability)
	BlendFunc(src, dst BlendFactor)
	DepthMask(write bool)

	MatrixMode(m MatrixMode)
	LoadMatrix(m *[16]float64)
	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float32)
	Rotate(angleDeg, x, y, z float32)

	Color4(r, g, b, a float32)
	Begin(p Primitive)
	Vertex3(x, y, z float32)
	End()

	Clear()
}
