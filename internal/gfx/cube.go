package gfx

import "github.com/go-gl/mathgl/mgl32"

// CubeAlpha is the translucency every cube is drawn with.
const CubeAlpha = 0.3

// Color is a flat RGB color in [0,1].
type Color struct {
	R, G, B float32
}

// RGB8 converts 0-255 channels.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// CubeFaces is the unit cube as six quads: front, back, left, right, top,
// bottom. Each quad winds counter-clockwise seen from outside.
var CubeFaces = [6][4]mgl32.Vec3{
	{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
	{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}},
	{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}},
	{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
}

// DrawCube draws a translucent unit cube centered at pos.
//
// Blending is on and depth writes are off only while the cube is drawn; on
// return blending is disabled, depth writes are enabled and the model-view
// stack is back where it was.
func DrawCube(p Pipeline, pos mgl32.Vec3, c Color) {
	p.Enable(Blend)
	p.BlendFunc(SrcAlpha, OneMinusSrcAlpha)
	p.DepthMask(false)

	p.PushMatrix()
	p.Translate(pos[0], pos[1], pos[2])
	p.Color4(c.R, c.G, c.B, CubeAlpha)

	p.Begin(Quads)
	for _, face := range CubeFaces {
		for _, v := range face {
			p.Vertex3(v[0], v[1], v[2])
		}
	}
	p.End()

	p.PopMatrix()

	p.DepthMask(true)
	p.Disable(Blend)
}
