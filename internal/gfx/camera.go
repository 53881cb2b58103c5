package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a fixed perspective eye looking at a target. Angle spins the
// whole scene about the vertical axis.
type Camera struct {
	Eye, Target, Up mgl64.Vec3

	FovDeg    float64
	Aspect    float64
	Near, Far float64

	Angle float64 // degrees
}

// DefaultCamera sits above and in front of the origin, looking at it.
func DefaultCamera(width, height int) Camera {
	return Camera{
		Eye:    mgl64.Vec3{0, 5, 40},
		Target: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		FovDeg: 45,
		Aspect: float64(width) / float64(height),
		Near:   0.1,
		Far:    100,
	}
}

func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovDeg), c.Aspect, c.Near, c.Far)
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Project loads the projection matrix and leaves model-view selected.
func (c Camera) Project(p Pipeline) {
	proj := c.Projection()
	p.MatrixMode(Projection)
	p.LoadMatrix((*[16]float64)(&proj))
	p.MatrixMode(ModelView)
	p.LoadIdentity()
}

// Look replaces the model-view matrix with the eye transform and the scene
// rotation.
func (c Camera) Look(p Pipeline) {
	view := c.View()
	p.LoadMatrix((*[16]float64)(&view))
	p.Rotate(float32(c.Angle), 0, 1, 0)
}

func (c Camera) String() string {
	return fmt.Sprintf("Eye: (%.1f, %.1f, %.1f)\nθ: %.4f°\nFov: %.0f°", c.Eye[0], c.Eye[1], c.Eye[2], c.Angle, c.FovDeg)
}
