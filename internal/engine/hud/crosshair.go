// Package hud draws screen-space overlays.
package hud

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/gpu"
	"github.com/Faultbox/aimlab/internal/engine/shader"
)

// Crosshair arm lengths in normalized device coordinates.
const (
	CrosshairHalfWidth  = 0.02
	CrosshairHalfHeight = 0.03
	CrosshairLineWidth  = 2
)

// CrosshairColor is a slightly translucent white.
var CrosshairColor = mgl32.Vec4{1, 1, 1, 0.8}

// CrosshairVertices returns the two line segments of a cross centered on
// the screen.
func CrosshairVertices(halfWidth, halfHeight float32) []mgl32.Vec2 {
	return []mgl32.Vec2{
		{-halfWidth, 0}, {halfWidth, 0},
		{0, -halfHeight}, {0, halfHeight},
	}
}

// Crosshair is the aiming reticle.
type Crosshair struct {
	program *shader.Program
	buffers *gpu.Buffers
}

// NewCrosshair uploads the crosshair lines.
func NewCrosshair(program *shader.Program) *Crosshair {
	b := gpu.Upload(CrosshairVertices(CrosshairHalfWidth, CrosshairHalfHeight), nil, gpu.Layout{{Index: 0, Size: 2}})
	b.Mode = gl.LINES
	return &Crosshair{program: program, buffers: b}
}

// Render draws the crosshair on top of everything.
func (c *Crosshair) Render() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	c.program.Use()
	gl.Uniform4fv(c.program.Location("color"), 1, &CrosshairColor[0])
	gl.LineWidth(CrosshairLineWidth)
	c.buffers.Draw()

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Release frees the line buffers.
func (c *Crosshair) Release() {
	c.buffers.Release()
}
