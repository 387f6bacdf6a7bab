// Package camera implements the first-person fly camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped to this many degrees above or below the horizon.
const MaxPitch = 89.0

// Movement is a bit set of held movement keys.
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

// FlyCamera looks along Front, derived from yaw and pitch in degrees.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32
	Pitch float32

	Sensitivity float32 // degrees per pixel of mouse motion
	Speed       float32 // world units per second

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

// NewFlyCamera places a camera at position looking down -Z.
func NewFlyCamera(position mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Sensitivity: 0.1,
		Speed:       2.5,
		FOV:         45,
		Near:        0.1,
		Far:         100,
	}
	c.updateFront()
	return c
}

// Look applies relative mouse motion in pixels. Positive dy is downward.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateFront()
}

func (c *FlyCamera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right is the unit vector to the camera's right.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Move advances the camera for dt seconds. Forward follows Front, including
// its vertical component.
func (c *FlyCamera) Move(m Movement, dt float32) {
	step := c.Speed * dt
	if m&MoveForward != 0 {
		c.Position = c.Position.Add(c.Front.Mul(step))
	}
	if m&MoveBackward != 0 {
		c.Position = c.Position.Sub(c.Front.Mul(step))
	}
	if m&MoveLeft != 0 {
		c.Position = c.Position.Sub(c.Right().Mul(step))
	}
	if m&MoveRight != 0 {
		c.Position = c.Position.Add(c.Right().Mul(step))
	}
}

// ViewMatrix looks from Position along Front.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxViewMatrix is the view matrix with translation removed.
func (c *FlyCamera) SkyboxViewMatrix() mgl32.Mat4 {
	return c.ViewMatrix().Mat3().Mat4()
}

// ProjectionMatrix is a perspective projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HeldOffset returns a point in front of the camera expressed in camera
// space: right, up and forward distances.
func (c *FlyCamera) HeldOffset(right, up, forward float32) mgl32.Vec3 {
	return c.Position.
		Add(c.Right().Mul(right)).
		Add(c.Up.Mul(up)).
		Add(c.Front.Mul(forward))
}
