package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotation is either an EulerRotation or a QuatRotation. Whichever value is
// stored in a Transform is the authoritative orientation.
type Rotation interface {
	Quat() mgl32.Quat
	Euler() mgl32.Vec3
	isRotation()
}

// EulerRotation holds (pitch, yaw, roll) in degrees. Pitch turns about Z,
// yaw about Y and roll about X, composed as yaw * pitch * roll.
type EulerRotation mgl32.Vec3

// Quat converts the angles to a quaternion.
func (e EulerRotation) Quat() mgl32.Quat {
	pitch := mgl32.QuatRotate(mgl32.DegToRad(e[0]), mgl32.Vec3{0, 0, 1})
	yaw := mgl32.QuatRotate(mgl32.DegToRad(e[1]), mgl32.Vec3{0, 1, 0})
	roll := mgl32.QuatRotate(mgl32.DegToRad(e[2]), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Mul(roll)
}

// Euler returns the stored angles.
func (e EulerRotation) Euler() mgl32.Vec3 { return mgl32.Vec3(e) }

func (EulerRotation) isRotation() {}

// QuatRotation is an orientation given directly as a quaternion.
type QuatRotation mgl32.Quat

// Quat returns the stored quaternion, normalized.
func (q QuatRotation) Quat() mgl32.Quat { return mgl32.Quat(q).Normalize() }

// Euler returns the quaternion as X, Y, Z angles in degrees. Display only.
func (q QuatRotation) Euler() mgl32.Vec3 {
	n := mgl32.Quat(q).Normalize()
	w, x, y, z := float64(n.W), float64(n.V[0]), float64(n.V[1]), float64(n.V[2])

	ax := math.Atan2(2*(y*z+w*x), w*w-x*x-y*y+z*z)
	ay := math.Asin(math.Max(-1, math.Min(1, -2*(x*z-w*y))))
	az := math.Atan2(2*(x*y+w*z), w*w+x*x-y*y-z*z)

	return mgl32.Vec3{
		mgl32.RadToDeg(float32(ax)),
		mgl32.RadToDeg(float32(ay)),
		mgl32.RadToDeg(float32(az)),
	}
}

func (QuatRotation) isRotation() {}

// Transform places a model in the world.
type Transform struct {
	Position mgl32.Vec3
	Rotation Rotation
	Scale    mgl32.Vec3
}

// NewTransform is the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: EulerRotation{},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) SetPosition(p mgl32.Vec3) { t.Position = p }
func (t *Transform) SetScale(s mgl32.Vec3)    { t.Scale = s }

// SetRotation sets Euler angles in degrees and makes them authoritative.
func (t *Transform) SetRotation(pitchYawRoll mgl32.Vec3) {
	t.Rotation = EulerRotation(pitchYawRoll)
}

// SetRotationFromQuaternion makes q the authoritative orientation.
func (t *Transform) SetRotationFromQuaternion(q mgl32.Quat) {
	t.Rotation = QuatRotation(q)
}

// UsesQuaternion reports whether the orientation is held as a quaternion.
func (t *Transform) UsesQuaternion() bool {
	_, ok := t.Rotation.(QuatRotation)
	return ok
}

// ModelMatrix composes translation * rotation * scale.
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	rot := mgl32.Ident4()
	if t.Rotation != nil {
		rot = t.Rotation.Quat().Mat4()
	}
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}
