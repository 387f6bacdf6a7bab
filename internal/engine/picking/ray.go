// Package picking casts rays into the scene and tests them against spheres.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line Origin + t*Direction, t > 0.
// Direction is not required to be unit length; t is measured in multiples of it.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay returns a ray with a normalized direction, so t is a world distance.
func NewRay(origin, direction mgl32.Vec3) Ray {
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// CameraRay shoots through the screen center along the camera's front vector.
func CameraRay(position, front mgl32.Vec3) Ray {
	return NewRay(position, front)
}

// At returns the point at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay unprojects a pixel into a world-space ray.
// invViewProj is the inverse of projection*view. The direction is normalized.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	if near[3] != 0 {
		near = near.Mul(1 / near[3])
	}
	if far[3] != 0 {
		far = far.Mul(1 / far[3])
	}

	return NewRay(near.Vec3(), far.Vec3().Sub(near.Vec3()))
}
