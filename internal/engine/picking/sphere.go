package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// IntersectSphere solves |origin + t*dir - center| = radius for the nearest
// root in front of the origin. When the origin is inside the sphere the exit
// root is returned. dir need not be normalized.
func IntersectSphere(origin, dir, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	if a == 0 {
		return 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := float32(math.Sqrt(float64(disc)))
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t := t2
	if t1 > 0 {
		t = t1
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// IntersectSphere tests the ray against a sphere.
func (r Ray) IntersectSphere(center mgl32.Vec3, radius float32) (float32, bool) {
	return IntersectSphere(r.Origin, r.Direction, center, radius)
}

// Target is anything hit-testable as a sphere.
type Target interface {
	Position() mgl32.Vec3
	Radius() float32
}

// Hit is the result of a successful pick.
type Hit struct {
	Index int
	T     float32
	Point mgl32.Vec3
}

// Nearest returns the target with the smallest hit t. padding is added to
// every radius. Ties keep the earliest target in the slice.
func Nearest[T Target](r Ray, targets []T, padding float32) (Hit, bool) {
	best := Hit{Index: -1, T: float32(math.MaxFloat32)}
	for i, tgt := range targets {
		t, ok := r.IntersectSphere(tgt.Position(), tgt.Radius()+padding)
		if ok && t < best.T {
			best.Index = i
			best.T = t
		}
	}
	if best.Index < 0 {
		return Hit{Index: -1}, false
	}
	best.Point = r.At(best.T)
	return best, true
}
