package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near compares vectors with an absolute tolerance.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestIntersectSphere(t *testing.T) {
	forward := mgl32.Vec3{0, 0, -1}

	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		center mgl32.Vec3
		radius float32
		hit    bool
		t      float32
	}{
		{"in front", mgl32.Vec3{}, forward, mgl32.Vec3{0, 0, -5}, 1, true, 4},
		{"behind origin", mgl32.Vec3{}, forward, mgl32.Vec3{0, 0, 5}, 1, false, 0},
		{"passes beside", mgl32.Vec3{}, forward, mgl32.Vec3{2, 0, -5}, 1, false, 0},
		{"origin inside returns exit", mgl32.Vec3{}, forward, mgl32.Vec3{}, 1, true, 1},
		{"grazing tangent", mgl32.Vec3{}, forward, mgl32.Vec3{1, 0, -5}, 1, true, 5},
		{"unnormalized direction", mgl32.Vec3{}, mgl32.Vec3{0, 0, -2}, mgl32.Vec3{0, 0, -5}, 1, true, 2},
		{"zero direction", mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -5}, 1, false, 0},
		{"camera start vs test sphere", mgl32.Vec3{0, 0, 3}, forward, mgl32.Vec3{0, 0, -2}, 0.5, true, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := IntersectSphere(tt.origin, tt.dir, tt.center, tt.radius)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && !approx(got, tt.t) {
				t.Errorf("t = %v, want %v", got, tt.t)
			}
		})
	}
}

type ball struct {
	pos mgl32.Vec3
	r   float32
}

func (b ball) Position() mgl32.Vec3 { return b.pos }
func (b ball) Radius() float32      { return b.r }

func TestNearestPicksSmallestT(t *testing.T) {
	r := NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	balls := []ball{
		{mgl32.Vec3{0, 0, -8}, 1}, // t=7
		{mgl32.Vec3{0, 0, -4}, 1}, // t=3
		{mgl32.Vec3{5, 0, -4}, 1}, // miss
	}

	hit, ok := Nearest(r, balls, 0)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Index != 1 || !approx(hit.T, 3) {
		t.Errorf("hit = %+v, want index 1 at t=3", hit)
	}
	if !near(hit.Point, mgl32.Vec3{0, 0, -3}, 1e-4) {
		t.Errorf("point = %v", hit.Point)
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	r := NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	balls := []ball{
		{mgl32.Vec3{0, 0, -4}, 1},
		{mgl32.Vec3{0, 0, -4}, 1},
	}
	hit, ok := Nearest(r, balls, 0)
	if !ok || hit.Index != 0 {
		t.Errorf("hit = %+v, want index 0", hit)
	}
}

func TestNearestPadding(t *testing.T) {
	r := NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	balls := []ball{{mgl32.Vec3{1.5, 0, -5}, 1}}

	if _, ok := Nearest(r, balls, 0); ok {
		t.Error("hit without padding")
	}
	if _, ok := Nearest(r, balls, 1); !ok {
		t.Error("missed with padding 1")
	}
}

func TestNearestEmpty(t *testing.T) {
	hit, ok := Nearest[ball](NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}), nil, 0)
	if ok || hit.Index != -1 {
		t.Errorf("hit = %+v, ok = %v", hit, ok)
	}
}

func TestNewRayNormalizes(t *testing.T) {
	r := NewRay(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 3, 4})
	if !approx(r.Direction.Len(), 1) {
		t.Errorf("|dir| = %v", r.Direction.Len())
	}
	if p := r.At(5); !near(p, mgl32.Vec3{1, 4, 5}, 1e-4) {
		t.Errorf("At(5) = %v", p)
	}
}

func TestScreenToRayCenter(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 3}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	inv := proj.Mul4(view).Inv()

	r := ScreenToRay(400, 300, 800, 600, inv)
	if !near(r.Direction, mgl32.Vec3{0, 0, -1}, 1e-3) {
		t.Errorf("direction = %v, want (0,0,-1)", r.Direction)
	}
	if !approx(r.Origin.X(), 0) || !approx(r.Origin.Y(), 0) {
		t.Errorf("origin = %v", r.Origin)
	}

	left := ScreenToRay(0, 300, 800, 600, inv)
	if left.Direction.X() >= 0 {
		t.Errorf("left edge ray points right: %v", left.Direction)
	}
}

func TestCameraRayHitsTestSphere(t *testing.T) {
	r := CameraRay(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -2})
	got, ok := r.IntersectSphere(mgl32.Vec3{0, 0, -2}, 0.5)
	if !ok || !approx(got, 4.5) {
		t.Errorf("camera ray t = %v (hit %v), want 4.5", got, ok)
	}
}
