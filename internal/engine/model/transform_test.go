package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near compares vectors with an absolute tolerance.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func nearMat(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestIdentityTransform(t *testing.T) {
	tr := NewTransform()
	if !nearMat(tr.ModelMatrix(), mgl32.Ident4(), 1e-6) {
		t.Errorf("identity transform = %v", tr.ModelMatrix())
	}
}

func TestEulerAxisMapping(t *testing.T) {
	tests := []struct {
		name  string
		euler mgl32.Vec3
		in    mgl32.Vec3
		want  mgl32.Vec3
	}{
		{"pitch turns about Z", mgl32.Vec3{90, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"yaw turns about Y", mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{"roll turns about X", mgl32.Vec3{0, 0, 90}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{"yaw applied after pitch", mgl32.Vec3{90, 90, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.SetRotation(tt.euler)
			got := transformPoint(tr.ModelMatrix(), tt.in)
			if !near(got, tt.want, 1e-5) {
				t.Errorf("rotated %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTRSOrder(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{10, 0, 0})
	tr.SetRotation(mgl32.Vec3{0, 90, 0})
	tr.SetScale(mgl32.Vec3{2, 2, 2})

	// scale, then rotate (+X -> -Z), then translate
	got := transformPoint(tr.ModelMatrix(), mgl32.Vec3{1, 0, 0})
	if want := (mgl32.Vec3{10, 0, -2}); !near(got, want, 1e-5) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotationModeSwitching(t *testing.T) {
	tr := NewTransform()
	if tr.UsesQuaternion() {
		t.Fatal("new transform in quaternion mode")
	}

	q := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	tr.SetRotationFromQuaternion(q)
	if !tr.UsesQuaternion() {
		t.Fatal("quaternion not authoritative after SetRotationFromQuaternion")
	}
	got := transformPoint(tr.ModelMatrix(), mgl32.Vec3{0, 1, 0})
	if !near(got, mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("quaternion rotation gave %v", got)
	}
	if e := tr.Rotation.Euler(); !near(e, mgl32.Vec3{90, 0, 0}, 1e-3) {
		t.Errorf("Euler() of quaternion = %v, want (90,0,0)", e)
	}

	tr.SetRotation(mgl32.Vec3{})
	if tr.UsesQuaternion() {
		t.Error("SetRotation did not switch back to Euler mode")
	}
	if !nearMat(tr.ModelMatrix(), mgl32.Ident4(), 1e-6) {
		t.Error("stale quaternion still applied after SetRotation")
	}
}
