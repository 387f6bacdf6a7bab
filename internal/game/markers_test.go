package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/lighting"
)

func TestLightMarkersFollowLightsWithoutRegenerating(t *testing.T) {
	rig := lighting.DefaultRig()
	markers := NewLightMarkers(rig)
	if len(markers) != rig.Len() {
		t.Fatalf("got %d markers, want %d", len(markers), rig.Len())
	}

	before := make([][]mgl32.Vec3, len(markers))
	for i, m := range markers {
		if m.Color() != rig.At(i).Color() {
			t.Errorf("marker %d color %v, want %v", i, m.Color(), rig.At(i).Color())
		}
		before[i] = []mgl32.Vec3{m.Vertices()[0].Position, m.Vertices()[len(m.Vertices())-1].Position}
	}

	for _, tm := range []float32{0, 1.3, 7.5} {
		rig.Animate(tm)
		transforms := markers.Transforms(rig)
		if len(transforms) != len(markers) {
			t.Fatalf("got %d transforms, want %d", len(transforms), len(markers))
		}
		for i, m := range markers {
			if m.Uploaded() {
				t.Errorf("marker %d uploaded without a GL context", i)
			}
			if m.Position() != (mgl32.Vec3{}) {
				t.Errorf("marker %d mesh moved to %v", i, m.Position())
			}
			if m.Vertices()[0].Position != before[i][0] || m.Vertices()[len(m.Vertices())-1].Position != before[i][1] {
				t.Errorf("marker %d vertices regenerated", i)
			}
			want := rig.At(i).Position()
			if got := transforms[i].Col(3).Vec3(); got != want {
				t.Errorf("t=%v marker %d placed at %v, want %v", tm, i, got, want)
			}
		}
	}
}

func TestLightMarkersTransformsStopAtRigLength(t *testing.T) {
	rig := lighting.DefaultRig()
	markers := NewLightMarkers(rig)
	rig.Clear()
	if n := len(markers.Transforms(rig)); n != 0 {
		t.Errorf("got %d transforms for an empty rig", n)
	}
}
