package hud

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCrosshairVertices(t *testing.T) {
	v := CrosshairVertices(CrosshairHalfWidth, CrosshairHalfHeight)
	want := []mgl32.Vec2{{-0.02, 0}, {0.02, 0}, {0, -0.03}, {0, 0.03}}
	if len(v) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(v), len(want))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v[i], want[i])
		}
	}
}
