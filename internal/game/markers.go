package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/lighting"
	"github.com/Faultbox/aimlab/internal/engine/shader"
	"github.com/Faultbox/aimlab/internal/engine/sphere"
)

// Light marker tessellation.
const (
	MarkerRadius  = 0.1
	markerSectors = 8
	markerStacks  = 6
)

// LightMarkers are small emissive spheres, one per light. Each is built once
// at the origin in its light's color and placed through the model matrix, so
// animated lights never touch the marker buffers.
type LightMarkers []*sphere.Sphere

// NewLightMarkers builds a marker for every light in rig.
func NewLightMarkers(rig *lighting.Rig) LightMarkers {
	markers := make(LightMarkers, 0, rig.Len())
	for _, l := range rig.Lights() {
		m := sphere.MustNew(mgl32.Vec3{}, MarkerRadius, markerSectors, markerStacks)
		m.SetColor(l.Color())
		markers = append(markers, m)
	}
	return markers
}

// Transforms returns the model matrix for each marker at the rig's current
// light positions.
func (lm LightMarkers) Transforms(rig *lighting.Rig) []mgl32.Mat4 {
	out := make([]mgl32.Mat4, 0, len(lm))
	for i := range lm {
		if i >= rig.Len() {
			break
		}
		p := rig.At(i).Position()
		out = append(out, mgl32.Translate3D(p[0], p[1], p[2]))
	}
	return out
}

// Render draws every marker at its light.
func (lm LightMarkers) Render(program *shader.Program, rig *lighting.Rig, view, projection mgl32.Mat4) {
	for i, model := range lm.Transforms(rig) {
		lm[i].RenderTransformed(program, model, view, projection)
	}
}

// Release frees every marker's buffers.
func (lm LightMarkers) Release() {
	for _, m := range lm {
		m.Release()
	}
}
