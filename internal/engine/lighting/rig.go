package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/shader"
)

// MaxSceneLights is the most lights a scene may hold. The model program
// declares lights[4], so a larger rig could not be shaded consistently.
const MaxSceneLights = 4

// Rig is the ordered, capped list of scene lights.
type Rig struct {
	lights []*PointLight
}

// NewRig creates an empty rig.
func NewRig() *Rig {
	return &Rig{lights: make([]*PointLight, 0, MaxSceneLights)}
}

// DefaultRig is a white key light in front plus red, blue and green fills.
func DefaultRig() *Rig {
	r := NewRig()
	r.Add(NewPointLight(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{1, 1, 1}, 0.1, 0.8, 1.0))
	r.Add(NewPointLight(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 0.2, 0.2}, 0.1, 0.6, 0.8))
	r.Add(NewPointLight(mgl32.Vec3{-3, 0, 0}, mgl32.Vec3{0.2, 0.2, 1}, 0.1, 0.6, 0.8))
	r.Add(NewPointLight(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0.2, 1, 0.2}, 0.1, 0.6, 0.8))
	return r
}

// Add appends a light. Returns false when the rig is full.
func (r *Rig) Add(l *PointLight) bool {
	if len(r.lights) >= MaxSceneLights {
		return false
	}
	r.lights = append(r.lights, l)
	return true
}

// Clear removes all lights.
func (r *Rig) Clear() {
	r.lights = r.lights[:0]
}

// Len returns the number of lights.
func (r *Rig) Len() int { return len(r.lights) }

// At returns the i-th light.
func (r *Rig) At(i int) *PointLight { return r.lights[i] }

// Lights returns the lights in order. The slice must not be modified.
func (r *Rig) Lights() []*PointLight { return r.lights }

// Upload writes numLights and every light that fits into a bound program
// whose lights array holds capacity entries.
func (r *Rig) Upload(u shader.Uniforms, capacity int) int {
	n := min(len(r.lights), capacity)
	u.SetInt("numLights", int32(n))
	for i := 0; i < n; i++ {
		r.lights[i].UpdateShader(u, i)
	}
	return n
}

// Animate moves the first three lights along their orbits at time t seconds.
// The fourth light stays where it is.
func (r *Rig) Animate(t float32) {
	s := func(x float32) float32 { return float32(math.Sin(float64(x))) }
	c := func(x float32) float32 { return float32(math.Cos(float64(x))) }

	if len(r.lights) > 0 {
		r.lights[0].SetPosition(mgl32.Vec3{s(t) * 3, c(t) * 2, 3})
	}
	if len(r.lights) > 1 {
		r.lights[1].SetPosition(mgl32.Vec3{3, s(t*0.7) * 2, c(t*0.5) * 3})
	}
	if len(r.lights) > 2 {
		r.lights[2].SetPosition(mgl32.Vec3{-3, s(t*0.7) * 2, -c(t*0.5) * 3})
	}
}
