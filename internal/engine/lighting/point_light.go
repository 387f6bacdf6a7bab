// Package lighting holds the point lights shaded by the sphere and model programs.
package lighting

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/shader"
)

// Shader array capacities. numLights must never exceed the capacity of the
// program it is written to.
const (
	MaxSphereShaderLights = 8
	MaxModelShaderLights  = 4
)

// Attenuation defaults, tuned for a visible range of roughly 50 units.
const (
	DefaultConstant  = 1.0
	DefaultLinear    = 0.09
	DefaultQuadratic = 0.032
)

// PointLight is an attenuated point light.
type PointLight struct {
	position mgl32.Vec3
	color    mgl32.Vec3

	ambient  float32
	diffuse  float32
	specular float32

	constant  float32
	linear    float32
	quadratic float32
}

// NewPointLight creates a light with default attenuation.
func NewPointLight(position, color mgl32.Vec3, ambient, diffuse, specular float32) *PointLight {
	return &PointLight{
		position:  position,
		color:     color,
		ambient:   ambient,
		diffuse:   diffuse,
		specular:  specular,
		constant:  DefaultConstant,
		linear:    DefaultLinear,
		quadratic: DefaultQuadratic,
	}
}

// DefaultPointLight is a white light at the origin.
func DefaultPointLight() *PointLight {
	return NewPointLight(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 0.1, 0.8, 1.0)
}

func (l *PointLight) Position() mgl32.Vec3 { return l.position }
func (l *PointLight) Color() mgl32.Vec3    { return l.color }
func (l *PointLight) Ambient() float32     { return l.ambient }
func (l *PointLight) Diffuse() float32     { return l.diffuse }
func (l *PointLight) Specular() float32    { return l.specular }

// Attenuation returns the constant, linear and quadratic falloff terms.
func (l *PointLight) Attenuation() (constant, linear, quadratic float32) {
	return l.constant, l.linear, l.quadratic
}

func (l *PointLight) SetPosition(p mgl32.Vec3) { l.position = p }
func (l *PointLight) SetColor(c mgl32.Vec3)    { l.color = c }
func (l *PointLight) SetAmbient(v float32)     { l.ambient = v }
func (l *PointLight) SetDiffuse(v float32)     { l.diffuse = v }
func (l *PointLight) SetSpecular(v float32)    { l.specular = v }

// SetAttenuation replaces all three falloff terms. Values are not validated.
func (l *PointLight) SetAttenuation(constant, linear, quadratic float32) {
	l.constant = constant
	l.linear = linear
	l.quadratic = quadratic
}

// UpdateShader writes the light into lights[index] of a bound program.
// index must be inside the program's array bound.
func (l *PointLight) UpdateShader(u shader.Uniforms, index int) {
	u.SetVec3(UniformName(index, "position"), l.position)
	u.SetVec3(UniformName(index, "color"), l.color)
	u.SetFloat(UniformName(index, "ambient"), l.ambient)
	u.SetFloat(UniformName(index, "diffuse"), l.diffuse)
	u.SetFloat(UniformName(index, "specular"), l.specular)
	u.SetFloat(UniformName(index, "constant"), l.constant)
	u.SetFloat(UniformName(index, "linear"), l.linear)
	u.SetFloat(UniformName(index, "quadratic"), l.quadratic)
}

// UniformName returns "lights[index].field".
func UniformName(index int, field string) string {
	return "lights[" + strconv.Itoa(index) + "]." + field
}
