package shaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Faultbox/aimlab/internal/engine/lighting"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"sphere.vert":    SphereVertex,
		"sphere.frag":    SphereFragment,
		"model.vert":     ModelVertex,
		"model.frag":     ModelFragment,
		"skybox.vert":    SkyboxVertex,
		"skybox.frag":    SkyboxFragment,
		"crosshair.vert": CrosshairVertex,
		"crosshair.frag": CrosshairFragment,
		"marker.vert":    MarkerVertex,
		"marker.frag":    MarkerFragment,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing #version 410 core header", name)
		}
	}
}

func TestLightArrayCapacities(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"sphere", SphereFragment, lighting.MaxSphereShaderLights},
		{"model", ModelFragment, lighting.MaxModelShaderLights},
	}
	for _, tt := range tests {
		def := fmt.Sprintf("#define MAX_LIGHTS %d", tt.want)
		if !strings.Contains(tt.src, def) {
			t.Errorf("%s fragment shader does not declare %q", tt.name, def)
		}
	}
}

func TestSphereShaderUsesAttenuation(t *testing.T) {
	for _, field := range []string{"constant", "linear", "quadratic", "numLights", "viewPos", "shininess"} {
		if !strings.Contains(SphereFragment, field) {
			t.Errorf("sphere.frag missing %q", field)
		}
	}
}
