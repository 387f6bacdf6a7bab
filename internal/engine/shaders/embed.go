// Package shaders embeds the GLSL sources of every program the game links.
package shaders

import _ "embed"

// SphereVertex shades vertex-colored spheres with up to 8 attenuated point lights.
//
//go:embed sphere.vert
var SphereVertex string

//go:embed sphere.frag
var SphereFragment string

// ModelVertex is Blinn-Phong model shading with up to 4 lights and an
// optional diffuse texture.
//
//go:embed model.vert
var ModelVertex string

//go:embed model.frag
var ModelFragment string

// SkyboxVertex draws the cubemap sky on the far plane.
//
//go:embed skybox.vert
var SkyboxVertex string

//go:embed skybox.frag
var SkyboxFragment string

// CrosshairVertex draws screen-space lines in a single color.
//
//go:embed crosshair.vert
var CrosshairVertex string

//go:embed crosshair.frag
var CrosshairFragment string

// MarkerVertex draws unlit light markers using the sphere vertex layout.
//
//go:embed marker.vert
var MarkerVertex string

//go:embed marker.frag
var MarkerFragment string
