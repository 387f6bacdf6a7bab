package skybox

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/engine/gpu"
	"github.com/Faultbox/aimlab/internal/engine/shader"
)

// HalfSize is half the edge length of the sky cube.
const HalfSize = 10

// CubeVertices returns the eight corners of the sky cube.
func CubeVertices() []mgl32.Vec3 {
	const s = HalfSize
	return []mgl32.Vec3{
		{-s, s, -s},
		{-s, -s, -s},
		{s, -s, -s},
		{s, s, -s},
		{-s, -s, s},
		{-s, s, s},
		{s, -s, s},
		{s, s, s},
	}
}

// CubeIndices returns 12 inward-facing triangles over CubeVertices.
func CubeIndices() []uint32 {
	return []uint32{
		0, 1, 3, 3, 1, 2, // back
		5, 1, 0, 5, 4, 1, // left
		7, 6, 4, 7, 4, 5, // front
		3, 2, 7, 7, 2, 6, // right
		5, 0, 7, 7, 0, 3, // top
		1, 4, 2, 2, 4, 6, // bottom
	}
}

// Skybox is the sky cube, its cubemap and its program.
type Skybox struct {
	cubemap *Cubemap
	program *shader.Program
	buffers *gpu.Buffers
}

// New uploads the sky cube. The skybox takes ownership of cubemap.
func New(program *shader.Program, cubemap *Cubemap) *Skybox {
	buffers := gpu.Upload(CubeVertices(), CubeIndices(), gpu.Layout{{Index: 0, Size: 3}})

	program.Use()
	program.SetInt("skybox", 0)

	return &Skybox{cubemap: cubemap, program: program, buffers: buffers}
}

// Cubemap returns the sky texture.
func (s *Skybox) Cubemap() *Cubemap { return s.cubemap }

// Render draws the sky. view must have its translation removed. Depth
// testing uses LEQUAL so the sky passes at the far plane.
func (s *Skybox) Render(view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	s.program.Use()
	s.program.SetMat4("view", view)
	s.program.SetMat4("projection", projection)
	s.cubemap.Bind()
	s.buffers.Draw()
	gl.DepthFunc(gl.LESS)
}

// Release frees the cube buffers and the cubemap.
func (s *Skybox) Release() {
	s.buffers.Release()
	s.cubemap.Release()
}
