// Package sphere builds and draws procedurally generated UV spheres.
package sphere

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/engine/gpu"
	"github.com/Faultbox/aimlab/internal/engine/shader"
	"github.com/Faultbox/aimlab/internal/logger"
)

// Default tessellation.
const (
	DefaultSectors = 36
	DefaultStacks  = 18
)

// ErrInvalidTessellation is returned for radius <= 0, sectors < 3 or stacks < 2.
var ErrInvalidTessellation = errors.New("invalid sphere tessellation")

var layout = gpu.Layout{
	{Index: 0, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Position)},
	{Index: 1, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Normal)},
	{Index: 2, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
}

// Sphere is a colored UV sphere. Every mutation regenerates the whole mesh
// and, once uploaded, replaces the GPU buffers, so the drawn data always
// matches the last (position, radius, color, sectors, stacks).
type Sphere struct {
	position mgl32.Vec3
	radius   float32
	color    mgl32.Vec3
	sectors  int
	stacks   int

	vertices []Vertex
	indices  []uint32
	buffers  *gpu.Buffers
}

// New creates a white sphere. No GPU work happens until Setup or Render.
func New(position mgl32.Vec3, radius float32, sectors, stacks int) (*Sphere, error) {
	if err := validate(radius, sectors, stacks); err != nil {
		return nil, err
	}
	s := &Sphere{
		position: position,
		radius:   radius,
		color:    mgl32.Vec3{1, 1, 1},
		sectors:  sectors,
		stacks:   stacks,
	}
	s.regenerate()
	return s, nil
}

// MustNew is New for constant arguments. It panics on invalid tessellation.
func MustNew(position mgl32.Vec3, radius float32, sectors, stacks int) *Sphere {
	s, err := New(position, radius, sectors, stacks)
	if err != nil {
		panic(err)
	}
	return s
}

func validate(radius float32, sectors, stacks int) error {
	if radius <= 0 || sectors < 3 || stacks < 2 {
		return fmt.Errorf("%w: radius=%g sectors=%d stacks=%d", ErrInvalidTessellation, radius, sectors, stacks)
	}
	return nil
}

func (s *Sphere) Position() mgl32.Vec3 { return s.position }
func (s *Sphere) Radius() float32      { return s.radius }
func (s *Sphere) Color() mgl32.Vec3    { return s.color }
func (s *Sphere) Sectors() int         { return s.sectors }
func (s *Sphere) Stacks() int          { return s.stacks }

// Vertices returns the CPU-side vertex data. Callers must not modify it.
func (s *Sphere) Vertices() []Vertex { return s.vertices }

// Indices returns the CPU-side index data. Callers must not modify it.
func (s *Sphere) Indices() []uint32 { return s.indices }

func (s *Sphere) VertexCount() int { return len(s.vertices) }
func (s *Sphere) IndexCount() int  { return len(s.indices) }

// Uploaded reports whether GPU buffers are held.
func (s *Sphere) Uploaded() bool { return s.buffers.Valid() }

// SetPosition moves the sphere.
func (s *Sphere) SetPosition(p mgl32.Vec3) {
	s.position = p
	s.rebuild()
}

// SetRadius resizes the sphere. Non-positive radii are ignored.
func (s *Sphere) SetRadius(r float32) {
	if r <= 0 {
		logger.Warn("ignoring non-positive sphere radius", zap.Float32("radius", r))
		return
	}
	s.radius = r
	s.rebuild()
}

// SetColor recolors every vertex.
func (s *Sphere) SetColor(c mgl32.Vec3) {
	s.color = c
	s.rebuild()
}

// Set changes position, radius and color with a single regeneration.
func (s *Sphere) Set(position mgl32.Vec3, radius float32, color mgl32.Vec3) {
	s.position = position
	if radius > 0 {
		s.radius = radius
	} else {
		logger.Warn("ignoring non-positive sphere radius", zap.Float32("radius", radius))
	}
	s.color = color
	s.rebuild()
}

func (s *Sphere) regenerate() {
	s.vertices, s.indices = Generate(s.position, s.radius, s.sectors, s.stacks, s.color)
}

func (s *Sphere) rebuild() {
	s.regenerate()
	if s.buffers.Valid() {
		s.Setup()
	}
}

// Setup uploads the current mesh, releasing any previous buffers first.
func (s *Sphere) Setup() {
	s.buffers.Release()
	s.buffers = gpu.Upload(s.vertices, s.indices, layout)
}

// Render draws the sphere with program, uploading on first use. The model
// matrix is identity because positions already carry the center offset.
// Lighting and material uniforms are the caller's job.
func (s *Sphere) Render(program *shader.Program, view, projection mgl32.Mat4) {
	s.RenderTransformed(program, mgl32.Ident4(), view, projection)
}

// RenderTransformed draws the sphere with an explicit model matrix. Moving a
// sphere this way leaves its buffers alone.
func (s *Sphere) RenderTransformed(program *shader.Program, model, view, projection mgl32.Mat4) {
	if !s.buffers.Valid() {
		s.Setup()
	}
	program.Use()
	program.SetMat4("model", model)
	program.SetMat4("view", view)
	program.SetMat4("projection", projection)
	s.buffers.Draw()
}

// Release frees the GPU buffers. The sphere can be drawn again afterwards,
// which re-uploads it.
func (s *Sphere) Release() {
	s.buffers.Release()
	s.buffers = nil
}
