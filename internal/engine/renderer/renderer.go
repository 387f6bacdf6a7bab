// Package renderer owns the GL context state and the linked shader programs.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/engine/shader"
	"github.com/Faultbox/aimlab/internal/engine/shaders"
	"github.com/Faultbox/aimlab/internal/logger"
)

// ClearColor is the background behind the sky.
var ClearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Programs are the linked shader programs used by a frame.
type Programs struct {
	Sphere    *shader.Program
	Model     *shader.Program
	Skybox    *shader.Program
	Crosshair *shader.Program
	Marker    *shader.Program
}

func (p *Programs) all() []*shader.Program {
	return []*shader.Program{p.Sphere, p.Model, p.Skybox, p.Crosshair, p.Marker}
}

// Renderer handles GL setup and per-frame state.
type Renderer struct {
	config   Config
	Programs Programs
}

// New initializes GL and links every program. It must run on the thread
// that owns the current GL context.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	r := &Renderer{config: cfg}
	if err := r.linkPrograms(); err != nil {
		r.Close()
		return nil, err
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) linkPrograms() error {
	specs := []struct {
		dst      **shader.Program
		name     string
		vertex   string
		fragment string
	}{
		{&r.Programs.Sphere, "sphere", shaders.SphereVertex, shaders.SphereFragment},
		{&r.Programs.Model, "model", shaders.ModelVertex, shaders.ModelFragment},
		{&r.Programs.Skybox, "skybox", shaders.SkyboxVertex, shaders.SkyboxFragment},
		{&r.Programs.Crosshair, "crosshair", shaders.CrosshairVertex, shaders.CrosshairFragment},
		{&r.Programs.Marker, "marker", shaders.MarkerVertex, shaders.MarkerFragment},
	}
	for _, s := range specs {
		p, err := shader.New(s.name, s.vertex, s.fragment)
		if err != nil {
			return err
		}
		*s.dst = p
		logger.Debug("shader program linked", zap.String("name", s.name), zap.Uint32("id", p.ID))
	}
	return nil
}

// Close deletes every program.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, p := range r.Programs.all() {
		p.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the frame. Buffers are swapped by the window.
func (r *Renderer) End() {}

// ReadPixels reads the back buffer as bottom-up RGBA.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
