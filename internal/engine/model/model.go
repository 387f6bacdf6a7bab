package model

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/engine/shader"
	"github.com/Faultbox/aimlab/internal/logger"
)

// Model is a set of meshes sharing one transform.
type Model struct {
	Transform

	Meshes []*Mesh
	Path   string
}

// New returns an empty model with an identity transform.
func New() *Model {
	return &Model{Transform: NewTransform()}
}

// Load parses and uploads the OBJ file at path. It never fails: a missing
// or empty file is logged and yields a model with no meshes.
func Load(path string) *Model {
	m := New()
	m.Path = path

	res, err := ParseFile(path)
	if err != nil {
		if errors.Is(err, ErrNoFaces) {
			logger.Warn("model has no faces", zap.String("path", path))
		} else {
			logger.Warn("failed to load model", zap.String("path", path), zap.Error(err))
		}
		return m
	}

	logger.Info("loaded model",
		zap.String("path", path),
		zap.Int("positions", res.Stats.Positions),
		zap.Int("normals", res.Stats.Normals),
		zap.Int("texcoords", res.Stats.TexCoords),
		zap.Int("vertices", res.Stats.Vertices),
		zap.Int("indices", res.Stats.Indices),
		zap.Int("meshes", len(res.Meshes)),
	)
	if res.Stats.Polygons > 0 || res.Stats.Skipped > 0 || res.Stats.BadNumbers > 0 {
		logger.Warn("model needed repairs",
			zap.String("path", path),
			zap.Int("triangulated", res.Stats.Polygons),
			zap.Int("skipped_faces", res.Stats.Skipped),
			zap.Int("bad_numbers", res.Stats.BadNumbers),
		)
	}

	m.Meshes = make([]*Mesh, 0, len(res.Meshes))
	for _, d := range res.Meshes {
		m.Meshes = append(m.Meshes, NewMesh(d))
	}
	return m
}

// Empty reports whether the model has nothing to draw.
func (m *Model) Empty() bool { return len(m.Meshes) == 0 }

// Draw binds program, sets the model, view and projection matrices and draws
// every mesh. Lighting and material uniforms are the caller's job.
func (m *Model) Draw(program *shader.Program, view, projection mgl32.Mat4) {
	program.Use()
	program.SetMat4("model", m.ModelMatrix())
	program.SetMat4("view", view)
	program.SetMat4("projection", projection)
	for _, mesh := range m.Meshes {
		mesh.Draw()
	}
}

// Release frees every mesh.
func (m *Model) Release() {
	for _, mesh := range m.Meshes {
		mesh.Release()
	}
	m.Meshes = nil
}
