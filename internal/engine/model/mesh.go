package model

import (
	"unsafe"

	"github.com/Faultbox/aimlab/internal/engine/gpu"
)

var layout = gpu.Layout{
	{Index: 0, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Position)},
	{Index: 1, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Normal)},
	{Index: 2, Size: 2, Offset: unsafe.Offsetof(Vertex{}.TexCoord)},
}

// Mesh is a MeshData uploaded once to the GPU.
type Mesh struct {
	Name   string
	Bounds Bounds

	indexCount int
	buffers    *gpu.Buffers
}

// NewMesh uploads d with static draw usage.
func NewMesh(d MeshData) *Mesh {
	return &Mesh{
		Name:       d.Name,
		Bounds:     d.Bounds,
		indexCount: len(d.Indices),
		buffers:    gpu.Upload(d.Vertices, d.Indices, layout),
	}
}

// IndexCount returns the number of indices drawn.
func (m *Mesh) IndexCount() int { return m.indexCount }

// Draw binds the mesh and issues an indexed draw with whatever program and
// uniforms are current.
func (m *Mesh) Draw() {
	m.buffers.Draw()
}

// Release frees the GPU buffers. Later calls do nothing.
func (m *Mesh) Release() {
	m.buffers.Release()
}
