// Package model loads OBJ meshes and draws them with a TRS transform.
package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved model vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Default attribute values for face corners that do not reference one.
var (
	DefaultNormal   = mgl32.Vec3{0, 1, 0}
	DefaultTexCoord = mgl32.Vec2{0, 0}
)

// MeshData is the CPU side of one mesh: a flat triangle list where every
// face corner owns its own vertex.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Triangles returns the number of triangles in the mesh.
func (d *MeshData) Triangles() int { return len(d.Indices) / 3 }

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Size returns the extent along each axis.
func (b Bounds) Size() mgl32.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

func boundsOf(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	return b
}

// Stats counts what a parse saw.
type Stats struct {
	Positions int
	Normals   int
	TexCoords int

	Faces      int // face lines that produced triangles
	Polygons   int // faces with more than three corners, fan-triangulated
	Skipped    int // faces with fewer than three corners
	BadNumbers int // malformed numbers replaced by zero or dropped

	Vertices int
	Indices  int
}
