// Package gpu owns vertex array, vertex buffer and element buffer handles.
//
// Buffers is acquired with Upload and released with Release. Release zeroes
// the handles, so releasing twice is harmless and a released value can be
// replaced by a fresh Upload.
package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attrib describes one float vertex attribute inside an interleaved record.
type Attrib struct {
	Index  uint32
	Size   int32 // float components
	Offset uintptr
}

// Layout is the interleaved vertex format of a buffer.
type Layout []Attrib

// Buffers is the GPU side of one mesh.
type Buffers struct {
	VAO uint32
	VBO uint32
	EBO uint32

	Mode        uint32 // primitive, gl.TRIANGLES unless set otherwise
	IndexCount  int32
	VertexCount int32
}

// Upload creates a VAO/VBO (and an EBO when indices is non-empty) holding
// vertices with the given layout. Data is uploaded once with STATIC_DRAW.
// Empty vertex data yields zero handles and Draw becomes a no-op.
func Upload[V any](vertices []V, indices []uint32, layout Layout) *Buffers {
	b := &Buffers{Mode: gl.TRIANGLES}
	if len(vertices) == 0 {
		return b
	}

	var zero V
	stride := int32(unsafe.Sizeof(zero))

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &b.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	for _, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
	}

	gl.BindVertexArray(0)

	b.IndexCount = int32(len(indices))
	b.VertexCount = int32(len(vertices))
	return b
}

// Valid reports whether the buffers hold live GPU handles.
func (b *Buffers) Valid() bool {
	return b != nil && b.VAO != 0
}

// Draw binds the vertex array and issues one draw call, indexed when an
// element buffer exists.
func (b *Buffers) Draw() {
	if !b.Valid() {
		return
	}
	gl.BindVertexArray(b.VAO)
	if b.EBO != 0 {
		gl.DrawElements(b.Mode, b.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(b.Mode, 0, b.VertexCount)
	}
	gl.BindVertexArray(0)
}

// Release deletes every handle still held. Safe on nil and on repeat calls.
func (b *Buffers) Release() {
	if b == nil {
		return
	}
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
		b.EBO = 0
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
		b.VBO = 0
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
	b.IndexCount = 0
	b.VertexCount = 0
}
