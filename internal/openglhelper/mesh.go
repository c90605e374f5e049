package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh represents indexed vertex geometry bound to a VAO
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh creates a new mesh from interleaved vertex data and indices.
// The vertex layout is clip-space position (2 floats) followed by texture
// coordinates (2 floats).
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (2 floats)
	vao.SetVertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, 0)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, 2*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// NewFullscreenQuad creates a two-triangle quad covering the whole viewport
// in clip space, with texture coordinates running (0,0) to (1,1).
func NewFullscreenQuad() *Mesh {
	vertices := []float32{
		// x, y, u, v
		-1.0, -1.0, 0.0, 0.0, // Bottom-left
		1.0, -1.0, 1.0, 0.0, // Bottom-right
		1.0, 1.0, 1.0, 1.0, // Top-right
		-1.0, 1.0, 0.0, 1.0, // Top-left
	}

	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	return NewMesh(vertices, indices)
}

// Draw renders the mesh. The caller is expected to have the shader program
// and its uniforms set up already.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
