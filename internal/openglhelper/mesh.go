package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh is a non-indexed triangle list with a single vec3 position attribute
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	vertexCount int32
	shader      *Shader
}

// NewMesh uploads vertices (x, y, z triples) and binds them to attribute 0
func NewMesh(vertices []float32, shader *Shader) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		vertexCount: int32(len(vertices) / 3),
		shader:      shader,
	}
}

// NewFullscreenTriangle creates a single triangle covering the whole clip
// space square. It is clipped to the screen, so every pixel runs the fragment
// shader exactly once.
func NewFullscreenTriangle(shader *Shader) *Mesh {
	vertices := []float32{
		-1, -1, 0,
		3, -1, 0,
		-1, 3, 0,
	}
	return NewMesh(vertices, shader)
}

// Draw renders the mesh
func (m *Mesh) Draw() {
	m.shader.Use()
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}

// Shader returns the program the mesh is drawn with
func (m *Mesh) Shader() *Shader {
	return m.shader
}
