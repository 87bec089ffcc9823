// Package glbackend implements renderer.Backend on OpenGL 4.1 core.
package glbackend

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/engine/mesh"
	"github.com/Faultbox/spaceglobe/internal/engine/renderer"
	"github.com/Faultbox/spaceglobe/internal/engine/shader"
	"github.com/Faultbox/spaceglobe/internal/engine/shaders"
	"github.com/Faultbox/spaceglobe/internal/logger"
)

// Backend draws the globe with a VAO, an index buffer and one texture.
// gl.Init must have been called on the current context.
type Backend struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	texture uint32
}

// New returns an uninitialised backend.
func New() *Backend {
	return &Backend{}
}

// Init sets the pipeline state and compiles the globe program.
func (b *Backend) Init() error {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	p, err := shader.Compile(shaders.GlobeVertexShader, shaders.GlobeFragmentShader)
	if err != nil {
		return fmt.Errorf("globe shader: %w", err)
	}
	b.program = p
	return nil
}

// UploadMesh creates the VAO/VBO/EBO for m.
func (b *Backend) UploadMesh(m *mesh.Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("empty mesh")
	}
	stride := int32(unsafe.Sizeof(mesh.Vertex{}))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	b.indexCount = int32(len(m.Indices))

	logger.Debug("sphere mesh uploaded",
		zap.Uint32("vao", b.vao),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", b.indexCount),
	)
	return nil
}

// UploadTexture uploads img with linear filtering, or a white 1x1 texture when img is nil.
func (b *Backend) UploadTexture(img *image.RGBA) error {
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
		copy(img.Pix, []uint8{255, 255, 255, 255})
	}
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glTexImage2D %dx%d: error 0x%x", w, h, code)
	}
	logger.Debug("globe texture uploaded", zap.Uint32("id", b.texture), zap.Int32("width", w), zap.Int32("height", h))
	return nil
}

// Viewport sets the GL viewport.
func (b *Backend) Viewport(s renderer.Surface) {
	gl.Viewport(0, 0, int32(s.Width), int32(s.Height))
}

// Draw clears and draws one frame.
func (b *Backend) Draw(f renderer.FrameState) {
	c := f.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	if b.vao == 0 || b.program == nil {
		return
	}

	modelView := f.ModelView()
	projection := f.Projection

	b.program.Use()
	b.program.SetMat4("uModelView", modelView.Ptr())
	b.program.SetMat4("uProjection", projection.Ptr())
	b.program.SetVec3("uLightDir", f.LightDir.Array())
	b.program.SetFloat("uAmbient", f.Ambient)
	b.program.SetVec4("uBaseColor", f.BaseColor)
	b.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)

	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Release frees the GL objects.
func (b *Backend) Release() {
	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
		b.texture = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.program != nil {
		b.program.Delete()
		b.program = nil
	}
}

var _ renderer.Backend = (*Backend)(nil)
