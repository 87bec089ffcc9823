package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spaceglobe/internal/engine/shader"
	"github.com/Faultbox/spaceglobe/internal/engine/shaders"
	"github.com/Faultbox/spaceglobe/pkg/math"
)

// Overlay renders a Batch with alpha blending and no depth test.
type Overlay struct {
	Batch

	program *shader.Program
	vao     uint32
	vbo     uint32
	width   int
	height  int
}

// New compiles the overlay program and creates a streaming vertex buffer.
func New() (*Overlay, error) {
	p, err := shader.Compile(shaders.OverlayVertexShader, shaders.OverlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	o := &Overlay{program: p}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	return o, nil
}

// Begin starts a batch for a width x height pixel surface.
func (o *Overlay) Begin(width, height int) {
	o.Reset()
	o.width, o.height = max(width, 1), max(height, 1)
}

// End uploads and draws the batch.
func (o *Overlay) End() {
	if o.Len() == 0 {
		return
	}
	proj := math.Ortho(0, float32(o.width), float32(o.height), 0, -1, 1)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	o.program.SetMat4("uProjection", proj.Ptr())

	verts := o.Vertices()
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(o.Len()))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the GL objects.
func (o *Overlay) Destroy() {
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.program != nil {
		o.program.Delete()
		o.program = nil
	}
}
