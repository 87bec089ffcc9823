// Package renderer draws the textured globe at a given orientation.
//
// The renderer owns the frame contract (projection, camera, model rotation,
// lighting) and hands a FrameState to a Backend that talks to the GPU.
package renderer

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/engine/mesh"
	"github.com/Faultbox/spaceglobe/internal/logger"
	"github.com/Faultbox/spaceglobe/internal/rotation"
	"github.com/Faultbox/spaceglobe/pkg/math"
)

// Backend executes frames on a graphics API.
// All methods run on the thread that owns the graphics context.
type Backend interface {
	// Init prepares pipeline state (depth test, shaders).
	Init() error
	// UploadMesh copies the immutable sphere geometry to the GPU.
	UploadMesh(m *mesh.Mesh) error
	// UploadTexture creates a linear-filtered 2D texture. A nil image
	// selects a 1x1 white fallback.
	UploadTexture(img *image.RGBA) error
	// Viewport sets the drawable area.
	Viewport(s Surface)
	// Draw clears colour and depth, then draws the mesh with the texture bound.
	Draw(f FrameState)
	// Release frees every GPU resource created by the backend.
	Release()
}

// Renderer draws the globe.
type Renderer struct {
	backend    Backend
	cfg        Config
	surface    Surface
	projection math.Mat4
	view       math.Mat4
	textured   bool
	closed     bool
}

// New initialises the backend and uploads the mesh and texture once.
// A nil texture is accepted; the sphere is then drawn untextured.
func New(b Backend, m *mesh.Mesh, tex *image.RGBA, cfg Config, width, height int) (*Renderer, error) {
	if m == nil {
		return nil, fmt.Errorf("renderer: nil mesh")
	}

	r := &Renderer{
		backend:  b,
		cfg:      cfg,
		view:     cfg.View(),
		textured: tex != nil,
	}

	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	if err := b.UploadMesh(m); err != nil {
		b.Release()
		return nil, fmt.Errorf("upload mesh: %w", err)
	}
	if err := b.UploadTexture(tex); err != nil {
		b.Release()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	if err := r.Resize(width, height); err != nil {
		logger.Debug("initial surface clamped", zap.Error(err))
	}

	logger.Info("globe renderer ready",
		zap.Int("triangles", m.TriangleCount()),
		zap.Bool("textured", r.textured),
		zap.Int("width", r.surface.Width),
		zap.Int("height", r.surface.Height),
	)
	return r, nil
}

// Resize recomputes the viewport and aspect ratio.
// A DegenerateSurfaceError is returned after recovering with a 1x1 minimum.
func (r *Renderer) Resize(width, height int) error {
	s, err := ClampSurface(width, height)
	r.surface = s
	r.projection = r.cfg.Projection(s)
	r.backend.Viewport(s)
	return err
}

// Frame computes the matrices for orientation o without drawing.
func (r *Renderer) Frame(o rotation.Orientation) FrameState {
	return FrameState{
		Surface:    r.surface,
		Projection: r.projection,
		View:       r.view,
		Model:      ModelMatrix(o),
		LightDir:   r.cfg.LightDir.Normalize(),
		Ambient:    r.cfg.Ambient,
		ClearColor: r.cfg.ClearColor,
		BaseColor:  r.cfg.BaseColor,
	}
}

// Draw renders one frame at orientation o.
func (r *Renderer) Draw(o rotation.Orientation) {
	if r.closed {
		return
	}
	r.backend.Draw(r.Frame(o))
}

// Surface returns the current drawable size.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Textured reports whether a texture image was supplied.
func (r *Renderer) Textured() bool {
	return r.textured
}

// Close releases the backend resources. It is safe to call twice.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	logger.Info("closing globe renderer")
	r.backend.Release()
}
