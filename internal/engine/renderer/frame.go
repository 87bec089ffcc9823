package renderer

import (
	"github.com/Faultbox/spaceglobe/internal/rotation"
	"github.com/Faultbox/spaceglobe/pkg/math"
)

// Config fixes the camera, projection and lighting of the globe scene.
type Config struct {
	FOVDeg float32
	Near   float32
	Far    float32

	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3

	// LightDir is a directional light in eye space (w=0 position).
	LightDir math.Vec3
	// Ambient is the global ambient term applied to the material colour.
	Ambient float32

	ClearColor [4]float32
	// BaseColor is the material colour; white leaves the texture unmodified.
	BaseColor [4]float32
}

// DefaultConfig returns the globe demos' scene setup.
func DefaultConfig() Config {
	return Config{
		FOVDeg:     45,
		Near:       1,
		Far:        100,
		Eye:        math.Vec3{X: 0, Y: 0, Z: 5},
		Center:     math.Vec3{},
		Up:         math.Vec3{X: 0, Y: 1, Z: 0},
		LightDir:   math.Vec3{X: 1, Y: 1, Z: 1},
		Ambient:    0.2,
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
		BaseColor:  [4]float32{1, 1, 1, 1},
	}
}

// Surface is a drawable size in pixels, always at least 1x1.
type Surface struct {
	Width, Height int
}

// Aspect returns width/height.
func (s Surface) Aspect() float32 {
	return float32(s.Width) / float32(s.Height)
}

// ClampSurface replaces non-positive dimensions with 1.
// The returned error is informational; the surface is always usable.
func ClampSurface(width, height int) (Surface, error) {
	s := Surface{Width: width, Height: height}
	if s.Width >= 1 && s.Height >= 1 {
		return s, nil
	}
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s, &DegenerateSurfaceError{Width: width, Height: height}
}

// FrameState is everything a backend needs to draw one frame.
type FrameState struct {
	Surface    Surface
	Projection math.Mat4
	View       math.Mat4
	Model      math.Mat4
	LightDir   math.Vec3
	Ambient    float32
	ClearColor [4]float32
	BaseColor  [4]float32
}

// ModelView returns View * Model.
func (f FrameState) ModelView() math.Mat4 {
	return f.View.Mul(f.Model)
}

// ModelMatrix rotates by pitch about X, then by the combined yaw about Y,
// in that call order (the vertex sees the yaw first).
// Angles are wrapped into [0,360) only here.
func ModelMatrix(o rotation.Orientation) math.Mat4 {
	pitch := math.Radians(math.WrapDegrees(o.PitchDeg))
	yaw := math.Radians(math.WrapDegrees(o.Yaw()))
	return math.RotateX(pitch).Mul(math.RotateY(yaw))
}

// Projection returns the perspective matrix for a surface.
func (c Config) Projection(s Surface) math.Mat4 {
	return math.Perspective(math.Radians(c.FOVDeg), s.Aspect(), c.Near, c.Far)
}

// View returns the camera matrix.
func (c Config) View() math.Mat4 {
	return math.LookAt(c.Eye, c.Center, c.Up)
}
