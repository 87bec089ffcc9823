// Package app wires the globe model, assets and renderer into the two demo hosts.
package app

import (
	"errors"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/config"
	"github.com/Faultbox/spaceglobe/internal/engine/debug"
	"github.com/Faultbox/spaceglobe/internal/engine/mesh"
	"github.com/Faultbox/spaceglobe/internal/engine/renderer"
	"github.com/Faultbox/spaceglobe/internal/engine/texture"
	"github.com/Faultbox/spaceglobe/internal/logger"
	"github.com/Faultbox/spaceglobe/internal/rotation"
)

// Context holds the state shared by a host for its whole lifetime.
// It replaces process globals; hosts create one at startup and Close it on exit.
type Context struct {
	Config      *config.Config
	Model       *rotation.Model
	Mesh        *mesh.Mesh
	Texture     *image.RGBA // nil when the image could not be loaded
	Renderer    *renderer.Renderer
	Screenshots *debug.ScreenshotCapture

	log *zap.Logger
}

// NewContext tessellates the sphere and decodes the texture.
// A texture failure is logged and leaves the globe untextured.
func NewContext(cfg *config.Config, screenshotPrefix string) *Context {
	c := &Context{
		Config:      cfg,
		Model:       rotation.NewModel(),
		Mesh:        mesh.Sphere(cfg.Globe.Slices, cfg.Globe.Stacks),
		Screenshots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, screenshotPrefix),
		log:         logger.Named("app"),
	}

	img, err := texture.Load(cfg.Globe.Texture)
	if err != nil {
		var tle *texture.TextureLoadError
		if errors.As(err, &tle) && tle.Missing() {
			c.log.Warn("globe texture not found, drawing untextured", zap.String("path", cfg.Globe.Texture))
		} else {
			c.log.Warn("globe texture unusable, drawing untextured", zap.Error(err))
		}
	} else {
		c.Texture = img
		c.log.Info("globe texture loaded",
			zap.String("path", cfg.Globe.Texture),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
		)
	}
	return c
}

// AttachRenderer creates the renderer on backend b for a width x height surface.
func (c *Context) AttachRenderer(b renderer.Backend, width, height int) error {
	r, err := renderer.New(b, c.Mesh, c.Texture, renderer.DefaultConfig(), width, height)
	if err != nil {
		return err
	}
	c.Renderer = r
	return nil
}

// Resize forwards a drawable size change. Degenerate sizes are clamped and logged.
func (c *Context) Resize(width, height int) {
	if c.Renderer == nil {
		return
	}
	if err := c.Renderer.Resize(width, height); err != nil {
		c.log.Debug("surface clamped", zap.Error(err))
	}
}

// Draw renders the globe at the model's orientation.
func (c *Context) Draw() {
	if c.Renderer != nil {
		c.Renderer.Draw(c.Model.Orientation())
	}
}

// Close releases the renderer and drops the CPU-side assets.
func (c *Context) Close() {
	if c.Renderer != nil {
		c.Renderer.Close()
		c.Renderer = nil
	}
	c.Texture = nil
	c.Mesh = nil
}
