// Package ui hosts Dear ImGui on the cimgui-go SDL backend.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/logger"
)

// latinGlyphRanges covers ASCII plus Latin-1; display fonts rarely carry more.
// Pairs of [start, end], zero terminated.
var latinGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF,
	0,
}

// Options configures the ImGui window.
type Options struct {
	Title    string
	Width    int
	Height   int
	FontPath string
	FontSize float32
}

// Backend owns the cimgui SDL backend and its window.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
	opts    Options
}

// NewBackend creates the ImGui context and window, then loads GL entry points.
func NewBackend(opts Options) (*Backend, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = 18
	}
	b := &Backend{log: logger.Named("ui"), opts: opts}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added before the first frame builds the atlas.
	b.backend.SetAfterCreateContextHook(b.loadFont)

	b.backend.SetBgColor(imgui.NewVec4(0.2, 0.3, 0.3, 1.0))
	b.backend.CreateWindow(opts.Title, opts.Width, opts.Height)

	if err := gl.Init(); err != nil {
		b.Close()
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

func (b *Backend) loadFont() {
	path := b.opts.FontPath
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		b.log.Warn("font not found, using the default font", zap.String("path", path))
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	if font := imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, b.opts.FontSize, fontCfg, &latinGlyphRanges[0]); font == nil {
		b.log.Warn("font failed to load", zap.String("path", path))
		return
	}
	b.log.Info("font loaded", zap.String("path", path), zap.Float32("size", b.opts.FontSize))
}

// Run drives the frame loop until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close releases a backend whose Run was never entered. The backend only
// tears its window down when its loop exits, so a queued quit ends the loop
// after one empty frame.
func (b *Backend) Close() {
	if _, err := sdl.PushEvent(&sdl.QuitEvent{Type: uint32(sdl.QUIT)}); err != nil {
		b.log.Warn("queue quit event", zap.Error(err))
		return
	}
	b.backend.Run(func() {})
}

// Viewport returns the main viewport work area.
func Viewport() (x, y, width, height float32) {
	vp := imgui.MainViewport()
	pos, size := vp.WorkPos(), vp.WorkSize()
	return pos.X, pos.Y, size.X, size.Y
}

// IsKeyPressed reports a key press this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// TextureRef wraps a GL texture name for imgui.Image calls.
func TextureRef(id uint32) imgui.TextureRef {
	return *imgui.NewTextureRefTextureID(imgui.TextureID(id))
}
