package app

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/config"
	"github.com/Faultbox/spaceglobe/internal/engine/framebuffer"
	"github.com/Faultbox/spaceglobe/internal/engine/input"
	"github.com/Faultbox/spaceglobe/internal/engine/overlay"
	"github.com/Faultbox/spaceglobe/internal/engine/renderer/glbackend"
	"github.com/Faultbox/spaceglobe/internal/engine/window"
	"github.com/Faultbox/spaceglobe/internal/logger"
	"github.com/Faultbox/spaceglobe/internal/rotation"
	"github.com/Faultbox/spaceglobe/internal/ui/slider"
)

const (
	globeTitle = "Globe with Earth Texture and 24-Hour Rotation"
	// arrowStep is one degree of time yaw.
	arrowStep = 4
	// idleWaitMs bounds how long the loop sleeps in SDL_WaitEvent.
	idleWaitMs = 250
)

var (
	trackColor = overlay.Color{0.1, 0.12, 0.14, 0.75}
	fillColor  = overlay.Color{0.35, 0.6, 0.85, 0.9}
	tickColor  = overlay.Color{0.8, 0.8, 0.8, 0.6}
	knobColor  = overlay.Color{0.95, 0.95, 0.95, 1}
)

// GlobeApp is the SDL host: the globe plus a time-of-day slider drawn as an overlay.
type GlobeApp struct {
	ctx     *Context
	win     *window.Window
	in      *input.Input
	overlay *overlay.Overlay
	slider  *slider.Slider
	log     *zap.Logger

	width, height int // window coordinates, as used by mouse events

	dirty      bool
	resized    bool
	quit       bool
	screenshot bool
}

func newGlobeState(ctx *Context, width, height int) *GlobeApp {
	a := &GlobeApp{
		ctx:    ctx,
		slider: slider.New(0, rotation.MinutesPerDay, 0),
		log:    logger.Named("globe"),
		dirty:  true,
	}
	a.layout(width, height)
	return a
}

// NewGlobeApp opens the window and prepares the renderer and overlay.
func NewGlobeApp(cfg *config.Config) (*GlobeApp, error) {
	title := cfg.Window.Title
	if title == "" {
		title = globeTitle
	}
	win, err := window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	ctx := NewContext(cfg, "globe")
	dw, dh := win.DrawableSize()
	if err := ctx.AttachRenderer(glbackend.New(), dw, dh); err != nil {
		win.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	ov, err := overlay.New()
	if err != nil {
		ctx.Close()
		win.Close()
		return nil, fmt.Errorf("create overlay: %w", err)
	}

	ww, wh := win.Size()
	a := newGlobeState(ctx, ww, wh)
	a.win = win
	a.in = input.New()
	a.overlay = ov
	return a, nil
}

// Run processes events until the window closes or Esc is pressed.
func (a *GlobeApp) Run() error {
	a.log.Info("globe host running")
	for !a.quit {
		wait := idleWaitMs
		if a.dirty {
			wait = 0
		}
		if a.in.Update(wait) {
			a.quit = true
		}
		for _, ev := range a.in.Events() {
			a.handle(ev)
		}
		if a.quit {
			break
		}

		if a.resized {
			dw, dh := a.win.DrawableSize()
			a.ctx.Resize(dw, dh)
			a.resized = false
		}
		// Coalesced: one frame per iteration at most, none when nothing changed.
		if a.dirty {
			a.draw()
			if a.screenshot {
				a.capture()
				a.screenshot = false
			}
			a.win.SwapBuffers()
			a.dirty = false
		}
	}
	return nil
}

func (a *GlobeApp) layout(width, height int) {
	a.width, a.height = width, height
	a.slider.Layout(width, height)
}

// handle applies one input event to the model and slider. It does no GL work.
func (a *GlobeApp) handle(ev input.Event) {
	m := a.ctx.Model
	switch ev.Type {
	case input.EventQuit:
		a.quit = true

	case input.EventResize:
		a.layout(ev.Width, ev.Height)
		a.resized = true
		a.dirty = true

	case input.EventExpose:
		a.dirty = true

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.K_ESCAPE:
			a.quit = true
		case sdl.K_LEFT:
			a.setMinutes(a.slider.Step(-arrowStep))
		case sdl.K_RIGHT:
			a.setMinutes(a.slider.Step(arrowStep))
		case sdl.K_r:
			if m.Apply(rotation.ResetView{}) {
				a.dirty = true
			}
		case sdl.K_F12:
			a.screenshot = true
			a.dirty = true
		}

	case input.EventMouseDown:
		if !ev.Left {
			return
		}
		if v, changed, hit := a.slider.Press(ev.X, ev.Y); hit {
			a.setMinutes(v, changed)
			a.dirty = true
			return
		}
		m.Apply(rotation.PointerPress{X: ev.X, Y: ev.Y})

	case input.EventMouseMove:
		if a.slider.Dragging() {
			a.setMinutes(a.slider.Drag(ev.X))
			return
		}
		if m.Apply(rotation.PointerMove{X: ev.X, Y: ev.Y, ButtonHeld: ev.LeftHeld}) {
			a.dirty = true
		}

	case input.EventMouseUp:
		if !ev.Left {
			return
		}
		if a.slider.Release() {
			a.dirty = true
			return
		}
		m.Apply(rotation.PointerRelease{})
	}
}

func (a *GlobeApp) setMinutes(minutes int, changed bool) {
	if !changed {
		return
	}
	if a.ctx.Model.Apply(rotation.TimeOfDay{Minutes: minutes}) {
		a.dirty = true
	}
	a.log.Debug("time of day", zap.Int("minutes", minutes))
}

func (a *GlobeApp) draw() {
	a.ctx.Draw()
	a.overlay.Begin(a.width, a.height)
	appendSlider(&a.overlay.Batch, a.slider)
	a.overlay.End()
}

// appendSlider queues the track, elapsed fill, hour ticks and knob.
func appendSlider(b *overlay.Batch, s *slider.Slider) {
	r := s.Rect
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	mid := y + h/2

	b.Quad(x, mid-3, w, 6, trackColor)
	b.Quad(x, mid-3, w*s.Fraction(), 6, fillColor)
	for _, tx := range s.Ticks() {
		b.Quad(float32(tx), mid+5, 1, 5, tickColor)
	}
	b.Quad(float32(s.KnobX())-4, y, 8, h, knobColor)
}

func (a *GlobeApp) capture() {
	dw, dh := a.win.DrawableSize()
	pixels := framebuffer.ReadDefault(dw, dh)
	path, err := a.ctx.Screenshots.CaptureFromPixels(pixels, dw, dh)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close tears down in reverse creation order.
func (a *GlobeApp) Close() {
	if a.overlay != nil {
		a.overlay.Destroy()
		a.overlay = nil
	}
	a.ctx.Close()
	if a.win != nil {
		a.win.Close()
		a.win = nil
	}
}
