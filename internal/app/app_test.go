package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/spaceglobe/internal/clock"
	"github.com/Faultbox/spaceglobe/internal/config"
	"github.com/Faultbox/spaceglobe/internal/engine/input"
	"github.com/Faultbox/spaceglobe/internal/engine/mesh"
	"github.com/Faultbox/spaceglobe/internal/engine/overlay"
	"github.com/Faultbox/spaceglobe/internal/engine/renderer"
	"github.com/Faultbox/spaceglobe/internal/rotation"
	"github.com/Faultbox/spaceglobe/internal/ui/slider"
)

type recordingBackend struct {
	textured  bool
	viewports []renderer.Surface
	frames    []renderer.FrameState
	released  int
}

func (b *recordingBackend) Init() error                 { return nil }
func (b *recordingBackend) UploadMesh(*mesh.Mesh) error { return nil }
func (b *recordingBackend) Viewport(s renderer.Surface) { b.viewports = append(b.viewports, s) }
func (b *recordingBackend) Draw(f renderer.FrameState)  { b.frames = append(b.frames, f) }
func (b *recordingBackend) Release()                    { b.released++ }
func (b *recordingBackend) UploadTexture(img *image.RGBA) error {
	b.textured = img != nil
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Globe.Texture = filepath.Join(t.TempDir(), "missing.png")
	cfg.Globe.Slices, cfg.Globe.Stacks = 8, 6
	cfg.Screenshot.Dir = t.TempDir()
	return cfg
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	img.Set(0, 0, color.RGBA{0, 0, 255, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestContextMissingTexture(t *testing.T) {
	ctx := NewContext(testConfig(t), "globe")
	assert.Nil(t, ctx.Texture)
	require.NotNil(t, ctx.Mesh)
	assert.Equal(t, 8, ctx.Mesh.Slices)

	b := &recordingBackend{}
	require.NoError(t, ctx.AttachRenderer(b, 800, 600))
	assert.False(t, b.textured)
	assert.False(t, ctx.Renderer.Textured())
}

func TestContextLoadsTexture(t *testing.T) {
	cfg := testConfig(t)
	cfg.Globe.Texture = filepath.Join(t.TempDir(), "earth.png")
	writePNG(t, cfg.Globe.Texture)

	ctx := NewContext(cfg, "globe")
	require.NotNil(t, ctx.Texture)
	assert.Equal(t, 4, ctx.Texture.Rect.Dx())

	b := &recordingBackend{}
	require.NoError(t, ctx.AttachRenderer(b, 640, 480))
	assert.True(t, b.textured)
}

func TestContextResizeDrawClose(t *testing.T) {
	ctx := NewContext(testConfig(t), "globe")
	ctx.Resize(10, 10) // no renderer yet
	ctx.Draw()

	b := &recordingBackend{}
	require.NoError(t, ctx.AttachRenderer(b, 800, 600))

	ctx.Resize(0, 0)
	assert.Equal(t, renderer.Surface{Width: 1, Height: 1}, b.viewports[len(b.viewports)-1])

	ctx.Model.SetTimeYaw(720)
	ctx.Draw()
	require.Len(t, b.frames, 1)
	assert.Equal(t, renderer.ModelMatrix(ctx.Model.Orientation()), b.frames[0].Model)

	ctx.Close()
	ctx.Close()
	assert.Equal(t, 1, b.released)
	assert.Nil(t, ctx.Renderer)
}

func newTestGlobe(t *testing.T) *GlobeApp {
	t.Helper()
	a := newGlobeState(NewContext(testConfig(t), "globe"), 800, 600)
	a.dirty = false
	return a
}

func mouse(typ input.EventType, x, y int, held bool) input.Event {
	return input.Event{Type: typ, X: x, Y: y, Left: typ != input.EventMouseMove, LeftHeld: held}
}

func key(k sdl.Keycode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: k}
}

func TestGlobeDragRotates(t *testing.T) {
	a := newTestGlobe(t)

	a.handle(mouse(input.EventMouseDown, 100, 100, true))
	a.handle(mouse(input.EventMouseMove, 110, 130, true))
	a.handle(mouse(input.EventMouseUp, 110, 130, false))

	o := a.ctx.Model.Orientation()
	assert.Equal(t, float32(10), o.DragYawDeg)
	assert.Equal(t, float32(30), o.PitchDeg)
	assert.True(t, a.dirty)
	assert.False(t, a.ctx.Model.Drag().Active)
}

func TestGlobeHoverDoesNotRotate(t *testing.T) {
	a := newTestGlobe(t)

	a.handle(mouse(input.EventMouseMove, 300, 200, false))

	assert.Equal(t, rotation.Orientation{}, a.ctx.Model.Orientation())
	assert.False(t, a.dirty)
	assert.Equal(t, 300, a.ctx.Model.Drag().LastX)
}

func TestGlobeSliderSetsTimeYaw(t *testing.T) {
	a := newTestGlobe(t)
	// 800x600 docks the track at x 40..760, two minutes per pixel.
	a.handle(mouse(input.EventMouseDown, 400, 570, true))

	assert.Equal(t, 720, a.slider.Value)
	assert.Equal(t, float32(180), a.ctx.Model.Orientation().TimeYawDeg)
	assert.False(t, a.ctx.Model.Drag().Active, "slider press is not a globe drag")

	a.handle(mouse(input.EventMouseMove, 760, 570, true))
	assert.Equal(t, float32(360), a.ctx.Model.Orientation().TimeYawDeg)

	a.handle(mouse(input.EventMouseMove, 2000, 570, true))
	assert.Equal(t, rotation.MinutesPerDay, a.slider.Value, "drag past the end clamps")

	a.handle(mouse(input.EventMouseUp, 2000, 570, false))
	a.handle(mouse(input.EventMouseMove, 40, 570, true))
	assert.Equal(t, rotation.MinutesPerDay, a.slider.Value, "released slider ignores moves")
	assert.Zero(t, a.ctx.Model.Orientation().PitchDeg)
}

func TestGlobeKeys(t *testing.T) {
	a := newTestGlobe(t)

	a.handle(key(sdl.K_RIGHT))
	a.handle(key(sdl.K_RIGHT))
	assert.Equal(t, 8, a.slider.Value)
	assert.Equal(t, float32(2), a.ctx.Model.Orientation().TimeYawDeg)

	a.handle(key(sdl.K_LEFT))
	assert.Equal(t, float32(1), a.ctx.Model.Orientation().TimeYawDeg)

	a.handle(mouse(input.EventMouseDown, 100, 100, true))
	a.handle(mouse(input.EventMouseMove, 150, 100, true))
	a.handle(mouse(input.EventMouseUp, 150, 100, false))
	a.dirty = false
	a.handle(key(sdl.K_r))
	assert.True(t, a.dirty)
	o := a.ctx.Model.Orientation()
	assert.Zero(t, o.DragYawDeg)
	assert.Equal(t, float32(1), o.TimeYawDeg, "reset keeps the time of day")

	a.handle(key(sdl.K_F12))
	assert.True(t, a.screenshot)

	assert.False(t, a.quit)
	a.handle(key(sdl.K_ESCAPE))
	assert.True(t, a.quit)
}

func TestGlobeResizeAndExpose(t *testing.T) {
	a := newTestGlobe(t)

	a.handle(input.Event{Type: input.EventResize, Width: 1024, Height: 0})
	assert.True(t, a.resized)
	assert.True(t, a.dirty)
	assert.Equal(t, 1024, a.width)

	a.dirty = false
	a.handle(input.Event{Type: input.EventExpose})
	assert.True(t, a.dirty)

	a.handle(input.Event{Type: input.EventQuit})
	assert.True(t, a.quit)
}

func TestGlobeIgnoresRightButton(t *testing.T) {
	a := newTestGlobe(t)

	a.handle(input.Event{Type: input.EventMouseDown, X: 400, Y: 570})
	assert.Zero(t, a.slider.Value)
	assert.False(t, a.ctx.Model.Drag().Active)
}

func TestAppendSlider(t *testing.T) {
	s := slider.New(0, 1440, 720)
	s.Layout(800, 600)

	var b overlay.Batch
	appendSlider(&b, s)

	// track + fill + 25 ticks + knob
	assert.Equal(t, 28*6, b.Len())

	// The fill's right edge sits halfway along the 40..760 track.
	v := b.Vertices()
	fillRight := v[7*6]
	assert.Equal(t, float32(400), fillRight)
}

func fixedClock(h, m, s int) *clock.Clock {
	return clock.New(clock.WithNow(func() time.Time {
		return time.Date(2024, 1, 1, h, m, s, 0, time.Local)
	}))
}

func TestClockPanelIndependentByDefault(t *testing.T) {
	m := rotation.NewModel()
	p := newClockPanel(fixedClock(6, 0, 0), m, false)

	p.press(actionStart)
	assert.False(t, p.advance(90*time.Second))
	assert.Equal(t, "06:01:30", p.clock.String())
	assert.Zero(t, m.Orientation().TimeYawDeg)
}

func TestClockPanelFollow(t *testing.T) {
	m := rotation.NewModel()
	p := newClockPanel(fixedClock(12, 0, 0), m, true)

	assert.Equal(t, int32(720), p.minutes)
	assert.Equal(t, float32(180), m.Orientation().TimeYawDeg)

	p.press(actionStart)
	assert.True(t, p.advance(time.Minute))
	assert.Equal(t, int32(721), p.minutes)

	assert.True(t, p.press(actionMidnight))
	assert.False(t, p.clock.Running())
	assert.Zero(t, m.Orientation().TimeYawDeg)

	assert.True(t, p.press(actionNow))
	assert.True(t, p.clock.Running())
	assert.Equal(t, float32(180), m.Orientation().TimeYawDeg)
}

func TestClockPanelSliderDetaches(t *testing.T) {
	m := rotation.NewModel()
	p := newClockPanel(fixedClock(12, 0, 0), m, true)

	assert.True(t, p.setMinutes(1440))
	assert.False(t, p.follow)
	assert.Equal(t, float32(360), m.Orientation().TimeYawDeg)

	p.press(actionStart)
	p.advance(10 * time.Minute)
	assert.Equal(t, float32(360), m.Orientation().TimeYawDeg, "detached globe ignores the clock")

	assert.True(t, p.setFollow(true))
	assert.Equal(t, int32(730), p.minutes)

	p.setMinutes(5000)
	assert.Equal(t, int32(1440), p.minutes)
}

func TestClockActionNames(t *testing.T) {
	names := make([]string, 0, len(clockActions))
	for _, a := range clockActions {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"Start", "Stop", "Now", "Midnight"}, names)
	assert.Equal(t, "clockAction(9)", clockAction(9).String())
}

func TestSliderLabel(t *testing.T) {
	assert.Equal(t, "00:00", sliderLabel(0))
	assert.Equal(t, "12:00", sliderLabel(720))
	assert.Equal(t, "23:59", sliderLabel(1439))
	assert.Equal(t, "24:00", sliderLabel(1440))
}

func TestGlobeEvent(t *testing.T) {
	tests := []struct {
		name     string
		p        imagePointer
		dragging bool
		want     rotation.Event
	}{
		{"click on image", imagePointer{X: 5, Y: 6, Hovered: true, Clicked: true, Down: true}, false, rotation.PointerPress{X: 5, Y: 6}},
		{"hover", imagePointer{X: 5, Y: 6, Hovered: true}, false, rotation.PointerMove{X: 5, Y: 6}},
		{"drag outside image", imagePointer{X: -20, Y: 900, Down: true}, true, rotation.PointerMove{X: -20, Y: 900, ButtonHeld: true}},
		{"release", imagePointer{X: 5, Y: 6, Hovered: true}, true, rotation.PointerRelease{}},
		{"outside and idle", imagePointer{X: -20, Y: 900}, false, nil},
		{"click outside image", imagePointer{X: -20, Y: 900, Clicked: true, Down: true}, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, globeEvent(tt.p, tt.dragging))
		})
	}
}

func TestClockImageDragThroughModel(t *testing.T) {
	m := rotation.NewModel()
	p := newClockPanel(fixedClock(6, 0, 0), m, false)
	assert.True(t, p.setMinutes(360))

	frames := []imagePointer{
		{X: 100, Y: 100, Hovered: true, Clicked: true, Down: true},
		{X: 120, Y: 90, Hovered: true, Down: true},
		{X: 120, Y: 90, Hovered: true},
	}
	dirty := false
	for _, f := range frames {
		if ev := globeEvent(f, m.Drag().Active); ev != nil && m.Apply(ev) {
			dirty = true
		}
	}

	assert.True(t, dirty)
	o := m.Orientation()
	assert.Equal(t, float32(20), o.DragYawDeg)
	assert.Equal(t, float32(-10), o.PitchDeg)
	assert.Equal(t, float32(90), o.TimeYawDeg)
	assert.False(t, m.Drag().Active)

	assert.True(t, m.Apply(rotation.ResetView{}))
	assert.Equal(t, rotation.Orientation{TimeYawDeg: 90}, m.Orientation(), "reset keeps the slider's time of day")
}
