package app

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/clock"
	"github.com/Faultbox/spaceglobe/internal/config"
	"github.com/Faultbox/spaceglobe/internal/engine/framebuffer"
	"github.com/Faultbox/spaceglobe/internal/engine/renderer/glbackend"
	"github.com/Faultbox/spaceglobe/internal/engine/ui"
	"github.com/Faultbox/spaceglobe/internal/logger"
	"github.com/Faultbox/spaceglobe/internal/rotation"
)

const (
	clockTitle   = "S.P.A.C.E."
	welcomeText  = "Welcome to S.P.A.C.E."
	fontSize     = 24
	buttonWidth  = 110
	noticeLength = 2 * time.Second
)

// ClockApp is the ImGui host: clock labels and buttons above the globe and slider.
type ClockApp struct {
	ctx   *Context
	ui    *ui.Backend
	fb    *framebuffer.Framebuffer
	panel *clockPanel
	log   *zap.Logger

	lastFrame time.Time
	dirty     bool

	dirPicked chan string
	picking   bool

	notice     string
	noticeTime time.Time
}

// NewClockApp creates the ImGui window, the renderer and its offscreen target.
func NewClockApp(cfg *config.Config) (*ClockApp, error) {
	title := cfg.Window.Title
	if title == "" {
		title = clockTitle
	}
	backend, err := ui.NewBackend(ui.Options{
		Title:    title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		FontPath: cfg.Globe.Font,
		FontSize: fontSize,
	})
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	ctx := NewContext(cfg, "spaceclock")
	if err := ctx.AttachRenderer(glbackend.New(), cfg.Window.Width, cfg.Window.Height); err != nil {
		backend.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	fb, err := framebuffer.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		ctx.Close()
		backend.Close()
		return nil, fmt.Errorf("create framebuffer: %w", err)
	}

	c := clock.New()
	if cfg.Clock.StartRunning {
		c.Start()
	}

	return &ClockApp{
		ctx:       ctx,
		ui:        backend,
		fb:        fb,
		panel:     newClockPanel(c, ctx.Model, cfg.Clock.DriveGlobe),
		log:       logger.Named("spaceclock"),
		dirty:     true,
		dirPicked: make(chan string, 1),
	}, nil
}

// Run blocks in the ImGui frame loop until the window closes.
func (a *ClockApp) Run() error {
	a.lastFrame = time.Now()
	a.log.Info("clock host running", zap.String("time", a.panel.clock.String()))
	a.ui.Run(a.frame)
	return nil
}

func (a *ClockApp) frame() {
	now := time.Now()
	if a.panel.advance(now.Sub(a.lastFrame)) {
		a.dirty = true
	}
	a.lastFrame = now

	a.pollDialog()
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.capture()
	}

	x, y, w, h := ui.Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##space", nil, flags) {
		a.drawClock()
		imgui.Separator()
		a.drawGlobe()
		a.drawSlider()
	}
	imgui.End()

	a.drawNotice(x, y)
}

func (a *ClockApp) drawClock() {
	imgui.Text(welcomeText)
	imgui.TextColored(imgui.NewVec4(0.36, 0.36, 0.36, 1), a.panel.clock.String())

	for i, act := range clockActions {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.ButtonV(act.String(), imgui.NewVec2(buttonWidth, 0)) {
			if a.panel.press(act) {
				a.dirty = true
			}
			a.log.Debug("clock button", zap.Stringer("action", act), zap.String("time", a.panel.clock.String()))
		}
	}
}

// drawGlobe renders the globe offscreen when needed and shows it as an image
// that accepts drags.
func (a *ClockApp) drawGlobe() {
	avail := imgui.ContentRegionAvail()
	sliderRow := imgui.FrameHeightWithSpacing() * 2
	width := max(int(avail.X), 1)
	height := max(int(avail.Y-sliderRow), 1)

	if fw, fh := a.fb.Size(); fw != width || fh != height {
		a.fb.Resize(width, height)
		a.ctx.Resize(width, height)
		a.dirty = true
	}
	if a.dirty {
		restore := a.fb.BindWithViewport()
		a.ctx.Draw()
		restore()
		a.dirty = false
	}

	origin := imgui.CursorScreenPos()
	imgui.ImageWithBgV(
		ui.TextureRef(a.fb.ColorTexture()),
		imgui.NewVec2(float32(width), float32(height)),
		imgui.NewVec2(0, 1), // GL textures are bottom-up
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
	mouse := imgui.MousePos()
	p := imagePointer{
		X:       int(mouse.X - origin.X),
		Y:       int(mouse.Y - origin.Y),
		Hovered: imgui.IsItemHovered(),
		Clicked: imgui.IsMouseClickedBool(imgui.MouseButtonLeft),
		Down:    imgui.IsMouseDown(imgui.MouseButtonLeft),
	}
	m := a.ctx.Model
	if ev := globeEvent(p, m.Drag().Active); ev != nil && m.Apply(ev) {
		a.dirty = true
	}
}

func (a *ClockApp) drawSlider() {
	minutes := a.panel.minutes
	imgui.SetNextItemWidth(-160)
	if imgui.SliderIntV("##minutes", &minutes, 0, rotation.MinutesPerDay, sliderLabel(minutes), imgui.SliderFlagsNone) {
		if a.panel.setMinutes(minutes) {
			a.dirty = true
		}
	}
	imgui.SameLine()
	follow := a.panel.follow
	if imgui.Checkbox("Follow clock", &follow) {
		if a.panel.setFollow(follow) {
			a.dirty = true
		}
	}

	if imgui.Button("Reset View") && a.ctx.Model.Apply(rotation.ResetView{}) {
		a.dirty = true
	}
	imgui.SameLine()
	if imgui.Button("Screenshot...") {
		a.pickDirectory()
	}
	imgui.SameLine()
	imgui.TextDisabled("(drag the globe to rotate, F12 saves a screenshot)")
}

// pickDirectory opens a native folder dialog off the UI thread.
// The choice comes back through dirPicked and is handled in pollDialog.
func (a *ClockApp) pickDirectory() {
	if a.picking {
		return
	}
	a.picking = true
	start := a.ctx.Screenshots.OutputDir()
	go func() {
		dir, err := dialog.Directory().Title("Save screenshots to").SetStartDir(start).Browse()
		if err != nil {
			if err != dialog.ErrCancelled {
				a.log.Warn("directory dialog failed", zap.Error(err))
			}
			dir = ""
		}
		a.dirPicked <- dir
	}()
}

func (a *ClockApp) pollDialog() {
	select {
	case dir := <-a.dirPicked:
		a.picking = false
		if dir == "" {
			return
		}
		a.ctx.Screenshots.SetOutputDir(dir)
		a.ctx.Config.Screenshot.Dir = dir
		if err := a.ctx.Config.Save(); err != nil {
			a.log.Warn("could not remember screenshot directory", zap.Error(err))
		}
		a.capture()
	default:
	}
}

// capture saves the offscreen globe image.
func (a *ClockApp) capture() {
	w, h := a.fb.Size()
	path, err := a.ctx.Screenshots.CaptureFromPixels(a.fb.ReadPixels(), w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		a.showNotice("Screenshot failed")
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.showNotice("Saved " + path)
}

func (a *ClockApp) showNotice(msg string) {
	a.notice = msg
	a.noticeTime = time.Now()
}

func (a *ClockApp) drawNotice(x, y float32) {
	if a.notice == "" {
		return
	}
	if time.Since(a.noticeTime) > noticeLength {
		a.notice = ""
		return
	}
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+10))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##notice", nil, flags) {
		imgui.Text(a.notice)
	}
	imgui.End()
}

// Close releases the framebuffer and renderer. The ImGui backend tears the
// window down when Run returns.
func (a *ClockApp) Close() {
	if a.fb != nil {
		a.fb.Destroy()
		a.fb = nil
	}
	a.ctx.Close()
}
