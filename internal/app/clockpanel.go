package app

import (
	"fmt"
	"time"

	"github.com/Faultbox/spaceglobe/internal/clock"
	"github.com/Faultbox/spaceglobe/internal/rotation"
)

// clockAction is one of the four clock buttons.
type clockAction int

const (
	actionStart clockAction = iota
	actionStop
	actionNow
	actionMidnight
)

func (a clockAction) String() string {
	switch a {
	case actionStart:
		return "Start"
	case actionStop:
		return "Stop"
	case actionNow:
		return "Now"
	case actionMidnight:
		return "Midnight"
	}
	return fmt.Sprintf("clockAction(%d)", int(a))
}

var clockActions = []clockAction{actionStart, actionStop, actionNow, actionMidnight}

// clockPanel is the widget-independent state of the S.P.A.C.E. window.
type clockPanel struct {
	clock *clock.Clock
	model *rotation.Model

	// follow feeds the clock's minutes into the globe's time yaw.
	follow  bool
	minutes int32
}

func newClockPanel(c *clock.Clock, m *rotation.Model, follow bool) *clockPanel {
	p := &clockPanel{clock: c, model: m, follow: follow}
	p.minutes = int32(m.Orientation().TimeYawDeg * 4)
	p.sync()
	return p
}

// advance runs the 1 Hz timer for dt and reports whether the globe changed.
func (p *clockPanel) advance(dt time.Duration) bool {
	if p.clock.Advance(dt) == 0 {
		return false
	}
	return p.sync()
}

// press applies a button. Now and Midnight jump the clock, so the globe may move.
func (p *clockPanel) press(a clockAction) bool {
	switch a {
	case actionStart:
		p.clock.Start()
	case actionStop:
		p.clock.Stop()
	case actionNow:
		p.clock.Now()
	case actionMidnight:
		p.clock.Midnight()
	}
	return p.sync()
}

// setFollow toggles clock coupling and snaps the slider when enabled.
func (p *clockPanel) setFollow(on bool) bool {
	p.follow = on
	return p.sync()
}

// setMinutes handles a slider change. A manual change detaches the globe from the clock.
func (p *clockPanel) setMinutes(v int32) bool {
	p.follow = false
	p.minutes = int32(rotation.ClampMinutes(int(v)))
	return p.model.Apply(rotation.TimeOfDay{Minutes: int(p.minutes)})
}

func (p *clockPanel) sync() bool {
	if !p.follow {
		return false
	}
	p.minutes = int32(p.clock.MinutesOfDay())
	return p.model.Apply(rotation.TimeOfDay{Minutes: int(p.minutes)})
}

// imagePointer is the mouse state over the globe image for one frame,
// in image coordinates.
type imagePointer struct {
	X, Y    int
	Hovered bool
	Clicked bool
	Down    bool
}

// globeEvent maps one frame of mouse state to a model event. A drag that
// started on the image keeps tracking after the pointer leaves it.
func globeEvent(p imagePointer, dragging bool) rotation.Event {
	switch {
	case p.Hovered && p.Clicked:
		return rotation.PointerPress{X: p.X, Y: p.Y}
	case dragging && !p.Down:
		return rotation.PointerRelease{}
	case dragging || p.Hovered:
		return rotation.PointerMove{X: p.X, Y: p.Y, ButtonHeld: p.Down}
	}
	return nil
}

// sliderLabel formats minutes as hh:mm.
func sliderLabel(minutes int32) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
