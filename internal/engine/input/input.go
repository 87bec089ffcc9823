// Package input turns SDL2 events into a small set of host events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventExpose
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event is one translated SDL event. Coordinates are window coordinates.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	X      int
	Y      int
	// LeftHeld reports the left button state for mouse events.
	LeftHeld bool
	// Left is set on press and release of the left button.
	Left bool
}

// Translate converts an SDL event, tracking the left button across calls.
// ok is false for events the hosts ignore.
func (i *Input) Translate(ev sdl.Event) (Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			return Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventExpose}, true
		}

	case *sdl.KeyboardEvent:
		if e.State == sdl.PRESSED {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, X: int(e.X), Y: int(e.Y), LeftHeld: i.leftDown}, true

	case *sdl.MouseButtonEvent:
		out := Event{X: int(e.X), Y: int(e.Y), Left: e.Button == sdl.BUTTON_LEFT}
		pressed := e.State == sdl.PRESSED
		if out.Left {
			i.leftDown = pressed
		}
		out.LeftHeld = i.leftDown
		out.Type = EventMouseUp
		if pressed {
			out.Type = EventMouseDown
		}
		return out, true
	}
	return Event{}, false
}

// Input collects the events of one loop iteration.
type Input struct {
	events   []Event
	leftDown bool
	wait     func(timeoutMs int) sdl.Event
	poll     func() sdl.Event
}

// New returns an Input reading from the SDL event queue.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		wait:   sdl.WaitEventTimeout,
		poll:   sdl.PollEvent,
	}
}

// Update drains pending events. With timeoutMs > 0 it first blocks up to that
// long for one, so an idle host does not spin. It reports whether a quit arrived.
func (i *Input) Update(timeoutMs int) bool {
	i.events = i.events[:0]
	quit := false

	first := i.poll()
	if first == nil && timeoutMs > 0 {
		first = i.wait(timeoutMs)
	}
	for ev := first; ev != nil; ev = i.poll() {
		out, ok := i.Translate(ev)
		if !ok {
			continue
		}
		i.events = append(i.events, out)
		if out.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
