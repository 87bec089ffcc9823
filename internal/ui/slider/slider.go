// Package slider implements the pointer logic of a horizontal integer slider.
// Drawing is left to the host.
package slider

import (
	"image"
	"math"
)

// TickInterval is the default spacing of tick marks, one per hour of minutes.
const TickInterval = 60

// Layout constants in pixels.
const (
	sideMargin   = 40
	bottomMargin = 16
	trackHeight  = 24
)

// Slider maps the x coordinate of a track onto [Min, Max].
type Slider struct {
	Min   int
	Max   int
	Value int
	Rect  image.Rectangle

	TickInterval int

	dragging bool
}

// New returns a slider over [lo, hi] starting at value.
func New(lo, hi, value int) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	s := &Slider{Min: lo, Max: hi, TickInterval: TickInterval}
	s.Value = s.clamp(value)
	return s
}

// Layout docks the track along the bottom of a width x height surface.
func (s *Slider) Layout(width, height int) {
	left := sideMargin
	right := width - sideMargin
	if right-left < 1 {
		left, right = 0, max(width, 1)
	}
	bottom := height - bottomMargin
	top := bottom - trackHeight
	if top < 0 {
		top, bottom = 0, min(trackHeight, max(height, 1))
	}
	s.Rect = image.Rect(left, top, right, bottom)
}

// HitTest reports whether (x, y) lies on the track.
func (s *Slider) HitTest(x, y int) bool {
	return image.Pt(x, y).In(s.Rect)
}

// Dragging reports whether a press is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Press starts a drag when (x, y) hits the track and jumps to x.
// ok is false when the press missed.
func (s *Slider) Press(x, y int) (value int, changed, ok bool) {
	if !s.HitTest(x, y) {
		return s.Value, false, false
	}
	s.dragging = true
	value, changed = s.Set(s.ValueAt(x))
	return value, changed, true
}

// Drag follows the pointer while a press is active.
func (s *Slider) Drag(x int) (int, bool) {
	if !s.dragging {
		return s.Value, false
	}
	return s.Set(s.ValueAt(x))
}

// Release ends the drag and reports whether one was active.
func (s *Slider) Release() bool {
	was := s.dragging
	s.dragging = false
	return was
}

// Set clamps v into range and stores it.
func (s *Slider) Set(v int) (int, bool) {
	v = s.clamp(v)
	if v == s.Value {
		return v, false
	}
	s.Value = v
	return v, true
}

// Step moves the value by delta.
func (s *Slider) Step(delta int) (int, bool) {
	return s.Set(s.Value + delta)
}

// ValueAt converts a track x coordinate to a value, rounding to nearest.
func (s *Slider) ValueAt(x int) int {
	w := s.Rect.Dx()
	if w <= 0 || s.Max == s.Min {
		return s.Min
	}
	f := float64(x-s.Rect.Min.X) / float64(w)
	return s.clamp(s.Min + int(math.Round(f*float64(s.Max-s.Min))))
}

// Fraction is the position of Value within [Min, Max] as 0..1.
func (s *Slider) Fraction() float32 {
	if s.Max == s.Min {
		return 0
	}
	return float32(s.Value-s.Min) / float32(s.Max-s.Min)
}

// KnobX is the x coordinate of the current value on the track.
func (s *Slider) KnobX() int {
	return s.xOf(s.Value)
}

// Ticks returns the x coordinates of the tick marks, both ends included.
func (s *Slider) Ticks() []int {
	step := s.TickInterval
	if step <= 0 {
		return nil
	}
	xs := make([]int, 0, (s.Max-s.Min)/step+1)
	for v := s.Min; v <= s.Max; v += step {
		xs = append(xs, s.xOf(v))
	}
	return xs
}

func (s *Slider) xOf(v int) int {
	if s.Max == s.Min {
		return s.Rect.Min.X
	}
	f := float64(v-s.Min) / float64(s.Max-s.Min)
	return s.Rect.Min.X + int(math.Round(f*float64(s.Rect.Dx())))
}

func (s *Slider) clamp(v int) int {
	return min(max(v, s.Min), s.Max)
}
