package rotation

// Model owns the orientation and the drag state.
// It is not safe for concurrent use; hosts drive it from the UI thread.
type Model struct {
	orientation Orientation
	drag        DragState
}

// NewModel returns a model at zero orientation.
func NewModel() *Model {
	return &Model{}
}

// OnPointerPress starts a drag at (x, y).
func (m *Model) OnPointerPress(x, y int) {
	m.drag = DragState{LastX: x, LastY: y, Active: true}
}

// OnPointerMove applies the pointer delta while the button is held.
// The last position is updated even without the button so that a later
// press does not jump. Returns true when the orientation changed.
func (m *Model) OnPointerMove(x, y int, buttonHeld bool) bool {
	dx := x - m.drag.LastX
	dy := y - m.drag.LastY
	m.drag.LastX, m.drag.LastY = x, y

	if !buttonHeld || !m.drag.Active {
		return false
	}
	if dx == 0 && dy == 0 {
		return false
	}
	m.orientation.PitchDeg += float32(dy)
	m.orientation.DragYawDeg += float32(dx)
	return true
}

// OnPointerRelease ends the drag.
func (m *Model) OnPointerRelease() {
	m.drag.Active = false
}

// SetTimeYaw maps minutes since midnight to a yaw of minutes/4 degrees.
// Input outside [0, MinutesPerDay] is clamped to tolerate slider rounding.
func (m *Model) SetTimeYaw(minutesOfDay int) bool {
	minutesOfDay = ClampMinutes(minutesOfDay)
	yaw := float32(minutesOfDay) / minutesPerDegree
	if yaw == m.orientation.TimeYawDeg {
		return false
	}
	m.orientation.TimeYawDeg = yaw
	return true
}

// Reset clears the drag rotation and keeps the time yaw.
func (m *Model) Reset() bool {
	if m.orientation.PitchDeg == 0 && m.orientation.DragYawDeg == 0 {
		return false
	}
	m.orientation.PitchDeg = 0
	m.orientation.DragYawDeg = 0
	return true
}

// Orientation returns the current orientation.
func (m *Model) Orientation() Orientation {
	return m.orientation
}

// Drag returns a copy of the drag state.
func (m *Model) Drag() DragState {
	return m.drag
}

// ClampMinutes limits a time-of-day value to [0, MinutesPerDay].
func ClampMinutes(minutes int) int {
	switch {
	case minutes < 0:
		return 0
	case minutes > MinutesPerDay:
		return MinutesPerDay
	}
	return minutes
}
