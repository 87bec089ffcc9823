// Package rotation turns pointer drags and a time-of-day value into a globe orientation.
//
// The model has no rendering or windowing knowledge. Hosts translate native
// events into the event values in events.go and request a redraw whenever
// an operation reports the orientation as dirty.
package rotation

// MinutesPerDay is the upper bound of the time-of-day slider.
const MinutesPerDay = 24 * 60

// minutesPerDegree maps a full day onto one revolution (1440 / 360).
const minutesPerDegree = 4.0

// Orientation is the globe rotation in degrees.
// Angles are unbounded; wrapping happens when a rotation matrix is built.
type Orientation struct {
	PitchDeg   float32
	DragYawDeg float32
	TimeYawDeg float32
}

// Yaw returns the effective rotation about the vertical axis.
func (o Orientation) Yaw() float32 {
	return o.DragYawDeg + o.TimeYawDeg
}

// DragState tracks the pointer between move events.
type DragState struct {
	LastX, LastY int
	Active       bool
}
