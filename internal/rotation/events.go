package rotation

// Event is an input message understood by Model.Apply.
type Event interface {
	isEvent()
}

// PointerPress is a primary button press at surface coordinates.
type PointerPress struct {
	X, Y int
}

// PointerMove is pointer motion; ButtonHeld reports the primary button state.
type PointerMove struct {
	X, Y       int
	ButtonHeld bool
}

// PointerRelease is a primary button release.
type PointerRelease struct{}

// TimeOfDay carries a slider value in minutes since midnight.
type TimeOfDay struct {
	Minutes int
}

// ResetView clears the drag rotation.
type ResetView struct{}

func (PointerPress) isEvent()   {}
func (PointerMove) isEvent()    {}
func (PointerRelease) isEvent() {}
func (TimeOfDay) isEvent()      {}
func (ResetView) isEvent()      {}

// Apply dispatches ev and reports whether a redraw should be requested.
func (m *Model) Apply(ev Event) bool {
	switch e := ev.(type) {
	case PointerPress:
		m.OnPointerPress(e.X, e.Y)
	case PointerMove:
		return m.OnPointerMove(e.X, e.Y, e.ButtonHeld)
	case PointerRelease:
		m.OnPointerRelease()
	case TimeOfDay:
		return m.SetTimeYaw(e.Minutes)
	case ResetView:
		return m.Reset()
	}
	return false
}

// ApplyAll applies events in order and reports whether any of them dirtied the model.
func (m *Model) ApplyAll(events []Event) bool {
	dirty := false
	for _, ev := range events {
		if m.Apply(ev) {
			dirty = true
		}
	}
	return dirty
}
