package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTimeYawLinear(t *testing.T) {
	m := NewModel()
	for minutes := 0; minutes <= MinutesPerDay; minutes++ {
		m.SetTimeYaw(minutes)
		require.Equal(t, float32(minutes)/4.0, m.Orientation().TimeYawDeg, "minutes=%d", minutes)
	}
}

func TestSetTimeYawClamps(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    float32
	}{
		{"below range", -15, 0},
		{"far below", -100000, 0},
		{"above range", 1441, 360},
		{"far above", 99999, 360},
		{"lower bound", 0, 0},
		{"upper bound", 1440, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetTimeYaw(tt.minutes)
			assert.Equal(t, tt.want, m.Orientation().TimeYawDeg)
		})
	}
}

func TestHalfDayIsHalfTurn(t *testing.T) {
	m := NewModel()
	assert.True(t, m.Apply(TimeOfDay{Minutes: 720}))
	assert.Equal(t, float32(180), m.Orientation().TimeYawDeg)
	assert.False(t, m.Apply(TimeOfDay{Minutes: 720}), "same value should not request a redraw")
}

func TestDragSequence(t *testing.T) {
	m := NewModel()
	m.OnPointerPress(100, 100)
	dirty := m.OnPointerMove(110, 130, true)
	m.OnPointerRelease()

	assert.True(t, dirty)
	o := m.Orientation()
	assert.Equal(t, float32(10), o.DragYawDeg)
	assert.Equal(t, float32(30), o.PitchDeg)
	assert.False(t, m.Drag().Active)
}

func TestMoveWithoutButtonTracksPosition(t *testing.T) {
	m := NewModel()
	m.OnPointerPress(100, 100)

	dirty := m.OnPointerMove(150, 80, false)
	assert.False(t, dirty)
	assert.Equal(t, Orientation{}, m.Orientation())

	d := m.Drag()
	assert.Equal(t, 150, d.LastX)
	assert.Equal(t, 80, d.LastY)

	// The next held move is measured from the tracked position, not the press.
	m.OnPointerMove(155, 82, true)
	assert.Equal(t, float32(5), m.Orientation().DragYawDeg)
	assert.Equal(t, float32(2), m.Orientation().PitchDeg)
}

func TestMoveAfterReleaseIgnored(t *testing.T) {
	m := NewModel()
	m.OnPointerPress(0, 0)
	m.OnPointerRelease()

	assert.False(t, m.OnPointerMove(40, 40, true))
	assert.Equal(t, Orientation{}, m.Orientation())
}

func TestAnglesAreUnbounded(t *testing.T) {
	m := NewModel()
	m.OnPointerPress(0, 0)
	for x := 100; x <= 1000; x += 100 {
		m.OnPointerMove(x, 0, true)
	}
	assert.Equal(t, float32(1000), m.Orientation().DragYawDeg)

	m.SetTimeYaw(1440)
	assert.Equal(t, float32(1360), m.Orientation().Yaw())
}

func TestOrientationIsIdempotent(t *testing.T) {
	m := NewModel()
	m.ApplyAll([]Event{
		PointerPress{X: 3, Y: 4},
		PointerMove{X: 30, Y: -12, ButtonHeld: true},
		TimeOfDay{Minutes: 333},
	})

	first := m.Orientation()
	second := m.Orientation()
	assert.Equal(t, first, second)
}

func TestResetKeepsTimeYaw(t *testing.T) {
	m := NewModel()
	dirty := m.ApplyAll([]Event{
		TimeOfDay{Minutes: 360},
		PointerPress{X: 0, Y: 0},
		PointerMove{X: 20, Y: 20, ButtonHeld: true},
		PointerRelease{},
	})
	require.True(t, dirty)

	assert.True(t, m.Apply(ResetView{}))
	assert.Equal(t, Orientation{TimeYawDeg: 90}, m.Orientation())
	assert.False(t, m.Apply(ResetView{}))
}

func TestClampMinutes(t *testing.T) {
	assert.Equal(t, 0, ClampMinutes(-1))
	assert.Equal(t, 700, ClampMinutes(700))
	assert.Equal(t, MinutesPerDay, ClampMinutes(MinutesPerDay+1))
}
