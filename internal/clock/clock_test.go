package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(h, m, s int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.March, 14, h, m, s, 500, time.Local)
	}
}

func TestNewUsesSystemTime(t *testing.T) {
	c := New(WithNow(fixedNow(13, 45, 7)))
	assert.Equal(t, "13:45:07", c.String())
	assert.False(t, c.Running())
}

func TestTickWrapsAtMidnight(t *testing.T) {
	c := New(WithNow(fixedNow(23, 59, 58)))
	c.Tick()
	assert.Equal(t, "23:59:59", c.String())
	c.Tick()
	assert.Equal(t, "00:00:00", c.String())
}

func TestButtons(t *testing.T) {
	c := New(WithNow(fixedNow(8, 0, 0)))

	c.Start()
	assert.True(t, c.Running())
	c.Stop()
	assert.False(t, c.Running())

	c.Midnight()
	assert.Equal(t, "00:00:00", c.String())
	assert.False(t, c.Running(), "midnight stops the clock")

	c.Now()
	assert.Equal(t, "08:00:00", c.String())
	assert.True(t, c.Running(), "now restarts the clock")
}

func TestAdvanceOnlyWhileRunning(t *testing.T) {
	c := New(WithNow(fixedNow(0, 0, 0)))

	assert.Equal(t, 0, c.Advance(5*time.Second))
	assert.Equal(t, "00:00:00", c.String())

	c.Start()
	assert.Equal(t, 0, c.Advance(600*time.Millisecond))
	assert.Equal(t, 1, c.Advance(600*time.Millisecond))
	assert.Equal(t, "00:00:01", c.String())

	assert.Equal(t, 3, c.Advance(3*time.Second))
	assert.Equal(t, "00:00:04", c.String())
}

func TestNowRestartsTimerPhase(t *testing.T) {
	c := New(WithNow(fixedNow(10, 0, 0)))
	c.Start()
	c.Advance(900 * time.Millisecond)

	c.Now()
	assert.Equal(t, 0, c.Advance(200*time.Millisecond), "partial second must not carry over")
	assert.Equal(t, 1, c.Advance(800*time.Millisecond))
	assert.Equal(t, "10:00:01", c.String())
}

func TestStartRestartsTimerPhase(t *testing.T) {
	c := New(WithNow(fixedNow(0, 0, 0)))
	c.Start()
	c.Advance(900 * time.Millisecond)
	c.Stop()

	c.Start()
	assert.Equal(t, 0, c.Advance(100*time.Millisecond), "first tick after a restart is a full second away")
	assert.Equal(t, "00:00:00", c.String())
	assert.Equal(t, 1, c.Advance(900*time.Millisecond))
	assert.Equal(t, "00:00:01", c.String())
}

func TestStartWhileRunningKeepsPhase(t *testing.T) {
	c := New(WithNow(fixedNow(0, 0, 0)))
	c.Start()
	c.Advance(900 * time.Millisecond)

	c.Start()
	assert.Equal(t, 1, c.Advance(100*time.Millisecond))
}

func TestMinutesOfDay(t *testing.T) {
	c := New(WithNow(fixedNow(12, 0, 59)))
	assert.Equal(t, 720, c.MinutesOfDay())
}

func TestTimer(t *testing.T) {
	tests := []struct {
		name  string
		steps []time.Duration
		want  int
	}{
		{"nothing", nil, 0},
		{"below interval", []time.Duration{999 * time.Millisecond}, 0},
		{"accumulates", []time.Duration{400 * time.Millisecond, 400 * time.Millisecond, 400 * time.Millisecond}, 1},
		{"several at once", []time.Duration{2500 * time.Millisecond}, 2},
		{"negative ignored", []time.Duration{-time.Second}, 0},
		{"stall capped", []time.Duration{48 * time.Hour}, 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Timer{Interval: time.Second}
			got := 0
			for _, dt := range tt.steps {
				got += tm.Advance(dt)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimerZeroInterval(t *testing.T) {
	var tm Timer
	assert.Equal(t, 0, tm.Advance(time.Minute))
}
