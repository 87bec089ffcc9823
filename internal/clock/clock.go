// Package clock holds the simulated wall clock shown by the S.P.A.C.E. window.
package clock

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Clock is a time of day with second precision and a running flag.
// Tick advances it; Start, Stop, Now and Midnight are the button actions.
type Clock struct {
	seconds int // since midnight, [0, secondsPerDay)
	running bool
	now     func() time.Time
	timer   Timer
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the system time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New returns a stopped clock set to the current system time.
func New(opts ...Option) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.seconds = secondsOf(c.now())
	c.timer = Timer{Interval: time.Second}
	return c
}

func secondsOf(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

// Tick advances the clock by one second, wrapping at midnight.
func (c *Clock) Tick() {
	c.seconds = (c.seconds + 1) % secondsPerDay
}

// Start resumes ticking. Starting a stopped clock restarts the timer, so the
// first tick is a full second away.
func (c *Clock) Start() {
	if !c.running {
		c.timer.Reset()
	}
	c.running = true
}

// Stop pauses ticking.
func (c *Clock) Stop() {
	c.running = false
}

// Now jumps to the system time and restarts the timer so the next tick is a full second away.
func (c *Clock) Now() {
	c.seconds = secondsOf(c.now())
	c.timer.Reset()
	c.running = true
}

// Midnight resets to 00:00:00 and stops the clock.
func (c *Clock) Midnight() {
	c.seconds = 0
	c.timer.Reset()
	c.running = false
}

// Advance feeds elapsed frame time into the 1 Hz timer and applies the
// resulting ticks. It returns the number of ticks applied.
func (c *Clock) Advance(dt time.Duration) int {
	if !c.running {
		return 0
	}
	n := c.timer.Advance(dt)
	if n > 0 {
		c.seconds = (c.seconds + n) % secondsPerDay
	}
	return n
}

// Running reports whether the clock ticks.
func (c *Clock) Running() bool {
	return c.running
}

// Clock returns hour, minute and second.
func (c *Clock) Clock() (hour, minute, second int) {
	return c.seconds / 3600, c.seconds / 60 % 60, c.seconds % 60
}

// MinutesOfDay returns whole minutes since midnight, for driving the globe's time yaw.
func (c *Clock) MinutesOfDay() int {
	return c.seconds / 60
}

// String formats the time as hh:mm:ss.
func (c *Clock) String() string {
	h, m, s := c.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
