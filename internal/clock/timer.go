package clock

import "time"

// maxBacklog bounds how many ticks a single stall can produce.
const maxBacklog = time.Hour

// Timer converts frame deltas into fixed-interval ticks.
// The host loop calls Advance once per frame.
type Timer struct {
	Interval time.Duration
	elapsed  time.Duration
}

// Advance adds dt and returns how many whole intervals have passed.
func (t *Timer) Advance(dt time.Duration) int {
	if t.Interval <= 0 || dt <= 0 {
		return 0
	}
	if dt > maxBacklog {
		dt = maxBacklog
	}
	t.elapsed += dt
	n := int(t.elapsed / t.Interval)
	t.elapsed -= time.Duration(n) * t.Interval
	return n
}

// Reset drops any partial interval.
func (t *Timer) Reset() {
	t.elapsed = 0
}
