package hal

import "time"

// frameClock measures wall time between frames. The first frame reports zero.
type frameClock struct {
	now  func() time.Time
	last time.Time

	// maxStep caps a single delta. Zero disables the cap.
	maxStep time.Duration
}

func newFrameClock(now func() time.Time, maxStep time.Duration) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now, maxStep: maxStep}
}

func (c *frameClock) step() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		return c.maxStep
	}
	return dt
}
