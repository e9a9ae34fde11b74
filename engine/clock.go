package engine

import "time"

// Clock is the frame timing source, a monotonic millisecond tick counter
type Clock interface {
	// Ticks returns milliseconds since the clock started; wraps after ~49 days
	Ticks() uint32
	// SleepUntil blocks until Ticks reaches target; may return early, callers re-check
	SleepUntil(target uint32)
}

// TicksPassed reports whether now has reached target, tolerant of counter wrap
func TicksPassed(now, target uint32) bool {
	return int32(target-now) <= 0
}

// MonotonicClock reads the runtime monotonic clock
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock whose tick zero is now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Ticks() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// SleepUntil parks the goroutine for the remaining interval instead of spinning
func (c *MonotonicClock) SleepUntil(target uint32) {
	now := c.Ticks()
	if TicksPassed(now, target) {
		return
	}
	time.Sleep(time.Duration(target-now) * time.Millisecond)
}
