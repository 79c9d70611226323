package engine

import (
	"sync"
	"time"
)

// FrameClock samples scene time once per rendered frame
// Elapsed excludes paused intervals and never decreases
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta time.Duration

	startTime   time.Time
	pausedTotal time.Duration
	pauseStart  time.Time
	paused      bool

	last Frame
}

// NewFrameClock starts a clock at the provider's current time
// maxDelta caps the per-frame delta handed to entities; 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		provider:  provider,
		maxDelta:  maxDelta,
		startTime: provider.Now(),
	}
}

// Tick advances the clock and returns the new frame
// While paused it returns the previous frame and false: no background ticking
func (c *FrameClock) Tick() (Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return c.last, false
	}

	elapsed := c.provider.Now().Sub(c.startTime) - c.pausedTotal
	if elapsed < c.last.Elapsed {
		// Provider went backwards, hold position
		elapsed = c.last.Elapsed
	}

	delta := elapsed - c.last.Elapsed
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}

	c.last = Frame{
		Number:  c.last.Number + 1,
		Elapsed: elapsed,
		Delta:   delta,
	}
	return c.last, true
}

// Last returns the most recent frame without advancing
func (c *FrameClock) Last() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Pause stops time advancement
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues time advancement, excluding the paused span from Elapsed
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	if d := c.provider.Now().Sub(c.pauseStart); d > 0 {
		c.pausedTotal += d
	}
	c.paused = false
	c.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
