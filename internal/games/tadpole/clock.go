package tadpole

import "time"

// Clock is the monotonic time source the core reads once per tick.
type Clock interface {
	Now() time.Duration
}

// TickClock advances by a fixed step each simulated tick. It keeps timed
// effects deterministic and stops while the game is paused.
type TickClock struct {
	now  time.Duration
	step time.Duration
}

// NewTickClock creates a clock stepping 1/tickRate seconds per tick.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{step: time.Second / time.Duration(tickRate)}
}

// Now returns the simulated elapsed time.
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.now += c.step
}

// maxWallStep bounds how much real time one tick may add, so a stalled
// terminal or a pause does not expire buffs in a single jump.
const maxWallStep = 100 * time.Millisecond

// WallClock accumulates real time between ticks. Buffs then last their
// configured wall duration even when ticks arrive late, as they do over a
// slow SSH link.
type WallClock struct {
	now     time.Duration
	last    time.Time
	started bool
	read    func() time.Time
}

// NewWallClock creates a wall clock reading time.Now.
func NewWallClock() *WallClock {
	return &WallClock{read: time.Now}
}

// Now returns the accumulated running time.
func (c *WallClock) Now() time.Duration {
	return c.now
}

// Advance adds the real time since the previous tick, capped at
// maxWallStep. The first tick only records the starting point.
func (c *WallClock) Advance() {
	t := c.read()
	if c.started {
		d := t.Sub(c.last)
		if d > maxWallStep {
			d = maxWallStep
		}
		if d > 0 {
			c.now += d
		}
	}
	c.last = t
	c.started = true
}

// Resume forgets the previous reading so time spent paused is skipped.
func (c *WallClock) Resume() {
	c.started = false
}

// advancer is implemented by clocks driven by the simulation itself.
type advancer interface {
	Advance()
}

// resumer is implemented by clocks that must skip time spent paused.
type resumer interface {
	Resume()
}
