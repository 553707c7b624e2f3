package tadpole

import (
	"testing"
	"time"
)

func TestBuffLifecycle(t *testing.T) {
	b := Buff{Duration: 4 * time.Second}

	if refreshed := b.Activate(time.Second); refreshed {
		t.Error("first activation reported as refresh")
	}
	if got := b.Remaining(3 * time.Second); got != 2*time.Second {
		t.Errorf("Remaining = %v, want 2s", got)
	}
	if b.Expire(5*time.Second - time.Nanosecond) {
		t.Error("buff expired before its duration elapsed")
	}
	if !b.Expire(5 * time.Second) {
		t.Error("buff should expire when elapsed == duration")
	}
	if b.Active {
		t.Error("buff still active after expiry")
	}
	if b.Expire(6 * time.Second) {
		t.Error("inactive buff reported expiry twice")
	}
	if got := b.Remaining(6 * time.Second); got != 0 {
		t.Errorf("Remaining on inactive buff = %v, want 0", got)
	}
}

func TestBuffRefresh(t *testing.T) {
	b := Buff{Duration: 4 * time.Second}
	b.Activate(0)

	if !b.Activate(3 * time.Second) {
		t.Error("second activation should report refresh")
	}
	if b.Expire(6 * time.Second) {
		t.Error("refresh should restart the timer")
	}
	if !b.Expire(7 * time.Second) {
		t.Error("refreshed buff should expire 4s after the refresh")
	}
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(60)
	for i := 0; i < 60; i++ {
		c.Advance()
	}
	// 60 steps of 1/60s truncate to slightly under a second
	if got := c.Now(); got < time.Second-time.Millisecond || got > time.Second {
		t.Errorf("Now() = %v after 60 ticks, want ~1s", got)
	}

	if NewTickClock(0).step != time.Second/60 {
		t.Error("zero tick rate should default to 60")
	}
}

// fakeTime is a manually driven time source for WallClock.
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) add(d time.Duration) { f.t = f.t.Add(d) }

func TestWallClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWallClock()
	c.read = ft.now

	c.Advance()
	if c.Now() != 0 {
		t.Errorf("first Advance should only start the clock, got %v", c.Now())
	}

	ft.add(20 * time.Millisecond)
	c.Advance()
	ft.add(30 * time.Millisecond)
	c.Advance()
	if c.Now() != 50*time.Millisecond {
		t.Errorf("Now() = %v, want 50ms", c.Now())
	}

	// A stall counts as at most one capped step
	ft.add(5 * time.Second)
	c.Advance()
	if c.Now() != 50*time.Millisecond+maxWallStep {
		t.Errorf("Now() = %v after stall, want %v", c.Now(), 50*time.Millisecond+maxWallStep)
	}

	// Time before a Resume is skipped entirely
	ft.add(40 * time.Millisecond)
	c.Resume()
	c.Advance()
	ft.add(10 * time.Millisecond)
	c.Advance()
	if want := 60*time.Millisecond + maxWallStep; c.Now() != want {
		t.Errorf("Now() = %v after resume, want %v", c.Now(), want)
	}
}

func TestWallClockBuffExpiry(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWallClock()
	c.read = ft.now
	c.Advance()

	b := Buff{Duration: 200 * time.Millisecond}
	b.Activate(c.Now())
	for i := 0; i < 3; i++ {
		ft.add(60 * time.Millisecond)
		c.Advance()
		b.Expire(c.Now())
	}
	if !b.Active {
		t.Fatal("buff expired after 180ms of a 200ms duration")
	}
	ft.add(60 * time.Millisecond)
	c.Advance()
	b.Expire(c.Now())
	if b.Active {
		t.Error("buff still active after 240ms")
	}
}
