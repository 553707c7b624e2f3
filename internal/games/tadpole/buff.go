package tadpole

import "time"

// Buff is a timed effect measured against the game clock.
// Expiry is polled every tick by comparing elapsed time to Duration.
type Buff struct {
	Duration  time.Duration
	StartedAt time.Duration
	Active    bool
}

// Activate starts the buff at now. If it was already active only the
// timer is refreshed; the return value tells the caller which happened.
func (b *Buff) Activate(now time.Duration) (refreshed bool) {
	refreshed = b.Active
	b.Active = true
	b.StartedAt = now
	return refreshed
}

// Expire clears the buff once its duration has elapsed.
// Returns true on the tick the buff ends.
func (b *Buff) Expire(now time.Duration) bool {
	if !b.Active || now-b.StartedAt < b.Duration {
		return false
	}
	b.Active = false
	return true
}

// Remaining returns the time left, or zero when inactive.
func (b Buff) Remaining(now time.Duration) time.Duration {
	if !b.Active {
		return 0
	}
	left := b.Duration - (now - b.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Clear deactivates the buff immediately.
func (b *Buff) Clear() {
	b.Active = false
	b.StartedAt = 0
}
