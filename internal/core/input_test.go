package core

import "testing"

func TestInputFrameEdgeAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetHeld(ActionLeft, true)

	if !f.Has(ActionJump) || !f.IsHeld(ActionLeft) {
		t.Fatal("frame should report jump pressed and left held")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop edge-triggered actions")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Clear should keep held actions")
	}

	f.SetHeld(ActionLeft, false)
	if f.IsHeld(ActionLeft) {
		t.Error("SetHeld(false) should release the action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	f.SetHeld(ActionRight, true)
	if !f.Has(ActionJump) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(3, 1)
	h.Press(ActionRight)

	frame := NewInputFrame()
	for i := 0; i < 3; i++ {
		h.Apply(&frame)
		if !frame.IsHeld(ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
		h.Tick()
	}

	h.Apply(&frame)
	if frame.IsHeld(ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2, 2)
	h.Press(ActionLeft)
	h.Tick()
	h.Press(ActionLeft) // auto-repeat
	h.Tick()
	if !h.Holding(ActionLeft) {
		t.Error("repeat press should extend the hold window")
	}

	h.Release(ActionLeft)
	if h.Holding(ActionLeft) {
		t.Error("Release should drop the action immediately")
	}
}

// A key held down at 60 ticks/s: first repeat after 500ms, then every 33ms.
func TestHeldKeysBridgesFirstRepeatDelay(t *testing.T) {
	h := NewHeldKeys(30, 9)
	presses := map[int]bool{0: true}
	for tick := 30; tick < 90; tick += 2 {
		presses[tick] = true
	}

	for tick := 0; tick < 90; tick++ {
		if presses[tick] {
			h.Press(ActionRight)
		}
		if !h.Holding(ActionRight) {
			t.Fatalf("steering dropped at tick %d", tick)
		}
		h.Tick()
	}

	// Key up: the repeat window runs out well before the first one would
	for i := 0; i < 9; i++ {
		h.Tick()
	}
	if h.Holding(ActionRight) {
		t.Error("right still held after repeats stopped")
	}
}

func TestHeldKeysRepeatDoesNotShortenFirstWindow(t *testing.T) {
	h := NewHeldKeys(30, 5)
	h.Press(ActionLeft)
	h.Tick()
	h.Press(ActionLeft)
	for i := 0; i < 20; i++ {
		h.Tick()
	}
	if !h.Holding(ActionLeft) {
		t.Error("early repeat cut the first hold window short")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleDebug.String() != "ToggleDebug" {
		t.Errorf("unexpected name %q", ActionToggleDebug.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should be named Unknown")
	}
}
