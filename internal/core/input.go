package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - steer left (held)
	ActionRight              // D, Right arrow - steer right (held)
	ActionJump               // Space, J, W, Up - swim up / jump (edge)
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
	ActionToggleDebug        // H - toggle hitbox/debug view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionToggleDebug:
		return "ToggleDebug"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions holds edge-triggered presses that happened during this frame;
// Held holds level-triggered actions that are down for the whole frame.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetHeld marks an action as held down (or released) for this frame.
func (f *InputFrame) SetHeld(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
	} else {
		delete(f.Held, a)
	}
}

// IsHeld returns true if the action is held for this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets the edge-triggered actions for the next frame.
// Held state survives until explicitly released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys emulates key-up events for terminals, which only report presses.
// A fresh press holds its action long enough to bridge the terminal's
// initial repeat delay; each auto-repeat after that refreshes a shorter
// window sized to the repeat interval.
type HeldKeys struct {
	firstTicks  int
	repeatTicks int
	remaining   map[Action]int
}

// NewHeldKeys creates a tracker. firstTicks covers the delay before the
// first auto-repeat, repeatTicks the gap between later repeats.
func NewHeldKeys(firstTicks, repeatTicks int) *HeldKeys {
	if repeatTicks < 1 {
		repeatTicks = 1
	}
	if firstTicks < repeatTicks {
		firstTicks = repeatTicks
	}
	return &HeldKeys{
		firstTicks:  firstTicks,
		repeatTicks: repeatTicks,
		remaining:   make(map[Action]int),
	}
}

// Press marks an action as down. A repeat never shortens the window
// left over from the first press.
func (h *HeldKeys) Press(a Action) {
	n, held := h.remaining[a]
	if !held {
		h.remaining[a] = h.firstTicks
		return
	}
	if n < h.repeatTicks {
		h.remaining[a] = h.repeatTicks
	}
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}

// Apply copies the held set into the frame.
func (h *HeldKeys) Apply(frame *InputFrame) {
	for a := range frame.Held {
		delete(frame.Held, a)
	}
	for a, n := range h.remaining {
		if n > 0 {
			frame.SetHeld(a, true)
		}
	}
}

// Tick ages every held action by one tick, releasing expired ones.
func (h *HeldKeys) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Holding reports whether the action is currently held.
func (h *HeldKeys) Holding(a Action) bool {
	return h.remaining[a] > 0
}
