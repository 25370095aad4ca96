package tui

import "time"

// Terminals report key presses but never releases. A key counts as held for
// a window after each press; auto-repeat keeps refreshing it while the key is
// down. The first window covers the terminal's repeat delay, later ones only
// the gap between repeats.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// HeldKeys tracks which key names are considered down at a given instant.
type HeldKeys struct {
	initial time.Duration
	repeat  time.Duration
	until   map[string]time.Time
}

// NewHeldKeys creates a tracker with the given hold windows.
func NewHeldKeys(initial, repeat time.Duration) *HeldKeys {
	return &HeldKeys{
		initial: initial,
		repeat:  repeat,
		until:   make(map[string]time.Time),
	}
}

// Press records a key press at now. A press while the key is still held is
// treated as auto-repeat.
func (h *HeldKeys) Press(key string, now time.Time) {
	window := h.initial
	if h.Held(key, now) {
		window = h.repeat
	}
	h.hold(key, now.Add(window))
}

// Tap records a press that should count for a single tick of length d.
func (h *HeldKeys) Tap(key string, now time.Time, d time.Duration) {
	h.hold(key, now.Add(d))
}

// hold extends the key's deadline, never shortening it.
func (h *HeldKeys) hold(key string, deadline time.Time) {
	if cur, ok := h.until[key]; ok && cur.After(deadline) {
		return
	}
	h.until[key] = deadline
}

// Held reports whether key is down at now.
func (h *HeldKeys) Held(key string, now time.Time) bool {
	deadline, ok := h.until[key]
	return ok && now.Before(deadline)
}

// Expire forgets keys whose window has passed.
func (h *HeldKeys) Expire(now time.Time) {
	for key, deadline := range h.until {
		if !now.Before(deadline) {
			delete(h.until, key)
		}
	}
}
