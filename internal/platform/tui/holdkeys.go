package tui

import (
	"time"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// HoldTracker synthesises key releases for terminals, which only report
// presses. A key counts as held while the terminal keeps auto-repeating it;
// once no repeat arrives within the hold window the key is released.
//
// The first window is longer than the rest because terminals wait before
// they start repeating a held key.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Key]*hold
}

type hold struct {
	last      time.Time
	repeating bool
}

// NewHoldTracker creates a tracker with the given windows.
// Non-positive values fall back to 400 ms and 120 ms.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = 400 * time.Millisecond
	}
	if repeat <= 0 {
		repeat = 120 * time.Millisecond
	}
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Key]*hold),
	}
}

// Touch records a press of k. It reports whether this is a fresh press
// rather than an auto-repeat of a key already held.
func (h *HoldTracker) Touch(k core.Key, now time.Time) bool {
	if st, ok := h.keys[k]; ok {
		st.last = now
		st.repeating = true
		return false
	}
	h.keys[k] = &hold{last: now}
	return true
}

// Expired removes and returns every key whose hold window has passed.
func (h *HoldTracker) Expired(now time.Time) []core.Key {
	var out []core.Key
	for k := core.KeyUp; k <= core.KeyAction; k++ {
		st, ok := h.keys[k]
		if !ok {
			continue
		}
		window := h.initial
		if st.repeating {
			window = h.repeat
		}
		if now.Sub(st.last) >= window {
			delete(h.keys, k)
			out = append(out, k)
		}
	}
	return out
}

// Held reports whether k is currently considered held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.keys[k]
	return ok
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
