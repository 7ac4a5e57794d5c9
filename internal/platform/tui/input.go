package tui

import (
	"time"

	"github.com/vovakirdan/monster-battle/internal/core"
)

// Terminals only report key presses and auto-repeats, never releases.
// A key is treated as held for a short window after each report. The first
// window is longer to bridge the keyboard's initial repeat delay.
//
// Reports closer together than repeatHoldWindow are auto-repeats. Anything
// slower is a new tap, so the first auto-repeat after the initial delay also
// counts as a press.
const (
	firstHoldWindow  = 550 * time.Millisecond
	repeatHoldWindow = 120 * time.Millisecond
)

// holdTracker turns key reports into per-frame input.
type holdTracker struct {
	until   map[core.Action]time.Time
	last    map[core.Action]time.Time
	pressed map[core.Action]bool
}

func newHoldTracker() *holdTracker {
	return &holdTracker{
		until:   make(map[core.Action]time.Time),
		last:    make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

// Report records a key report at time now. A report arriving at auto-repeat
// rate while the key is held extends the hold but is not a new press.
func (h *holdTracker) Report(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	last, seen := h.last[a]
	h.last[a] = now
	if h.held(a, now) && seen && now.Sub(last) < repeatHoldWindow {
		h.until[a] = now.Add(repeatHoldWindow)
		return
	}
	h.pressed[a] = true
	h.until[a] = now.Add(firstHoldWindow)
}

func (h *holdTracker) held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Frame returns the input for the frame at time now and consumes the
// pending presses.
func (h *holdTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range h.pressed {
		in.Press(a)
	}
	for a, until := range h.until {
		if now.Before(until) || h.pressed[a] {
			in.Hold(a)
		} else {
			delete(h.until, a)
			delete(h.last, a)
		}
	}
	clear(h.pressed)
	return in
}
