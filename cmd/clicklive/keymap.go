package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// binding is one abstract input: host button code and player
type binding struct {
	button  uint8 // 1 jump, 2 left, 3 right
	player2 bool
}

// keymap maps terminal keys to bindings
// Player 1 uses space/arrows and WASD, player 2 uses IJKL
var keymap = map[rune]binding{
	' ': {1, false},
	'w': {1, false},
	'a': {2, false},
	'd': {3, false},
	'i': {1, true},
	'j': {2, true},
	'l': {3, true},
}

var arrowKeys = map[tcell.Key]binding{
	tcell.KeyUp:    {1, false},
	tcell.KeyLeft:  {2, false},
	tcell.KeyRight: {3, false},
}

// lookupKey resolves a key event to a binding
func lookupKey(ev *tcell.EventKey) (binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := keymap[ev.Rune()]
		return b, ok
	}
	b, ok := arrowKeys[ev.Key()]
	return b, ok
}

// holdTracker turns key-repeat streams into press/release pairs
// Terminals report no key-up, so a binding is released once no repeat
// arrived for releaseAfter
type holdTracker struct {
	releaseAfter time.Duration
	lastSeen     map[binding]time.Time
	action       func(b binding, push bool)
}

func newHoldTracker(releaseAfter time.Duration, action func(b binding, push bool)) *holdTracker {
	return &holdTracker{
		releaseAfter: releaseAfter,
		lastSeen:     make(map[binding]time.Time),
		action:       action,
	}
}

// key records a key event; the first one of a hold is a press
func (h *holdTracker) key(b binding, now time.Time) {
	if _, held := h.lastSeen[b]; !held {
		h.action(b, true)
	}
	h.lastSeen[b] = now
}

// expire releases bindings that stopped repeating
func (h *holdTracker) expire(now time.Time) {
	for b, seen := range h.lastSeen {
		if now.Sub(seen) >= h.releaseAfter {
			delete(h.lastSeen, b)
			h.action(b, false)
		}
	}
}

// forget drops every hold without emitting releases
func (h *holdTracker) forget() {
	clear(h.lastSeen)
}

// held returns the number of bindings currently down
func (h *holdTracker) held() int {
	return len(h.lastSeen)
}
