package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/input"
)

// latch tracks when a key was last seen
type latch struct {
	last   time.Time
	repeat bool
}

// Keyboard implements input.Source over the backend's event pump
// Must be used from a single goroutine
type Keyboard struct {
	events      <-chan tcell.Event
	now         func() time.Time
	holdWindow  time.Duration
	repeatGrace time.Duration

	latches map[input.Key]latch
}

func newKeyboard(events <-chan tcell.Event, opts Options) *Keyboard {
	return &Keyboard{
		events:      events,
		now:         opts.Now,
		holdWindow:  opts.HoldWindow,
		repeatGrace: opts.RepeatGrace,
		latches:     make(map[input.Key]latch),
	}
}

// PollEvent returns the next translated event without blocking
// Events with no game meaning (mouse, paste, interrupts) are skipped
func (k *Keyboard) PollEvent() (input.Event, bool) {
	for {
		var raw tcell.Event
		select {
		case raw = <-k.events:
		default:
			return input.Event{}, false
		}

		switch ev := raw.(type) {
		case *tcell.EventKey:
			if isInterrupt(ev) {
				return input.Event{Type: input.EventQuit}, true
			}
			key := translateKey(ev)
			k.press(key, k.now())
			return input.Event{Type: input.EventKey, Key: key}, true
		case *tcell.EventResize:
			return input.Event{Type: input.EventResize}, true
		}
	}
}

// press latches key at t; a press while still held counts as autorepeat
func (k *Keyboard) press(key input.Key, t time.Time) {
	if key == input.KeyNone {
		return
	}
	l, ok := k.latches[key]
	k.latches[key] = latch{last: t, repeat: ok && k.held(l, t)}
}

func (k *Keyboard) held(l latch, now time.Time) bool {
	window := k.holdWindow
	if l.repeat {
		window = k.repeatGrace
	}
	return now.Sub(l.last) < window
}

// KeyboardState snapshots which keys are still within their latch window
func (k *Keyboard) KeyboardState() input.KeyboardState {
	now := k.now()
	var state input.KeyboardState
	for key, l := range k.latches {
		if k.held(l, now) {
			state.Set(key, true)
		} else {
			delete(k.latches, key)
		}
	}
	return state
}
