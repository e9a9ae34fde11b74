package input

import "strings"

// KeyboardState is a pressed/released snapshot of every named key
// Value type: copies are independent
type KeyboardState struct {
	pressed [keyCount]bool
}

// Pressed reports whether k was held when the snapshot was taken
func (s KeyboardState) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// Set marks k pressed or released; KeyNone and unknown keys are ignored
func (s *KeyboardState) Set(k Key, down bool) {
	if k == KeyNone || k >= keyCount {
		return
	}
	s.pressed[k] = down
}

// Any reports whether at least one key is held
func (s KeyboardState) Any() bool {
	for _, p := range s.pressed {
		if p {
			return true
		}
	}
	return false
}

// String lists held keys, e.g. "w+up"
func (s KeyboardState) String() string {
	var held []string
	for _, k := range Keys() {
		if s.pressed[k] {
			held = append(held, k.String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}

// StateOf builds a snapshot with the given keys held
func StateOf(keys ...Key) KeyboardState {
	var s KeyboardState
	for _, k := range keys {
		s.Set(k, true)
	}
	return s
}
