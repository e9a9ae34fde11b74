package constant

import "time"

// Game Loop & Engine Timing
const (
	// FPSCap is the framerate cap enforced by the update throttle
	FPSCap = 60

	// MaxDeltaTime clamps the simulated step after a stall (debugger pause, suspended terminal)
	MaxDeltaTime = 0.05

	// EventQueueSize is the buffered capacity of the terminal event pump
	EventQueueSize = 100
)

// Input latching for terminals, which report key presses but never releases
const (
	// KeyHoldWindow covers the terminal's initial autorepeat delay after the first press
	KeyHoldWindow = 500 * time.Millisecond

	// KeyRepeatGrace keeps a key held between autorepeat events
	KeyRepeatGrace = 100 * time.Millisecond
)
