package input

// EventType classifies discrete input events
type EventType uint8

const (
	EventNone EventType = iota
	// EventQuit is a close/quit request from the window or terminal
	EventQuit
	EventKey
	EventResize
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is a discrete input event drained from the source queue
type Event struct {
	Type EventType
	// Key is set for EventKey
	Key Key
}

// Source is the input collaborator polled once per frame
type Source interface {
	// PollEvent returns the next pending event, or false when the queue is empty
	PollEvent() (Event, bool)
	// KeyboardState returns the current held-key snapshot
	KeyboardState() KeyboardState
}
