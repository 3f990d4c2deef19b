package core

// Key identifies a physical key as seen by the simulation.
// Frontends translate their native key codes into these values.
type Key int

const (
	KeyUnknown Key = iota // Any key the game does not bind
	KeyLeft               // Left arrow - move paddle left
	KeyRight              // Right arrow - move paddle right
	KeySpace              // Space - launch a docked ball
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "Unknown"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	default:
		return "Invalid"
	}
}

// EventKind is the type of a raw input event.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit             // Window closed or quit key pressed
	EventKeyDown          // Key pressed (repeats arrive as further key-downs)
	EventKeyUp            // Key released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is a single entry of the per-tick input stream.
type Event struct {
	Kind EventKind
	Key  Key // Zero for quit events
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// String formats the event for logs, e.g. "KeyDown(Left)".
func (e Event) String() string {
	if e.Kind == EventQuit || e.Kind == EventNone {
		return e.Kind.String()
	}
	return e.Kind.String() + "(" + e.Key.String() + ")"
}
