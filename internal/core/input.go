package core

// Key is a physical key, abstracted from the terminal's key names.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// EventKind distinguishes input events.
type EventKind int

const (
	EventQuit EventKind = iota // Window close / ctrl+c
	EventKey                   // A key went down
)

// Event is a single discrete input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns the event raised when the player closes the game.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// Pressed reports whether the event is a press of the given key.
func (e Event) Pressed(k Key) bool {
	return e.Kind == EventKey && e.Key == k
}

// EventSource hands out the events queued since the last call.
type EventSource interface {
	// Poll drains the backlog. It returns immediately, with nil when empty.
	Poll() []Event
}

// EventQueue buffers events between frames. The platform pushes, the active
// scene drains once per frame. Both sides run on the same goroutine.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event to the backlog.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Poll returns all pending events and empties the queue.
func (q *EventQueue) Poll() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
