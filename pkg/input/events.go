package input

// EventKind identifies the source of a queued event.
type EventKind uint8

const (
	EventScroll EventKind = iota
	EventCursor
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventScroll:
		return "scroll"
	case EventCursor:
		return "cursor"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one window callback, recorded for the next frame.
type Event struct {
	Kind EventKind

	// X, Y hold the scroll offsets or the absolute cursor position
	X, Y float64

	// Width, Height hold the new framebuffer size of a resize
	Width, Height int
}

// Queue collects window events between frames. Window callbacks fire on the
// frame-loop thread while events are polled, so no locking is needed.
type Queue struct {
	events []Event
}

// PushScroll records a scroll tick
func (q *Queue) PushScroll(xoffset, yoffset float64) {
	q.events = append(q.events, Event{Kind: EventScroll, X: xoffset, Y: yoffset})
}

// PushCursor records an absolute cursor position
func (q *Queue) PushCursor(xpos, ypos float64) {
	q.events = append(q.events, Event{Kind: EventCursor, X: xpos, Y: ypos})
}

// PushResize records a framebuffer resize
func (q *Queue) PushResize(width, height int) {
	q.events = append(q.events, Event{Kind: EventResize, Width: width, Height: height})
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
