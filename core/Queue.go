package core

// KeyEvent is a raw key transition from a host. Key is a host-independent identifier such as
// "w" or "ArrowUp".
type KeyEvent struct {
	Key  string
	Down bool
}

// InputQueue buffers key events between ticks. It is owned by the loop goroutine.
type InputQueue struct {
	events []KeyEvent
}

func (q *InputQueue) Push(e KeyEvent) {
	q.events = append(q.events, e)
}

// Drain returns the pending events in arrival order and empties the queue.
func (q *InputQueue) Drain() []KeyEvent {
	events := q.events
	q.events = nil
	return events
}

func (q *InputQueue) Len() int {
	return len(q.events)
}

// CollisionQueue buffers collision-start pairs reported by the engine during its step.
type CollisionQueue struct {
	contacts []Contact
}

func (q *CollisionQueue) Push(c Contact) {
	q.contacts = append(q.contacts, c)
}

func (q *CollisionQueue) Drain() []Contact {
	contacts := q.contacts
	q.contacts = nil
	return contacts
}

func (q *CollisionQueue) Len() int {
	return len(q.contacts)
}
