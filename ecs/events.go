package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a FIFO queue with subscriber dispatch. Systems publish
// during their update; the world dispatches after all systems have run, so
// subscribers see a consistent tick. Delivery is fire-and-forget.
type EventQueue struct {
	items []Event
	subs  []func(Event)
}

// Publish enqueues an event for dispatch at the end of the tick.
func (q *EventQueue) Publish(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Subscribe registers a handler for all events.
func (q *EventQueue) Subscribe(fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	q.subs = append(q.subs, fn)
}

func (q *EventQueue) dispatch() {
	if q == nil || len(q.items) == 0 {
		return
	}
	items := q.items
	q.items = nil
	for _, evt := range items {
		for _, sub := range q.subs {
			sub(evt)
		}
	}
}
