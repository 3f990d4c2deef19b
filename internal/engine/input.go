package engine

import "github.com/vovakirdan/tui-breakout/internal/core"

// InputSource produces the events for one tick.
// Poll must not block and must drain everything queued since the last call.
type InputSource interface {
	Poll() []core.Event
}

// QueueSource is an InputSource backed by a plain slice.
type QueueSource struct {
	queue []core.Event
}

// NewQueueSource creates an empty queue.
func NewQueueSource() *QueueSource {
	return &QueueSource{}
}

// Push appends events to the queue.
func (q *QueueSource) Push(events ...core.Event) {
	q.queue = append(q.queue, events...)
}

// Len returns the number of queued events.
func (q *QueueSource) Len() int {
	return len(q.queue)
}

// Poll returns and clears the queued events.
func (q *QueueSource) Poll() []core.Event {
	if len(q.queue) == 0 {
		return nil
	}
	events := q.queue
	q.queue = nil
	return events
}
