package bridge

import (
	"sync"
	"time"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// command is one entry of a session queue: either an event or a barrier
// that is closed once everything queued before it has been handled.
type command struct {
	event   entity.Event
	barrier chan struct{}
}

// eventQueue is an unbounded FIFO drained by a single consumer.
// Producers never block: push only takes the mutex and signals wake.
type eventQueue struct {
	mu     sync.Mutex
	items  []command
	seq    uint64
	closed bool
	wake   chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{wake: make(chan struct{}, 1)}
}

// push appends an event and assigns its sequence number. The sequence is
// taken under the same lock as the append, so it always matches queue order.
func (q *eventQueue) push(name entity.EventName, at time.Time) (entity.Event, bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return entity.Event{}, false
	}
	q.seq++
	ev := entity.Event{Seq: q.seq, Name: name, ReceivedAt: at}
	q.items = append(q.items, command{event: ev})
	q.mu.Unlock()

	q.signal()
	return ev, true
}

func (q *eventQueue) pushBarrier() (chan struct{}, bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, false
	}
	barrier := make(chan struct{})
	q.items = append(q.items, command{barrier: barrier})
	q.mu.Unlock()

	q.signal()
	return barrier, true
}

// close stops accepting new commands. Queued commands are still handed out
// by take.
func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// take removes every queued command.
func (q *eventQueue) take() ([]command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	batch := q.items
	q.items = nil
	return batch, q.closed
}

func (q *eventQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *eventQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
