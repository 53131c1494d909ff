package batch

import (
	"sync"
	"time"
)

// Event records one status change of a batch run. Final marks the
// batch-completion notification that closes the stream.
type Event struct {
	Seq       int64
	Timestamp time.Time
	Index     int
	File      string
	Status    Status
	Message   string
	Final     bool
}

// Bus keeps a bounded history of batch events so the presentation shell can
// render a summary once the run is over. When the limit is reached the oldest
// events are dropped; sequence numbers keep counting regardless.
type Bus struct {
	mu      sync.Mutex
	limit   int
	seq     int64
	history []Event
}

// NewBus creates an event history holding at most limit events.
// A limit of zero or less means the default of 500.
func NewBus(limit int) *Bus {
	if limit <= 0 {
		limit = 500
	}
	return &Bus{limit: limit}
}

// Publish records one event, stamping it with the next sequence number and,
// unless already set, the current time.
func (b *Bus) Publish(ev Event) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	ev.Seq = b.seq
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	if len(b.history) == b.limit {
		copy(b.history, b.history[1:])
		b.history = b.history[:b.limit-1]
	}
	b.history = append(b.history, ev)
	return ev
}

// All returns a copy of the retained events in publish order.
func (b *Bus) All() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Event, len(b.history))
	copy(out, b.history)
	return out
}
