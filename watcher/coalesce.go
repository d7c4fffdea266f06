package watcher

import (
	"sort"
	"sync"
	"time"
)

// defaultQuietPeriod is how long the tree must stay quiet before a batch is
// flushed. Bulk operations (checkout, generator runs) collapse into one
// batch instead of a storm of single events.
const defaultQuietPeriod = 100 * time.Millisecond

// Op is the kind of filesystem change carried by an Event.
type Op int

const (
	OpCreate Op = iota
	OpWrite
	OpRemove
	OpRename
)

// Event is one coalesced filesystem change. Repeated changes to the same
// path within a quiet period collapse into the latest operation.
type Event struct {
	Path string
	Op   Op
}

// coalescer buffers events per path and flushes a sorted batch after the
// quiet period elapses with no new activity.
type coalescer struct {
	quiet   time.Duration
	mu      sync.Mutex
	pending map[string]Op
	timer   *time.Timer
	out     chan []Event
}

func newCoalescer(quiet time.Duration) *coalescer {
	return &coalescer{
		quiet:   quiet,
		pending: make(map[string]Op),
		out:     make(chan []Event, 16),
	}
}

func (c *coalescer) batches() <-chan []Event {
	return c.out
}

func (c *coalescer) add(path string, op Op) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[path] = op
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.quiet, c.flush)
}

func (c *coalescer) flush() {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	batch := make([]Event, 0, len(c.pending))
	for p, op := range c.pending {
		batch = append(batch, Event{Path: p, Op: op})
	}
	c.pending = make(map[string]Op)
	// The send must happen outside the lock: a stalled consumer would
	// otherwise block the timer goroutine while it holds the mutex, and
	// every add behind it.
	c.mu.Unlock()

	// Deterministic delivery order for consumers and tests.
	sort.Slice(batch, func(i, j int) bool { return batch[i].Path < batch[j].Path })
	c.out <- batch
}
