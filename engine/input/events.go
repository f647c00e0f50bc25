package input

import "sync"

// Events is an append-only event stream supporting multiple independent
// consumers. Producers call Send; each consumer reads through its own Reader,
// which tracks how far into the stream it has advanced. The stream assigns
// every event a monotonically increasing sequence number for the lifetime of
// the process, so cursor positions stay meaningful across Flush calls.
//
// Safe for concurrent use: the device layer produces on the platform thread
// while the tick loop consumes on its own goroutine.
type Events[T any] struct {
	mu    sync.Mutex
	items []T

	// base is the sequence number of items[0]. It only grows.
	base uint64
}

// Send appends one event to the stream.
//
// Parameters:
//   - event: the event to append
func (e *Events[T]) Send(event T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = append(e.items, event)
}

// Len returns the number of events currently buffered (sent but not yet
// flushed). Reader positions do not affect this count.
//
// Returns:
//   - int: buffered event count
func (e *Events[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Flush discards all buffered events. Sequence numbers keep advancing, so a
// Reader that had not consumed the flushed events simply misses them and
// resumes at the next Send. Hosts call this once per tick after all consumers
// have read, which bounds stream memory to a single frame's worth of events.
func (e *Events[T]) Flush() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base += uint64(len(e.items))
	e.items = e.items[:0]
}

// readFrom copies every buffered event at sequence >= cursor and reports the
// sequence number one past the newest event. Cursors older than the buffered
// window are snapped forward to the window start.
func (e *Events[T]) readFrom(cursor uint64) ([]T, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	end := e.base + uint64(len(e.items))
	if cursor < e.base {
		cursor = e.base
	}
	if cursor >= end {
		return nil, end
	}
	out := make([]T, end-cursor)
	copy(out, e.items[cursor-e.base:])
	return out, end
}

// Reader is a persistent cursor into an Events stream. Each Reader consumes
// independently; reading never removes events from the stream. The zero value
// starts at the beginning of the stream.
//
// A Reader is owned by a single consumer and is not safe for concurrent use.
type Reader[T any] struct {
	cursor uint64
}

// Read returns every event appended since this Reader's previous Read, in
// arrival order, and advances the cursor past them. Events already consumed
// are never revisited. An empty frame returns nil.
//
// Parameters:
//   - events: the stream to read from
//
// Returns:
//   - []T: the unconsumed events, oldest first
func (r *Reader[T]) Read(events *Events[T]) []T {
	out, next := events.readFrom(r.cursor)
	r.cursor = next
	return out
}
