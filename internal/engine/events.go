package engine

import (
	"sync"

	"github.com/bigmakers/Kotoha/internal/geom"
)

// eventKind discriminates queued input events.
type eventKind int

const (
	eventRipple eventKind = iota
	eventScatter
)

// inputEvent is one queued impulse or scatter request.
type inputEvent struct {
	kind      eventKind
	center    geom.Point
	amplitude float64
	members   []int
}

// eventQueue marshals producer events onto the single-writer tick.
// Producers may enqueue from any goroutine; the tick drains everything
// before touching engine state.
type eventQueue struct {
	mu     sync.Mutex
	events []inputEvent
}

// push appends an event in arrival order.
func (q *eventQueue) push(ev inputEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// drain moves all pending events into dst and clears the queue.
func (q *eventQueue) drain(dst []inputEvent) []inputEvent {
	q.mu.Lock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}
