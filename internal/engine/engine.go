// Package engine ties the ripple store and scatter choreographer to a
// single tick timeline: queued input events are applied, expired state is
// pruned, and a pure query surface is exposed to the renderer.
package engine

import (
	"github.com/bigmakers/Kotoha/internal/geom"
	"github.com/bigmakers/Kotoha/internal/ripple"
	"github.com/bigmakers/Kotoha/internal/scatter"
)

// sweepInterval is the period of the low-frequency prune sweep, in seconds.
const sweepInterval = 0.3

// Engine is the single-writer animation core. All mutation happens inside
// Tick on one scheduling context; the query methods only read. The caller
// must feed Tick and every query from the same monotonic time source so
// expiry and displacement never disagree within a frame.
type Engine struct {
	store *ripple.Store
	chor  *scatter.Choreographer
	queue eventQueue

	drainBuf  []inputEvent
	ringBuf   []ripple.Ring
	lastSweep float64
}

// New returns an engine with no active ripples or scatter episode.
func New() *Engine {
	return &Engine{
		store:     ripple.NewStore(),
		chor:      scatter.New(),
		lastSweep: -sweepInterval,
	}
}

// AddRipple queues a ripple impulse. Safe to call from any goroutine; the
// event is applied, stamped with the tick time, on the next Tick.
func (e *Engine) AddRipple(center geom.Point, amplitude float64) {
	e.queue.push(inputEvent{kind: eventRipple, center: center, amplitude: amplitude})
}

// BeginScatter queues a scatter episode over the given character ids. A new
// episode replaces any episode still in flight.
func (e *Engine) BeginScatter(center geom.Point, members []int) {
	e.queue.push(inputEvent{kind: eventScatter, center: center, members: members})
}

// Tick applies pending events, runs the prune sweep, and retires a finished
// scatter episode. It returns the ids of characters whose episode just
// completed so the caller can remove them from the text model. Pruning
// always happens here, before any evaluation in the same frame reads the
// store, so an expired ripple never contributes a displayed term.
func (e *Engine) Tick(now float64) []int {
	e.drainBuf = e.queue.drain(e.drainBuf[:0])
	for _, ev := range e.drainBuf {
		switch ev.kind {
		case eventRipple:
			e.store.Add(ev.center, ev.amplitude, now)
		case eventScatter:
			e.chor.Begin(ev.center, ev.members, now)
		}
	}
	if now-e.lastSweep >= sweepInterval {
		e.store.PruneExpired(now)
		e.lastSweep = now
	}
	return e.chor.FinishIfDone(now)
}

// Displacement returns the combined wave displacement at a point.
func (e *Engine) Displacement(p geom.Point, now float64) geom.Vec {
	return ripple.Displacement(e.store, p, now)
}

// ScatterTransform returns the scatter transform for a character, or
// ok=false when the character is not part of an active episode.
func (e *Engine) ScatterTransform(charIndex int, pos geom.Point, now float64) (scatter.Transform, bool) {
	return e.chor.Evaluate(charIndex, pos, now)
}

// ScatterActive reports whether a scatter episode is in flight.
func (e *Engine) ScatterActive() bool { return e.chor.Active() }

// ActiveRippleCount prunes and returns the live ripple count as a float,
// for auxiliary visual intensity parameters.
func (e *Engine) ActiveRippleCount(now float64) float64 {
	return e.store.ActiveCount(now)
}

// Rings returns the expanding ring outlines for the ring renderer. The
// returned slice is reused between calls.
func (e *Engine) Rings(now float64) []ripple.Ring {
	e.ringBuf = ripple.AppendRings(e.ringBuf[:0], e.store, now)
	return e.ringBuf
}

// RippleCount returns the stored ripple count without pruning. Test and
// debug instrumentation.
func (e *Engine) RippleCount() int { return e.store.Len() }
