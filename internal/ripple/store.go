// Package ripple implements the bounded ripple store and the traveling-wave
// displacement field that animates the caption overlay.
package ripple

import "github.com/bigmakers/Kotoha/internal/geom"

// Fixed engine tuning. These values define the animation identity and are
// deliberately not runtime configuration.
const (
	// MaxRipples bounds how many ripple events are active at once.
	MaxRipples = 5
	// Lifetime is how long a ripple contributes to the field, in seconds.
	Lifetime = 2.5

	displaySpeed    = 160.0
	ringSpeed       = 280.0
	windowHalfWidth = 120.0
	frequency       = 5.0
	decayRate       = 1.2
	attenuation     = 0.001
	verticalShare   = 0.6
	horizontalShare = 0.2
)

// Event is a single ripple origin. Immutable after creation; owned by the
// Store until pruned or evicted.
type Event struct {
	ID        uint64
	Center    geom.Point
	Start     float64
	Amplitude float64
}

// Store holds the active ripple events in arrival order.
type Store struct {
	events []Event
	nextID uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{events: make([]Event, 0, MaxRipples)}
}

// Add records a new ripple at the given center, stamped with now. Expired
// entries are pruned first; if the store is still full, the oldest entry is
// evicted so the newest impulse always wins. Never fails.
func (s *Store) Add(center geom.Point, amplitude float64, now float64) Event {
	s.PruneExpired(now)
	if len(s.events) >= MaxRipples {
		copy(s.events, s.events[1:])
		s.events = s.events[:len(s.events)-1]
	}
	s.nextID++
	ev := Event{ID: s.nextID, Center: center, Start: now, Amplitude: amplitude}
	s.events = append(s.events, ev)
	return ev
}

// PruneExpired drops every event older than Lifetime. Idempotent.
func (s *Store) PruneExpired(now float64) {
	kept := s.events[:0]
	for _, ev := range s.events {
		if now-ev.Start > Lifetime {
			continue
		}
		kept = append(kept, ev)
	}
	s.events = kept
}

// ActiveCount prunes and returns the live event count. Instrumentation
// only; the renderer uses it to drive background intensity.
func (s *Store) ActiveCount(now float64) float64 {
	s.PruneExpired(now)
	return float64(len(s.events))
}

// Len returns the stored event count without pruning.
func (s *Store) Len() int { return len(s.events) }

// Events returns the live events in arrival order. The slice aliases the
// store's backing array and must not be retained across an Add.
func (s *Store) Events() []Event { return s.events }
