package ripple

import (
	"math"
	"testing"

	"github.com/bigmakers/Kotoha/internal/geom"
)

func finite(v geom.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// TestDisplacementZeroDistanceSafety queries the field at a ripple's own
// center: the result must be finite and carry no horizontal component.
func TestDisplacementZeroDistanceSafety(t *testing.T) {
	s := NewStore()
	center := geom.Point{X: 100, Y: 100}
	s.Add(center, 10, 0)

	d := Displacement(s, center, 0)
	if !finite(d) {
		t.Fatalf("Displacement at ripple center is not finite: %v", d)
	}
	if d.X != 0 {
		t.Errorf("Horizontal component at zero distance must be 0, got %v", d.X)
	}

	d = Displacement(s, center, 0.01)
	if !finite(d) {
		t.Fatalf("Displacement shortly after start is not finite: %v", d)
	}
	if d.X != 0 {
		t.Errorf("Horizontal component at zero distance must stay 0, got %v", d.X)
	}
	if d.Y == 0 {
		t.Errorf("Expected a nonzero vertical bob shortly after start")
	}
}

// TestDisplacementOriginScenario covers the spec'd launch behavior: at the
// start instant the origin sits inside the mask band but the carrier is at
// a zero crossing; a moment later the bob is nonzero.
func TestDisplacementOriginScenario(t *testing.T) {
	s := NewStore()
	s.Add(geom.Point{}, 10, 0)

	if d := Displacement(s, geom.Point{}, 0); d != (geom.Vec{}) {
		t.Errorf("Carrier zero crossing at t=0 should yield a zero vector, got %v", d)
	}
	d := Displacement(s, geom.Point{}, 0.01)
	if mag := d.Len(); mag == 0 {
		t.Errorf("Expected small nonzero displacement at t=0.01")
	}
}

// TestDisplacementExpired verifies a ripple contributes nothing at or past
// its lifetime, independent of pruning.
func TestDisplacementExpired(t *testing.T) {
	s := NewStore()
	s.Add(geom.Point{}, 10, 0)
	points := []geom.Point{{}, {X: 50}, {X: 200, Y: 120}, {X: 400}}
	for _, now := range []float64{Lifetime, Lifetime + 0.01, Lifetime * 4} {
		for _, p := range points {
			if d := Displacement(s, p, now); d != (geom.Vec{}) {
				t.Errorf("Expired ripple contributed %v at %v, now=%v", d, p, now)
			}
		}
	}
}

// TestDisplacementOutsideBand checks the raised-cosine mask cuts the field
// to exactly zero outside the traveling band.
func TestDisplacementOutsideBand(t *testing.T) {
	s := NewStore()
	s.Add(geom.Point{}, 10, 0)
	// At t=0 the band covers dist <= windowHalfWidth only.
	if d := Displacement(s, geom.Point{X: windowHalfWidth + 1}, 0); d != (geom.Vec{}) {
		t.Errorf("Point beyond the band contributed %v", d)
	}
	if d := Displacement(s, geom.Point{X: windowHalfWidth - 1}, 0); d == (geom.Vec{}) {
		t.Errorf("Point inside the band should contribute")
	}
}

// TestDisplacementSuperposition verifies linearity: with two ripples whose
// bands do not overlap, the combined field equals each ripple evaluated
// alone.
func TestDisplacementSuperposition(t *testing.T) {
	const now = 0.05
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 5000, Y: 0}

	both := NewStore()
	both.Add(a, 10, 0)
	both.Add(b, 10, 0)

	onlyA := NewStore()
	onlyA.Add(a, 10, 0)
	onlyB := NewStore()
	onlyB.Add(b, 10, 0)

	nearA := geom.Point{X: 30, Y: 4}
	nearB := geom.Point{X: 5030, Y: 4}

	if got, want := Displacement(both, nearA, now), Displacement(onlyA, nearA, now); got != want {
		t.Errorf("Near A: combined %v != solo %v", got, want)
	}
	if got, want := Displacement(both, nearB, now), Displacement(onlyB, nearB, now); got != want {
		t.Errorf("Near B: combined %v != solo %v", got, want)
	}
	if Displacement(onlyB, nearA, now) != (geom.Vec{}) {
		t.Errorf("Ripple B should not reach the point near A")
	}
}

// TestDisplacementCoincidentRipplesSum covers two same-center, same-time
// ripples of amplitudes 5 and 7: the total equals the sum of the individual
// evaluations.
func TestDisplacementCoincidentRipplesSum(t *testing.T) {
	center := geom.Point{X: 50, Y: 50}
	p := geom.Point{X: 80, Y: 50}
	const now = 0.1

	both := NewStore()
	both.Add(center, 5, 0)
	both.Add(center, 7, 0)

	only5 := NewStore()
	only5.Add(center, 5, 0)
	only7 := NewStore()
	only7.Add(center, 7, 0)

	got := Displacement(both, p, now)
	d5 := Displacement(only5, p, now)
	d7 := Displacement(only7, p, now)
	if got != d5.Add(d7) {
		t.Errorf("Combined %v != %v + %v", got, d5, d7)
	}
}

// TestNegativeAmplitudeMirrors documents the accepted degenerate behavior:
// a negated amplitude mirrors the wave instead of failing.
func TestNegativeAmplitudeMirrors(t *testing.T) {
	p := geom.Point{X: 30}
	const now = 0.1

	pos := NewStore()
	pos.Add(geom.Point{}, 10, 0)
	neg := NewStore()
	neg.Add(geom.Point{}, -10, 0)

	dp := Displacement(pos, p, now)
	dn := Displacement(neg, p, now)
	if dp.Scale(-1) != dn {
		t.Errorf("Expected mirrored displacement, got %v and %v", dp, dn)
	}
}

// TestAppendRings checks ring radius and intensity against the ring-layer
// wave speed and temporal decay.
func TestAppendRings(t *testing.T) {
	s := NewStore()
	s.Add(geom.Point{X: 10, Y: 20}, 10, 0)

	const now = 0.5
	rings := AppendRings(nil, s, now)
	if len(rings) != 1 {
		t.Fatalf("Expected 1 ring, got %d", len(rings))
	}
	r := rings[0]
	if r.Radius != ringSpeed*now {
		t.Errorf("Expected radius %v, got %v", ringSpeed*now, r.Radius)
	}
	if want := math.Exp(-decayRate * now); r.Intensity != want {
		t.Errorf("Expected intensity %v, got %v", want, r.Intensity)
	}

	if rings = AppendRings(rings[:0], s, Lifetime+1); len(rings) != 0 {
		t.Errorf("Expired ripple still produced a ring")
	}
}
