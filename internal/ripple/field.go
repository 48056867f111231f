package ripple

import (
	"math"

	"github.com/bigmakers/Kotoha/internal/geom"
)

// Displacement evaluates the combined displacement field at a point. Each
// live ripple contributes a traveling wave masked to a raised-cosine band
// around its front; contributions sum linearly. Points outside every band
// return the zero vector. A ripple at or past Lifetime contributes exactly
// zero whether or not the prune sweep has dropped it yet.
func Displacement(s *Store, p geom.Point, now float64) geom.Vec {
	var out geom.Vec
	for _, ev := range s.events {
		t := now - ev.Start
		if t < 0 {
			t = 0
		}
		if t >= Lifetime {
			continue
		}
		dist := geom.Dist(p, ev.Center)
		wavefront := displaySpeed * t
		if dist < wavefront-windowHalfWidth || dist > wavefront+windowHalfWidth {
			continue
		}
		mask := math.Cos((dist - wavefront) / windowHalfWidth * (math.Pi / 2))
		if mask < 0 {
			mask = 0
		}
		carrier := math.Sin(frequency*dist - displaySpeed*t)
		envelope := ev.Amplitude * math.Exp(-decayRate*t) * math.Exp(-attenuation*dist)
		scalar := carrier * envelope * mask

		out.Y += scalar * verticalShare
		if dist >= 0.001 {
			out.X += scalar * horizontalShare * (p.X - ev.Center.X) / dist
		}
	}
	return out
}

// Ring describes one expanding ring outline for the ring renderer.
type Ring struct {
	Center    geom.Point
	Radius    float64
	Intensity float64
}

// AppendRings appends the visual ring for each live ripple to dst and
// returns the extended slice. The ring front runs faster than the
// displacement field and carries no band mask; intensity follows the
// temporal decay envelope.
func AppendRings(dst []Ring, s *Store, now float64) []Ring {
	for _, ev := range s.events {
		t := now - ev.Start
		if t < 0 {
			t = 0
		}
		if t >= Lifetime {
			continue
		}
		dst = append(dst, Ring{
			Center:    ev.Center,
			Radius:    ringSpeed * t,
			Intensity: math.Exp(-decayRate * t),
		})
	}
	return dst
}
