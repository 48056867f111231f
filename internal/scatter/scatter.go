// Package scatter implements the tap-triggered character scatter
// choreography: at most one episode in flight, each member character
// assigned a deterministic trajectory away from the tap point.
package scatter

import (
	"math"

	"github.com/bigmakers/Kotoha/internal/geom"
)

// Duration is the fixed length of a scatter episode, in seconds.
const Duration = 2.0

const (
	// The affine seed gives every character a stable pseudo-random phase
	// without any real randomness, so runs replay bit-identically.
	seedMultiplier = 137
	seedOffset     = 41

	baseFlight      = 180.0
	distanceScale   = 250.0
	distanceCap     = 1.5
	distanceFloor   = 0.3
	angleJitterSpan = 0.5
	fadeStart       = 0.3
	fadeSpan        = 0.65
	minScale        = 0.2
	shrinkAmount    = 0.4
	tiltDegrees     = 45.0
	wobbleDegrees   = 15.0
)

// Episode is one scatter animation in flight.
type Episode struct {
	Center  geom.Point
	Start   float64
	Members []int
}

// Transform is the visual state of one member character at one instant.
type Transform struct {
	Offset          geom.Vec
	Opacity         float64
	Scale           float64
	RotationDegrees float64
}

// Choreographer owns at most one active episode.
type Choreographer struct {
	episode   *Episode
	memberSet map[int]struct{}
}

// New returns an idle choreographer.
func New() *Choreographer { return &Choreographer{} }

// Begin starts an episode over the given member characters. A call while an
// episode is active replaces it: the last tap wins and the superseded
// members return to rest.
func (c *Choreographer) Begin(center geom.Point, members []int, now float64) {
	c.episode = &Episode{Center: center, Start: now, Members: members}
	c.memberSet = make(map[int]struct{}, len(members))
	for _, id := range members {
		c.memberSet[id] = struct{}{}
	}
}

// Active reports whether an episode is in flight.
func (c *Choreographer) Active() bool { return c.episode != nil }

// IsMember reports whether the character belongs to the active episode.
func (c *Choreographer) IsMember(charIndex int) bool {
	_, ok := c.memberSet[charIndex]
	return ok
}

// Progress returns the active episode's normalized progress in [0,1], or 1
// when idle.
func (c *Choreographer) Progress(now float64) float64 {
	if c.episode == nil {
		return 1
	}
	return c.episode.progress(now)
}

// FinishIfDone clears a completed episode and returns its members so the
// caller can drop them from the visible text model. Returns nil while the
// episode is still running or none is active.
func (c *Choreographer) FinishIfDone(now float64) []int {
	if c.episode == nil || c.episode.progress(now) < 1 {
		return nil
	}
	members := c.episode.Members
	c.episode = nil
	c.memberSet = nil
	return members
}

// Evaluate returns the transform for one member character, or ok=false when
// no episode is active or the character is not a member.
func (c *Choreographer) Evaluate(charIndex int, pos geom.Point, now float64) (Transform, bool) {
	if c.episode == nil || !c.IsMember(charIndex) {
		return Transform{Opacity: 1, Scale: 1}, false
	}
	return c.episode.Evaluate(charIndex, pos, now), true
}

// Evaluate computes the trajectory transform for one character. The result
// is a pure function of the receiver and arguments; identical inputs always
// produce identical output.
func (ep *Episode) Evaluate(charIndex int, pos geom.Point, now float64) Transform {
	t := ep.progress(now)
	eased := 1 - (1-t)*(1-t)

	delta := pos.Sub(ep.Center)
	dist := delta.Len()
	dir := delta.Normalize(geom.Vec{X: 0, Y: -1})
	if dist < 1 {
		dist = 1
	}

	seed := float64(charIndex*seedMultiplier + seedOffset)
	jittered := dir.Rotate(math.Sin(seed) * angleJitterSpan)

	distFactor := dist / distanceScale
	if distFactor > distanceCap {
		distFactor = distanceCap
	}
	flight := baseFlight * (distFactor + distanceFloor) * eased

	swayFreq := 2.5 + math.Sin(seed*0.7)*0.8
	swayAmp := 20.0 + math.Sin(seed*0.3)*10.0
	swayPhase := math.Sin(swayFreq * (t * 2.0) * math.Pi)

	offset := jittered.Scale(flight).Add(jittered.Perp().Scale(swayPhase * swayAmp * eased))

	opacity := 1 - math.Max(0, (t-fadeStart)/fadeSpan)
	if opacity < 0 {
		opacity = 0
	}
	scale := 1 - eased*shrinkAmount
	if scale < minScale {
		scale = minScale
	}
	tilt := eased * tiltDegrees
	if math.Cos(seed) < 0 {
		tilt = -tilt
	}
	return Transform{
		Offset:          offset,
		Opacity:         opacity,
		Scale:           scale,
		RotationDegrees: tilt + swayPhase*wobbleDegrees,
	}
}

// progress clamps elapsed time against the fixed episode duration.
func (ep *Episode) progress(now float64) float64 {
	t := (now - ep.Start) / Duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
