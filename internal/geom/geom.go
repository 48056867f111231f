// Package geom provides the small set of 2-D vector helpers shared by the
// ripple and scatter engines.
package geom

import "math"

// Point is a position on the overlay surface, in logical pixels.
type Point struct {
	X float64
	Y float64
}

// Vec is a 2-D displacement.
type Vec struct {
	X float64
	Y float64
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vec { return Vec{p.X - o.X, p.Y - o.Y} }

// Offset returns the point translated by v.
func (p Point) Offset(v Vec) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Scale returns the vector scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector along v, or fallback when v is too
// short to carry a direction.
func (v Vec) Normalize(fallback Vec) Vec {
	l := v.Len()
	if l < 1e-9 {
		return fallback
	}
	return Vec{v.X / l, v.Y / l}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Perp returns the vector rotated a quarter turn counter-clockwise.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }
