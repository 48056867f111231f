package main

import "image/color"

// Rendering and timing constants for the overlay application. Engine wave
// and scatter tuning lives with the engine packages; these values only
// shape the presentation layer.
const (
	defaultTPS = 60.0

	// evalInterval is the period of the high-frequency evaluation sweep
	// that refreshes cached glyph transforms.
	evalInterval = 1.0 / 30.0

	// glyphAdvanceFactor and lineHeightFactor derive the fixed-width cell
	// geometry from the configured font size.
	glyphAdvanceFactor = 0.6
	lineHeightFactor   = 1.4

	ringStrokeWidth = 2.5
	glowMaxAlpha    = 0.10
)

var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	captionColor    = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	glowColor       = color.RGBA{R: 40, G: 70, B: 140, A: 255}
)
