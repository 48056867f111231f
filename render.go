package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bigmakers/Kotoha/internal/ripple"
)

// Draw renders the background glow, ripple rings, caption glyphs, and the
// optional debug overlay from the cached evaluation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	intensity := g.engine.ActiveRippleCount(g.now) / ripple.MaxRipples
	g.drawGlow(screen, intensity)
	if *showRingsFlag {
		g.drawRings(screen, intensity)
	}
	g.drawGlyphs(screen)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nRipples: %d\nLines: %d\nScatter: %v",
			ebiten.ActualFPS(), g.engine.RippleCount(), g.captions.LineCount(), g.engine.ScatterActive())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawGlow tints the whole surface by the active ripple count so busy
// moments read brighter.
func (g *Game) drawGlow(screen *ebiten.Image, intensity float64) {
	if intensity <= 0 {
		return
	}
	w := float32(g.settings.Window.Width)
	h := float32(g.settings.Window.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, scaleAlpha(glowColor, float32(intensity*glowMaxAlpha)), false)
}

// drawRings strokes the expanding ring outline of every live ripple.
func (g *Game) drawRings(screen *ebiten.Image, intensity float64) {
	for _, r := range g.engine.Rings(g.now) {
		if r.Radius <= 0 {
			continue
		}
		alpha := float32(r.Intensity * (0.35 + 0.4*intensity))
		vector.StrokeCircle(screen,
			float32(r.Center.X), float32(r.Center.Y), float32(r.Radius),
			ringStrokeWidth, scaleAlpha(captionColor, alpha), true)
	}
}

// drawGlyphs renders every cached caption glyph, rotating and scaling about
// the glyph cell center.
func (g *Game) drawGlyphs(screen *ebiten.Image) {
	cellW := g.settings.Caption.FontSize * glyphAdvanceFactor
	cellH := g.settings.Caption.FontSize
	for _, gl := range g.glyphs {
		if gl.alpha <= 0 || gl.r == ' ' {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(-cellW/2, -cellH/2)
		op.GeoM.Scale(gl.scale, gl.scale)
		op.GeoM.Rotate(gl.rotation)
		op.GeoM.Translate(gl.x, gl.y)
		op.ColorScale.ScaleWithColor(captionColor)
		op.ColorScale.ScaleAlpha(float32(gl.alpha))
		text.Draw(screen, string(gl.r), g.face, op)
	}
}

// scaleAlpha returns clr faded to the given alpha, premultiplied.
func scaleAlpha(clr color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(clr.R) * a),
		G: uint8(float32(clr.G) * a),
		B: uint8(float32(clr.B) * a),
		A: uint8(255 * a),
	}
}
