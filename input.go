package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bigmakers/Kotoha/internal/geom"
)

// handleInput translates taps into engine events.
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.tap(geom.Point{X: float64(x), Y: float64(y)})
	}
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		g.tap(geom.Point{X: float64(x), Y: float64(y)})
	}
}

// tap queues the tap ripple and, when caption text is on screen, a scatter
// episode over every visible character.
func (g *Game) tap(p geom.Point) {
	g.engine.AddRipple(p, g.settings.Impulse.TapAmplitude)
	if !g.captions.HasVisible() {
		return
	}
	g.idBuf = g.captions.AppendVisibleIDs(g.idBuf[:0])
	members := make([]int, len(g.idBuf))
	copy(members, g.idBuf)
	g.engine.BeginScatter(p, members)
}
