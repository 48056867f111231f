package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bigmakers/Kotoha/internal/caption"
	"github.com/bigmakers/Kotoha/internal/engine"
)

// Game owns the overlay state: the caption model, the animation engine, the
// demo feed, and the cached per-glyph render states refreshed by the
// evaluation sweep. All state is mutated from Update only.
type Game struct {
	settings Settings
	engine   *engine.Engine
	captions *caption.Model
	feed     *captionFeed

	start    time.Time
	now      float64
	lastEval float64

	face *text.GoTextFace

	slotBuf  []caption.Slot
	glyphs   []glyphState
	touchBuf []ebiten.TouchID
	idBuf    []int
}

// glyphState is one character's cached render transform, produced by the
// evaluation sweep and consumed by Draw.
type glyphState struct {
	r        rune
	x, y     float64
	scale    float64
	rotation float64 // radians
	alpha    float64
}

// newGame constructs a fully initialized overlay from loaded settings.
func newGame(settings Settings) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load typeface: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: settings.Caption.FontSize}

	cellW := settings.Caption.FontSize * glyphAdvanceFactor
	capCfg := caption.Config{
		MaxColumns:      settings.Caption.MaxColumns,
		MaxLines:        settings.Caption.MaxLines,
		Hold:            settings.Caption.HoldSeconds,
		CellWidth:       cellW,
		LineHeight:      settings.Caption.FontSize * lineHeightFactor,
		Left:            (float64(settings.Window.Width) - float64(settings.Caption.MaxColumns)*cellW) / 2,
		Bottom:          float64(settings.Window.Height) - settings.Caption.BottomMargin,
		SpringFPS:       int(defaultTPS),
		SpringFrequency: settings.Spring.Frequency,
		SpringDamping:   settings.Spring.Damping,
	}

	g := &Game{
		settings: settings,
		engine:   engine.New(),
		captions: caption.NewModel(capCfg),
		start:    time.Now(),
		lastEval: -evalInterval,
		face:     face,
	}
	if *demoFeedFlag && settings.Feed.Enabled {
		g.feed = newCaptionFeed(settings, g.engine, g.captions)
		log.Printf("Demo caption feed enabled (%.1fs line cadence)", settings.Feed.LineInterval)
	}
	return g, nil
}

// Update advances one tick: feed and input events are queued, the engine
// tick applies and prunes them, completed scatter members leave the caption
// model, and the evaluation sweep refreshes glyph transforms. Everything
// reads the same tick timestamp.
func (g *Game) Update() error {
	g.now = time.Since(g.start).Seconds()

	if g.feed != nil {
		g.feed.step(g.now)
	}
	g.handleInput()

	if removed := g.engine.Tick(g.now); len(removed) > 0 {
		g.captions.RemoveChars(removed)
	}
	g.captions.Prune(g.now)
	g.captions.StepSprings()

	if g.now-g.lastEval >= evalInterval {
		g.evaluateGlyphs(g.now)
		g.lastEval = g.now
	}
	return nil
}

// evaluateGlyphs recomputes the cached render state for every visible
// character: wave displacement plus, for scatter members, the episode
// transform.
func (g *Game) evaluateGlyphs(now float64) {
	g.slotBuf = g.captions.AppendSlots(g.slotBuf[:0])
	g.glyphs = g.glyphs[:0]
	for _, slot := range g.slotBuf {
		d := g.engine.Displacement(slot.Pos, now)
		state := glyphState{
			r:     slot.Rune,
			x:     slot.Pos.X + d.X,
			y:     slot.Pos.Y + d.Y,
			scale: 1,
			alpha: 1,
		}
		if tr, ok := g.engine.ScatterTransform(slot.ID, slot.Pos, now); ok {
			state.x += tr.Offset.X
			state.y += tr.Offset.Y
			state.scale = tr.Scale
			state.alpha = tr.Opacity
			state.rotation = tr.RotationDegrees * math.Pi / 180
		}
		g.glyphs = append(g.glyphs, state)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
