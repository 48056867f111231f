package main

import (
	"math/rand"
	"time"

	"github.com/bigmakers/Kotoha/internal/caption"
	"github.com/bigmakers/Kotoha/internal/engine"
	"github.com/bigmakers/Kotoha/internal/geom"
)

// feedScript is the caption text cycled by the demo feed.
var feedScript = []string{
	"welcome to the kotoha overlay",
	"captions ripple as words arrive",
	"tap anywhere to scatter the text",
	"each wave fades in a few seconds",
	"new lines rise in from below",
	"louder moments push bigger waves",
}

// captionFeed is a scripted stand-in for the external speech recognizer: it
// commits caption lines on a cadence and fires audio-energy peaks at random
// locations, so the overlay runs without a microphone attached.
type captionFeed struct {
	impulse  ImpulseSettings
	cfg      FeedSettings
	engine   *engine.Engine
	captions *caption.Model
	rng      *rand.Rand
	screenW  float64
	screenH  float64

	nextLine float64
	nextPeak float64
	lineIdx  int
}

// newCaptionFeed builds a feed targeting the given engine and caption model.
func newCaptionFeed(settings Settings, eng *engine.Engine, captions *caption.Model) *captionFeed {
	return &captionFeed{
		impulse:  settings.Impulse,
		cfg:      settings.Feed,
		engine:   eng,
		captions: captions,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		screenW:  float64(settings.Window.Width),
		screenH:  float64(settings.Window.Height),
		nextLine: settings.Feed.LineInterval,
		nextPeak: settings.Feed.PeakInterval,
	}
}

// step emits any feed events due at now: a committed caption line with its
// speech ripple near screen center, and randomized audio-energy peaks.
func (f *captionFeed) step(now float64) {
	if now >= f.nextLine {
		f.captions.Append(feedScript[f.lineIdx%len(feedScript)], now)
		f.lineIdx++
		center := geom.Point{
			X: f.screenW/2 + (f.rng.Float64()*2-1)*f.cfg.CenterJitter,
			Y: f.screenH/2 + (f.rng.Float64()*2-1)*f.cfg.CenterJitter,
		}
		f.engine.AddRipple(center, f.impulse.SpeechAmplitude)
		f.nextLine = now + f.cfg.LineInterval
	}
	if now >= f.nextPeak {
		at := geom.Point{X: f.rng.Float64() * f.screenW, Y: f.rng.Float64() * f.screenH}
		f.engine.AddRipple(at, f.impulse.PeakAmplitude)
		f.nextPeak = now + f.cfg.PeakInterval*(0.5+f.rng.Float64())
	}
}
