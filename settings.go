package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the application-level tunables loaded from settings.yaml.
// The engine's wave and scatter constants are fixed in their packages;
// these values only shape the surrounding overlay.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Caption CaptionSettings `yaml:"caption"`
	Impulse ImpulseSettings `yaml:"impulse"`
	Feed    FeedSettings    `yaml:"feed"`
	Spring  SpringSettings  `yaml:"spring"`
}

// WindowSettings controls the logical overlay surface size.
type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CaptionSettings controls caption typography and layout.
type CaptionSettings struct {
	FontSize     float64 `yaml:"font_size"`
	MaxColumns   int     `yaml:"max_columns"`
	MaxLines     int     `yaml:"max_lines"`
	HoldSeconds  float64 `yaml:"hold_seconds"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// ImpulseSettings carries the collaborator-side ripple amplitudes.
type ImpulseSettings struct {
	SpeechAmplitude float64 `yaml:"speech_amplitude"`
	PeakAmplitude   float64 `yaml:"peak_amplitude"`
	TapAmplitude    float64 `yaml:"tap_amplitude"`
}

// FeedSettings tunes the scripted demo caption feed.
type FeedSettings struct {
	Enabled      bool    `yaml:"enabled"`
	LineInterval float64 `yaml:"line_interval"`
	PeakInterval float64 `yaml:"peak_interval"`
	CenterJitter float64 `yaml:"center_jitter"`
}

// SpringSettings tunes the caption line stacking spring.
type SpringSettings struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// defaultSettings returns the values used when no settings file is present.
func defaultSettings() Settings {
	return Settings{
		Window: WindowSettings{Width: 960, Height: 540},
		Caption: CaptionSettings{
			FontSize:     28,
			MaxColumns:   36,
			MaxLines:     3,
			HoldSeconds:  7,
			BottomMargin: 96,
		},
		Impulse: ImpulseSettings{
			SpeechAmplitude: 12,
			PeakAmplitude:   10,
			TapAmplitude:    14,
		},
		Feed: FeedSettings{
			Enabled:      true,
			LineInterval: 2.8,
			PeakInterval: 1.4,
			CenterJitter: 60,
		},
		Spring: SpringSettings{Frequency: 6.0, Damping: 0.7},
	}
}

// loadSettings reads the YAML settings file at path, falling back to the
// defaults when the file does not exist.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %q: %w", path, err)
	}
	return s, nil
}
