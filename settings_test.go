package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadSettingsMissingFile falls back to defaults without an error.
func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := loadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Missing file should not fail: %v", err)
	}
	if s != defaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

// TestLoadSettingsOverrides merges file values over the defaults.
func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "window:\n  width: 1280\ncaption:\n  font_size: 32\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Window.Width != 1280 {
		t.Errorf("Expected width override 1280, got %d", s.Window.Width)
	}
	if s.Caption.FontSize != 32 {
		t.Errorf("Expected font size override 32, got %v", s.Caption.FontSize)
	}
	defaults := defaultSettings()
	if s.Impulse != defaults.Impulse {
		t.Errorf("Untouched section should keep defaults, got %+v", s.Impulse)
	}
}

// TestLoadSettingsBadYAML surfaces a parse error.
func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("window: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSettings(path); err == nil {
		t.Errorf("Expected a parse error for malformed YAML")
	}
}
