package main

import "flag"

// Command-line flags that control optional rendering and runtime behavior.
var (
	// settingsPathFlag points at the YAML settings file; defaults are used
	// when the file does not exist.
	settingsPathFlag = flag.String("settings", "settings.yaml", "path to the YAML settings file")

	// debugFlag enables the FPS and engine state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and engine state overlay")

	// demoFeedFlag drives the overlay with the built-in scripted caption
	// feed in place of an external recognizer.
	demoFeedFlag = flag.Bool("demo-feed", true, "emit scripted caption lines and audio peaks")

	// showRingsFlag toggles the expanding ripple ring outlines.
	showRingsFlag = flag.Bool("show-rings", true, "render expanding ripple ring outlines")

	// fullscreenFlag runs the overlay fullscreen instead of windowed.
	fullscreenFlag = flag.Bool("fullscreen", false, "run the overlay fullscreen")

	// cpuProfileFlag records a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
