package parameter

import "time"

// Frame Loop & Clock Timing
const (
	// FrameInterval is the render frame interval (~60 FPS)
	FrameInterval = time.Second / 60

	// ReferenceFrame is the frame length that per-frame increments are authored against
	// Drift and spin constants are "per reference frame" and scale with the real delta
	ReferenceFrame = time.Second / 60

	// MaxFrameDelta clamps the simulation delta after stalls (suspend, debugger, slow terminal)
	MaxFrameDelta = 100 * time.Millisecond

	// InputQueueSize is the buffered capacity between the event poller and the frame loop
	InputQueueSize = 256

	// StatsLogInterval is how often frame statistics are logged at debug level
	StatsLogInterval = 5 * time.Second

	// FailureLogInterval limits repeated entity failure logs
	FailureLogInterval = time.Second
)

// Scene Lifecycle
const (
	// PlaceholderText is shown over the dimmed backdrop while loading
	PlaceholderText = "Loading 3D Scene..."

	// PlaceholderDelay is the minimum time after mount before the placeholder begins fading
	PlaceholderDelay = 1 * time.Second

	// PlaceholderFade is the fade-out duration of the placeholder once rendering
	PlaceholderFade = 500 * time.Millisecond
)

// Static fallback frame, written as plain text when no surface can be acquired
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)
