package render

import (
	"time"

	"github.com/lixenwraith/cupscene/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame engine.Frame
	State engine.State

	// SinceMount is wall time since mount, drives the placeholder fade
	SinceMount time.Duration

	Paused bool
	Muted  bool

	View View
}
