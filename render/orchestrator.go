package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type layer struct {
	renderer Renderer
	priority RenderPriority
}

// RenderOrchestrator composites the registered layers bottom to top each frame
// A nil screen composes off-screen only
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer
}

func NewRenderOrchestrator(screen tcell.Screen, width, height int, background RGB) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(width, height, background),
	}
}

// Register adds r above every layer of lower or equal priority, so equal priorities draw in
// registration order
func (o *RenderOrchestrator) Register(r Renderer, priority RenderPriority) {
	at := slices.IndexFunc(o.layers, func(l layer) bool { return l.priority > priority })
	if at < 0 {
		at = len(o.layers)
	}
	o.layers = slices.Insert(o.layers, at, layer{renderer: r, priority: priority})
}

func (o *RenderOrchestrator) Len() int {
	return len(o.layers)
}

// Resize reallocates the buffer and forces a full repaint
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Compose clears and runs every visible renderer in priority order
func (o *RenderOrchestrator) Compose(ctx RenderContext) *RenderBuffer {
	o.buffer.Clear()
	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}
	return o.buffer
}

// RenderFrame composes and, when a screen is attached, flushes and shows
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.Compose(ctx)
	if o.screen != nil {
		o.buffer.FlushToScreen(o.screen)
	}
}
