package renderers

import (
	"time"

	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/render"
)

// backdropAlpha is the dim layer strength at full placeholder opacity
const backdropAlpha = 0.7

// PlaceholderRenderer dims the scene behind the loading message
// Fully opaque while loading; once rendering, fades after the mount delay
type PlaceholderRenderer struct {
	backdrop render.RGB
	text     render.RGB
	message  string
	style    render.TextStyle
}

func NewPlaceholderRenderer(backdrop, text render.RGB) *PlaceholderRenderer {
	return &PlaceholderRenderer{
		backdrop: backdrop,
		text:     text,
		message:  parameter.PlaceholderText,
		style:    render.TextOptions{Emphasis: true, Centered: true}.Resolve(),
	}
}

// Opacity returns the placeholder strength in [0, 1] for the context
func (r *PlaceholderRenderer) Opacity(ctx render.RenderContext) float64 {
	switch ctx.State {
	case engine.StateLoading:
		return 1
	case engine.StateRendering:
		return fadeOut(ctx.SinceMount, parameter.PlaceholderDelay, parameter.PlaceholderFade)
	default:
		return 0
	}
}

func fadeOut(since, delay, fade time.Duration) float64 {
	t := since - delay
	if t <= 0 {
		return 1
	}
	if fade <= 0 || t >= fade {
		return 0
	}
	return 1 - float64(t)/float64(fade)
}

func (r *PlaceholderRenderer) IsVisible(ctx render.RenderContext) bool {
	return r.Opacity(ctx) > 0
}

func (r *PlaceholderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	a := r.Opacity(ctx)
	if a <= 0 {
		return
	}
	w, h := buf.Width(), buf.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, 0, r.backdrop, r.backdrop, render.BlendAlpha, backdropAlpha*a, render.AttrNone)
		}
	}
	st := r.style
	st.Alpha *= a
	render.DrawText(buf, w/2, h/2, r.message, r.text, st)
}
