package renderers

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/status"
)

const statusHints = "drag:orbit  space:pause  m:mute  r:remount  q:quit"

// StatusBarRenderer draws the bottom HUD line from the status registry
type StatusBarRenderer struct {
	frames   *atomic.Int64
	failures *atomic.Int64
	fps      *status.AtomicFloat
	azimuth  *status.AtomicFloat
	polar    *status.AtomicFloat
	audio    *atomic.Bool

	bar, fg, dim, accent render.RGB
	style                render.TextStyle
	hintStyle            render.TextStyle
}

func NewStatusBarRenderer(reg *status.Registry, bar, fg, dim, accent render.RGB) *StatusBarRenderer {
	return &StatusBarRenderer{
		frames:    reg.Ints.Get(status.KeyFrames),
		failures:  reg.Ints.Get(status.KeyUpdateFailures),
		fps:       reg.Floats.Get(status.KeyFPS),
		azimuth:   reg.Floats.Get(status.KeyAzimuth),
		polar:     reg.Floats.Get(status.KeyPolar),
		audio:     reg.Bools.Get(status.KeyAudioActive),
		bar:       bar,
		fg:        fg,
		dim:       dim,
		accent:    accent,
		style:     render.TextOptions{}.Resolve(),
		hintStyle: render.TextOptions{Dim: true}.Resolve(),
	}
}

// Line formats the left-hand status text
func (r *StatusBarRenderer) Line(ctx render.RenderContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %s  frame %s  %s fps  az %3.0f°  pol %2.0f°",
		ctx.State,
		humanize.Comma(r.frames.Load()),
		humanize.FtoaWithDigits(r.fps.Get(), 1),
		r.azimuth.Get()*180/math.Pi,
		r.polar.Get()*180/math.Pi,
	)
	if n := r.failures.Load(); n > 0 {
		fmt.Fprintf(&sb, "  %s skipped", humanize.Comma(n))
	}
	return sb.String()
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Width(), buf.Height()
	if h < 2 || ctx.State == engine.StateUnmounted {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		buf.Set(x, y, ' ', r.fg, r.bar, render.BlendReplace, 1, render.AttrNone)
	}

	x := render.DrawText(buf, 0, y, r.Line(ctx), r.fg, r.style)

	var flags []string
	if ctx.Paused {
		flags = append(flags, "[PAUSED]")
	}
	if ctx.Muted || !r.audio.Load() {
		flags = append(flags, "[MUTED]")
	}
	if len(flags) > 0 {
		x += render.DrawText(buf, x+2, y, strings.Join(flags, " "), r.accent, r.style) + 2
	}

	if hx := w - render.TextWidth(statusHints) - 1; hx > x+2 {
		render.DrawText(buf, hx, y, statusHints, r.dim, r.hintStyle)
	}
}
