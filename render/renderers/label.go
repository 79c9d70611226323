package renderers

import (
	"math"

	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/vmath"
)

// LabelRenderer draws each label's marker sphere and, once laid out, its text
type LabelRenderer struct {
	labels []*entity.Label
	colors []render.RGB
	light  *render.Lighting
	style  render.TextStyle
}

func NewLabelRenderer(labels []*entity.Label, light *render.Lighting, opts render.TextOptions) *LabelRenderer {
	r := &LabelRenderer{
		labels: labels,
		colors: make([]render.RGB, len(labels)),
		light:  light,
		style:  opts.Resolve(),
	}
	for i, l := range labels {
		r.colors[i] = render.Token(l.Tint.Color, render.RGB{R: 245, G: 245, B: 247})
	}
	return r
}

func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i, l := range r.labels {
		r.renderMarker(ctx.View, buf, l, r.colors[i])

		// Text waits for layout measurement
		if l.Width == 0 {
			continue
		}
		sx, sy, depth, ok := ctx.View.ProjectVec(l.Position())
		if !ok {
			continue
		}
		render.DrawTextDepth(buf, int(sx), int(sy), depth, l.Text, r.colors[i], 1, r.style)
	}
}

// renderMarker rasterizes a lit sphere whose silhouette ripples with the marker phase
func (r *LabelRenderer) renderMarker(view render.View, buf *render.RenderBuffer, l *entity.Label, base render.RGB) {
	center := l.MarkerPosition()
	sx, sy, depth, ok := view.ProjectVec(center)
	if !ok {
		return
	}
	radius := view.Rows(parameter.LabelMarkerRadius, depth)
	if radius < 0.4 {
		return
	}
	aspect := view.CellAspect()
	wx, wy, wz := vmath.V3Floats(center)
	phase := vmath.ToFloat(l.MarkerPhase)
	ripple := parameter.LabelMarkerDistort / 3

	minX, maxX := int(sx-radius*aspect*1.2)-1, int(sx+radius*aspect*1.2)+1
	minY, maxY := int(sy-radius*1.2)-1, int(sy+radius*1.2)+1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := (float64(x) + 0.5 - sx) / (radius * aspect)
			ny := (float64(y) + 0.5 - sy) / radius
			edge := 1 + ripple*math.Sin(3*math.Atan2(ny, nx)+phase)
			distSq := (nx*nx + ny*ny) / (edge * edge)
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)
			n := view.WorldDir(nx, -ny, nz)
			p := [3]float64{
				wx + n[0]*parameter.LabelMarkerRadius,
				wy + n[1]*parameter.LabelMarkerRadius,
				wz + n[2]*parameter.LabelMarkerRadius,
			}
			shade := r.light.Shade(base, p, n)
			buf.Plot(x, y, depth-nz*parameter.LabelMarkerRadius, ' ', shade, shade, render.BlendReplace, 1, render.AttrNone)
		}
	}
}
