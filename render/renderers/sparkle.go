package renderers

import (
	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/vmath"
)

// SparkleRenderer draws twinkling point fields as depth-tested glyphs
type SparkleRenderer struct {
	fields []*entity.SparkleField
	colors []render.RGB
}

// NewSparkleRenderer resolves each field's colour token once
func NewSparkleRenderer(fields ...*entity.SparkleField) *SparkleRenderer {
	r := &SparkleRenderer{
		fields: fields,
		colors: make([]render.RGB, len(fields)),
	}
	for i, f := range fields {
		r.colors[i] = render.Token(f.Tint.Color, render.RGB{R: 255, G: 255, B: 255})
	}
	return r
}

func sparkleGlyph(alpha float64) rune {
	switch {
	case alpha > 0.55:
		return '*'
	case alpha > 0.3:
		return '+'
	case alpha > 0.12:
		return '·'
	default:
		return '.'
	}
}

func (r *SparkleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for fi, field := range r.fields {
		color := r.colors[fi]
		for i := range field.Points {
			alpha := vmath.ToFloat(field.Points[i].Opacity)
			if alpha < 0.02 {
				continue
			}
			sx, sy, depth, ok := ctx.View.ProjectVec(field.World(i))
			if !ok {
				continue
			}
			buf.Plot(int(sx), int(sy), depth, sparkleGlyph(alpha), color, render.RGB{}, render.BlendScreenFg, alpha, render.AttrNone)
		}
	}
}
