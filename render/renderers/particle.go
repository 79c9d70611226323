package renderers

import (
	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/vmath"
)

// ParticleRenderer draws drifting code symbols as depth-tested text
// Spin around Y shows as a brightness flicker: edge-on symbols dim
type ParticleRenderer struct {
	particles []*entity.Particle
	colors    []render.RGB
	style     render.TextStyle
}

func NewParticleRenderer(particles []*entity.Particle, opts render.TextOptions) *ParticleRenderer {
	r := &ParticleRenderer{
		particles: particles,
		colors:    make([]render.RGB, len(particles)),
		style:     opts.Resolve(),
	}
	for i, p := range particles {
		r.colors[i] = render.Token(p.Tint.Color, render.RGB{R: 93, G: 95, B: 239})
	}
	return r
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i, p := range r.particles {
		sx, sy, depth, ok := ctx.View.ProjectVec(p.Transform.Position)
		if !ok {
			continue
		}
		facing := vmath.ToFloat(vmath.Abs(vmath.Cos(p.Transform.Rotation.Y)))
		alpha := vmath.ToFloat(p.Tint.Opacity) * (0.55 + 0.45*facing)
		render.DrawTextDepth(buf, int(sx), int(sy), depth, p.Symbol, r.colors[i], alpha, r.style)
	}
}
