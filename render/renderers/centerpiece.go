package renderers

import (
	"math"

	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/vmath"
)

// splatSize is the world-space footprint of one mesh sample
const splatSize = 0.16

// CenterpieceRenderer shades cup surface samples into cell backgrounds
type CenterpieceRenderer struct {
	cup    *entity.Centerpiece
	light  *render.Lighting
	colors [3]render.RGB
}

func NewCenterpieceRenderer(cup *entity.Centerpiece, light *render.Lighting) *CenterpieceRenderer {
	r := &CenterpieceRenderer{cup: cup, light: light}
	for p := entity.PartBase; p <= entity.PartHandle; p++ {
		r.colors[p] = render.Token(cup.Tint(p).Color, render.RGB{R: 200, G: 60, B: 60})
	}
	return r
}

func (r *CenterpieceRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	view := ctx.View
	aspect := view.CellAspect()
	for _, s := range r.cup.Samples {
		pos, normal := r.cup.World(s)
		px, py, pz := vmath.V3Floats(pos)
		nx, ny, nz := vmath.V3Floats(normal)
		if !view.Facing(px, py, pz, nx, ny, nz) {
			continue
		}
		sx, sy, depth, ok := view.Project(px, py, pz)
		if !ok {
			continue
		}

		shade := r.light.Shade(r.colors[s.Part], [3]float64{px, py, pz}, [3]float64{nx, ny, nz})

		rows := view.Rows(splatSize, depth)
		ry := int(rows / 2)
		rx := int(math.Round(rows * aspect / 2))
		cx, cy := int(sx), int(sy)
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				buf.Plot(cx+dx, cy+dy, depth, ' ', shade, shade, render.BlendReplace, 1, render.AttrNone)
			}
		}
	}
}
