package entity

import (
	"github.com/lixenwraith/cupscene/component"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/vmath"
)

// Particle is a drifting code symbol
// Unlike the other entities it integrates per frame; wrap-reset makes its position path-dependent
type Particle struct {
	Transform component.TransformComponent
	Tint      component.TintComponent

	Symbol   string // immutable
	Velocity int64  // vertical units per reference frame
	Spin     int64  // turns per reference frame on X and Y
	Bound    int64  // vertical band half-extent B
}

func (p *Particle) Kind() engine.Kind { return engine.KindParticle }

// Update advances spin and vertical drift by the frame's reference-frame step count
// Leaving [-B, B] resets to the opposite edge, overshoot is discarded
func (p *Particle) Update(f engine.Frame) error {
	steps := vmath.Steps(f.Delta, parameter.ReferenceFrame)
	if steps == 0 {
		return nil
	}

	spin := vmath.Mul(p.Spin, steps)
	p.Transform.Rotation.X = (p.Transform.Rotation.X + spin) & vmath.Mask
	p.Transform.Rotation.Y = (p.Transform.Rotation.Y + spin) & vmath.Mask

	y := p.Transform.Position.Y + vmath.Mul(p.Velocity, steps)
	p.Transform.Position.Y = vmath.WrapBand(y, p.Bound)
	return nil
}
