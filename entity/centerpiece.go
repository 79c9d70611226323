package entity

import (
	"fmt"

	"github.com/lixenwraith/cupscene/component"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/vmath"
)

var (
	bodyWobble   = vmath.FromFloat(parameter.CupWobbleFactor)
	handleWobble = vmath.FromFloat(parameter.CupHandleWobble)
	wobbleSpeed  = vmath.FromFloat(parameter.CupWobbleSpeed)
	distortAmp   = vmath.FromFloat(parameter.CupDistort / 4)
	distortSpeed = vmath.FromFloat(parameter.CupDistortSpeed)
)

// Centerpiece is the rotating cup mesh at the scene origin
type Centerpiece struct {
	Transform component.TransformComponent
	Anim      component.AnimationComponent // Speed: rotation around Y in turns per second
	Tints     [partCount]component.TintComponent
	Samples   []Sample

	// Material phases in Q32.32 radians, recomputed from t every frame
	WobblePhase  int64
	DistortPhase int64
}

func (c *Centerpiece) Kind() engine.Kind { return engine.KindCenterpiece }

// Update sets rotation.y = t * angularRate
// The accumulator is unbounded; trigonometry wraps it modularly
func (c *Centerpiece) Update(f engine.Frame) error {
	if c.Samples == nil {
		return fmt.Errorf("centerpiece mesh: %w", engine.ErrMissingResource)
	}
	t := f.T()
	c.Transform.Rotation.Y = vmath.Mul(t, c.Anim.Speed)
	c.WobblePhase = vmath.Mul(t, wobbleSpeed)
	c.DistortPhase = vmath.Mul(t, distortSpeed)
	return nil
}

// Release drops the mesh; later updates report a missing resource
func (c *Centerpiece) Release() {
	c.Samples = nil
}

// Tint returns the material of a mesh part
func (c *Centerpiece) Tint(p Part) component.TintComponent {
	if p >= partCount {
		return component.TintComponent{}
	}
	return c.Tints[p]
}

// World returns the animated world-space position and normal of a model sample
// Body and handle twist around Y with height, the base breathes along its normals
func (c *Centerpiece) World(s Sample) (pos, normal vmath.Vec3) {
	p, n := s.Pos, s.Normal
	switch s.Part {
	case PartBody, PartHandle:
		factor := bodyWobble
		if s.Part == PartHandle {
			factor = handleWobble
		}
		theta := vmath.Mul(vmath.Sin(vmath.RadToTurns(c.WobblePhase+p.Y)), factor) / 2
		turns := vmath.RadToTurns(theta)
		p = vmath.V3RotateY(p, turns)
		n = vmath.V3RotateY(n, turns)
	case PartBase:
		d := vmath.Mul(vmath.Sin(vmath.RadToTurns(c.DistortPhase+3*(p.X+p.Z))), distortAmp)
		p = vmath.V3Add(p, vmath.V3Scale(n, d))
	}
	return c.Transform.Apply(p), c.Transform.Rotate(n)
}
