package entity

import (
	"github.com/lixenwraith/cupscene/component"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/parameter/visual"
	"github.com/lixenwraith/cupscene/vmath"
)

// SparkleSpec configures one sparkle field
type SparkleSpec struct {
	Count   int
	Center  vmath.Vec3
	Size    float64 // cube edge length
	Opacity float64
	Speed   float64 // twinkle cycles per second
	Color   string
}

// BackgroundSparkles is the scene-wide star field
func BackgroundSparkles(count int) SparkleSpec {
	return SparkleSpec{
		Count:   count,
		Size:    parameter.BackgroundSparkleScale,
		Opacity: parameter.BackgroundSparkleOpacity,
		Speed:   parameter.SparkleSpeed,
		Color:   visual.Star,
	}
}

// SteamSparkles rises above the cup, sized in cup space
func SteamSparkles(count int) SparkleSpec {
	return SparkleSpec{
		Count:   count,
		Center:  vmath.V3(0, parameter.SteamSparkleY, 0),
		Size:    parameter.SteamSparkleScale * parameter.CenterpieceScale,
		Opacity: parameter.SteamSparkleOpacity,
		Speed:   parameter.SparkleSpeed,
		Color:   visual.Steam,
	}
}

// CenterpieceSpec configures the cup
type CenterpieceSpec struct {
	Position    vmath.Vec3
	Scale       float64
	AngularRate float64 // radians per second
	BaseColor   string
	BodyColor   string
}

// DefaultCenterpiece places the cup below the origin at its scene scale
func DefaultCenterpiece() CenterpieceSpec {
	return CenterpieceSpec{
		Position:    vmath.V3(0, parameter.CenterpieceY, 0),
		Scale:       parameter.CenterpieceScale,
		AngularRate: parameter.CenterpieceAngularRate,
		BaseColor:   visual.CupBlue,
		BodyColor:   visual.CupRed,
	}
}

// Generator produces randomized initial entity layouts
// All randomness is drawn at construction; entities never call back into it
type Generator struct {
	src vmath.Source
}

// NewGenerator creates a generator over src, nil seeds from the wall clock
func NewGenerator(src vmath.Source) *Generator {
	if src == nil {
		src = vmath.NewTimeSeededRand()
	}
	return &Generator{src: src}
}

// Particles returns n drifting symbols spread through the cube [-bound, bound]^3
func (g *Generator) Particles(n int, bound float64) []*Particle {
	b := vmath.FromFloat(bound)
	maxVel := vmath.FromFloat(parameter.DriftMaxVelocity)
	spin := vmath.FromRadians(parameter.DriftSpin)
	opacity := vmath.FromFloat(parameter.DriftOpacity)

	out := make([]*Particle, 0, max(n, 0))
	for i := 0; i < n; i++ {
		pos := vmath.Vec3{
			X: vmath.RandRange(g.src, -b, b),
			Y: vmath.RandRange(g.src, -b, b),
			Z: vmath.RandRange(g.src, -b, b),
		}
		out = append(out, &Particle{
			Transform: component.NewTransform(pos, vmath.Scale),
			Tint:      component.TintComponent{Color: visual.Primary, Opacity: opacity},
			Symbol:    parameter.DriftSymbols[vmath.RandIntn(g.src, len(parameter.DriftSymbols))],
			Velocity:  vmath.RandRange(g.src, -maxVel, maxVel),
			Spin:      spin,
			Bound:     b,
		})
	}
	return out
}

// Labels returns one floating label per spec with independent speed and phase
func (g *Generator) Labels(specs []parameter.LabelSpec) []*Label {
	speedLo := vmath.FromFloat(parameter.LabelSpeedMin)
	speedHi := vmath.FromFloat(parameter.LabelSpeedMax)
	phaseHi := vmath.FromFloat(parameter.LabelPhaseMax)

	out := make([]*Label, 0, len(specs))
	for _, s := range specs {
		out = append(out, &Label{
			Text:      s.Name,
			Anchor:    vmath.V3(s.X, s.Y, s.Z),
			Transform: component.NewTransform(vmath.Vec3{}, vmath.Scale),
			Tint:      component.TintComponent{Color: s.Color, Opacity: vmath.Scale},
			Anim: component.AnimationComponent{
				Speed:     vmath.RandRange(g.src, speedLo, speedHi),
				Amplitude: vmath.FromFloat(parameter.LabelFloatIntensity),
				Phase:     vmath.RandRange(g.src, 0, phaseHi),
			},
			RotationIntensity: vmath.FromFloat(parameter.LabelRotationIntensity),
		})
	}
	return out
}

// Sparkles returns a field of spec.Count points with random positions and twinkle phases
func (g *Generator) Sparkles(spec SparkleSpec) *SparkleField {
	points := make([]SparklePoint, max(spec.Count, 0))
	for i := range points {
		points[i] = SparklePoint{
			Pos: vmath.Vec3{
				X: vmath.RandRange(g.src, -vmath.Half, vmath.Half),
				Y: vmath.RandRange(g.src, -vmath.Half, vmath.Half),
				Z: vmath.RandRange(g.src, -vmath.Half, vmath.Half),
			},
			Phase: vmath.Unit(g.src),
		}
	}
	return &SparkleField{
		Transform: component.NewTransform(spec.Center, vmath.FromFloat(spec.Size)),
		Tint:      component.TintComponent{Color: spec.Color, Opacity: vmath.FromFloat(spec.Opacity)},
		Anim:      component.AnimationComponent{Speed: vmath.FromFloat(spec.Speed)},
		Points:    points,
	}
}

// Centerpiece builds the cup with a freshly sampled mesh
func (g *Generator) Centerpiece(spec CenterpieceSpec) *Centerpiece {
	c := &Centerpiece{
		Transform: component.NewTransform(spec.Position, vmath.FromFloat(spec.Scale)),
		Anim:      component.AnimationComponent{Speed: vmath.FromRadians(spec.AngularRate)},
		Samples:   CupMesh(parameter.CupSegments, parameter.CupRings),
	}
	c.Tints[PartBase] = component.TintComponent{Color: spec.BaseColor, Opacity: vmath.Scale}
	c.Tints[PartBody] = component.TintComponent{Color: spec.BodyColor, Opacity: vmath.Scale}
	c.Tints[PartHandle] = component.TintComponent{Color: spec.BaseColor, Opacity: vmath.Scale}
	return c
}
