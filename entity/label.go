package entity

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cupscene/component"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/vmath"
)

var (
	markerOffset = vmath.FromFloat(parameter.LabelMarkerOffset)
	markerSpeed  = vmath.FromFloat(parameter.LabelMarkerDistortSpeed)
)

// Label is a floating technology name with a marker sphere below it
// Its float group bobs vertically and sways around the scene origin
type Label struct {
	Text   string
	Anchor vmath.Vec3 // rest position of the text

	// Float group transform: sway rotation about the origin plus vertical offset
	Transform component.TransformComponent
	Tint      component.TintComponent
	// Speed in [1, 3), Phase in seconds, Amplitude is float intensity
	Anim              component.AnimationComponent
	RotationIntensity int64

	// Width is the measured display width in cells, 0 until layout completes
	Width int

	MarkerPhase int64 // Q32.32 radians
}

func (l *Label) Kind() engine.Kind { return engine.KindLabel }

// Update applies the float rule at (t + phase)
func (l *Label) Update(f engine.Frame) error {
	t := f.T()
	arg := vmath.RadToTurns(vmath.Mul(t+l.Anim.Phase, l.Anim.Speed) / 4)
	s, c := vmath.Sin(arg), vmath.Cos(arg)

	l.Transform.Rotation.X = vmath.RadToTurns(vmath.Mul(c/8, l.RotationIntensity))
	l.Transform.Rotation.Y = vmath.RadToTurns(vmath.Mul(s/8, l.RotationIntensity))
	l.Transform.Rotation.Z = vmath.RadToTurns(vmath.Mul(s/20, l.RotationIntensity))
	l.Transform.Position.Y = vmath.Mul(s/10, l.Anim.Amplitude)

	l.MarkerPhase = vmath.Mul(t, markerSpeed)
	return nil
}

// Position returns the world-space text anchor
func (l *Label) Position() vmath.Vec3 {
	return l.Transform.Apply(l.Anchor)
}

// MarkerPosition returns the world-space center of the marker sphere
func (l *Label) MarkerPosition() vmath.Vec3 {
	return l.Transform.Apply(vmath.V3Sub(l.Anchor, vmath.Vec3{Y: markerOffset}))
}

// Measure returns the display width of the text in terminal cells
func (l *Label) Measure() int {
	return runewidth.StringWidth(l.Text)
}
