package entity

import (
	"github.com/lixenwraith/cupscene/component"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/vmath"
)

// SparklePoint is one twinkling point, Pos in the field's unit cube
type SparklePoint struct {
	Pos     vmath.Vec3
	Phase   int64 // turns
	Opacity int64 // current, Q32.32
}

// SparkleField is a static point cloud whose per-point opacity twinkles
type SparkleField struct {
	Transform component.TransformComponent // center and edge length
	Tint      component.TintComponent      // Opacity is the base opacity
	Anim      component.AnimationComponent // Speed: twinkle cycles per second
	Points    []SparklePoint
}

func (s *SparkleField) Kind() engine.Kind { return engine.KindSparkle }

// Update sets opacity_i = base * (1 + sin(t*speed + phase_i)) / 2
// Positions never change
func (s *SparkleField) Update(f engine.Frame) error {
	base := vmath.Mul(f.T(), s.Anim.Speed)
	for i := range s.Points {
		pt := &s.Points[i]
		twinkle := (vmath.Scale + vmath.Sin(base+pt.Phase)) / 2
		pt.Opacity = vmath.Mul(s.Tint.Opacity, twinkle)
	}
	return nil
}

// World returns the world-space position of point i
func (s *SparkleField) World(i int) vmath.Vec3 {
	return s.Transform.Apply(s.Points[i].Pos)
}
