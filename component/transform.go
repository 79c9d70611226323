package component

import (
	"github.com/lixenwraith/cupscene/vmath"
)

// TransformComponent is the shared spatial state of every scene entity
// Position and Scale are world units, Rotation is per-axis turns, all Q32.32
type TransformComponent struct {
	Position vmath.Vec3
	Rotation vmath.Vec3
	Scale    int64
}

// NewTransform creates a transform with zero rotation
func NewTransform(pos vmath.Vec3, scale int64) TransformComponent {
	return TransformComponent{
		Position: pos,
		Scale:    scale,
	}
}

// Apply maps a model-space point into world space: scale, rotate X then Y then Z, translate
func (t *TransformComponent) Apply(p vmath.Vec3) vmath.Vec3 {
	p = vmath.V3Scale(p, t.Scale)
	p = vmath.V3RotateX(p, t.Rotation.X)
	p = vmath.V3RotateY(p, t.Rotation.Y)
	p = vmath.V3RotateZ(p, t.Rotation.Z)
	return vmath.V3Add(p, t.Position)
}

// Rotate maps a model-space direction into world space without scale or translation
func (t *TransformComponent) Rotate(d vmath.Vec3) vmath.Vec3 {
	d = vmath.V3RotateX(d, t.Rotation.X)
	d = vmath.V3RotateY(d, t.Rotation.Y)
	return vmath.V3RotateZ(d, t.Rotation.Z)
}
