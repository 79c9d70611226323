package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_ProjectOriginToCenter(t *testing.T) {
	v := NewView(0, 0, 10, 60, 80, 24, 2)
	sx, sy, depth, ok := v.Project(0, 0, 0)
	assert.True(t, ok)
	assert.InDelta(t, 40, sx, 1e-9)
	assert.InDelta(t, 12, sy, 1e-9)
	assert.InDelta(t, 10, depth, 1e-9)
}

func TestView_Orientation(t *testing.T) {
	v := NewView(0, 0, 10, 60, 80, 24, 2)

	sx, _, _, _ := v.Project(1, 0, 0)
	assert.Greater(t, sx, 40.0, "+X appears right")

	_, sy, _, _ := v.Project(0, 1, 0)
	assert.Less(t, sy, 12.0, "+Y appears up")

	_, _, near, _ := v.Project(0, 0, 2)
	_, _, far, _ := v.Project(0, 0, -2)
	assert.Less(t, near, far)

	_, _, _, ok := v.Project(0, 0, 20)
	assert.False(t, ok, "behind the camera")
}

func TestView_CellAspectWidensX(t *testing.T) {
	v := NewView(0, 0, 10, 60, 80, 24, 2)
	sx, sy, _, _ := v.Project(1, 1, 0)
	assert.InDelta(t, 2*(12-sy), sx-40, 1e-9)
	assert.InDelta(t, v.Rows(1, 10), 12-sy, 1e-9)
}

func TestView_FacingAndWorldDir(t *testing.T) {
	v := NewView(0, 5, 8.66, 60, 80, 24, 2)
	assert.True(t, v.Facing(0, 0, 0, 0, 0, 1))
	assert.False(t, v.Facing(0, 0, 0, 0, 0, -1))

	toward := v.WorldDir(0, 0, 1)
	assert.Greater(t, toward[2], 0.0)
	assert.Greater(t, toward[1], 0.0)
}

func TestLighting_Shade(t *testing.T) {
	l := NewLighting(RGB{10, 10, 30}, RGB{234, 45, 46}, RGB{0, 116, 189})
	base := RGB{200, 200, 200}

	lit := l.Shade(base, [3]float64{0, 0, 0}, [3]float64{0.45, 0.9, 0.0})
	unlit := l.Shade(base, [3]float64{0, 0, 0}, [3]float64{0, -1, 0})
	assert.Greater(t, int(lit.R)+int(lit.G)+int(lit.B), int(unlit.R)+int(unlit.G)+int(unlit.B))
}
