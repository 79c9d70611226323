package render

import (
	"math"

	"github.com/lixenwraith/cupscene/parameter"
)

// PointLight is an omnidirectional light without falloff
type PointLight struct {
	Pos       [3]float64
	Color     RGB
	Intensity float64
}

// Lighting is the scene light rig: hemisphere ambient, a white key spot and coloured points
type Lighting struct {
	Sky, Ground RGB
	Hemisphere  float64
	Ambient     float64 // flat environment fill
	Spot        PointLight
	Points      []PointLight
}

// NewLighting builds the default rig from resolved theme colours
func NewLighting(ground, red, blue RGB) Lighting {
	white := RGB{255, 255, 255}
	return Lighting{
		Sky:        white,
		Ground:     ground,
		Hemisphere: parameter.HemisphereIntensity,
		Ambient:    0.15,
		Spot: PointLight{
			Pos:       [3]float64{parameter.SpotX, parameter.SpotY, parameter.SpotZ},
			Color:     white,
			Intensity: parameter.SpotIntensity,
		},
		Points: []PointLight{
			{Pos: [3]float64{parameter.PointRedX, parameter.PointRedY, parameter.PointRedZ}, Color: red, Intensity: parameter.PointIntensity},
			{Pos: [3]float64{parameter.PointBlueX, parameter.PointBlueY, parameter.PointBlueZ}, Color: blue, Intensity: parameter.PointIntensity},
		},
	}
}

// Shade returns the Lambert-lit colour of base at p with unit normal n
func (l *Lighting) Shade(base RGB, p, n [3]float64) RGB {
	// Hemisphere: sky above, ground below, blended by normal.y
	w := 0.5*n[1] + 0.5
	var acc [3]float64
	addLight(&acc, Lerp(l.Ground, l.Sky, w), l.Hemisphere)
	acc[0] += l.Ambient
	acc[1] += l.Ambient
	acc[2] += l.Ambient

	addLight(&acc, l.Spot.Color, l.Spot.Intensity*lambert(l.Spot.Pos, p, n))
	for i := range l.Points {
		pl := &l.Points[i]
		addLight(&acc, pl.Color, pl.Intensity*lambert(pl.Pos, p, n))
	}

	return RGB{
		R: clamp(float64(base.R) * acc[0]),
		G: clamp(float64(base.G) * acc[1]),
		B: clamp(float64(base.B) * acc[2]),
	}
}

func addLight(acc *[3]float64, c RGB, k float64) {
	if k <= 0 {
		return
	}
	acc[0] += float64(c.R) / 255 * k
	acc[1] += float64(c.G) / 255 * k
	acc[2] += float64(c.B) / 255 * k
}

func lambert(light, p, n [3]float64) float64 {
	d := [3]float64{light[0] - p[0], light[1] - p[1], light[2] - p[2]}
	m := math.Sqrt(dot(d, d))
	if m == 0 {
		return 0
	}
	return max(0, dot(d, n)/m)
}
