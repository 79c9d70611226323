package entity

import (
	"math"

	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/vmath"
)

// Part identifies the centerpiece sub-mesh a sample belongs to
type Part uint8

const (
	PartBase Part = iota
	PartBody
	PartHandle
	partCount
)

// Sample is one precomputed surface point in model space
type Sample struct {
	Pos    vmath.Vec3
	Normal vmath.Vec3
	Part   Part
}

// CupMesh samples the cup surfaces: tapered base, body cylinder, half-torus handle
// Geometry is built once in float64 and stored as Q32.32
func CupMesh(segments, rings int) []Sample {
	segments = max(segments, 3)
	rings = max(rings, 1)

	out := make([]Sample, 0, segments*(rings+8)+parameter.CupHandleSweep*parameter.CupHandleSides)
	out = appendCylinder(out, PartBase,
		parameter.CupBaseY, parameter.CupBaseRadiusTop, parameter.CupBaseRadiusBot, parameter.CupBaseHeight,
		segments, max(rings/4, 1))
	out = appendCylinder(out, PartBody,
		parameter.CupBodyY, parameter.CupBodyRadius, parameter.CupBodyRadius, parameter.CupBodyHeight,
		segments, rings)
	out = appendHandle(out,
		parameter.CupHandleX, parameter.CupHandleY, parameter.CupHandleRadius, parameter.CupHandleTube,
		parameter.CupHandleSweep, parameter.CupHandleSides)
	return out
}

// appendCylinder samples the side wall and both caps of a (possibly tapered) cylinder centered at cy
func appendCylinder(out []Sample, part Part, cy, rTop, rBot, h float64, segments, rings int) []Sample {
	slope := (rBot - rTop) / h
	for i := 0; i <= rings; i++ {
		v := float64(i) / float64(rings)
		y := cy + h/2 - v*h
		r := rTop + (rBot-rTop)*v
		for s := 0; s < segments; s++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(s) / float64(segments))
			out = append(out, Sample{
				Pos:    vmath.V3(r*sin, y, r*cos),
				Normal: vmath.V3Normalize(vmath.V3(sin, slope, cos)),
				Part:   part,
			})
		}
	}

	caps := [2]struct{ y, r, ny float64 }{
		{cy + h/2, rTop, 1},
		{cy - h/2, rBot, -1},
	}
	capSegments := max(segments/2, 3)
	for _, c := range caps {
		out = append(out, Sample{Pos: vmath.V3(0, c.y, 0), Normal: vmath.V3(0, c.ny, 0), Part: part})
		for k := 1; k <= 2; k++ {
			r := c.r * float64(k) / 3
			for s := 0; s < capSegments; s++ {
				sin, cos := math.Sincos(2 * math.Pi * float64(s) / float64(capSegments))
				out = append(out, Sample{
					Pos:    vmath.V3(r*sin, c.y, r*cos),
					Normal: vmath.V3(0, c.ny, 0),
					Part:   part,
				})
			}
		}
	}
	return out
}

// appendHandle samples a half torus in the XY plane bulging toward +X
func appendHandle(out []Sample, cx, cy, radius, tube float64, sweep, sides int) []Sample {
	for i := 0; i <= sweep; i++ {
		u := -math.Pi/2 + math.Pi*float64(i)/float64(sweep)
		su, cu := math.Sincos(u)
		for j := 0; j < sides; j++ {
			sv, cv := math.Sincos(2 * math.Pi * float64(j) / float64(sides))
			nx, ny, nz := cv*cu, cv*su, sv
			out = append(out, Sample{
				Pos:    vmath.V3(cx+radius*cu+tube*nx, cy+radius*su+tube*ny, tube*nz),
				Normal: vmath.V3(nx, ny, nz),
				Part:   PartHandle,
			})
		}
	}
	return out
}
