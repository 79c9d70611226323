package render

import (
	"math"

	"github.com/lixenwraith/cupscene/vmath"
)

const nearPlane = 0.1

// View is a perspective camera looking at the origin, mapped onto terminal cells
type View struct {
	eye                [3]float64
	right, up, forward [3]float64
	focal              float64 // rows per unit at unit depth
	cellAspect         float64
	centerX, centerY   float64
	Width, Height      int
}

// NewView builds a look-at-origin projection for a width x height cell grid
// cellAspect is cell height over width; fovDeg is the vertical field of view
func NewView(eyeX, eyeY, eyeZ, fovDeg float64, width, height int, cellAspect float64) View {
	v := View{
		eye:        [3]float64{eyeX, eyeY, eyeZ},
		cellAspect: cellAspect,
		centerX:    float64(width) / 2,
		centerY:    float64(height) / 2,
		Width:      width,
		Height:     height,
	}
	v.forward = normalize([3]float64{-eyeX, -eyeY, -eyeZ})
	worldUp := [3]float64{0, 1, 0}
	v.right = normalize(cross(v.forward, worldUp))
	if v.right == ([3]float64{}) {
		v.right = [3]float64{1, 0, 0}
	}
	v.up = cross(v.right, v.forward)

	half := math.Tan(fovDeg * math.Pi / 360)
	if half <= 0 {
		half = 1
	}
	v.focal = float64(height) / 2 / half
	return v
}

// Eye returns the camera position
func (v View) Eye() (x, y, z float64) {
	return v.eye[0], v.eye[1], v.eye[2]
}

// Project maps a world point to fractional cell coordinates and camera depth
// ok is false for points behind the near plane
func (v View) Project(x, y, z float64) (sx, sy, depth float64, ok bool) {
	d := [3]float64{x - v.eye[0], y - v.eye[1], z - v.eye[2]}
	depth = dot(d, v.forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	cx := dot(d, v.right)
	cy := dot(d, v.up)
	sx = v.centerX + cx/depth*v.focal*v.cellAspect
	sy = v.centerY - cy/depth*v.focal
	return sx, sy, depth, true
}

// ProjectVec projects a Q32.32 world point
func (v View) ProjectVec(p vmath.Vec3) (sx, sy, depth float64, ok bool) {
	x, y, z := vmath.V3Floats(p)
	return v.Project(x, y, z)
}

// Rows returns the on-screen height in rows of a world length at depth
func (v View) Rows(length, depth float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return length / depth * v.focal
}

// Facing reports whether a surface normal at p points toward the eye
func (v View) Facing(px, py, pz, nx, ny, nz float64) bool {
	return (v.eye[0]-px)*nx+(v.eye[1]-py)*ny+(v.eye[2]-pz)*nz > 0
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(a [3]float64) [3]float64 {
	m := math.Sqrt(dot(a, a))
	if m == 0 {
		return [3]float64{}
	}
	return [3]float64{a[0] / m, a[1] / m, a[2] / m}
}

// CellAspect returns the cell height over width used for horizontal scaling
func (v View) CellAspect() float64 {
	return v.cellAspect
}

// WorldDir maps a camera-space direction (right, up, toward viewer) to world space
func (v View) WorldDir(cx, cy, cz float64) [3]float64 {
	return [3]float64{
		v.right[0]*cx + v.up[0]*cy - v.forward[0]*cz,
		v.right[1]*cx + v.up[1]*cy - v.forward[1]*cz,
		v.right[2]*cx + v.up[2]*cy - v.forward[2]*cz,
	}
}
