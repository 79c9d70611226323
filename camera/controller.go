// Package camera implements the orbit camera driven by pointer drag and autorotation.
package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/vmath"
)

// maxDragCells bounds the pointer travel applied in one update, far beyond any terminal
const maxDragCells = 1 << 16

// Config holds orbit tuning, angles in radians
type Config struct {
	AutoRotate      bool
	AutoRotateSpeed float64 // orbit controls speed factor, 1.0 = one orbit per 60s
	MinPolar        float64
	MaxPolar        float64
	Sensitivity     float64 // radians per dragged cell
	Inertia         float64 // share of previous drag velocity kept per frame, [0, 1)
	Distance        float64
}

// DefaultConfig returns the built-in orbit tuning
func DefaultConfig() Config {
	return Config{
		AutoRotate:      parameter.CameraAutoRotate,
		AutoRotateSpeed: parameter.CameraAutoRotateSpeed,
		MinPolar:        parameter.CameraMinPolar,
		MaxPolar:        parameter.CameraMaxPolar,
		Sensitivity:     parameter.CameraDragSensitivity,
		Inertia:         parameter.CameraInertia,
		Distance:        parameter.CameraDistance,
	}
}

// State is a read-only snapshot for the HUD and status registry
type State struct {
	Azimuth  float64 // radians in [0, 2π)
	Polar    float64 // radians from +Y
	Distance float64
	Dragging bool
}

// Controller orbits the camera around a fixed target
// Angles are Q32.32 turns; polar is clamped on every update and distance never changes
type Controller struct {
	azimuth  int64
	polar    int64
	distance float64

	minPolar int64
	maxPolar int64

	autoRotate  bool
	autoRate    int64 // turns per second
	sensitivity int64 // turns per cell
	inertia     int64

	dragging           bool
	pendingX, pendingY int64 // cell deltas accumulated since last update
	velX, velY         int64 // smoothed drag velocity in turns per frame
}

// NewController creates a controller looking at the origin from the initial polar angle
func NewController(cfg Config) *Controller {
	c := &Controller{
		distance:    cfg.Distance,
		minPolar:    vmath.FromRadians(cfg.MinPolar),
		maxPolar:    vmath.FromRadians(cfg.MaxPolar),
		autoRotate:  cfg.AutoRotate,
		autoRate:    vmath.FromRadians(parameter.CameraAutoRotateRate(cfg.AutoRotateSpeed)),
		sensitivity: vmath.FromRadians(cfg.Sensitivity),
		inertia:     vmath.Clamp(vmath.FromFloat(cfg.Inertia), 0, vmath.Scale-1),
	}
	if c.distance <= 0 {
		c.distance = parameter.CameraDistance
	}
	if c.minPolar > c.maxPolar {
		c.minPolar, c.maxPolar = c.maxPolar, c.minPolar
	}
	c.polar = vmath.Clamp(vmath.FromRadians(parameter.CameraInitialPolar), c.minPolar, c.maxPolar)
	return c
}

// BeginDrag starts a pointer drag, suspending autorotation
func (c *Controller) BeginDrag() {
	c.dragging = true
}

// Drag accumulates cell deltas, ignored unless a drag is active
// Deltas saturate at maxDragCells per update so Q32.32 never wraps
func (c *Controller) Drag(dx, dy int) {
	if !c.dragging {
		return
	}
	c.pendingX = addCells(c.pendingX, dx)
	c.pendingY = addCells(c.pendingY, dy)
}

func addCells(pending int64, d int) int64 {
	d = min(max(d, -maxDragCells), maxDragCells)
	return vmath.Clamp(pending+vmath.FromInt(d), -vmath.FromInt(maxDragCells), vmath.FromInt(maxDragCells))
}

// EndDrag releases the pointer; deltas already accumulated still apply on the next update
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag is active
func (c *Controller) Dragging() bool {
	return c.dragging
}

// SetOrbit places the camera, out-of-range polar is clamped silently
func (c *Controller) SetOrbit(azimuth, polar float64) {
	c.azimuth = vmath.FromRadians(azimuth) & vmath.Mask
	c.polar = vmath.Clamp(vmath.FromRadians(polar), c.minPolar, c.maxPolar)
}

// Update applies one frame of input or autorotation
func (c *Controller) Update(dt time.Duration) {
	if c.dragging || c.pendingX != 0 || c.pendingY != 0 {
		keep := c.inertia
		take := vmath.Scale - c.inertia
		c.velX = vmath.Mul(c.velX, keep) + vmath.Mul(vmath.Mul(c.pendingX, c.sensitivity), take)
		c.velY = vmath.Mul(c.velY, keep) + vmath.Mul(vmath.Mul(c.pendingY, c.sensitivity), take)
		c.pendingX, c.pendingY = 0, 0

		// Dragging right swings the camera left; dragging down raises it
		c.azimuth -= c.velX
		c.polar -= c.velY
	} else {
		c.velX, c.velY = 0, 0
		if c.autoRotate && dt > 0 {
			c.azimuth += vmath.Mul(c.autoRate, vmath.Seconds(dt))
		}
	}
	c.azimuth &= vmath.Mask
	c.polar = vmath.Clamp(c.polar, c.minPolar, c.maxPolar)
}

// Azimuth returns the orbit angle around +Y in turns
func (c *Controller) Azimuth() int64 { return c.azimuth }

// Polar returns the angle from +Y in turns
func (c *Controller) Polar() int64 { return c.polar }

// Distance returns the locked orbit radius
func (c *Controller) Distance() float64 { return c.distance }

// PolarRange returns the clamp bounds in turns
func (c *Controller) PolarRange() (lo, hi int64) { return c.minPolar, c.maxPolar }

// Eye returns the camera position on its orbit sphere around the origin
func (c *Controller) Eye() (x, y, z float64) {
	phi := vmath.ToRadians(c.polar)
	theta := vmath.ToRadians(c.azimuth)
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return c.distance * sp * st, c.distance * cp, c.distance * sp * ct
}

// Snapshot returns the current state in radians
func (c *Controller) Snapshot() State {
	return State{
		Azimuth:  vmath.ToRadians(c.azimuth),
		Polar:    vmath.ToRadians(c.polar),
		Distance: c.distance,
		Dragging: c.dragging,
	}
}
