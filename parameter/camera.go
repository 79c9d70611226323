package parameter

import "math"

// Orbit camera configuration
// Angles are radians here and converted to Q32.32 turns by the camera package
const (
	// CameraDistance is the locked orbit radius (zoom disabled)
	CameraDistance = 10.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	// CameraMinPolar and CameraMaxPolar bound the angle from +Y
	// Camera can look from 30° above the horizon down to the horizon itself
	CameraMinPolar = math.Pi / 3
	CameraMaxPolar = math.Pi / 2

	// CameraInitialPolar starts the camera on the horizon looking at the origin
	CameraInitialPolar = math.Pi / 2

	// CameraAutoRotateSpeed is the orbit controls speed factor (1.0 = one orbit per 60s)
	CameraAutoRotateSpeed = 0.5

	// CameraAutoRotate enables idle orbiting
	CameraAutoRotate = true

	// CameraDragSensitivity is radians of orbit per dragged terminal cell
	CameraDragSensitivity = 2 * math.Pi / 120

	// CameraInertia is the share of the previous drag velocity retained each drag frame
	// 0 = raw deltas, values close to 1 = heavy smoothing
	CameraInertia = 0.35

	// CameraCellAspect is terminal cell height over width, used to square up projection
	CameraCellAspect = 2.0
)

// CameraAutoRotateRate returns autorotation in radians per second
func CameraAutoRotateRate(speed float64) float64 {
	return 2 * math.Pi / 60 * speed
}
