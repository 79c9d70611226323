package parameter

// Scene lighting
const (
	HemisphereIntensity = 0.3

	SpotX, SpotY, SpotZ = 5.0, 10.0, 7.5
	SpotIntensity       = 1.5

	PointRedX, PointRedY, PointRedZ    = -5.0, -5.0, -5.0
	PointBlueX, PointBlueY, PointBlueZ = 5.0, 5.0, 5.0
	PointIntensity                     = 0.5
)
