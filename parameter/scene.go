package parameter

// Centerpiece ("code cup") geometry in model units before scaling
const (
	CenterpieceScale = 1.5
	CenterpieceY     = -0.5

	// CenterpieceAngularRate is rotation around Y in radians per second
	CenterpieceAngularRate = 0.2

	CupBaseY         = -0.5
	CupBaseRadiusTop = 0.5
	CupBaseRadiusBot = 0.7
	CupBaseHeight    = 0.2

	CupBodyY      = 0.2
	CupBodyRadius = 0.5
	CupBodyHeight = 1.5

	CupHandleX      = 0.65
	CupHandleY      = 0.2
	CupHandleRadius = 0.3
	CupHandleTube   = 0.1

	// CupSegments is radial sampling density for cylinders and the handle sweep
	CupSegments = 32

	// CupRings is vertical sampling density per cylinder
	CupRings = 12

	// CupWobbleFactor and CupWobbleSpeed drive the body material wobble
	CupWobbleFactor = 0.2
	CupWobbleSpeed  = 1.0

	// CupHandleWobble is the handle's weaker wobble factor
	CupHandleWobble = 0.05

	// CupDistort and CupDistortSpeed drive the base distortion
	CupDistort      = 0.2
	CupDistortSpeed = 3.0

	// CupHandleSweep and CupHandleSides sample the half-torus handle
	CupHandleSweep = 16
	CupHandleSides = 8
)

// Orbiting labels
const (
	LabelFloatIntensity    = 2.0
	LabelRotationIntensity = 0.5
	LabelSpeedMin          = 1.0
	LabelSpeedMax          = 3.0

	// LabelPhaseMax is the upper bound of the random time offset per label (seconds)
	LabelPhaseMax = 10000.0

	// LabelMarkerOffset is the marker sphere distance below the label text
	LabelMarkerOffset = 0.7
	LabelMarkerRadius = 0.3

	// LabelMarkerDistort and LabelMarkerDistortSpeed animate the marker sphere surface
	LabelMarkerDistort      = 0.3
	LabelMarkerDistortSpeed = 5.0
)

// LabelSpec describes one floating technology label
type LabelSpec struct {
	Name  string
	Color string
	X     float64
	Y     float64
	Z     float64
}

// DefaultLabels are the technologies orbiting the centerpiece
var DefaultLabels = []LabelSpec{
	{Name: "Spring", Color: "#6DB33F", X: -2.5, Y: 1, Z: -1},
	{Name: "Hibernate", Color: "#BCAE79", X: 2.5, Y: -0.5, Z: -1},
	{Name: "Maven", Color: "#C71A36", X: -1.5, Y: -1.5, Z: 0},
	{Name: "JUnit", Color: "#25A162", X: 1.5, Y: 1.5, Z: 1},
}
