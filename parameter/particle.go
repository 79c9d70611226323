package parameter

// Drift particle field ("code particles")
const (
	// DriftParticleCount is the number of floating code symbols
	DriftParticleCount = 30

	// DriftBound is the half-extent B of the spawn cube and the vertical wrap band [-B, B]
	DriftBound = 5.0

	// DriftMaxVelocity bounds |verticalVelocity| in units per reference frame
	DriftMaxVelocity = 0.025

	// DriftSpin is the rotation increment in radians per reference frame on X and Y
	DriftSpin = 0.01

	// DriftOpacity is the text opacity of particle symbols
	DriftOpacity = 0.7
)

// DriftSymbols is the fixed set a particle picks its display symbol from
var DriftSymbols = []string{"{ }", "();", "=>", "import", "public", "class", "extends", "@Override"}
