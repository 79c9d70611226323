package parameter

// Sparkle fields
const (
	// SparkleSpeed is the shared ambient twinkle speed
	SparkleSpeed = 0.3

	// Background field spread across the whole scene
	BackgroundSparkleCount   = 100
	BackgroundSparkleScale   = 15.0
	BackgroundSparkleOpacity = 0.3

	// Steam rising from the centerpiece
	SteamSparkleCount   = 50
	SteamSparkleScale   = 3.0
	SteamSparkleOpacity = 0.7
	SteamSparkleY       = 1.75
)
