package parameter

import "time"

// Ambient audio
const (
	// AmbienceSampleRate is the speaker rate in Hz
	AmbienceSampleRate = 44100

	// AmbienceBuffer is the speaker buffer length
	AmbienceBuffer = 100 * time.Millisecond

	// AmbienceRoot is the pad fundamental in Hz
	AmbienceRoot = 110.0

	// AmbienceDetune is the ratio between the two pad voices
	AmbienceDetune = 1.5

	// AmbienceVolume is the default gain in beep's log2 volume units (0 = unity)
	AmbienceVolume = -4.0

	// AmbienceLFO is the swell rate in Hz, tied to the sparkle twinkle speed
	AmbienceLFO = SparkleSpeed / 2
)
