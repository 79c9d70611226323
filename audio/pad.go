package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cupscene/parameter"
)

const (
	padAmplitude = 0.12

	// padCycle is a common period of both voices and the swell, keeps the phase exact
	padCycle = 20 * time.Second
)

// Pad is an endless two-voice drone with a slow swell
type Pad struct {
	sr     beep.SampleRate
	pos    int
	period int
	root   float64
	detune float64
	lfo    float64
}

// NewPad creates a pad at the configured root and swell rate
func NewPad(sr beep.SampleRate) *Pad {
	return &Pad{
		sr:     sr,
		period: sr.N(padCycle),
		root:   parameter.AmbienceRoot,
		detune: parameter.AmbienceDetune,
		lfo:    parameter.AmbienceLFO,
	}
}

func (p *Pad) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(p.pos) / float64(p.sr)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*p.lfo*t)
		low := math.Sin(2 * math.Pi * p.root * t)
		fifth := math.Sin(2 * math.Pi * p.root * p.detune * t)
		v := padAmplitude * (0.4 + 0.6*swell)

		// Voices pan slightly apart
		samples[i][0] = v * (0.65*low + 0.35*fifth)
		samples[i][1] = v * (0.35*low + 0.65*fifth)

		p.pos++
		if p.pos >= p.period {
			p.pos = 0
		}
	}
	return len(samples), true
}

func (p *Pad) Err() error {
	return nil
}
