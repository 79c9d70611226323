package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/status"
)

const sampleRate = beep.SampleRate(parameter.AmbienceSampleRate)

// Ambience plays the background pad while a scene is mounted
// A device that cannot be opened leaves it silent; every method stays safe to call
type Ambience struct {
	mu     sync.Mutex
	device Device

	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	volume *effects.Volume

	opened bool
	active bool
	paused bool
	muted  bool

	// owner is the newest mount generation that started the pad; older generations are ignored
	owner uint64

	statActive *atomic.Bool
	statMuted  *atomic.Bool
}

// NewAmbience creates a stopped ambience; nil device uses the system speaker
// gain is in log2 units, 0 is unity
func NewAmbience(device Device, gain float64, reg *status.Registry) *Ambience {
	if device == nil {
		device = SpeakerDevice{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	vol := &effects.Volume{
		Streamer: NewPad(sampleRate),
		Base:     2,
		Volume:   gain,
	}
	return &Ambience{
		device:     device,
		mixer:      &beep.Mixer{},
		volume:     vol,
		ctrl:       &beep.Ctrl{Streamer: vol, Paused: true},
		statActive: reg.Bools.Get(status.KeyAudioActive),
		statMuted:  reg.Bools.Get(status.KeyAudioMuted),
	}
}

// Start opens the device on first use and plays the pad for mount generation gen
// The pad stays silent if SetPaused(true) is in effect; a gen older than the current owner is a no-op
// Failure wraps engine.ErrResourceAcquisition and leaves the ambience silent
func (a *Ambience) Start(gen uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen < a.owner {
		return nil
	}
	if !a.opened {
		if err := a.device.Open(sampleRate, sampleRate.N(parameter.AmbienceBuffer)); err != nil {
			return fmt.Errorf("%w: audio device: %w", engine.ErrResourceAcquisition, err)
		}
		// Ctrl stays in the mixer for the process lifetime; pausing streams silence
		a.mixer.Add(a.ctrl)
		a.device.Play(a.mixer)
		a.opened = true
	}

	a.device.Lock()
	a.ctrl.Paused = a.paused
	a.device.Unlock()

	a.owner = gen
	a.active = true
	a.statActive.Store(true)
	return nil
}

// Stop pauses the pad if gen still owns it; the device stays open for the next mount
func (a *Ambience) Stop(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.active || gen != a.owner {
		return
	}
	a.device.Lock()
	a.ctrl.Paused = true
	a.device.Unlock()

	a.active = false
	a.statActive.Store(false)
}

// SetPaused follows the scene clock without releasing the pad
// The flag is kept while stopped and applied by the next Start
func (a *Ambience) SetPaused(paused bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.paused = paused
	if !a.active {
		return
	}
	a.device.Lock()
	a.ctrl.Paused = paused
	a.device.Unlock()
}

// SetMuted silences output without stopping the stream
func (a *Ambience) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.device.Lock()
	a.volume.Silent = muted
	a.device.Unlock()

	a.muted = muted
	a.statMuted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (a *Ambience) ToggleMute() bool {
	a.mu.Lock()
	muted := !a.muted
	a.mu.Unlock()
	a.SetMuted(muted)
	return muted
}

// Active reports whether a mount holds the pad, paused or not
func (a *Ambience) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Playing reports whether the pad is audible apart from mute
func (a *Ambience) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.device.Lock()
	defer a.device.Unlock()
	return a.active && !a.ctrl.Paused
}

// Muted reports the mute flag
func (a *Ambience) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}
