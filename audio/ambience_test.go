package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/status"
)

type fakeDevice struct {
	openErr error
	opens   int
	played  beep.Streamer
}

func (d *fakeDevice) Open(beep.SampleRate, int) error {
	d.opens++
	return d.openErr
}

func (d *fakeDevice) Play(s beep.Streamer) { d.played = s }
func (d *fakeDevice) Lock()                {}
func (d *fakeDevice) Unlock()              {}

func peak(t *testing.T, s beep.Streamer) float64 {
	t.Helper()
	buf := make([][2]float64, 2048)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	var m float64
	for _, smp := range buf {
		for _, v := range smp {
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
	}
	return m
}

func TestPadOutputBounded(t *testing.T) {
	p := NewPad(sampleRate)
	buf := make([][2]float64, sampleRate.N(padCycle)+100)
	n, ok := p.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	assert.NoError(t, p.Err())

	var top float64
	for _, smp := range buf {
		for _, v := range smp {
			top = max(top, math.Abs(v))
		}
	}
	assert.Positive(t, top)
	assert.LessOrEqual(t, top, padAmplitude+1e-9)
	// Position wrapped past one full cycle
	assert.Equal(t, 100, p.pos)
}

func TestAmbienceDeviceFailure(t *testing.T) {
	dev := &fakeDevice{openErr: errors.New("no audio device")}
	reg := status.NewRegistry()
	a := NewAmbience(dev, 0, reg)

	err := a.Start(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrResourceAcquisition)
	assert.False(t, a.Active())
	assert.False(t, reg.Bools.Get(status.KeyAudioActive).Load())

	// Silent ambience accepts every call
	assert.NotPanics(t, func() {
		a.SetPaused(true)
		a.ToggleMute()
		a.Stop(1)
		a.Stop(1)
	})
	assert.Nil(t, dev.played)
}

func TestAmbienceStartStop(t *testing.T) {
	dev := &fakeDevice{}
	reg := status.NewRegistry()
	a := NewAmbience(dev, 0, reg)

	require.NoError(t, a.Start(1))
	require.NoError(t, a.Start(1))
	assert.Equal(t, 1, dev.opens)
	assert.True(t, a.Active())
	assert.True(t, reg.Bools.Get(status.KeyAudioActive).Load())
	require.NotNil(t, dev.played)
	assert.Greater(t, peak(t, dev.played), 0.0)

	a.Stop(1)
	assert.False(t, a.Active())
	assert.Equal(t, 0.0, peak(t, dev.played))

	// Remount reuses the open device
	require.NoError(t, a.Start(2))
	assert.Equal(t, 1, dev.opens)
	assert.Greater(t, peak(t, dev.played), 0.0)
}

func TestAmbienceMuteAndPause(t *testing.T) {
	dev := &fakeDevice{}
	reg := status.NewRegistry()
	a := NewAmbience(dev, 0, reg)
	require.NoError(t, a.Start(1))

	assert.True(t, a.ToggleMute())
	assert.True(t, a.Muted())
	assert.True(t, reg.Bools.Get(status.KeyAudioMuted).Load())
	assert.Equal(t, 0.0, peak(t, dev.played))

	assert.False(t, a.ToggleMute())
	assert.Greater(t, peak(t, dev.played), 0.0)

	a.SetPaused(true)
	assert.False(t, a.Playing())
	assert.Equal(t, 0.0, peak(t, dev.played))
	a.SetPaused(false)
	assert.True(t, a.Playing())
	assert.Greater(t, peak(t, dev.played), 0.0)
}

func TestAmbiencePauseBeforeStart(t *testing.T) {
	dev := &fakeDevice{}
	a := NewAmbience(dev, 0, nil)

	a.SetPaused(true)
	require.NoError(t, a.Start(1))
	assert.True(t, a.Active())
	assert.False(t, a.Playing())
	assert.Equal(t, 0.0, peak(t, dev.played))

	a.SetPaused(false)
	assert.True(t, a.Playing())
}

func TestAmbienceStaleGenerationIgnored(t *testing.T) {
	dev := &fakeDevice{}
	a := NewAmbience(dev, 0, nil)

	require.NoError(t, a.Start(2))
	// A late loader from the previous mount neither steals nor stops the pad
	require.NoError(t, a.Start(1))
	a.Stop(1)
	assert.True(t, a.Playing())
	assert.Greater(t, peak(t, dev.played), 0.0)

	a.Stop(2)
	assert.False(t, a.Active())
	assert.Equal(t, 0.0, peak(t, dev.played))
}

func TestAmbienceStopWithoutStart(t *testing.T) {
	a := NewAmbience(&fakeDevice{}, 0, nil)
	assert.NotPanics(t, func() {
		a.Stop(1)
		a.SetPaused(false)
	})
	assert.False(t, a.Active())
}
