package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Device is the output the ambience plays into
// Lock/Unlock guard streamer mutation against the playback goroutine
type Device interface {
	Open(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// SpeakerDevice plays through the system audio device
type SpeakerDevice struct{}

func (SpeakerDevice) Open(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (SpeakerDevice) Play(s beep.Streamer) { speaker.Play(s) }
func (SpeakerDevice) Lock()                { speaker.Lock() }
func (SpeakerDevice) Unlock()              { speaker.Unlock() }
