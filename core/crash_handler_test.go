package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeScreen struct{ finalized int }

func (f *fakeScreen) Fini() { f.finalized++ }

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 1)
	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &out
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashScreen(nil)
	})
	return &out, codes
}

func TestHandleCrash_FinalizesScreen(t *testing.T) {
	out, codes := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	HandleCrash("boom")

	assert.Equal(t, 1, screen.finalized)
	assert.Equal(t, 1, <-codes)
	assert.Contains(t, out.String(), "CRASH DETECTED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	out, codes := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	HandleCrash(nil)

	assert.Zero(t, screen.finalized)
	assert.Empty(t, out.String())
	assert.Empty(t, codes)
}

func TestGo_RecoversPanic(t *testing.T) {
	out, codes := captureCrash(t)

	Go(func() { panic("loader failed") })

	assert.Equal(t, 1, <-codes)
	assert.Contains(t, out.String(), "loader failed")
}
