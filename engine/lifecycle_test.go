package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateUnmounted, StateLoading, true},
		{StateLoading, StateRendering, true},
		{StateLoading, StateUnmounted, true},
		{StateRendering, StateUnmounted, true},
		{StateUnmounted, StateRendering, false},
		{StateRendering, StateLoading, false},
		{StateUnmounted, StateUnmounted, false},
		{StateRendering, StateRendering, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestLifecycle_Transition(t *testing.T) {
	l := NewLifecycle()
	now := time.Unix(100, 0)
	assert.Equal(t, StateUnmounted, l.State())

	assert.False(t, l.Transition(StateRendering, now))
	assert.Equal(t, StateUnmounted, l.State())

	assert.True(t, l.Transition(StateLoading, now))
	assert.Equal(t, now, l.Since())
	assert.True(t, l.Is(StateLoading, StateRendering))

	later := now.Add(time.Second)
	assert.True(t, l.Transition(StateRendering, later))
	assert.Equal(t, later, l.Since())
	assert.True(t, l.Transition(StateUnmounted, later))
	assert.False(t, l.Is(StateLoading, StateRendering))

	// Remount
	assert.True(t, l.Transition(StateLoading, later))
}
