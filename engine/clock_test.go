package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(maxDelta time.Duration) (*FrameClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	return NewFrameClock(mock, maxDelta), mock
}

func TestFrameClock_Tick(t *testing.T) {
	clock, mock := newTestClock(0)

	mock.Advance(16 * time.Millisecond)
	f1, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, uint64(1), f1.Number)
	assert.Equal(t, 16*time.Millisecond, f1.Elapsed)
	assert.Equal(t, 16*time.Millisecond, f1.Delta)

	mock.Advance(20 * time.Millisecond)
	f2, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, uint64(2), f2.Number)
	assert.Equal(t, 36*time.Millisecond, f2.Elapsed)
	assert.Equal(t, 20*time.Millisecond, f2.Delta)
}

func TestFrameClock_DeltaClamped(t *testing.T) {
	clock, mock := newTestClock(100 * time.Millisecond)

	mock.Advance(5 * time.Second)
	f, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, f.Elapsed, "elapsed is not clamped")
	assert.Equal(t, 100*time.Millisecond, f.Delta)
}

func TestFrameClock_Monotonic(t *testing.T) {
	clock, mock := newTestClock(0)
	start := mock.Now()

	mock.Advance(time.Second)
	f1, _ := clock.Tick()

	mock.SetTime(start.Add(200 * time.Millisecond))
	f2, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, f1.Elapsed, f2.Elapsed)
	assert.Zero(t, f2.Delta)

	var prev time.Duration
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			mock.SetTime(start)
		} else {
			mock.Advance(time.Duration(i) * time.Millisecond)
		}
		f, _ := clock.Tick()
		assert.GreaterOrEqual(t, f.Elapsed, prev)
		prev = f.Elapsed
	}
}

func TestFrameClock_PauseExcludesPausedTime(t *testing.T) {
	clock, mock := newTestClock(0)

	mock.Advance(time.Second)
	clock.Tick()

	clock.Pause()
	assert.True(t, clock.IsPaused())
	mock.Advance(10 * time.Second)

	f, ok := clock.Tick()
	assert.False(t, ok, "paused clock must not advance")
	assert.Equal(t, uint64(1), f.Number)
	assert.Equal(t, time.Second, f.Elapsed)

	clock.Resume()
	mock.Advance(500 * time.Millisecond)
	f, ok = clock.Tick()
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, f.Elapsed)
	assert.Equal(t, 500*time.Millisecond, f.Delta)
}

func TestFrameClock_PauseResumeIdempotent(t *testing.T) {
	clock, mock := newTestClock(0)

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	mock.Advance(time.Second)
	f, _ := clock.Tick()
	assert.Equal(t, time.Second, f.Elapsed)
}

func TestFrame_T(t *testing.T) {
	f := Frame{Elapsed: 1500 * time.Millisecond}
	assert.InDelta(t, 1.5, float64(f.T())/float64(1<<32), 1e-6)
}
