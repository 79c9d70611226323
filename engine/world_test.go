package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cupscene/status"
)

type countingEntity struct {
	kind   Kind
	calls  int
	frames []Frame
	fail   error
	panics bool
}

func (e *countingEntity) Kind() Kind { return e.kind }

func (e *countingEntity) Update(f Frame) error {
	e.calls++
	e.frames = append(e.frames, f)
	if e.panics {
		panic("mesh released")
	}
	return e.fail
}

func TestWorld_UpdateSharesFrame(t *testing.T) {
	w := NewWorld(nil)
	a := &countingEntity{kind: KindCenterpiece}
	b := &countingEntity{kind: KindParticle}
	w.Add(a)
	w.Add(b)

	f := Frame{Number: 3, Elapsed: time.Second, Delta: time.Second / 60}
	assert.Zero(t, w.Update(f))
	require.Len(t, a.frames, 1)
	require.Len(t, b.frames, 1)
	assert.Equal(t, a.frames[0], b.frames[0])
}

func TestWorld_FailureIsolated(t *testing.T) {
	reg := status.NewRegistry()
	w := NewWorld(reg)

	before := &countingEntity{kind: KindSparkle}
	broken := &countingEntity{kind: KindLabel, fail: ErrMissingResource}
	panicky := &countingEntity{kind: KindCenterpiece, panics: true}
	after := &countingEntity{kind: KindParticle}
	w.Add(before)
	w.Add(broken)
	w.Add(panicky)
	w.Add(after)

	for i := 1; i <= 3; i++ {
		n := w.Update(Frame{Number: uint64(i)})
		assert.Equal(t, 2, n)
	}

	assert.Equal(t, 3, before.calls)
	assert.Equal(t, 3, after.calls)
	assert.Equal(t, 3, broken.calls)
	assert.Equal(t, int64(6), w.Failures())
	assert.Equal(t, int64(6), reg.Ints.Get(status.KeyUpdateFailures).Load())
}

func TestSafeUpdate_WrapsErrors(t *testing.T) {
	err := safeUpdate(7, &countingEntity{kind: KindLabel, fail: ErrMissingResource}, Frame{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEntityUpdate))
	assert.True(t, errors.Is(err, ErrMissingResource))

	err = safeUpdate(8, &countingEntity{kind: KindLabel, panics: true}, Frame{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntityUpdate)
	assert.Contains(t, err.Error(), "mesh released")
}

func TestWorld_RemoveAndClear(t *testing.T) {
	reg := status.NewRegistry()
	w := NewWorld(reg)
	e1 := &countingEntity{}
	id1 := w.Add(e1)
	w.Add(&countingEntity{})
	w.Add(&countingEntity{})
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, int64(3), reg.Ints.Get(status.KeyEntities).Load())

	assert.True(t, w.Remove(id1))
	assert.False(t, w.Remove(id1))
	assert.Equal(t, 2, w.Len())

	w.Clear()
	assert.Zero(t, w.Len())
	assert.Zero(t, reg.Ints.Get(status.KeyEntities).Load())
	assert.Zero(t, w.Update(Frame{Number: 1}))
	assert.Zero(t, e1.calls)
}

func TestWorld_EachInsertionOrder(t *testing.T) {
	w := NewWorld(nil)
	kinds := []Kind{KindSparkle, KindCenterpiece, KindLabel, KindParticle}
	for _, k := range kinds {
		w.Add(&countingEntity{kind: k})
	}

	var got []Kind
	w.Each(func(_ EntityID, e Entity) { got = append(got, e.Kind()) })
	assert.Equal(t, kinds, got)
}
