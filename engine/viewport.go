package engine

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/maniartech/signals"
)

// Size is a viewport dimension in cells
type Size struct {
	Width, Height int
}

// Viewport holds the mounted surface size and notifies subscribers on resize
type Viewport struct {
	mu   sync.RWMutex
	size Size

	resized signals.Signal[Size]
	seq     atomic.Uint64
}

// NewViewport creates a viewport with an initial size
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		size:    Size{Width: width, Height: height},
		resized: signals.NewSync[Size](),
	}
}

// Size returns the current dimensions
func (v *Viewport) Size() Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.size
}

// Resize stores the new size and notifies subscribers synchronously
// Identical sizes are not re-emitted
func (v *Viewport) Resize(ctx context.Context, width, height int) {
	s := Size{Width: width, Height: height}
	v.mu.Lock()
	if v.size == s {
		v.mu.Unlock()
		return
	}
	v.size = s
	v.mu.Unlock()

	v.resized.Emit(ctx, s)
}

// Subscribe registers fn for resize notifications
// The returned func removes the subscription and is safe to call more than once
func (v *Viewport) Subscribe(fn func(Size)) (unsubscribe func()) {
	key := "viewport-" + strconv.FormatUint(v.seq.Add(1), 10)
	v.resized.AddListener(func(_ context.Context, s Size) {
		fn(s)
	}, key)
	return sync.OnceFunc(func() {
		v.resized.RemoveListener(key)
	})
}

// Subscribers returns the number of live subscriptions
func (v *Viewport) Subscribers() int {
	return v.resized.Len()
}
