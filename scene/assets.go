package scene

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cupscene/audio"
	"github.com/lixenwraith/cupscene/core"
	"github.com/lixenwraith/cupscene/entity"
)

// assetLoader acquires per-mount assets off the loop goroutine
// Results are read only after done is closed
type assetLoader struct {
	done   chan struct{}
	widths []int
	err    error
}

// loadAssets measures label layout and starts the ambience concurrently
// The mount's live flag is checked before anything outlives the mount
func loadAssets(ctx context.Context, m *mount, labels []*entity.Label, amb *audio.Ambience) *assetLoader {
	l := &assetLoader{
		done:   make(chan struct{}),
		widths: make([]int, len(labels)),
	}
	core.Go(func() {
		defer close(l.done)

		g, gctx := errgroup.WithContext(ctx)
		for i, lb := range labels {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				l.widths[i] = lb.Measure()
				return nil
			})
		}
		if amb != nil {
			g.Go(func() error {
				if !m.live.Load() {
					return nil
				}
				if err := amb.Start(m.gen); err != nil {
					// Scene runs silent
					slog.Warn("Ambience unavailable", "error", err)
					return nil
				}
				// Scoped to this mount's generation
				if !m.live.Load() {
					amb.Stop(m.gen)
				}
				return nil
			})
		}
		l.err = g.Wait()
	})
	return l
}

// ready reports whether acquisition has finished
func (l *assetLoader) ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
