package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ErikKalkoken/go-set"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/status"
)

type worldEntry struct {
	id     EntityID
	entity Entity
}

// World is the explicit per-frame update list
// Entities are added at construction and cleared at teardown
type World struct {
	mu      sync.RWMutex
	entries []worldEntry
	nextID  EntityID

	// Entities that already logged a failure at WARN
	reported   set.Set[EntityID]
	logLimiter *rate.Limiter

	// Cached metric pointers
	statEntities *atomic.Int64
	statFailures *atomic.Int64
}

// NewWorld creates an empty update list reporting into reg
func NewWorld(reg *status.Registry) *World {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		nextID:       1,
		reported:     set.Of[EntityID](),
		logLimiter:   rate.NewLimiter(rate.Every(parameter.FailureLogInterval), 1),
		statEntities: reg.Ints.Get(status.KeyEntities),
		statFailures: reg.Ints.Get(status.KeyUpdateFailures),
	}
}

// Add appends an entity to the update list
func (w *World) Add(e Entity) EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.entries = append(w.entries, worldEntry{id: id, entity: e})
	w.statEntities.Store(int64(len(w.entries)))
	return id
}

// Remove drops an entity, returns false if not present
func (w *World) Remove(id EntityID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, en := range w.entries {
		if en.id == id {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			w.reported.Delete(id)
			w.statEntities.Store(int64(len(w.entries)))
			return true
		}
	}
	return false
}

// Clear empties the update list
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.entries)
	w.entries = w.entries[:0]
	w.reported = set.Of[EntityID]()
	w.statEntities.Store(0)
}

// Len returns the number of entities in the update list
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

// Each visits entities in insertion order
func (w *World) Each(fn func(EntityID, Entity)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, en := range w.entries {
		fn(en.id, en.entity)
	}
}

// Update runs every entity's rule with the same frame
// A failing or panicking entity is skipped for this frame; the rest still run
// Returns the number of failures in this frame
func (w *World) Update(f Frame) int {
	w.mu.RLock()
	entries := w.entries
	w.mu.RUnlock()

	failures := 0
	for _, en := range entries {
		if err := safeUpdate(en.id, en.entity, f); err != nil {
			failures++
			w.report(en.id, f, err)
		}
	}
	if failures > 0 {
		w.statFailures.Add(int64(failures))
	}
	return failures
}

// Failures returns the cumulative failure count
func (w *World) Failures() int64 {
	return w.statFailures.Load()
}

func safeUpdate(id EntityID, e Entity, f Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s #%d panicked: %v", ErrEntityUpdate, e.Kind(), id, r)
		}
	}()
	if uerr := e.Update(f); uerr != nil {
		return fmt.Errorf("%w: %s #%d: %w", ErrEntityUpdate, e.Kind(), id, uerr)
	}
	return nil
}

func (w *World) report(id EntityID, f Frame, err error) {
	w.mu.Lock()
	first := !w.reported.Contains(id)
	if first {
		w.reported.Add(id)
	}
	w.mu.Unlock()

	if first {
		slog.Warn("entity skipped for frame", "entity", id, "frame", f.Number, "error", err)
		return
	}
	if w.logLimiter.Allow() {
		slog.Debug("entity still failing", "entity", id, "frame", f.Number, "error", err)
	}
}
