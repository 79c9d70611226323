package status

import "sync/atomic"

// Registry is the central metrics facade
// Components cache pointers during construction; frame loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// LogAttrs flattens every metric into slog key/value pairs, grouped by type in key order
func (r *Registry) LogAttrs() []any {
	attrs := make([]any, 0, 2*r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { attrs = append(attrs, k, v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { attrs = append(attrs, k, v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { attrs = append(attrs, k, v.Get()) })
	r.Strings.Range(func(k string, v *AtomicString) { attrs = append(attrs, k, v.Load()) })
	return attrs
}

// Metric keys shared between writers and the HUD
const (
	KeyFrames         = "scene.frames"
	KeyFPS            = "scene.fps"
	KeyEntities       = "scene.entities"
	KeyUpdateFailures = "scene.update_failures"
	KeyMounts         = "scene.mounts"
	KeyState          = "scene.state"
	KeyPaused         = "scene.paused"
	KeyAzimuth        = "camera.azimuth"
	KeyPolar          = "camera.polar"
	KeyDragging       = "camera.dragging"
	KeyAudioActive    = "audio.active"
	KeyAudioMuted     = "audio.muted"
)
