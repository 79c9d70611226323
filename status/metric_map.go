package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap is a lazily populated set of named atomics
// Writers cache the pointer from Get at construction; the stats log walks Range
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	n     atomic.Int32
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.n.Add(1)
	}
	return v.(*T)
}

// Range visits metrics in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	keys := make([]string, 0, m.Len())
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := m.items.Load(k)
		fn(k, v.(*T))
	}
}

func (m *MetricMap[T]) Len() int {
	return int(m.n.Load())
}
