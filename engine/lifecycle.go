package engine

import (
	"sync"
	"time"
)

// State is the scene lifecycle phase
type State int32

const (
	StateUnmounted State = iota
	StateLoading
	StateRendering
)

func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateLoading:
		return "loading"
	case StateRendering:
		return "rendering"
	default:
		return "invalid"
	}
}

var validTransitions = map[State][]State{
	StateUnmounted: {StateLoading},
	StateLoading:   {StateRendering, StateUnmounted},
	StateRendering: {StateUnmounted},
}

// Lifecycle tracks the mount state machine
type Lifecycle struct {
	mu    sync.RWMutex
	state State
	since time.Time
}

// NewLifecycle starts unmounted
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateUnmounted}
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition attempts to move to a new state
// Returns false and leaves state unchanged if the transition is invalid
func (l *Lifecycle) Transition(to State, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !CanTransition(l.state, to) {
		return false
	}
	l.state = to
	l.since = now
	return true
}

// State returns the current state
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Since returns when the current state was entered
func (l *Lifecycle) Since() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.since
}

// Is reports whether the current state is one of states
func (l *Lifecycle) Is(states ...State) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, s := range states {
		if l.state == s {
			return true
		}
	}
	return false
}
