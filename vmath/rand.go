package vmath

import (
	"time"
)

// Source is a 64-bit random stream
// FastRand satisfies it; tests inject fixed seeds through NewFastRand
type Source interface {
	Next() uint64
}

// FastRand is a xorshift64 generator
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock, every call yields a different stream
func NewTimeSeededRand() *FastRand {
	seed := uint64(time.Now().UnixNano())
	// Splitmix finalizer spreads low-entropy nanosecond seeds
	seed ^= seed >> 30
	seed *= 0xbf58476d1ce4e5b9
	seed ^= seed >> 27
	seed *= 0x94d049bb133111eb
	seed ^= seed >> 31
	return NewFastRand(seed)
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Unit returns a Q32.32 value in [0, Scale) from src
func Unit(src Source) int64 {
	return int64(src.Next() >> Shift)
}

// RandRange returns a Q32.32 value in [lo, hi) from src
func RandRange(src Source, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + Mul(hi-lo, Unit(src))
}

// RandIntn returns an int in [0, n) from src
func RandIntn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(src.Next() % uint64(n))
}
