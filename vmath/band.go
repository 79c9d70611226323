package vmath

import (
	"time"
)

// MaxSteps caps reference-frame step counts so huge time jumps cannot overflow Q32.32 products
const MaxSteps = 1 << 20

// WrapBand resets v to the opposite edge of [-bound, bound] when it leaves the band
// Overshoot is discarded: crossing +bound lands exactly on -bound and vice versa
func WrapBand(v, bound int64) int64 {
	if v > bound {
		return -bound
	}
	if v < -bound {
		return bound
	}
	return v
}

// Steps converts a frame delta into Q32.32 reference-frame steps
// A delta equal to ref yields Scale
func Steps(delta, ref time.Duration) int64 {
	if delta <= 0 || ref <= 0 {
		return 0
	}
	steps := float64(delta) / float64(ref)
	if steps > MaxSteps {
		steps = MaxSteps
	}
	return FromFloat(steps)
}

// Seconds converts a duration into Q32.32 seconds
func Seconds(d time.Duration) int64 {
	return FromFloat(d.Seconds())
}
