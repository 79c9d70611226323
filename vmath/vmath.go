// Package vmath is Q32.32 fixed-point arithmetic for the scene: positions, velocities and
// angles measured in turns (Scale is one full revolution).
package vmath

import (
	"math"
	"math/bits"
)

const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

func FromInt(i int) int64       { return int64(i) << Shift }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Mul multiplies two Q32.32 values, rounding toward negative infinity
func Mul(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// Two's-complement correction turns the unsigned high word into the signed one
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return int64(hi<<(64-Shift) | lo>>Shift)
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	return min(max(x, lo), hi)
}

// FromRadians converts a float radian angle into Q32.32 turns
func FromRadians(rad float64) int64 {
	return FromFloat(rad / (2 * math.Pi))
}

// RadToTurns converts a Q32.32 radian value into Q32.32 turns
func RadToTurns(rad int64) int64 {
	return FromFloat(ToFloat(rad) / (2 * math.Pi))
}

func ToRadians(turns int64) float64 {
	return ToFloat(turns) * 2 * math.Pi
}
