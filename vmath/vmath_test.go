package vmath

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	assert.Equal(t, FromInt(6), Mul(FromInt(2), FromInt(3)))
	assert.Equal(t, FromInt(-6), Mul(FromInt(-2), FromInt(3)))
	assert.Equal(t, FromInt(6), Mul(FromInt(-2), FromInt(-3)))
	assert.Equal(t, FromFloat(-1.25), Mul(FromFloat(2.5), FromFloat(-0.5)))
	assert.Equal(t, FromInt(1<<20), Mul(FromInt(1<<10), FromInt(1<<10)))
}

func TestSinWrapsAcrossTurns(t *testing.T) {
	quarter := int64(Scale / 4)
	assert.InDelta(t, 1.0, ToFloat(Sin(quarter)), 1e-6)
	assert.Equal(t, Sin(quarter), Sin(quarter+Scale*7))
	assert.Equal(t, Sin(quarter), Sin(quarter-Scale*3))
	assert.InDelta(t, 1.0, ToFloat(Cos(0)), 1e-6)
}

func TestSinInterpolates(t *testing.T) {
	for _, turns := range []float64{0.013, 0.1, 0.377, 0.5001, 0.9} {
		want := math.Sin(2 * math.Pi * turns)
		assert.InDelta(t, want, ToFloat(Sin(FromFloat(turns))), 1e-4, "turns %v", turns)
		assert.InDelta(t, math.Cos(2*math.Pi*turns), ToFloat(Cos(FromFloat(turns))), 1e-4, "turns %v", turns)
	}
}

func TestRadiansRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/3, ToRadians(FromRadians(math.Pi/3)), 1e-9)
}

func TestV3RotateY(t *testing.T) {
	v := V3(1, 2, 0)
	r := V3RotateY(v, Scale/4)
	x, y, z := V3Floats(r)
	assert.InDelta(t, 0, x, 1e-3)
	assert.InDelta(t, 2, y, 1e-9)
	assert.InDelta(t, -1, z, 1e-3)
}

func TestWrapBand(t *testing.T) {
	b := FromInt(5)
	tests := []struct {
		name string
		in   int64
		want int64
	}{
		{"inside", FromInt(3), FromInt(3)},
		{"upper edge kept", b, b},
		{"lower edge kept", -b, -b},
		{"above resets low", FromInt(6), -b},
		{"below resets high", FromInt(-6), b},
		{"far above", FromInt(1 << 20), -b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapBand(tt.in, b))
		})
	}
}

func TestSteps(t *testing.T) {
	ref := time.Second / 60
	assert.Equal(t, int64(Scale), Steps(ref, ref))
	assert.Equal(t, int64(0), Steps(-time.Second, ref))
	assert.Equal(t, FromInt(MaxSteps), Steps(1000*time.Hour, ref))
}

func TestRandRange(t *testing.T) {
	src := NewFastRand(42)
	lo, hi := FromInt(-5), FromInt(5)
	for i := 0; i < 1000; i++ {
		v := RandRange(src, lo, hi)
		assert.GreaterOrEqual(t, v, lo)
		assert.Less(t, v, hi)
	}
}

func TestTimeSeededRandDiffers(t *testing.T) {
	a := NewTimeSeededRand()
	time.Sleep(time.Microsecond)
	b := NewTimeSeededRand()
	assert.NotEqual(t, a.Next(), b.Next())
}
