package vmath

import "math"

const (
	tableBits = 10
	tableSize = 1 << tableBits
	fracBits  = Shift - tableBits
	fracMask  = 1<<fracBits - 1
)

// sineTable holds one turn plus a closing entry so interpolation never wraps the index
var sineTable [tableSize + 1]int64

func init() {
	for i := range sineTable {
		sineTable[i] = FromFloat(math.Sin(2 * math.Pi * float64(i) / tableSize))
	}
}

// Sin returns the sine of an angle in turns, linearly interpolated between table entries
// Whole turns are discarded, so any angle is valid
func Sin(angle int64) int64 {
	i := (angle >> fracBits) & (tableSize - 1)
	frac := angle & fracMask
	a, b := sineTable[i], sineTable[i+1]
	return a + (b-a)*frac>>fracBits
}

func Cos(angle int64) int64 {
	return Sin(angle + Scale/4)
}
