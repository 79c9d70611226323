package engine

import (
	"time"

	"github.com/lixenwraith/cupscene/vmath"
)

// Frame is the single time sample shared by every entity updated in one tick
type Frame struct {
	Number  uint64
	Elapsed time.Duration // since mount, excluding pauses
	Delta   time.Duration // since previous frame, clamped
}

// T returns elapsed seconds in Q32.32
func (f Frame) T() int64 {
	return vmath.Seconds(f.Elapsed)
}
