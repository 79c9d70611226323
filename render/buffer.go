package render

import (
	"math"
)

// slot is one composited cell plus its depth sample
type slot struct {
	Cell
	depth   float64
	painted bool // background written this frame
}

// RenderBuffer is a cell compositor with a depth plane
// Cells whose background nobody painted take the buffer background at flush
type RenderBuffer struct {
	slots         []slot
	width, height int
	background    RGB
}

func NewRenderBuffer(width, height int, background RGB) *RenderBuffer {
	b := &RenderBuffer{background: background}
	b.Resize(width, height)
	return b
}

// Resize clears the buffer at the new size, reusing the backing array when it is large enough
func (b *RenderBuffer) Resize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
	n := b.width * b.height
	if cap(b.slots) < n {
		b.slots = make([]slot, n)
	}
	b.slots = b.slots[:n]
	b.Clear()
}

// Clear blanks every cell and pushes the depth plane to infinity
func (b *RenderBuffer) Clear() {
	blank := slot{Cell: Cell{Fg: b.background, Bg: b.background}, depth: math.Inf(1)}
	for i := range b.slots {
		b.slots[i] = blank
	}
}

func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// at returns the slot index for x, y or -1 outside the buffer
func (b *RenderBuffer) at(x, y int) int {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return -1
	}
	return y*b.width + x
}

func (b *RenderBuffer) Cell(x, y int) (Cell, bool) {
	i := b.at(x, y)
	if i < 0 {
		return Cell{}, false
	}
	return b.slots[i].Cell, true
}

// Depth returns the nearest depth written at x, y, +Inf if none
func (b *RenderBuffer) Depth(x, y int) float64 {
	i := b.at(x, y)
	if i < 0 {
		return math.Inf(1)
	}
	return b.slots[i].depth
}

// Set composites a cell with the given blend mode, ignoring depth
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	if i := b.at(x, y); i >= 0 {
		b.slots[i].compose(r, fg, bg, mode, alpha, attrs)
	}
}

// Plot composites a cell only when depth is nearer than what is already there
// It reports whether the write passed the depth test
func (b *RenderBuffer) Plot(x, y int, depth float64, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) bool {
	i := b.at(x, y)
	if i < 0 || depth >= b.slots[i].depth {
		return false
	}
	s := &b.slots[i]
	s.depth = depth
	s.compose(r, fg, bg, mode, alpha, attrs)
	return true
}

func (s *slot) compose(r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	op, flags := uint8(mode)&0x0F, uint8(mode)&0xF0
	if r != 0 {
		s.Rune, s.Attrs = r, attrs
	}
	if flags&flagBg != 0 {
		s.Bg = blend(op, s.Bg, bg, alpha)
		s.painted = true
	}
	if flags&flagFg != 0 {
		s.Fg = blend(op, s.Fg, fg, alpha)
	}
}

// row returns the cells of line y with unpainted backgrounds resolved
func (b *RenderBuffer) row(y int, dst []Cell) []Cell {
	dst = dst[:0]
	for _, s := range b.slots[y*b.width : (y+1)*b.width] {
		c := s.Cell
		if !s.painted {
			c.Bg = b.background
		}
		dst = append(dst, c)
	}
	return dst
}
