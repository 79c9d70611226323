package render

import (
	"github.com/mattn/go-runewidth"
)

// TextOptions are the caller-facing presentation switches for a text layer
type TextOptions struct {
	Emphasis bool
	Dim      bool
	Centered bool
}

// TextStyle is TextOptions resolved once at renderer construction
type TextStyle struct {
	Attrs    Attr
	Alpha    float64
	Centered bool
}

// Resolve converts options to a concrete style
func (o TextOptions) Resolve() TextStyle {
	st := TextStyle{Alpha: 1, Centered: o.Centered}
	if o.Emphasis {
		st.Attrs |= AttrBold
	}
	if o.Dim {
		st.Attrs |= AttrDim
		st.Alpha = 0.6
	}
	return st
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// textOrigin shifts x left by half the width when centered
func (st TextStyle) textOrigin(x int, s string) int {
	if st.Centered {
		return x - TextWidth(s)/2
	}
	return x
}

// DrawText writes s at row y over the existing background, returns the cell width written
func DrawText(buf *RenderBuffer, x, y int, s string, fg RGB, st TextStyle) int {
	x = st.textOrigin(x, s)
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.Set(x, y, r, fg, RGB{}, BlendAlphaFg, st.Alpha, st.Attrs)
		x += w
	}
	return x - start
}

// DrawTextDepth writes s cell by cell with a depth test, returns the number of cells that passed
func DrawTextDepth(buf *RenderBuffer, x, y int, depth float64, s string, fg RGB, alpha float64, st TextStyle) int {
	x = st.textOrigin(x, s)
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if buf.Plot(x, y, depth, r, fg, RGB{}, BlendAlphaFg, alpha*st.Alpha, st.Attrs) {
			n++
		}
		x += w
	}
	return n
}
