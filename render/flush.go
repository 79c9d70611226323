package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	line := make([]Cell, 0, b.width)
	for y := 0; y < b.height; y++ {
		line = b.row(y, line)
		for x := 0; x < len(line); x++ {
			c := line[x]
			r := printable(c.Rune)
			screen.SetContent(x, y, r, nil, CellStyle(c))
			// Wide runes own the next cell
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
	}
	screen.Show()
}

// PlainText renders the buffer runes as lines without colour, trailing blanks trimmed
func (b *RenderBuffer) PlainText() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)
	text := make([]rune, 0, b.width)
	line := make([]Cell, 0, b.width)
	for y := 0; y < b.height; y++ {
		text = text[:0]
		line = b.row(y, line)
		for x := 0; x < len(line); x++ {
			r := printable(line[x].Rune)
			text = append(text, r)
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
		sb.WriteString(strings.TrimRight(string(text), " "))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func printable(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}
