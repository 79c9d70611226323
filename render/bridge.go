package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB, ColorDefault maps to fallback
func TcellToRGB(c tcell.Color, fallback RGB) RGB {
	if c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	if r < 0 {
		return fallback
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// CellStyle maps a cell's colours and attributes to a tcell style
func CellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(RGBToTcell(c.Fg)).Background(RGBToTcell(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}
