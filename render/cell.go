package render

// Attr is a text attribute bitmask
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
)

// Cell is one composited terminal cell
// Rune 0 means empty and flushes as a space
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}
