package component

// TintComponent carries an opaque theme colour token and opacity
// Renderers resolve the token to concrete RGB once at construction
type TintComponent struct {
	Color   string // hex token, e.g. "#5D5FEF"
	Opacity int64  // Q32.32 in [0, Scale]
}
