package visual

// Theme tokens (hex), treated as opaque inputs by the scene core
const (
	Background = "#0A0A1E"
	Primary    = "#5D5FEF"
	Light      = "#F5F5F7"
	Gray       = "#8A8AA3"

	CupBlue = "#0074BD"
	CupRed  = "#EA2D2E"

	Steam = "#5D5FEF"
	Star  = "#FFFFFF"

	HemisphereGround = "#0A0A1E"
	PointLightRed    = "#EA2D2E"
	PointLightBlue   = "#0074BD"
)
