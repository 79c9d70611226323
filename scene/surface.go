package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// SurfaceFactory allocates the render surface for one mount
type SurfaceFactory func() (tcell.Screen, error)

// TerminalSurface opens the controlling terminal with mouse and focus reporting
func TerminalSurface() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	return screen, nil
}
