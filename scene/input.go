package scene

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cupscene/core"
	"github.com/lixenwraith/cupscene/parameter"
)

// poller forwards surface events to the loop goroutine
type poller struct {
	screen tcell.Screen
	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}
}

func startPoller(screen tcell.Screen) *poller {
	p := &poller{
		screen: screen,
		events: make(chan tcell.Event, parameter.InputQueueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	core.Go(p.pollLoop)
	return p
}

func (p *poller) pollLoop() {
	defer close(p.doneCh)
	defer close(p.events)

	for {
		// Nil after Fini
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.stopCh:
			return
		}
	}
}

// stop finalizes the surface, which unblocks PollEvent, and waits for the goroutine
func (p *poller) stop() {
	close(p.stopCh)
	p.screen.Fini()
	<-p.doneCh
}

type action uint8

const (
	actionNone action = iota
	actionQuit
	actionRemount
)

// handleEvent applies one input event to the mounted scene
func (s *Scene) handleEvent(ctx context.Context, ev tcell.Event) action {
	m := s.m
	if m == nil {
		return actionNone
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		s.viewport.Resize(ctx, w, h)

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			if !m.camera.Dragging() {
				m.camera.BeginDrag()
			} else {
				m.camera.Drag(x-m.dragX, y-m.dragY)
			}
			m.dragX, m.dragY = x, y
		} else if m.camera.Dragging() {
			m.camera.EndDrag()
		}

	case *tcell.EventFocus:
		m.focusLost = !ev.Focused
		s.applyPause()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return actionQuit
			case ' ':
				s.TogglePause()
			case 'm', 'M':
				s.ToggleMute()
			case 'r', 'R':
				return actionRemount
			}
		}
	}
	return actionNone
}
