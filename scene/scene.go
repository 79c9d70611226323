// Package scene owns the mount lifecycle and the frame loop of the animated scene.
package scene

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/cupscene/audio"
	"github.com/lixenwraith/cupscene/camera"
	"github.com/lixenwraith/cupscene/config"
	"github.com/lixenwraith/cupscene/core"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/status"
	"github.com/lixenwraith/cupscene/vmath"
)

// Options wires the scene to its environment; zero values select the defaults
type Options struct {
	Config  *config.Config
	Surface SurfaceFactory
	Time    engine.TimeProvider

	// Source seeds each mount's generator; nil uses Config.Scene.Seed or the wall clock
	Source func() vmath.Source

	// AudioDevice overrides the system speaker
	AudioDevice audio.Device
	Muted       bool

	Registry *status.Registry

	// Fallback receives the static frame when no surface can be acquired
	Fallback io.Writer
}

// Scene is the lifecycle manager: Unmounted → Loading → Rendering → Unmounted
// All methods except Run are meant for the goroutine that runs the loop
type Scene struct {
	cfg      *config.Config
	surface  SurfaceFactory
	time     engine.TimeProvider
	source   func() vmath.Source
	fallback io.Writer

	lifecycle *engine.Lifecycle
	viewport  *engine.Viewport
	ambience  *audio.Ambience
	reg       *status.Registry

	m          *mount
	gen        uint64
	userPaused bool
	muted      bool

	statsLog rate.Sometimes

	statFrames  *atomic.Int64
	statMounts  *atomic.Int64
	statFPS     *status.AtomicFloat
	statAzimuth *status.AtomicFloat
	statPolar   *status.AtomicFloat
	statState   *status.AtomicString
	statPaused  *atomic.Bool
	statDrag    *atomic.Bool
}

// mount is everything owned by one Loading/Rendering period
type mount struct {
	gen          uint64
	screen       tcell.Screen
	poller       *poller
	cancel       context.CancelFunc
	unsubscribe  func()
	live         atomic.Bool
	mountedAt    time.Time
	world        *engine.World
	clock        *engine.FrameClock
	camera       *camera.Controller
	orchestrator *render.RenderOrchestrator
	lighting     render.Lighting

	cup    *entity.Centerpiece
	labels []*entity.Label

	assets      *assetLoader
	assetsReady bool

	focusLost    bool
	dragX, dragY int

	fpsFrames int
	fpsSince  time.Time
}

// New creates an unmounted scene
func New(opts Options) *Scene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Scene{
		cfg:         cfg,
		surface:     opts.Surface,
		time:        opts.Time,
		source:      opts.Source,
		fallback:    opts.Fallback,
		lifecycle:   engine.NewLifecycle(),
		viewport:    engine.NewViewport(0, 0),
		reg:         reg,
		muted:       opts.Muted,
		statsLog:    rate.Sometimes{Interval: parameter.StatsLogInterval},
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statMounts:  reg.Ints.Get(status.KeyMounts),
		statFPS:     reg.Floats.Get(status.KeyFPS),
		statAzimuth: reg.Floats.Get(status.KeyAzimuth),
		statPolar:   reg.Floats.Get(status.KeyPolar),
		statState:   reg.Strings.Get(status.KeyState),
		statPaused:  reg.Bools.Get(status.KeyPaused),
		statDrag:    reg.Bools.Get(status.KeyDragging),
	}
	if s.surface == nil {
		s.surface = TerminalSurface
	}
	if s.time == nil {
		s.time = engine.NewMonotonicTimeProvider()
	}
	if s.fallback == nil {
		s.fallback = os.Stdout
	}
	if cfg.Audio.Enabled {
		s.ambience = audio.NewAmbience(opts.AudioDevice, cfg.Audio.Volume, reg)
		s.ambience.SetMuted(s.muted)
	}
	s.statState.Store(engine.StateUnmounted.String())
	return s
}

// State returns the lifecycle state
func (s *Scene) State() engine.State {
	return s.lifecycle.State()
}

// Viewport exposes the mount region size and its resize subscription
func (s *Scene) Viewport() *engine.Viewport {
	return s.viewport
}

// Mount allocates the surface, populates a fresh world and starts asset acquisition
// A surface failure writes the static fallback and leaves the scene unmounted
func (s *Scene) Mount(ctx context.Context) error {
	if !s.lifecycle.Transition(engine.StateLoading, s.time.Now()) {
		return nil
	}
	s.statState.Store(engine.StateLoading.String())

	screen, err := s.surface()
	if err != nil {
		s.lifecycle.Transition(engine.StateUnmounted, s.time.Now())
		s.statState.Store(engine.StateUnmounted.String())
		s.writeFallback()
		return fmt.Errorf("%w: render surface: %w", engine.ErrResourceAcquisition, err)
	}
	core.SetCrashScreen(screen)

	w, h := screen.Size()
	s.viewport.Resize(ctx, w, h)

	mctx, cancel := context.WithCancel(ctx)
	m := s.populate(screen, w, h)
	s.gen++
	m.gen = s.gen
	m.cancel = cancel
	m.live.Store(true)
	m.unsubscribe = s.viewport.Subscribe(func(sz engine.Size) {
		m.orchestrator.Resize(sz.Width, sz.Height)
	})
	m.poller = startPoller(screen)
	m.assets = loadAssets(mctx, m, m.labels, s.ambience)

	s.m = m
	s.applyPause()
	mounts := s.statMounts.Add(1)
	slog.Info("Scene mounted", "mount", mounts, "width", w, "height", h, "entities", m.world.Len())
	return nil
}

// Unmount tears the mount down; it is idempotent
func (s *Scene) Unmount() {
	m := s.m
	if m == nil {
		return
	}
	s.m = nil

	m.live.Store(false)
	m.cancel()
	m.unsubscribe()
	m.clock.Pause()
	m.world.Clear()
	m.cup.Release()
	if s.ambience != nil {
		s.ambience.Stop(m.gen)
	}
	m.poller.stop()
	core.SetCrashScreen(nil)

	s.lifecycle.Transition(engine.StateUnmounted, s.time.Now())
	s.statState.Store(engine.StateUnmounted.String())
	s.statDrag.Store(false)
	slog.Info("Scene unmounted", "frames", m.clock.Last().Number)
}

// Tick advances and renders one frame; it returns false when nothing is mounted
func (s *Scene) Tick() bool {
	m := s.m
	if m == nil || !s.lifecycle.Is(engine.StateLoading, engine.StateRendering) {
		return false
	}
	now := s.time.Now()

	if !m.assetsReady && m.assets.ready() {
		s.applyAssets(m)
	}

	frame, advanced := m.clock.Tick()
	var dt time.Duration
	if advanced {
		m.world.Update(frame)
		dt = frame.Delta
	}
	// Drag still orbits while paused
	m.camera.Update(dt)

	m.orchestrator.RenderFrame(s.renderContext(m, frame, now))

	if m.assetsReady && s.lifecycle.Is(engine.StateLoading) {
		s.lifecycle.Transition(engine.StateRendering, now)
		s.statState.Store(engine.StateRendering.String())
		slog.Debug("Scene rendering", "after", now.Sub(m.mountedAt))
	}

	s.publish(m, frame, now)
	return true
}

// Run mounts the scene and drives it until ctx ends or the user quits
func (s *Scene) Run(ctx context.Context) error {
	if err := s.Mount(ctx); err != nil {
		return err
	}
	defer s.Unmount()

	ticker := time.NewTicker(frameInterval(s.cfg.Scene.FPS))
	defer ticker.Stop()

	for {
		m := s.m
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-m.poller.events:
			if !ok {
				return nil
			}
			switch s.handleEvent(ctx, ev) {
			case actionQuit:
				return nil
			case actionRemount:
				s.Unmount()
				if err := s.Mount(ctx); err != nil {
					return err
				}
			}

		case <-ticker.C:
			s.Tick()
		}
	}
}

// TogglePause flips the user pause; the clock stops and the ambience follows
func (s *Scene) TogglePause() bool {
	s.userPaused = !s.userPaused
	s.applyPause()
	return s.userPaused
}

// ToggleMute flips the ambience mute flag
func (s *Scene) ToggleMute() bool {
	s.muted = !s.muted
	if s.ambience != nil {
		s.ambience.SetMuted(s.muted)
	}
	return s.muted
}

func (s *Scene) applyPause() {
	m := s.m
	if m == nil {
		return
	}
	paused := s.userPaused || m.focusLost
	if paused {
		m.clock.Pause()
	} else {
		m.clock.Resume()
	}
	if s.ambience != nil {
		s.ambience.SetPaused(paused)
	}
	s.statPaused.Store(paused)
}

func (s *Scene) applyAssets(m *mount) {
	m.assetsReady = true
	if !m.live.Load() {
		return
	}
	if err := m.assets.err; err != nil {
		slog.Warn("Asset acquisition incomplete", "error", err)
	}
	for i, l := range m.labels {
		l.Width = m.assets.widths[i]
	}
	s.applyPause()
}

func (s *Scene) renderContext(m *mount, frame engine.Frame, now time.Time) render.RenderContext {
	ex, ey, ez := m.camera.Eye()
	size := s.viewport.Size()
	return render.RenderContext{
		Frame:      frame,
		State:      s.lifecycle.State(),
		SinceMount: now.Sub(m.mountedAt),
		Paused:     m.clock.IsPaused(),
		Muted:      s.muted,
		View:       render.NewView(ex, ey, ez, parameter.CameraFOV, size.Width, size.Height, parameter.CameraCellAspect),
	}
}

func (s *Scene) publish(m *mount, frame engine.Frame, now time.Time) {
	cam := m.camera.Snapshot()
	s.statFrames.Store(int64(frame.Number))
	s.statAzimuth.Set(cam.Azimuth)
	s.statPolar.Set(cam.Polar)
	s.statDrag.Store(cam.Dragging)

	m.fpsFrames++
	if el := now.Sub(m.fpsSince); el >= time.Second {
		s.statFPS.Set(float64(m.fpsFrames) / el.Seconds())
		m.fpsFrames = 0
		m.fpsSince = now
	}

	s.statsLog.Do(func() {
		slog.Debug("Frame stats", append([]any{"elapsed", frame.Elapsed}, s.reg.LogAttrs()...)...)
	})
}

// writeFallback composites a single frame off-screen and writes it as plain text
func (s *Scene) writeFallback() {
	m := s.populate(nil, parameter.FallbackWidth, parameter.FallbackHeight)
	for _, l := range m.labels {
		l.Width = l.Measure()
	}
	frame := engine.Frame{Number: 1}
	m.world.Update(frame)

	ex, ey, ez := m.camera.Eye()
	ctx := render.RenderContext{
		Frame:      frame,
		State:      engine.StateRendering,
		SinceMount: parameter.PlaceholderDelay + parameter.PlaceholderFade,
		View:       render.NewView(ex, ey, ez, parameter.CameraFOV, parameter.FallbackWidth, parameter.FallbackHeight, parameter.CameraCellAspect),
	}
	buf := m.orchestrator.Compose(ctx)
	if _, err := io.WriteString(s.fallback, buf.PlainText()); err != nil {
		slog.Error("Write fallback frame", "error", err)
	}
	m.world.Clear()
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(fps)
}
