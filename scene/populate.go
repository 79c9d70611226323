package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cupscene/camera"
	"github.com/lixenwraith/cupscene/config"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/entity"
	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/render"
	"github.com/lixenwraith/cupscene/render/renderers"
	"github.com/lixenwraith/cupscene/vmath"
)

// populate generates the entities and renderer stack for one mount
// A nil screen builds an off-screen mount without the HUD
func (s *Scene) populate(screen tcell.Screen, width, height int) *mount {
	now := s.time.Now()
	cfg := s.cfg
	theme := cfg.Theme

	m := &mount{
		screen:    screen,
		mountedAt: now,
		fpsSince:  now,
		world:     engine.NewWorld(s.reg),
		clock:     engine.NewFrameClock(s.time, parameter.MaxFrameDelta),
		camera:    camera.NewController(cameraConfig(cfg.Camera)),
	}

	gen := entity.NewGenerator(s.seedSource())

	background := gen.Sparkles(entity.BackgroundSparkles(cfg.Scene.BackgroundSparkles))
	background.Tint.Color = theme.Star
	steam := gen.Sparkles(entity.SteamSparkles(cfg.Scene.SteamSparkles))
	steam.Tint.Color = theme.Steam

	spec := entity.DefaultCenterpiece()
	spec.BaseColor = theme.CupBlue
	spec.BodyColor = theme.CupRed
	m.cup = gen.Centerpiece(spec)

	m.labels = gen.Labels(labelSpecs(cfg.Labels))

	particles := gen.Particles(cfg.Scene.Particles, cfg.Scene.Bound)
	for _, p := range particles {
		p.Tint.Color = theme.Primary
	}

	m.world.Add(background)
	m.world.Add(steam)
	m.world.Add(m.cup)
	for _, l := range m.labels {
		m.world.Add(l)
	}
	for _, p := range particles {
		m.world.Add(p)
	}

	bg := render.Token(theme.Background, render.RGBBlack)
	light := render.Token(theme.Light, render.RGB{R: 245, G: 245, B: 247})
	gray := render.Token(theme.Gray, render.Scale(light, 0.5))
	m.lighting = render.NewLighting(
		bg,
		render.Token(theme.CupRed, render.RGB{R: 234, G: 45, B: 46}),
		render.Token(theme.CupBlue, render.RGB{G: 116, B: 189}),
	)

	o := render.NewRenderOrchestrator(screen, width, height, bg)
	o.Register(renderers.NewSparkleRenderer(background, steam), render.PrioritySparkle)
	o.Register(renderers.NewCenterpieceRenderer(m.cup, &m.lighting), render.PriorityCenterpiece)
	o.Register(renderers.NewParticleRenderer(particles, render.TextOptions{Dim: true, Centered: true}), render.PriorityParticle)
	o.Register(renderers.NewLabelRenderer(m.labels, &m.lighting, render.TextOptions{Emphasis: true, Centered: true}), render.PriorityLabel)
	o.Register(renderers.NewPlaceholderRenderer(bg, light), render.PriorityOverlay)
	if screen != nil {
		bar := render.Lerp(bg, gray, 0.2)
		accent := render.Token(theme.Primary, light)
		o.Register(renderers.NewStatusBarRenderer(s.reg, bar, light, gray, accent), render.PriorityUI)
	}
	m.orchestrator = o
	return m
}

// seedSource returns nil for wall-clock seeding
func (s *Scene) seedSource() vmath.Source {
	if s.source != nil {
		return s.source()
	}
	if seed := s.cfg.Scene.Seed; seed != 0 {
		return vmath.NewFastRand(seed)
	}
	return nil
}

func cameraConfig(c config.CameraConfig) camera.Config {
	cc := camera.DefaultConfig()
	cc.AutoRotate = c.AutoRotate
	cc.AutoRotateSpeed = c.AutoRotateSpeed
	cc.MinPolar = c.MinPolar
	cc.MaxPolar = c.MaxPolar
	cc.Sensitivity = c.Sensitivity
	cc.Inertia = c.Inertia
	return cc
}

func labelSpecs(labels []config.Label) []parameter.LabelSpec {
	out := make([]parameter.LabelSpec, 0, len(labels))
	for _, l := range labels {
		out = append(out, parameter.LabelSpec{Name: l.Name, Color: l.Color, X: l.X, Y: l.Y, Z: l.Z})
	}
	return out
}
