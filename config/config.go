// Package config loads scene tuning from optional YAML on top of the parameter defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lixenwraith/cupscene/parameter"
	"github.com/lixenwraith/cupscene/parameter/visual"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full tunable surface of the scene
type Config struct {
	Scene  SceneConfig  `yaml:"scene"`
	Camera CameraConfig `yaml:"camera"`
	Audio  AudioConfig  `yaml:"audio"`
	Theme  Theme        `yaml:"theme"`
	Labels []Label      `yaml:"labels"`
}

type SceneConfig struct {
	Particles          int     `yaml:"particles"`
	Bound              float64 `yaml:"bound"`
	FPS                int     `yaml:"fps"`
	Seed               uint64  `yaml:"seed"` // 0 seeds from the clock
	BackgroundSparkles int     `yaml:"background_sparkles"`
	SteamSparkles      int     `yaml:"steam_sparkles"`
}

// CameraConfig angles are radians
type CameraConfig struct {
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"`
	MinPolar        float64 `yaml:"min_polar"`
	MaxPolar        float64 `yaml:"max_polar"`
	Sensitivity     float64 `yaml:"sensitivity"`
	Inertia         float64 `yaml:"inertia"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Label struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

// Default returns the built-in scene
func Default() *Config {
	labels := make([]Label, 0, len(parameter.DefaultLabels))
	for _, l := range parameter.DefaultLabels {
		labels = append(labels, Label{Name: l.Name, Color: l.Color, X: l.X, Y: l.Y, Z: l.Z})
	}
	return &Config{
		Scene: SceneConfig{
			Particles:          parameter.DriftParticleCount,
			Bound:              parameter.DriftBound,
			FPS:                int(1e9 / parameter.FrameInterval.Nanoseconds()),
			BackgroundSparkles: parameter.BackgroundSparkleCount,
			SteamSparkles:      parameter.SteamSparkleCount,
		},
		Camera: CameraConfig{
			AutoRotate:      parameter.CameraAutoRotate,
			AutoRotateSpeed: parameter.CameraAutoRotateSpeed,
			MinPolar:        parameter.CameraMinPolar,
			MaxPolar:        parameter.CameraMaxPolar,
			Sensitivity:     parameter.CameraDragSensitivity,
			Inertia:         parameter.CameraInertia,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AmbienceVolume,
		},
		Theme: Theme{
			Background: visual.Background,
			Primary:    visual.Primary,
			Light:      visual.Light,
			Gray:       visual.Gray,
			CupBlue:    visual.CupBlue,
			CupRed:     visual.CupRed,
			Steam:      visual.Steam,
			Star:       visual.Star,
		},
		Labels: labels,
	}
}

// Load reads path and overlays it on Default. An empty path returns Default
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data on cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg.Validate()
}

// Validate reports every problem at once
func (c *Config) Validate() error {
	var errs []error
	if c.Scene.Particles <= 0 {
		errs = append(errs, fmt.Errorf("%w: scene.particles must be positive, got %d", ErrInvalid, c.Scene.Particles))
	}
	if c.Scene.Bound <= 0 {
		errs = append(errs, fmt.Errorf("%w: scene.bound must be positive, got %g", ErrInvalid, c.Scene.Bound))
	}
	if c.Scene.FPS <= 0 || c.Scene.FPS > 240 {
		errs = append(errs, fmt.Errorf("%w: scene.fps must be in 1..240, got %d", ErrInvalid, c.Scene.FPS))
	}
	if c.Scene.BackgroundSparkles < 0 || c.Scene.SteamSparkles < 0 {
		errs = append(errs, fmt.Errorf("%w: sparkle counts must not be negative", ErrInvalid))
	}
	if c.Camera.MinPolar < 0 || c.Camera.MaxPolar > 3.1416 || c.Camera.MinPolar > c.Camera.MaxPolar {
		errs = append(errs, fmt.Errorf("%w: camera polar range [%g, %g] is not within [0, π]", ErrInvalid, c.Camera.MinPolar, c.Camera.MaxPolar))
	}
	if c.Camera.Inertia < 0 || c.Camera.Inertia >= 1 {
		errs = append(errs, fmt.Errorf("%w: camera.inertia must be in [0, 1), got %g", ErrInvalid, c.Camera.Inertia))
	}
	for i, l := range c.Labels {
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("%w: labels[%d] has no name", ErrInvalid, i))
		}
		if err := validateToken(l.Color); err != nil {
			errs = append(errs, fmt.Errorf("labels[%d]: %w", i, err))
		}
	}
	if err := c.Theme.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
