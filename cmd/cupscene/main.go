package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/cupscene/config"
	"github.com/lixenwraith/cupscene/core"
	"github.com/lixenwraith/cupscene/engine"
	"github.com/lixenwraith/cupscene/scene"
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logs := setupLogging(*debugFlag, *logFileFlag, levelFlag.value)
	defer logs.Close()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cupscene: %v\n", err)
		return 2
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cupscene: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := scene.New(scene.Options{Config: cfg, Muted: *muteFlag})

	// Panics on the loop goroutine restore the terminal before exiting
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := sc.Run(ctx); err != nil {
		slog.Error("Scene stopped", "error", err)
		if errors.Is(err, engine.ErrResourceAcquisition) {
			fmt.Fprintf(os.Stderr, "cupscene: %v (static frame shown)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "cupscene: %v\n", err)
		}
		return 1
	}
	return 0
}

// applyFlags overlays non-zero command line values on the loaded config
func applyFlags(cfg *config.Config) error {
	if *particlesFlag > 0 {
		cfg.Scene.Particles = *particlesFlag
	}
	if *seedFlag != 0 {
		cfg.Scene.Seed = *seedFlag
	}
	if *fpsFlag > 0 {
		cfg.Scene.FPS = *fpsFlag
	}
	return cfg.Validate()
}
