package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag     logLevelFlag
	configFlag    = flag.String("config", "", "YAML file overriding the built-in scene")
	debugFlag     = flag.Bool("debug", false, "Write logs to the log file")
	logFileFlag   = flag.String("logfile", defaultLogPath, "Log file path used with -debug")
	particlesFlag = flag.Int("particles", 0, "Number of drifting symbols (0 keeps the configured count)")
	seedFlag      = flag.Uint64("seed", 0, "Layout seed (0 keeps the configured seed)")
	fpsFlag       = flag.Int("fps", 0, "Frame rate (0 keeps the configured rate)")
	muteFlag      = flag.Bool("mute", false, "Start with the ambience muted")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "log level name")
}
