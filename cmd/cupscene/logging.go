package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir         = "logs"
	logFileName    = "cupscene.log"
	defaultLogPath = logDir + "/" + logFileName
	maxLogSizeMB   = 10
	maxLogBackups  = 3
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func discardLogs() io.Closer {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
	return nopCloser{}
}

// setupLogging routes slog and log to a rotating file when debug is set
// The terminal owns stdout, so logging is discarded otherwise
func setupLogging(debug bool, path string, level slog.Level) io.Closer {
	if !debug {
		return discardLogs()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discardLogs()
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB, // megabytes
		MaxBackups: maxLogBackups,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	// SetDefault points the log package at the handler; plain log lines go straight to the file
	log.SetOutput(w)
	return w
}
