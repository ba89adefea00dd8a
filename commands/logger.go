package commands

import (
	"log/slog"
	"os"
)

// logger is the package logger. Set DEBUG in the environment to see
// per-request and per-file detail.
var logger = newLogger()

// Logger exposes the package logger for wiring into other packages.
func Logger() *slog.Logger {
	return logger
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
