package engine

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls where logs go. Dir empty means console only.
type LogConfig struct {
	Dir        string
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	Console    io.Writer // default os.Stderr
}

// NewLogger builds a text logger writing to the console and, when Dir is set,
// to a size-rotated file (2 MB x 5 backups by default).
func NewLogger(lc LogConfig) *slog.Logger {
	console := lc.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{console}

	if lc.Dir != "" {
		if err := os.MkdirAll(lc.Dir, 0o755); err == nil {
			file := lc.File
			if file == "" {
				file = "app.log"
			}
			maxSize := lc.MaxSizeMB
			if maxSize <= 0 {
				maxSize = 2
			}
			backups := lc.MaxBackups
			if backups <= 0 {
				backups = 5
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(lc.Dir, file),
				MaxSize:    maxSize,
				MaxBackups: backups,
			})
		}
	}

	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: parseLevel(lc.Level)})
	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
