package engine

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	log := NewLogger(LogConfig{Dir: dir, Level: "info", Console: &console})

	log.Debug("hidden")
	log.Info("video analyzed", slog.String("id", "ABC123"))

	if strings.Contains(console.String(), "hidden") {
		t.Error("debug line should be filtered at info level")
	}
	if !strings.Contains(console.String(), "id=ABC123") {
		t.Errorf("console output = %q", console.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "video analyzed") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	log := NewLogger(LogConfig{Console: &console})
	log.Warn("no dir")
	if !strings.Contains(console.String(), "no dir") {
		t.Errorf("console output = %q", console.String())
	}
}
