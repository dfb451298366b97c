// Package toolutil provides shared helper functions for the MCP tools and the CLI.
package toolutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
)

// artifactTimeLayout is YYYYMMDD_HHMMSS.
const artifactTimeLayout = "20060102_150405"

// ArtifactFilename names a generated artifact: <platform>_<contenttype>_<timestamp>.md, lower-cased.
func ArtifactFilename(platform, contentType string, t time.Time) string {
	return fmt.Sprintf("%s_%s_%s.md",
		strings.ToLower(platform), strings.ToLower(contentType), t.Format(artifactTimeLayout))
}

// WriteArtifact writes content to dir/name, creating dir if needed, and
// returns the written path.
func WriteArtifact(dir, name, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

// RequireYouTubeURL rejects empty or non-YouTube input as a configuration error.
func RequireYouTubeURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return engine.ConfigError("video URL is required")
	}
	if !sources.IsYouTubeURL(rawURL) {
		return engine.ConfigError("not a valid YouTube URL: %q", rawURL)
	}
	return nil
}

// APIKey returns the per-request key, falling back to the configured one.
func APIKey(requested, configured string) string {
	if k := strings.TrimSpace(requested); k != "" {
		return k
	}
	return configured
}
