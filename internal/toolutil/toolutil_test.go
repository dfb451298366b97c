package toolutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

func TestArtifactFilename(t *testing.T) {
	ts := time.Date(2026, 10, 18, 9, 5, 3, 0, time.UTC)
	tests := []struct {
		platform, contentType, want string
	}{
		{"Instagram", "Post", "instagram_post_20261018_090503.md"},
		{"Medium", "Tutorial", "medium_tutorial_20261018_090503.md"},
	}
	for _, tt := range tests {
		if got := ArtifactFilename(tt.platform, tt.contentType, ts); got != tt.want {
			t.Errorf("ArtifactFilename(%q, %q) = %q, want %q", tt.platform, tt.contentType, got, tt.want)
		}
	}
}

func TestWriteArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteArtifact(dir, "instagram_post_x.md", "# hello")
	if err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
	if path != filepath.Join(dir, "instagram_post_x.md") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "# hello" {
		t.Errorf("file = (%q, %v)", data, err)
	}
}

func TestRequireYouTubeURL(t *testing.T) {
	if err := RequireYouTubeURL("https://www.youtube.com/watch?v=ABC123"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	for _, u := range []string{"", "   ", "not-a-url", "https://vimeo.com/1"} {
		if err := RequireYouTubeURL(u); !errors.Is(err, engine.ErrConfiguration) {
			t.Errorf("RequireYouTubeURL(%q) = %v, want ErrConfiguration", u, err)
		}
	}
}

func TestAPIKey(t *testing.T) {
	if got := APIKey(" user ", "server"); got != "user" {
		t.Errorf("requested key: %q", got)
	}
	if got := APIKey("", "server"); got != "server" {
		t.Errorf("configured key: %q", got)
	}
}
