package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

const captionMaxBytes = 2 * 1024 * 1024

// pickCaptionURL returns the download URL of the first manual track in lang,
// else the first auto-generated track in lang, else "".
func pickCaptionURL(info *VideoInfo, lang string) string {
	if tracks := info.Subtitles[lang]; len(tracks) > 0 {
		return tracks[0].URL
	}
	if tracks := info.AutomaticCaptions[lang]; len(tracks) > 0 {
		return tracks[0].URL
	}
	return ""
}

// fetchCaptionText downloads a caption track and strips it to plain text.
// Any failure, including an empty result, is returned as an error so the
// caller can fall back.
func fetchCaptionText(ctx context.Context, client *http.Client, trackURL string) (string, error) {
	engine.IncrCaptionFetches()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch captions: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, captionMaxBytes))
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	text := StripCaptionMarkup(string(body))
	if text == "" {
		return "", errors.New("empty caption track")
	}
	return text, nil
}

// StripCaptionMarkup converts a WebVTT/SRT payload to plain text.
// It drops the format header (WEBVTT plus its Kind:/Language: lines), cue
// indices and timestamps (lines that are all digits once '.' and ':' are
// removed), time-range lines containing "-->", and blank lines. Inline cue
// tags are removed before the line is checked; kept lines are joined with
// newlines.
func StripCaptionMarkup(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	inHeader := false

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")

		if strings.HasPrefix(line, "WEBVTT") {
			inHeader = true
			continue
		}
		if inHeader {
			if isHeaderMeta(line) {
				continue
			}
			inHeader = false
		}
		if strings.Contains(line, "-->") {
			continue
		}
		text := engine.CleanHTML(line)
		if text == "" || isCueNumber(text) {
			continue
		}
		kept = append(kept, text)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// isHeaderMeta matches the "Kind:" / "Language:" lines that follow the WEBVTT line.
func isHeaderMeta(line string) bool {
	return strings.HasPrefix(line, "Kind:") || strings.HasPrefix(line, "Language:")
}

// isCueNumber reports whether line is a bare index or timestamp such as "12" or "00:01.500".
func isCueNumber(line string) bool {
	stripped := strings.NewReplacer(".", "", ":", "").Replace(line)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
