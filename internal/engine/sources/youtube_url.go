package sources

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	ytWatchMarker = "youtube.com/watch"
	ytShortMarker = "youtu.be/"
	ytEmbedMarker = "youtube.com/embed/"
)

// youtubeURLREs accept the three supported URL shapes with an optional scheme and www.
var youtubeURLREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtu\.be/[\w-]+`),
}

// IsYouTubeURL reports whether rawURL looks like a supported YouTube video URL.
// Callers use it to reject input before any work is done.
func IsYouTubeURL(rawURL string) bool {
	rawURL = strings.TrimSpace(rawURL)
	for _, re := range youtubeURLREs {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// ExtractVideoID resolves the video ID from a watch, youtu.be or embed URL.
// Matching is syntactic and intentionally loose: it looks for the host/path
// markers rather than validating the whole URL. Host matching ignores case;
// the ID is returned verbatim.
func ExtractVideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	lower := asciiLower(rawURL)

	switch {
	case strings.Contains(lower, ytWatchMarker):
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", false
		}
		id := u.Query().Get("v")
		return id, id != ""
	case strings.Contains(lower, ytShortMarker):
		return idAfter(rawURL, lower, ytShortMarker)
	case strings.Contains(lower, ytEmbedMarker):
		return idAfter(rawURL, lower, ytEmbedMarker)
	}
	return "", false
}

// idAfter returns the path segment after the last marker, without query string.
func idAfter(rawURL, lower, marker string) (string, bool) {
	idx := strings.LastIndex(lower, marker)
	id := rawURL[idx+len(marker):]
	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}
	return id, id != ""
}

// asciiLower folds A-Z only, so byte offsets in the result match the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
