package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CaptionTrack is one downloadable subtitle track.
type CaptionTrack struct {
	Language string
	URL      string
	Kind     string
}

// VideoInfo is what the video host reports about a video, before normalization.
// Subtitles holds manually authored tracks, AutomaticCaptions the auto-generated
// ones; both are keyed by language code and keep the host's track order.
type VideoInfo struct {
	ID                string
	Title             string
	Description       string
	DurationSeconds   int
	Subtitles         map[string][]CaptionTrack
	AutomaticCaptions map[string][]CaptionTrack
}

// MetadataSource looks up video metadata and caption tracks without downloading media.
type MetadataSource interface {
	FetchInfo(ctx context.Context, videoID string) (*VideoInfo, error)
}

// ErrNoVideoInfo is returned when no lookup strategy produced metadata.
var ErrNoVideoInfo = errors.New("no video information")

// InnertubeSource reads metadata from YouTube.
// Primary:  watch page ytInitialPlayerResponse (metadata + caption tracks)
// Fallback: ANDROID Innertube /player
// Last:     watch page <meta> tags (metadata only, no captions)
type InnertubeSource struct {
	client    *http.Client
	log       *slog.Logger
	watchURL  string
	playerURL string
}

// NewInnertubeSource creates a metadata source using client for all requests.
func NewInnertubeSource(client *http.Client, log *slog.Logger) *InnertubeSource {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &InnertubeSource{
		client:    client,
		log:       log,
		watchURL:  ytWatchPageURL,
		playerURL: ytInnertubeURL,
	}
}

// FetchInfo implements MetadataSource.
func (s *InnertubeSource) FetchInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	page, err := getWatchPage(ctx, s.client, s.watchURL, videoID)
	if err == nil {
		info, perr := infoFromWatchPage(page)
		if perr == nil {
			return info, nil
		}
		s.log.Warn("youtube: watch page parse failed, trying player",
			slog.String("id", videoID), slog.Any("err", perr))
	} else {
		s.log.Warn("youtube: watch page failed, trying player",
			slog.String("id", videoID), slog.Any("err", err))
	}

	playerResp, err := postPlayerANDROID(ctx, s.client, s.playerURL, videoID)
	if err == nil {
		info, perr := infoFromPlayer(playerResp)
		if perr == nil {
			return info, nil
		}
		err = perr
	}
	s.log.Warn("youtube: player failed", slog.String("id", videoID), slog.Any("err", err))

	if page != nil {
		if info, merr := infoFromMetaTags(page); merr == nil {
			info.ID = videoID
			return info, nil
		}
	}
	return nil, fmt.Errorf("%w for %s: %v", ErrNoVideoInfo, videoID, err)
}

// infoFromWatchPage parses ytInitialPlayerResponse out of watch page HTML.
func infoFromWatchPage(body []byte) (*VideoInfo, error) {
	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}
	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return infoFromPlayer(&playerResp)
}

// infoFromPlayer converts a player response into VideoInfo.
func infoFromPlayer(resp *innertubePlayerResp) (*VideoInfo, error) {
	if resp.VideoDetails == nil || resp.VideoDetails.VideoID == "" {
		if resp.PlayabilityStatus != nil && resp.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("video unavailable: %s", resp.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no videoDetails in player response")
	}
	d := resp.VideoDetails
	duration, _ := strconv.Atoi(d.LengthSeconds)
	info := &VideoInfo{
		ID:                d.VideoID,
		Title:             d.Title,
		Description:       d.ShortDescription,
		DurationSeconds:   max(duration, 0),
		Subtitles:         map[string][]CaptionTrack{},
		AutomaticCaptions: map[string][]CaptionTrack{},
	}
	if resp.Captions == nil {
		return info, nil
	}
	for _, t := range resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks {
		track := CaptionTrack{Language: t.LanguageCode, URL: vttURL(t.BaseURL), Kind: t.Kind}
		if t.Kind == "asr" {
			info.AutomaticCaptions[t.LanguageCode] = append(info.AutomaticCaptions[t.LanguageCode], track)
		} else {
			info.Subtitles[t.LanguageCode] = append(info.Subtitles[t.LanguageCode], track)
		}
	}
	return info, nil
}

// vttURL asks the timedtext endpoint for WebVTT instead of its default XML.
func vttURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set("fmt", "vtt")
	u.RawQuery = q.Encode()
	return u.String()
}

// infoFromMetaTags reads title, description and duration from watch page <meta> tags.
func infoFromMetaTags(body []byte) (*VideoInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}
	meta := func(selector string) string {
		v, _ := doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(v)
	}

	title := meta(`meta[property="og:title"]`)
	if title == "" {
		title = meta(`meta[name="title"]`)
	}
	if title == "" {
		return nil, errors.New("no title meta tag in watch page")
	}
	desc := meta(`meta[property="og:description"]`)
	if desc == "" {
		desc = meta(`meta[name="description"]`)
	}
	return &VideoInfo{
		Title:           title,
		Description:     desc,
		DurationSeconds: parseISODuration(meta(`meta[itemprop="duration"]`)),
	}, nil
}

var isoDurationRE = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration converts "PT1H2M3S" into seconds; 0 when unparseable.
func parseISODuration(s string) int {
	m := isoDurationRE.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	var total int
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, _ := strconv.Atoi(m[i+1])
		total += n * mult
	}
	return total
}
