package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Extractor turns a video URL into an engine.VideoRecord.
type Extractor struct {
	source         MetadataSource
	client         *http.Client
	log            *slog.Logger
	captionLang    string
	captionTimeout time.Duration
}

// ExtractorOption customizes an Extractor.
type ExtractorOption func(*Extractor)

// WithMetadataSource replaces the default Innertube metadata source.
func WithMetadataSource(s MetadataSource) ExtractorOption {
	return func(e *Extractor) { e.source = s }
}

// WithCaptionLanguage sets the caption track language key (default "en").
func WithCaptionLanguage(lang string) ExtractorOption {
	return func(e *Extractor) {
		if lang != "" {
			e.captionLang = lang
		}
	}
}

// WithCaptionTimeout bounds the caption-track fetch (default 15s).
func WithCaptionTimeout(d time.Duration) ExtractorOption {
	return func(e *Extractor) {
		if d > 0 {
			e.captionTimeout = d
		}
	}
}

// NewExtractor creates an Extractor. client is used for caption fetches and,
// unless replaced, for the Innertube metadata source.
func NewExtractor(client *http.Client, log *slog.Logger, opts ...ExtractorOption) *Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	e := &Extractor{
		client:         client,
		log:            log,
		captionLang:    "en",
		captionTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewInnertubeSource(client, log)
	}
	return e
}

// AnalyzeVideo extracts metadata and a transcript for rawURL.
// It never panics or returns an error: failures come back as a record with
// Error set. On success Transcript is never empty.
func (e *Extractor) AnalyzeVideo(ctx context.Context, rawURL string) (rec engine.VideoRecord) {
	engine.IncrVideoAnalyze()
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("youtube: analyze panicked", slog.String("url", rawURL), slog.Any("panic", r))
			rec = errorRecord(rawURL, fmt.Sprintf("error analyzing video: %v", r))
		}
	}()

	videoID, ok := ExtractVideoID(rawURL)
	if !ok {
		e.log.Error("youtube: could not extract video ID", slog.String("url", rawURL))
		return errorRecord(rawURL, "could not extract video ID from URL")
	}

	info, err := e.source.FetchInfo(ctx, videoID)
	if err != nil || info == nil {
		engine.IncrMetadataErrors()
		e.log.Error("youtube: could not extract video information",
			slog.String("id", videoID), slog.Any("err", err))
		msg := "could not extract video information"
		if err != nil {
			msg += ": " + err.Error()
		}
		return errorRecord(rawURL, msg)
	}

	title := info.Title
	if title == "" {
		title = engine.DefaultTitle
	}

	rec = engine.VideoRecord{
		VideoID:         videoID,
		SourceURL:       rawURL,
		Title:           title,
		Description:     engine.TruncateRunes(info.Description, engine.DescriptionMaxRunes, ""),
		DurationSeconds: max(info.DurationSeconds, 0),
		Transcript:      e.resolveTranscript(ctx, videoID, info),
	}
	e.log.Info("youtube: extracted video info",
		slog.String("id", videoID),
		slog.String("title", title),
		slog.Int("transcript_chars", len(rec.Transcript)))
	return rec
}

// resolveTranscript walks the fallback chain:
// caption text → first 1000 runes of description → sentinel.
func (e *Extractor) resolveTranscript(ctx context.Context, videoID string, info *VideoInfo) string {
	if trackURL := pickCaptionURL(info, e.captionLang); trackURL != "" {
		fetchCtx, cancel := context.WithTimeout(ctx, e.captionTimeout)
		text, err := fetchCaptionText(fetchCtx, e.client, trackURL)
		cancel()
		if err == nil {
			return text
		}
		engine.IncrCaptionErrors()
		e.log.Warn("youtube: transcript extraction failed, using description",
			slog.String("id", videoID), slog.Any("err", err))
	}

	engine.IncrTranscriptFallback()
	return FallbackTranscript(info.Description)
}

// FallbackTranscript is the transcript used when no caption text is available.
func FallbackTranscript(description string) string {
	if description == "" {
		return engine.NoTranscriptSentinel
	}
	return engine.TruncateRunes(description, engine.TranscriptFallbackMaxRunes, "")
}

func errorRecord(rawURL, msg string) engine.VideoRecord {
	return engine.VideoRecord{SourceURL: rawURL, Error: msg}
}
