package sources

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

type fakeSource struct {
	info   *VideoInfo
	err    error
	panics bool
	calls  int
	gotID  string
}

func (f *fakeSource) FetchInfo(_ context.Context, videoID string) (*VideoInfo, error) {
	f.calls++
	f.gotID = videoID
	if f.panics {
		panic("unexpected response shape")
	}
	return f.info, f.err
}

func newTestExtractor(src MetadataSource, client *http.Client) *Extractor {
	return NewExtractor(client, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithMetadataSource(src), WithCaptionTimeout(2*time.Second))
}

func captionServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manual":
			w.Write([]byte("WEBVTT\nKind: captions\nLanguage: en\n\n1\n00:00:00.000 --> 00:00:02.000\nmanual line one\n\n2\n00:00:02.000 --> 00:00:04.000\nmanual line two\n"))
		case "/auto":
			w.Write([]byte("WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nauto words\n"))
		case "/hang":
			<-r.Context().Done()
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyzeVideoNoCaptionsUsesDescription(t *testing.T) {
	src := &fakeSource{info: &VideoInfo{Title: "Test", Description: "A short description", DurationSeconds: 120}}
	rec := newTestExtractor(src, nil).AnalyzeVideo(context.Background(), "https://www.youtube.com/watch?v=ABC123")

	if rec.Failed() {
		t.Fatalf("unexpected error: %s", rec.Error)
	}
	if src.gotID != "ABC123" {
		t.Errorf("source got id %q", src.gotID)
	}
	want := engine.VideoRecord{
		VideoID:         "ABC123",
		SourceURL:       "https://www.youtube.com/watch?v=ABC123",
		Title:           "Test",
		Description:     "A short description",
		DurationSeconds: 120,
		Transcript:      "A short description",
	}
	if rec != want {
		t.Errorf("record = %+v\nwant %+v", rec, want)
	}
}

func TestAnalyzeVideoCaptions(t *testing.T) {
	srv := captionServer(t)
	tests := []struct {
		name string
		info *VideoInfo
		want string
	}{
		{
			name: "manual track preferred",
			info: &VideoInfo{
				Title:             "T",
				Subtitles:         map[string][]CaptionTrack{"en": {{URL: srv.URL + "/manual"}}},
				AutomaticCaptions: map[string][]CaptionTrack{"en": {{URL: srv.URL + "/auto"}}},
			},
			want: "manual line one\nmanual line two",
		},
		{
			name: "auto track when no manual",
			info: &VideoInfo{
				Title:             "T",
				AutomaticCaptions: map[string][]CaptionTrack{"en": {{URL: srv.URL + "/auto"}}},
			},
			want: "auto words",
		},
		{
			name: "failed fetch falls back to description",
			info: &VideoInfo{
				Title:       "T",
				Description: "fallback text",
				Subtitles:   map[string][]CaptionTrack{"en": {{URL: srv.URL + "/gone"}}},
			},
			want: "fallback text",
		},
		{
			name: "other language only falls back to sentinel",
			info: &VideoInfo{
				Title:     "T",
				Subtitles: map[string][]CaptionTrack{"de": {{URL: srv.URL + "/manual"}}},
			},
			want: engine.NoTranscriptSentinel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestExtractor(&fakeSource{info: tt.info}, srv.Client()).
				AnalyzeVideo(context.Background(), "https://youtu.be/ABC123")
			if rec.Failed() {
				t.Fatalf("unexpected error: %s", rec.Error)
			}
			if rec.Transcript != tt.want {
				t.Errorf("Transcript = %q, want %q", rec.Transcript, tt.want)
			}
		})
	}
}

func TestAnalyzeVideoCaptionTimeoutFallsBack(t *testing.T) {
	srv := captionServer(t)
	src := &fakeSource{info: &VideoInfo{
		Title:       "T",
		Description: "described instead",
		Subtitles:   map[string][]CaptionTrack{"en": {{URL: srv.URL + "/hang"}}},
	}}
	ex := NewExtractor(srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithMetadataSource(src), WithCaptionTimeout(50*time.Millisecond))

	start := time.Now()
	rec := ex.AnalyzeVideo(context.Background(), "https://youtu.be/ABC123")
	if rec.Failed() {
		t.Fatalf("unexpected error: %s", rec.Error)
	}
	if rec.Transcript != "described instead" {
		t.Errorf("Transcript = %q, want description", rec.Transcript)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("caption fetch not bounded: took %v", elapsed)
	}
}

func TestAnalyzeVideoIndependentCaps(t *testing.T) {
	long := strings.Repeat("é", 1200)
	src := &fakeSource{info: &VideoInfo{Title: "T", Description: long}}
	rec := newTestExtractor(src, nil).AnalyzeVideo(context.Background(), "https://www.youtube.com/embed/ABC123")

	if n := len([]rune(rec.Description)); n != engine.DescriptionMaxRunes {
		t.Errorf("description runes = %d, want %d", n, engine.DescriptionMaxRunes)
	}
	if n := len([]rune(rec.Transcript)); n != engine.TranscriptFallbackMaxRunes {
		t.Errorf("transcript runes = %d, want %d", n, engine.TranscriptFallbackMaxRunes)
	}
}

func TestAnalyzeVideoPlaceholders(t *testing.T) {
	src := &fakeSource{info: &VideoInfo{DurationSeconds: -5}}
	rec := newTestExtractor(src, nil).AnalyzeVideo(context.Background(), "https://youtu.be/ABC123")

	if rec.Title != engine.DefaultTitle {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Description != "" {
		t.Errorf("Description = %q, want empty", rec.Description)
	}
	if rec.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0", rec.DurationSeconds)
	}
	if rec.Transcript != engine.NoTranscriptSentinel {
		t.Errorf("Transcript = %q", rec.Transcript)
	}
}

func TestAnalyzeVideoErrors(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		src       *fakeSource
		wantErr   string
		wantCalls int
	}{
		{
			name:      "no video id",
			url:       "not-a-url",
			src:       &fakeSource{info: &VideoInfo{Title: "never"}},
			wantErr:   "could not extract video ID from URL",
			wantCalls: 0,
		},
		{
			name:      "source error",
			url:       "https://youtu.be/ABC123",
			src:       &fakeSource{err: errors.New("HTTP 403")},
			wantErr:   "could not extract video information: HTTP 403",
			wantCalls: 1,
		},
		{
			name:      "nil info",
			url:       "https://youtu.be/ABC123",
			src:       &fakeSource{},
			wantErr:   "could not extract video information",
			wantCalls: 1,
		},
		{
			name:      "source panics",
			url:       "https://youtu.be/ABC123",
			src:       &fakeSource{panics: true},
			wantErr:   "error analyzing video: unexpected response shape",
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestExtractor(tt.src, nil).AnalyzeVideo(context.Background(), tt.url)
			if rec.Error != tt.wantErr {
				t.Errorf("Error = %q, want %q", rec.Error, tt.wantErr)
			}
			if rec.Transcript != "" || rec.VideoID != "" {
				t.Errorf("error record should carry no data: %+v", rec)
			}
			if rec.SourceURL != tt.url {
				t.Errorf("SourceURL = %q", rec.SourceURL)
			}
			if tt.src.calls != tt.wantCalls {
				t.Errorf("source calls = %d, want %d", tt.src.calls, tt.wantCalls)
			}
		})
	}
}

func TestFallbackTranscript(t *testing.T) {
	if got := FallbackTranscript(""); got != engine.NoTranscriptSentinel {
		t.Errorf("empty description: %q", got)
	}
	if got := FallbackTranscript("short"); got != "short" {
		t.Errorf("short description: %q", got)
	}
}
