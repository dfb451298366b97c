package contentserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

type fakeGenerator struct {
	got  []content.Request
	text string
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, req content.Request) (string, error) {
	f.got = append(f.got, req)
	return f.text, f.err
}

func (f *fakeGenerator) Analyze(_ context.Context, rawURL string) engine.VideoRecord {
	return engine.VideoRecord{SourceURL: rawURL, VideoID: "ABC123", Title: "Test", Transcript: "t"}
}

func TestGenerateContent(t *testing.T) {
	engine.Init(engine.Config{LLMAPIKey: "server-key"})
	gen := &fakeGenerator{text: "FINAL"}
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	_, out, err := generateContent(context.Background(), gen, engine.GenerateContentInput{
		URL:         "https://youtu.be/ABC123",
		Platform:    "medium",
		ContentType: "article",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, engine.GenerateContentOutput{
		VideoURL:    "https://youtu.be/ABC123",
		Platform:    "Medium",
		ContentType: "Article",
		Filename:    "medium_article_20260304_050607.md",
		Content:     "FINAL",
	}, out)
	require.Len(t, gen.got, 1)
	assert.Equal(t, "server-key", gen.got[0].APICredential)

	_, _, err = generateContent(context.Background(), gen, engine.GenerateContentInput{
		URL: "https://youtu.be/ABC123", Platform: "Instagram", ContentType: "Post", APIKey: "user-key",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "user-key", gen.got[1].APICredential)
}

func TestGenerateContentRejectsBadInput(t *testing.T) {
	gen := &fakeGenerator{}
	tests := []engine.GenerateContentInput{
		{URL: "https://vimeo.com/1", Platform: "Instagram", ContentType: "Post"},
		{URL: "", Platform: "Instagram", ContentType: "Post"},
		{URL: "https://youtu.be/ABC123", Platform: "TikTok", ContentType: "Post"},
	}
	for _, in := range tests {
		_, _, err := generateContent(context.Background(), gen, in, time.Now())
		assert.ErrorIs(t, err, engine.ErrConfiguration, "input %+v", in)
	}
	assert.Empty(t, gen.got)
}

func TestGenerateContentPropagatesFailure(t *testing.T) {
	engine.Init(engine.Config{LLMAPIKey: "k"})
	gen := &fakeGenerator{err: &engine.StageError{Stage: "analyze", Err: errors.New("down")}}
	_, out, err := generateContent(context.Background(), gen, engine.GenerateContentInput{
		URL: "https://youtu.be/ABC123", Platform: "Instagram", ContentType: "Story",
	}, time.Now())
	assert.ErrorIs(t, err, engine.ErrStageExecution)
	assert.Empty(t, out.Content)
}

func TestListContentTypes(t *testing.T) {
	all, err := listContentTypes("")
	require.NoError(t, err)
	assert.Len(t, all.Platforms, 2)
	assert.Equal(t, []string{"Post", "Story", "Carousel"}, all.Platforms["Instagram"])

	one, err := listContentTypes("MEDIUM")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Medium": {"Article", "Story", "Tutorial"}}, one.Platforms)

	_, err = listContentTypes("TikTok")
	assert.ErrorIs(t, err, engine.ErrConfiguration)
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() { RegisterTools(server, &fakeGenerator{}) })
}
