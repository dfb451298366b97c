package contentserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

func registerGenerateContent(server *mcp.Server, svc Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_content",
		Description: "Turn a YouTube video into Instagram (Post, Story, Carousel) or Medium (Article, Story, Tutorial) content. Extracts title, description and transcript, then runs analyze, create and optimize stages. Returns the final markdown and a suggested file name.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GenerateContentInput) (*mcp.CallToolResult, engine.GenerateContentOutput, error) {
		return generateContent(ctx, svc, input, time.Now())
	})
}

func generateContent(ctx context.Context, svc Generator, input engine.GenerateContentInput, now time.Time) (*mcp.CallToolResult, engine.GenerateContentOutput, error) {
	if err := toolutil.RequireYouTubeURL(input.URL); err != nil {
		return nil, engine.GenerateContentOutput{}, err
	}
	cfg, err := content.NewPipelineConfig(input.Platform, input.ContentType)
	if err != nil {
		return nil, engine.GenerateContentOutput{}, err
	}

	text, err := svc.Generate(ctx, content.Request{
		VideoURL:      input.URL,
		Platform:      cfg.Platform,
		ContentType:   cfg.ContentType,
		APICredential: toolutil.APIKey(input.APIKey, engine.Cfg.LLMAPIKey),
	})
	if err != nil {
		slog.Warn("generate_content: failed", slog.String("url", input.URL), slog.Any("error", err))
		return nil, engine.GenerateContentOutput{}, err
	}

	return nil, engine.GenerateContentOutput{
		VideoURL:    input.URL,
		Platform:    cfg.Platform,
		ContentType: cfg.ContentType,
		Filename:    toolutil.ArtifactFilename(cfg.Platform, cfg.ContentType, now),
		Content:     text,
	}, nil
}
