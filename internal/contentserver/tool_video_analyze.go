package contentserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

func registerVideoAnalyze(server *mcp.Server, svc Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_analyze",
		Description: "Extract a YouTube video's title, description (max 500 chars), duration and plain-text transcript. Falls back to the description, then to a placeholder, when no English captions exist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.VideoAnalyzeInput) (*mcp.CallToolResult, engine.VideoRecord, error) {
		if err := toolutil.RequireYouTubeURL(input.URL); err != nil {
			return nil, engine.VideoRecord{}, err
		}
		rec := svc.Analyze(ctx, input.URL)
		if rec.Failed() {
			return nil, engine.VideoRecord{}, errors.Join(engine.ErrExtraction, errors.New(rec.Error))
		}
		return nil, rec, nil
	})
}
