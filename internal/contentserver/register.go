package contentserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

// Generator is the part of content.Service the tools use.
type Generator interface {
	Generate(ctx context.Context, req content.Request) (string, error)
	Analyze(ctx context.Context, rawURL string) engine.VideoRecord
}

// RegisterTools registers the content tools on the given MCP server:
// generate_content, video_analyze, content_types.
func RegisterTools(server *mcp.Server, svc Generator) {
	registerGenerateContent(server, svc)
	registerVideoAnalyze(server, svc)
	registerContentTypes(server)
}
