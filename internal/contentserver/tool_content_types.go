package contentserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

func registerContentTypes(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_types",
		Description: "List supported platforms and the content types each one offers.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.ContentTypesInput) (*mcp.CallToolResult, engine.ContentTypesOutput, error) {
		out, err := listContentTypes(input.Platform)
		return nil, out, err
	})
}

func listContentTypes(platform string) (engine.ContentTypesOutput, error) {
	out := engine.ContentTypesOutput{Platforms: map[string][]string{}}
	if platform == "" {
		for _, p := range content.Platforms() {
			out.Platforms[p] = content.ContentTypes(p)
		}
		return out, nil
	}
	p, err := content.CanonicalPlatform(platform)
	if err != nil {
		return engine.ContentTypesOutput{}, err
	}
	out.Platforms[p] = content.ContentTypes(p)
	return out, nil
}
