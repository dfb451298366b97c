// go_repurpose: YouTube to Instagram/Medium content MCP server.
//
// Exposes three MCP tools: generate_content, video_analyze, content_types.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/contentserver"
	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
)

var version = "dev"

func main() {
	_ = godotenv.Load() // .env is optional

	c := engine.ConfigFromEnv()
	log := engine.NewLogger(engine.LogConfig{Dir: c.LogDir, Level: c.LogLevel})
	slog.SetDefault(log)
	engine.Init(c)

	mcpPort := env.Str("MCP_PORT", "8893")
	if c.LLMAPIKey == "" {
		slog.Warn("no LLM_API_KEY set, generate_content needs api_key per request")
	}
	slog.Info("starting go_repurpose",
		slog.String("port", mcpPort),
		slog.String("model", c.LLMModel),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_repurpose",
		Version: version,
	}, nil)

	contentserver.RegisterTools(server, content.NewServiceFromConfig(c, log))
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_repurpose",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 3*c.StageTimeout + time.Minute,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}
