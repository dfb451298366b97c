// repurpose runs one generation or extraction from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/toolutil"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	urlFlag := &cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "YouTube video URL", Required: true}
	return &cli.App{
		Name:    "repurpose",
		Usage:   "turn a YouTube video into Instagram or Medium content",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "run analyze, create and optimize and write the result as markdown",
				Flags: []cli.Flag{
					urlFlag,
					&cli.StringFlag{Name: "platform", Aliases: []string{"p"}, Usage: "Instagram or Medium", Value: content.Instagram},
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "content type (Post, Story, Carousel, Article, Tutorial)", Value: "Post"},
					&cli.StringFlag{Name: "api-key", Usage: "LLM API key (default: LLM_API_KEY)", EnvVars: []string{"LLM_API_KEY", "OPENAI_API_KEY"}},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory", Value: "."},
				},
				Action: generateAction,
			},
			{
				Name:   "analyze",
				Usage:  "print the extracted video record as JSON",
				Flags:  []cli.Flag{urlFlag},
				Action: analyzeAction,
			},
		},
	}
}

func setup() (engine.Config, *slog.Logger) {
	c := engine.ConfigFromEnv()
	log := engine.NewLogger(engine.LogConfig{Dir: c.LogDir, Level: c.LogLevel})
	slog.SetDefault(log)
	engine.Init(c)
	return c, log
}

func generateAction(cctx *cli.Context) error {
	c, log := setup()
	rawURL := cctx.String("url")
	if err := toolutil.RequireYouTubeURL(rawURL); err != nil {
		return err
	}
	cfg, err := content.NewPipelineConfig(cctx.String("platform"), cctx.String("type"))
	if err != nil {
		return err
	}

	svc := content.NewServiceFromConfig(c, log)
	text, err := svc.Generate(cctx.Context, content.Request{
		VideoURL:      rawURL,
		Platform:      cfg.Platform,
		ContentType:   cfg.ContentType,
		APICredential: toolutil.APIKey(cctx.String("api-key"), c.LLMAPIKey),
	})
	if err != nil {
		return err
	}

	name := toolutil.ArtifactFilename(cfg.Platform, cfg.ContentType, time.Now())
	path, err := toolutil.WriteArtifact(cctx.String("out"), name, text)
	if err != nil {
		return err
	}
	log.Info("content written", slog.String("path", path))
	fmt.Fprintln(cctx.App.Writer, path)
	return nil
}

func analyzeAction(cctx *cli.Context) error {
	c, log := setup()
	rawURL := cctx.String("url")
	if err := toolutil.RequireYouTubeURL(rawURL); err != nil {
		return err
	}
	rec := content.NewServiceFromConfig(c, log).Analyze(cctx.Context, rawURL)
	if rec.Failed() {
		return fmt.Errorf("%w: %s", engine.ErrExtraction, rec.Error)
	}
	enc := json.NewEncoder(cctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
