package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
)

var validate = validator.New()

// Request is one content generation request.
type Request struct {
	VideoURL      string `validate:"required"`
	Platform      string `validate:"required"`
	ContentType   string `validate:"required"`
	APICredential string `validate:"required"`
}

// Analyzer produces a VideoRecord for a URL. Failures are reported in the
// record, never as a panic.
type Analyzer interface {
	AnalyzeVideo(ctx context.Context, rawURL string) engine.VideoRecord
}

// BackendFunc returns a backend authenticated with apiKey.
type BackendFunc func(apiKey string) engine.Backend

// Service is the inbound contract: URL, platform, content type and
// credential in; final content or a categorized error out.
type Service struct {
	analyzer     Analyzer
	backends     BackendFunc
	roles        Roles
	stageTimeout time.Duration
	log          *slog.Logger
}

// NewService wires a Service from its collaborators.
func NewService(analyzer Analyzer, backends BackendFunc, roles Roles, stageTimeout time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		analyzer:     analyzer,
		backends:     backends,
		roles:        roles,
		stageTimeout: stageTimeout,
		log:          log,
	}
}

// NewServiceFromConfig builds a Service backed by the YouTube extractor and
// the LLM chat completion backend.
func NewServiceFromConfig(c engine.Config, log *slog.Logger) *Service {
	extractor := sources.NewExtractor(c.HTTPClient, log,
		sources.WithCaptionLanguage(c.CaptionLanguage),
		sources.WithCaptionTimeout(c.CaptionTimeout),
	)
	backends := engine.NewLLMBackends(c)
	return NewService(extractor, backends.ForKey, DefaultRoles(), c.StageTimeout, log)
}

// Generate validates req, extracts the video and runs the pipeline.
// Configuration problems are reported before any network call.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	cfg, err := s.validate(req)
	if err != nil {
		return "", err
	}

	rec := s.analyzer.AnalyzeVideo(ctx, req.VideoURL)
	if rec.Failed() {
		s.log.Warn("generate: extraction failed", slog.String("url", req.VideoURL), slog.String("err", rec.Error))
		return "", fmt.Errorf("%w: %s", engine.ErrExtraction, rec.Error)
	}

	s.log.Info("generate: running pipeline",
		slog.String("video", rec.VideoID),
		slog.String("platform", cfg.Platform),
		slog.String("content_type", cfg.ContentType))
	p := NewPipeline(s.backends(req.APICredential), s.roles, s.stageTimeout, s.log)
	return p.Run(ctx, rec, cfg)
}

// Analyze runs extraction alone.
func (s *Service) Analyze(ctx context.Context, rawURL string) engine.VideoRecord {
	return s.analyzer.AnalyzeVideo(ctx, rawURL)
}

func (s *Service) validate(req Request) (PipelineConfig, error) {
	req.VideoURL = strings.TrimSpace(req.VideoURL)
	req.APICredential = strings.TrimSpace(req.APICredential)
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return PipelineConfig{}, engine.ConfigError("%s is required", fieldLabel(verrs[0].Field()))
		}
		return PipelineConfig{}, engine.ConfigError("%v", err)
	}
	if s.backends == nil {
		return PipelineConfig{}, engine.ConfigError("no generation backend configured")
	}
	return NewPipelineConfig(req.Platform, req.ContentType)
}

func fieldLabel(field string) string {
	switch field {
	case "VideoURL":
		return "video URL"
	case "ContentType":
		return "content type"
	case "APICredential":
		return "API credential"
	}
	return strings.ToLower(field)
}
