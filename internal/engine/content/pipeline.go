package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Stage names, in execution order.
const (
	StageAnalyze  = "analyze"
	StageCreate   = "create"
	StageOptimize = "optimize"
)

// errEmptyResult marks a stage that returned only whitespace.
var errEmptyResult = errors.New("empty result")

// Pipeline runs Analyze → Create → Optimize against one backend.
type Pipeline struct {
	backend      engine.Backend
	roles        Roles
	stageTimeout time.Duration
	log          *slog.Logger
}

// NewPipeline creates a Pipeline. stageTimeout <= 0 means stages are bounded
// only by ctx.
func NewPipeline(backend engine.Backend, roles Roles, stageTimeout time.Duration, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{backend: backend, roles: roles, stageTimeout: stageTimeout, log: log}
}

// Run executes the stages strictly in order, each receiving the previous
// stage's output as context. The first failing or empty stage aborts the run
// with a *engine.StageError and no partial output. The returned text is the
// Optimize stage's output as produced.
func (p *Pipeline) Run(ctx context.Context, rec engine.VideoRecord, cfg PipelineConfig) (string, error) {
	if rec.Failed() {
		return "", fmt.Errorf("%w: %s", engine.ErrExtraction, rec.Error)
	}
	engine.IncrPipelineRuns()
	log := p.log.With(slog.String("run", uuid.NewString()), slog.String("video", rec.VideoID))

	prompts := BuildPrompts(rec, cfg)
	stages := []struct {
		name     string
		role     engine.Role
		instr    string
		expected string
	}{
		{StageAnalyze, p.roles.Analyst, prompts.Analyze, prompts.AnalyzeExpected},
		{StageCreate, p.roles.Writer, prompts.Create, prompts.CreateExpected},
		{StageOptimize, p.roles.Specialist, prompts.Optimize, prompts.OptimizeExpected},
	}

	var out string
	var stageCtx []string
	for _, st := range stages {
		req := engine.StageRequest{
			Stage:          st.name,
			Role:           st.role,
			Instruction:    st.instr,
			ExpectedOutput: st.expected,
			Context:        stageCtx,
		}
		log.Info("pipeline: stage start", slog.String("stage", st.name), slog.String("role", st.role.Name))

		var res string
		err := engine.TrackOperation(ctx, log, "stage:"+st.name, p.slowThreshold(), func(ctx context.Context) error {
			var err error
			res, err = p.invoke(ctx, req)
			return err
		})
		if err == nil && strings.TrimSpace(res) == "" {
			err = errEmptyResult
		}
		if err != nil {
			engine.IncrPipelineFailures()
			log.Error("pipeline: stage failed", slog.String("stage", st.name), slog.Any("err", err))
			return "", &engine.StageError{Stage: st.name, Err: err}
		}

		out = res
		stageCtx = []string{res}
	}
	log.Info("pipeline: done", slog.Int("chars", len(out)))
	return out, nil
}

func (p *Pipeline) invoke(ctx context.Context, req engine.StageRequest) (string, error) {
	if p.stageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.stageTimeout)
		defer cancel()
	}
	return p.backend.Invoke(ctx, req)
}

func (p *Pipeline) slowThreshold() time.Duration {
	if p.stageTimeout > 0 {
		return p.stageTimeout / 2
	}
	return time.Minute
}
