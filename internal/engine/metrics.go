package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	VideoAnalyzeRequests atomic.Int64
	MetadataErrors       atomic.Int64
	CaptionFetches       atomic.Int64
	CaptionErrors        atomic.Int64
	TranscriptFallbacks  atomic.Int64
	LLMCalls             atomic.Int64
	LLMErrors            atomic.Int64
	PipelineRuns         atomic.Int64
	PipelineFailures     atomic.Int64
}

var metricKeys = []string{
	"video_analyze_requests", "metadata_errors",
	"caption_fetches", "caption_errors", "transcript_fallbacks",
	"llm_calls", "llm_errors",
	"pipeline_runs", "pipeline_failures",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"video_analyze_requests": metrics.VideoAnalyzeRequests.Load(),
		"metadata_errors":        metrics.MetadataErrors.Load(),
		"caption_fetches":        metrics.CaptionFetches.Load(),
		"caption_errors":         metrics.CaptionErrors.Load(),
		"transcript_fallbacks":   metrics.TranscriptFallbacks.Load(),
		"llm_calls":              metrics.LLMCalls.Load(),
		"llm_errors":             metrics.LLMErrors.Load(),
		"pipeline_runs":          metrics.PipelineRuns.Load(),
		"pipeline_failures":      metrics.PipelineFailures.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrVideoAnalyze()       { metrics.VideoAnalyzeRequests.Add(1) }
func IncrMetadataErrors()     { metrics.MetadataErrors.Add(1) }
func IncrCaptionFetches()     { metrics.CaptionFetches.Add(1) }
func IncrCaptionErrors()      { metrics.CaptionErrors.Add(1) }
func IncrTranscriptFallback() { metrics.TranscriptFallbacks.Add(1) }

// Incrementors for content/ sub-package.
func IncrPipelineRuns()     { metrics.PipelineRuns.Add(1) }
func IncrPipelineFailures() { metrics.PipelineFailures.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, log *slog.Logger, name string, threshold time.Duration, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > threshold {
		log.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
