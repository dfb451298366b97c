package content

import (
	"fmt"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// StagePrompts are the rendered instruction and expected output of each stage.
type StagePrompts struct {
	Analyze, AnalyzeExpected   string
	Create, CreateExpected     string
	Optimize, OptimizeExpected string
}

// BuildPrompts renders the three stage instructions for rec and cfg.
// It performs no I/O. rec must be a successful extraction.
func BuildPrompts(rec engine.VideoRecord, cfg PipelineConfig) StagePrompts {
	title := rec.Title
	if title == "" {
		title = engine.DefaultTitle
	}
	desc := engine.TruncateRunes(rec.Description, engine.DescriptionMaxRunes, "")
	if desc == "" {
		desc = engine.NoDescriptionText
	}
	transcript := rec.Transcript
	if transcript == "" {
		transcript = engine.NoTranscriptSentinel
	}
	p, ct := cfg.Platform, cfg.ContentType

	return StagePrompts{
		Analyze:          fmt.Sprintf(analyzeInstruction, title, rec.DurationSeconds, desc, transcript, p),
		AnalyzeExpected:  analyzeExpected,
		Create:           fmt.Sprintf(createInstruction, p, ct, transcript, desc),
		CreateExpected:   fmt.Sprintf(createExpected, ct),
		Optimize:         fmt.Sprintf(optimizeInstruction, p, ct, p, transcript, desc),
		OptimizeExpected: fmt.Sprintf(optimizeExpected, p, ct),
	}
}
