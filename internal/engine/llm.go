package engine

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// Role is the static framing of one pipeline worker.
type Role struct {
	Name      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// StageRequest is everything a backend sees for one generation stage.
// Context holds prior stage outputs in pipeline order.
type StageRequest struct {
	Stage          string
	Role           Role
	Instruction    string
	ExpectedOutput string
	Context        []string
}

// Backend executes one stage and returns its text.
type Backend interface {
	Invoke(ctx context.Context, req StageRequest) (string, error)
}

// LLMBackends builds per-credential backends that share one rate limiter.
type LLMBackends struct {
	cfg     Config
	limiter *rate.Limiter
}

// NewLLMBackends creates a backend factory from the engine configuration.
func NewLLMBackends(c Config) *LLMBackends {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if c.LLMMaxRPM > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.LLMMaxRPM)), 1)
	}
	return &LLMBackends{cfg: c, limiter: limiter}
}

// ForKey returns a backend authenticated with apiKey.
// The key is passed through to the provider unvalidated.
func (f *LLMBackends) ForKey(apiKey string) Backend {
	c := f.cfg
	s := f.settingsFor(apiKey)
	client := llm.NewClient(c.LLMAPIBase, apiKey, c.LLMModel,
		llm.WithFallbackKeys(s.fallbackKeys),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: s.httpTimeout}),
	)
	return &LLMBackend{client: client, limiter: f.limiter}
}

type clientSettings struct {
	fallbackKeys []string
	httpTimeout  time.Duration // 0 = bounded by the stage context only
}

// settingsFor attaches fallback keys only to the server's own key.
func (f *LLMBackends) settingsFor(apiKey string) clientSettings {
	var s clientSettings
	if apiKey != "" && apiKey == f.cfg.LLMAPIKey {
		s.fallbackKeys = f.cfg.LLMAPIKeyFallbacks
	}
	if f.cfg.StageTimeout > 0 {
		s.httpTimeout = f.cfg.StageTimeout + 5*time.Second
	}
	return s
}

// LLMBackend runs stages against an OpenAI-compatible chat completion API.
type LLMBackend struct {
	client  *llm.Client
	limiter *rate.Limiter
}

// Invoke sends the role framing as the system prompt and the instruction,
// expected output and context as the user prompt. The reply is returned as is.
func (b *LLMBackend) Invoke(ctx context.Context, req StageRequest) (string, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	metrics.LLMCalls.Add(1)
	resp, err := b.client.Complete(ctx, SystemPrompt(req.Role), StagePrompt(req))
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return resp, nil
}

// SystemPrompt renders the role framing.
func SystemPrompt(r Role) string {
	return fmt.Sprintf(roleSystemPrompt, r.Name, r.Backstory, r.Goal)
}

// StagePrompt renders the user prompt for a stage.
func StagePrompt(req StageRequest) string {
	var sb strings.Builder
	sb.WriteString(req.Instruction)
	if req.ExpectedOutput != "" {
		fmt.Fprintf(&sb, expectedOutputSection, req.ExpectedOutput)
	}
	if len(req.Context) > 0 {
		sb.WriteString(contextSection)
		for i, c := range req.Context {
			if i > 0 {
				sb.WriteString("\n\n---\n\n")
			}
			sb.WriteString(c)
		}
	}
	return sb.String()
}
