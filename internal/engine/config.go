package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMMaxRPM          int           // stage calls per minute across all requests (0 = unlimited)
	StageTimeout       time.Duration // bound for a single generation stage
	CaptionTimeout     time.Duration // bound for the caption-track fetch
	CaptionLanguage    string        // caption track language key, "en"
	LogDir             string        // empty = console only
	LogLevel           string
	HTTPClient         *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (content, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// ConfigFromEnv reads the engine configuration from the environment.
// Shared by the MCP server and the CLI so both run with the same defaults.
func ConfigFromEnv() Config {
	return Config{
		LLMAPIKey:          env.Str("LLM_API_KEY", env.Str("OPENAI_API_KEY", "")),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://api.openai.com/v1"),
		LLMModel:           env.Str("LLM_MODEL", "gpt-4-0125-preview"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 4096),
		LLMMaxRPM:          env.Int("LLM_MAX_RPM", 100),
		StageTimeout:       env.Duration("STAGE_TIMEOUT", 120*time.Second),
		CaptionTimeout:     env.Duration("CAPTION_TIMEOUT", 15*time.Second),
		CaptionLanguage:    env.Str("CAPTION_LANGUAGE", "en"),
		LogDir:             env.Str("LOG_DIR", "logs"),
		LogLevel:           env.Str("LOG_LEVEL", "info"),
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}
