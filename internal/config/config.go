package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server and providers need. It is built once in
// main and handed to constructors; nothing in this repo reads env vars after
// startup.
type Config struct {
	Port     string
	LogLevel string

	// Provider selection: "whisper" or "google" for STT, "openai" or "vertex"
	// for analysis.
	STTProvider string
	LLMProvider string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	STTModel      string
	LLMModel      string

	VertexProjectID string
	VertexLocation  string
	VertexModel     string

	// Language hint forwarded to the transcription engine.
	Language string

	TranscribeTimeout time.Duration
	AnalyzeTimeout    time.Duration
	MaxUploadBytes    int64
	MaxOutputTokens   int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     envOr("PORT", "8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),

		STTProvider: envOr("STT_PROVIDER", "whisper"),
		LLMProvider: envOr("LLM_PROVIDER", "openai"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		STTModel:      envOr("STT_MODEL", "whisper-1"),
		LLMModel:      envOr("LLM_MODEL", "gpt-4o-mini"),

		VertexProjectID: os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation:  envOr("VERTEX_LOCATION", "us-central1"),
		VertexModel:     envOr("VERTEX_MODEL", "gemini-1.5-flash"),

		Language: envOr("LANGUAGE", "en"),

		TranscribeTimeout: time.Duration(envInt("TRANSCRIBE_TIMEOUT_SEC", 120)) * time.Second,
		AnalyzeTimeout:    time.Duration(envInt("ANALYZE_TIMEOUT_SEC", 90)) * time.Second,
		MaxUploadBytes:    int64(envInt("MAX_UPLOAD_MB", 25)) << 20,
		MaxOutputTokens:   envInt("MAX_OUTPUT_TOKENS", 1500),
	}

	switch cfg.STTProvider {
	case "whisper", "google":
	default:
		return nil, fmt.Errorf("config: unknown STT_PROVIDER %q", cfg.STTProvider)
	}
	switch cfg.LLMProvider {
	case "openai", "vertex":
	default:
		return nil, fmt.Errorf("config: unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	if (cfg.STTProvider == "whisper" || cfg.LLMProvider == "openai") && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("config: OPENAI_API_KEY is required")
	}
	if (cfg.STTProvider == "google" || cfg.LLMProvider == "vertex") && cfg.VertexProjectID == "" {
		return nil, fmt.Errorf("config: VERTEX_PROJECT_ID is required")
	}

	return cfg, nil
}

// KeyPrefix returns a short, safe-to-log prefix of the API key. The full key
// must never reach a log line.
func (c *Config) KeyPrefix() string {
	if len(c.OpenAIAPIKey) <= 6 {
		return "unset"
	}
	return c.OpenAIAPIKey[:6] + "..."
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
