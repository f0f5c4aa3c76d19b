package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.STTProvider != "whisper" || cfg.LLMProvider != "openai" {
		t.Errorf("providers = %q/%q, want whisper/openai", cfg.STTProvider, cfg.LLMProvider)
	}
	if cfg.TranscribeTimeout != 120*time.Second {
		t.Errorf("transcribe timeout = %v, want 120s", cfg.TranscribeTimeout)
	}
	if cfg.MaxUploadBytes != 25<<20 {
		t.Errorf("max upload = %d, want 25 MB", cfg.MaxUploadBytes)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("STT_PROVIDER", "psychic")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown STT provider")
	}
}

func TestLoadRequiresKeyForWhisper(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}
}

func TestKeyPrefixNeverLeaksFullKey(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-verysecretkeymaterial"}
	p := cfg.KeyPrefix()
	if strings.Contains(p, "verysecret") {
		t.Errorf("KeyPrefix leaked key material: %q", p)
	}
	if p != "sk-ver..." {
		t.Errorf("KeyPrefix = %q", p)
	}

	empty := &Config{}
	if empty.KeyPrefix() != "unset" {
		t.Errorf("empty KeyPrefix = %q, want unset", empty.KeyPrefix())
	}
}
