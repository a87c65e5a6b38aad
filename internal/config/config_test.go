package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_CONNS", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("Port=%d, want 8080", cfg.Port)
	}
	if cfg.MaxConns != 256 {
		t.Fatalf("MaxConns=%d, want 256", cfg.MaxConns)
	}
	if cfg.AITimeoutSeconds != 30 {
		t.Fatalf("AITimeoutSeconds=%d, want 30", cfg.AITimeoutSeconds)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("OpenAIModel=%q, want gpt-4o-mini", cfg.OpenAIModel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_CONNS", "32")
	t.Setenv("AI_TIMEOUT_SECONDS", "10")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg := Load()
	if cfg.Port != 9090 || cfg.MaxConns != 32 || cfg.AITimeoutSeconds != 10 {
		t.Fatalf("cfg=%+v, want values from env", cfg)
	}
	if cfg.OpenAIModel != "gpt-4o" || cfg.OpenAIKey != "sk-test" {
		t.Fatalf("cfg=%+v, want model and key from env", cfg)
	}
	if cfg.OpenAIBaseURL != "http://localhost:11434/v1" {
		t.Fatalf("OpenAIBaseURL=%q, want env value", cfg.OpenAIBaseURL)
	}
}

func TestLoadRejectsNonPositive(t *testing.T) {
	t.Setenv("PORT", "-1")
	t.Setenv("MAX_CONNS", "0")
	t.Setenv("AI_TIMEOUT_SECONDS", "junk")

	cfg := Load()
	if cfg.Port != 8080 || cfg.MaxConns != 256 || cfg.AITimeoutSeconds != 30 {
		t.Fatalf("cfg=%+v, want defaults for bad values", cfg)
	}
}
