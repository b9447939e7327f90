package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"COACH_LLM_PROVIDER",
		"COACH_ANTHROPIC_API_KEY", "COACH_ANTHROPIC_MODEL",
		"COACH_OPENAI_API_KEY", "COACH_OPENAI_MODEL", "COACH_OPENAI_BASE_URL",
		"COACH_GEMINI_API_KEY", "COACH_GEMINI_MODEL",
		"COACH_OPENROUTER_API_KEY", "COACH_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash-lite" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("Retry.MaxAttempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("COACH_LLM_PROVIDER", "openai")
	t.Setenv("COACH_OPENAI_API_KEY", "sk-test")
	t.Setenv("COACH_OPENAI_MODEL", "gpt-test")
	t.Setenv("COACH_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-test" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig: not found")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gm-key" {
		t.Errorf("got provider %q key %q, want gemini/gm-key", cfg.Provider, cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig: found a provider with no keys set")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate: no error with empty gemini key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(mock): %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate: no error for unknown provider")
	}
}
