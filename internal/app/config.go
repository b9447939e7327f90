package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/store"
)

// Config collects everything needed to assemble a coaching session.
type Config struct {
	// DataDir is the store root. Empty means store.DefaultDataDir.
	DataDir string
	// UserID namespaces projects. Defaults to COACH_USER, then "default".
	UserID string
	// Project selects the active project within the user's namespace.
	// Defaults to COACH_PROJECT, then "default".
	Project string
	// PassThreshold overrides the milestone pass score. Zero means the
	// engine default.
	PassThreshold float64

	LLM llm.Config
}

// ConfigFromEnv builds a Config from COACH_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		DataDir: os.Getenv("COACH_DATA"),
		UserID:  envOr("COACH_USER", "default"),
		Project: envOr("COACH_PROJECT", "default"),
		LLM:     llm.ConfigFromEnv(),
	}
	if v := os.Getenv("COACH_PASS_THRESHOLD"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t <= 0 || t > 1 {
			return Config{}, fmt.Errorf("COACH_PASS_THRESHOLD must be a number in (0, 1], got %q", v)
		}
		cfg.PassThreshold = t
	}
	return cfg, nil
}

// EngineConfig maps the app config onto the progression engine's tuning.
func (c Config) EngineConfig() progress.Config {
	ec := progress.DefaultConfig()
	if c.PassThreshold > 0 {
		ec.PassThreshold = c.PassThreshold
	}
	return ec
}

// ResolveDataDir returns the effective data directory.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return store.DefaultDataDir()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
