package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Port != 8080 {
			t.Fatalf("expected default port, got %d", cfg.Port)
		}
		if cfg.BackendBaseURL != "http://localhost:8081" {
			t.Fatalf("unexpected backend url %q", cfg.BackendBaseURL)
		}
		if cfg.EditorIdleTTL != 30*time.Minute || cfg.EditorSweepTick != 5*time.Minute {
			t.Fatalf("unexpected editor timings %+v", cfg)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("BACKEND_BASE_URL", "http://backend:8000")
		t.Setenv("BACKEND_TIMEOUT", "3s")
		t.Setenv("EDITOR_IDLE_TTL", "1m")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Port != 9090 || cfg.BackendBaseURL != "http://backend:8000" {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		if cfg.BackendTimeout != 3*time.Second || cfg.EditorIdleTTL != time.Minute {
			t.Fatalf("duration overrides not applied: %+v", cfg)
		}
	})
}
