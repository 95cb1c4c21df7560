package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the admin gateway reads from the environment.
// cmd/api loads a local .env first via godotenv's autoload import.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Backend is the business-management REST API this gateway fronts.
	BackendBaseURL  string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8081"`
	BackendTimeout  time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
	BackendLogBody  bool          `env:"BACKEND_LOG_BODY" envDefault:"false"`
	EditorIdleTTL   time.Duration `env:"EDITOR_IDLE_TTL" envDefault:"30m"`
	EditorSweepTick time.Duration `env:"EDITOR_SWEEP_TICK" envDefault:"5m"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.BackendBaseURL == "" {
		return Config{}, fmt.Errorf("BACKEND_BASE_URL must not be empty")
	}
	return cfg, nil
}
