package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string         `env:"PORT" envDefault:"8080"`
	GinMode  string         `env:"GIN_MODE" envDefault:"debug"`
	Database DatabaseConfig
	Auth     AuthConfig
	SeedFile string `env:"SEED_FILE"`
}

type DatabaseConfig struct {
	URL       string `env:"DATABASE_URL"`
	LedgerURL string `env:"LEDGER_DATABASE_URL"`
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"change-me"`
	AuthTokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"720h"`
}

func Load() (*Config, error) {
	// A missing .env file is fine, the environment may already be populated.
	_ = godotenv.Load()

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Auth.AuthTokenTTL <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}

	return cfg, nil
}
