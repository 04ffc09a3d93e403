package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Host and APIKey are required: the service refuses to start without them,
// and both are read once here and never mutated afterwards.
type Config struct {
	Host      string        `envconfig:"HOST" required:"true"`
	APIKey    string        `envconfig:"API_KEY" required:"true"`
	Port      string        `envconfig:"PORT" default:"3000"`
	DBPath    string        `envconfig:"DB_PATH" default:"shortener.db"`
	RedisAddr string        `envconfig:"REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api key cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}
	return nil
}

// Load loads configuration from environment variables only.
// (Do .env loading in cmd/shortener-server/main.go for dev, not here.)
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Short URLs are composed as host + "/" + code; strip a trailing slash
	// so composition never produces a double slash.
	cfg.Host = strings.TrimRight(cfg.Host, "/")

	return cfg, nil
}
