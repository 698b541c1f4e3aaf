// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// APIKey is the shared credential every request must present in X-API-Key.
	APIKey string `env:"DRONE_API_KEY,required,notEmpty"`

	Addr              string        `env:"DRONE_API_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"DRONE_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"DRONE_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	ImageHost            string `env:"DRONE_IMAGE_HOST" envDefault:"example.com"`
	RejectEmptyWaypoints bool   `env:"DRONE_REJECT_EMPTY_WAYPOINTS" envDefault:"false"`

	RateLimitRPS   float64 `env:"DRONE_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"DRONE_RATE_LIMIT_BURST" envDefault:"20"`

	CORSOrigins    []string `env:"DRONE_CORS_ORIGINS" envSeparator:"," envDefault:"https://*,http://localhost:8081"`
	MetricsEnabled bool     `env:"DRONE_METRICS_ENABLED" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, errors.New("DRONE_API_KEY is required"))
	}
	if c.ImageHost == "" {
		errs = append(errs, errors.New("DRONE_IMAGE_HOST must not be empty"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("DRONE_RATE_LIMIT_RPS must be >= 0, got %v", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("DRONE_RATE_LIMIT_BURST must be >= 1, got %d", c.RateLimitBurst))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("DRONE_SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, Addr: %s, ImageHost: %s, RateLimit: %v/%d, APIKey: *** (masked) ***}",
		c.AppEnv, c.Addr, c.ImageHost, c.RateLimitRPS, c.RateLimitBurst)
}
