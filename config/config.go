package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Redis     RedisConfig
	Session   SessionConfig
	Snapshot  SnapshotConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// BackendConfig points at the remote portfolio API.
type BackendConfig struct {
	URL       string        `env:"BACKEND_URL" envDefault:"http://localhost:4000"`
	APIPrefix string        `env:"BACKEND_API_PREFIX" envDefault:"/api/v1"`
	Timeout   time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type SnapshotConfig struct {
	// Refresh is the interval of the background snapshot refresh; zero disables it.
	Refresh time.Duration `env:"SNAPSHOT_REFRESH" envDefault:"10m"`
}

type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT" envDefault:"5"`
	Window time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	// Store is "redis" (shared across instances) or "memory" (per process).
	Store string `env:"RATE_LIMIT_STORE" envDefault:"redis"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	ContentPath string `env:"SITE_CONTENT_PATH"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if !strings.HasPrefix(c.Backend.URL, "http://") && !strings.HasPrefix(c.Backend.URL, "https://") {
		return fmt.Errorf("BACKEND_URL must start with http:// or https://")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.RateLimit.Store)) {
	case "", "redis", "memory":
	default:
		return fmt.Errorf("RATE_LIMIT_STORE must be redis or memory")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
