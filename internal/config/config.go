package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for rate limiting when the environment does not override them.
const (
	DefaultRateLimitWindow = 60000 * time.Millisecond
	DefaultRateLimitMax    = 10
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port    string
	BaseURL string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string
}

// RedisConfig holds counter-store configuration
type RedisConfig struct {
	Addr string
}

// RateLimitConfig holds rate-limiter configuration
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int64
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Verbose bool
}

// New creates a new config with the given parameters
func New(port, baseURL, dbPath, redisAddr string, window time.Duration, maxRequests int64, verbose bool) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    port,
			BaseURL: baseURL,
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Redis: RedisConfig{
			Addr: redisAddr,
		},
		RateLimit: RateLimitConfig{
			Window:      window,
			MaxRequests: maxRequests,
		},
		Logging: LoggingConfig{
			Verbose: verbose,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FromEnv builds a config from the environment. A .env file in the working
// directory is loaded first when present.
func FromEnv() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	windowMS, err := getEnvInt64("RATE_LIMIT_WINDOW_MS", DefaultRateLimitWindow.Milliseconds())
	if err != nil {
		return nil, err
	}

	maxRequests, err := getEnvInt64("RATE_LIMIT_MAX_REQUESTS", DefaultRateLimitMax)
	if err != nil {
		return nil, err
	}

	return New(
		getEnv("PORT", "8080"),
		getEnv("BASE_URL", "http://localhost:8080"),
		getEnv("DATABASE_PATH", "links.db"),
		getEnv("REDIS_ADDR", "localhost:6379"),
		time.Duration(windowMS)*time.Millisecond,
		maxRequests,
		getEnv("VERBOSE", "") != "",
	)
}

// validate validates the configuration values
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Server.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive, got: %v", c.RateLimit.Window)
	}

	if c.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("rate limit max requests must be positive, got: %d", c.RateLimit.MaxRequests)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
